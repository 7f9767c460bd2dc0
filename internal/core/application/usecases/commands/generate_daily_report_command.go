package commands

import (
	"errors"
	"time"

	"pod/internal/core/domain/model/kernel"
	"pod/internal/pkg/errs"
	"pod/internal/pkg/guard"
)

var ErrGenerateDailyReportCommandIsNotConstructed = errors.New(
	"GenerateDailyReportCommand must be created via NewGenerateDailyReportCommand constructor",
)

// GenerateDailyReportCommand asks for the situation report of the calendar
// day containing reportDate. CoordinatorID is nil for scheduled runs.
type GenerateDailyReportCommand struct {
	reportDate    time.Time
	coordinatorID *kernel.UUID

	guard guard.ConstructorGuard
}

func NewGenerateDailyReportCommand(reportDate time.Time, coordinatorID *kernel.UUID) (GenerateDailyReportCommand, error) {
	if reportDate.IsZero() {
		return GenerateDailyReportCommand{}, errs.NewValueIsRequiredError("reportDate")
	}
	if coordinatorID != nil {
		if err := coordinatorID.Validate(); err != nil {
			return GenerateDailyReportCommand{}, err
		}
		id := *coordinatorID
		coordinatorID = &id
	}

	return GenerateDailyReportCommand{
		reportDate:    reportDate,
		coordinatorID: coordinatorID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c GenerateDailyReportCommand) Validate() error {
	return c.guard.Validate(ErrGenerateDailyReportCommandIsNotConstructed)
}

func (c GenerateDailyReportCommand) ReportDate() time.Time       { return c.reportDate }
func (c GenerateDailyReportCommand) CoordinatorID() *kernel.UUID { return c.coordinatorID }
