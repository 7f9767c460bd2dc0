package http

import (
	"net/http"

	"pod/internal/core/application/usecases/commands"
	"pod/internal/core/application/usecases/queries"
	"pod/internal/core/domain/model/report"

	"github.com/labstack/echo/v4"
)

// GenerateDailyReport handles POST /api/reports/dsr. Without a reportDate the
// report covers today.
func (s *Server) GenerateDailyReport(ctx echo.Context) error {
	var req GenerateReportRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	p, err := principal(ctx)
	if err != nil {
		return err
	}

	reportDate, err := report.ParseReportDate(req.ReportDate, s.clock.Now())
	if err != nil {
		return err
	}

	cmd, err := commands.NewGenerateDailyReportCommand(reportDate, &p.UserID)
	if err != nil {
		return err
	}

	r, err := s.handlers.GenerateDailyReport.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, GenerateReportResponse{Message: "Report generated", Report: toReport(r)})
}

// ListReports handles GET /api/reports.
func (s *Server) ListReports(ctx echo.Context) error {
	reports, err := s.handlers.ListReports.Handle(ctx.Request().Context(), queries.NewListReportsQuery())
	if err != nil {
		return err
	}

	response := make([]Report, 0, len(reports))
	for _, r := range reports {
		response = append(response, toReport(r))
	}
	return ctx.JSON(http.StatusOK, response)
}
