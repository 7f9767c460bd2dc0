package report

import (
	"fmt"
	"strings"
	"time"

	"pod/internal/pkg/errs"
)

// Period is an inclusive time window.
type Period struct {
	Start time.Time
	End   time.Time
}

// DayPeriod returns the local calendar day containing t, from 00:00:00.000 to
// 23:59:59.999 inclusive.
func DayPeriod(t time.Time) Period {
	local := t.In(time.Local)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.Local)
	return Period{
		Start: start,
		End:   start.AddDate(0, 0, 1).Add(-time.Millisecond),
	}
}

// Contains reports whether t falls within the window, bounds included.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

func (p Period) Validate() error {
	if p.Start.IsZero() || p.End.IsZero() {
		return errs.NewValueIsRequiredError("period")
	}
	if p.End.Before(p.Start) {
		return errs.NewValueIsInvalidErrorWithCause("period", fmt.Errorf("end %s is before start %s", p.End, p.Start))
	}
	return nil
}

// ParseReportDate accepts a calendar date (2006-01-02, read in local time) or
// an RFC 3339 timestamp. An empty value yields fallback.
func ParseReportDate(s string, fallback time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback, nil
	}
	if t, err := time.ParseInLocation(time.DateOnly, s, time.Local); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause("reportDate", fmt.Errorf("%q is neither YYYY-MM-DD nor RFC 3339", s))
	}
	return t, nil
}
