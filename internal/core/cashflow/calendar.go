package cashflow

import (
	"time"

	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
)

const monthKeyLayout = "2006-01"

// civilDate drops the time of day, keeping the calendar date as seen in t's location.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// monthStart returns the first day of the month offset months away from now's month.
func monthStart(now time.Time, offset int) time.Time {
	y, m, _ := now.Date()
	return time.Date(y, m+time.Month(offset), 1, 0, 0, 0, 0, time.UTC)
}

func monthKey(t time.Time) string {
	return t.Format(monthKeyLayout)
}

func inMonthOf(date, now time.Time) bool {
	dy, dm, _ := date.Date()
	ny, nm, _ := now.Date()
	return dy == ny && dm == nm
}

// monthsAgo counts whole calendar months between date's month and now's month.
// Future months are negative.
func monthsAgo(date, now time.Time) int {
	dy, dm, _ := date.Date()
	ny, nm, _ := now.Date()
	return (ny-dy)*12 + int(nm) - int(dm)
}

// burnWindow is the trailing window ending today that burn is averaged over.
// It rolls with today rather than aligning to month boundaries.
type burnWindow struct {
	start, end time.Time
}

func newBurnWindow(now time.Time) burnWindow {
	return burnWindow{
		start: civilDate(now.AddDate(0, -BurnWindowMonths, 0)),
		end:   civilDate(now),
	}
}

// contains reports whether t falls between the window start and today, inclusive.
func (w burnWindow) contains(t domain.Transaction) bool {
	d := civilDate(t.Date)
	return !d.Before(w.start) && !d.After(w.end)
}
