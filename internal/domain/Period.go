package domain

import "time"

// ReportKind selects the report shape and the workbook filename prefix.
type ReportKind string

const (
	ReportKindWeekly  ReportKind = "weekly"
	ReportKindMonthly ReportKind = "monthly"
	ReportKindDaily   ReportKind = "daily"
	ReportKindCustom  ReportKind = "custom"
)

// Period is a closed date range, day precision.
type Period struct {
	From time.Time
	To   time.Time
}

// NewPeriod builds a period from two dates.
func NewPeriod(from, to time.Time) Period {
	return Period{From: from, To: to}
}

// Days returns the span length in days, inclusive bounds not counted
// (a single-day period has 0 days of span).
func (p Period) Days() int {
	return int(p.To.Sub(p.From).Hours() / 24)
}

// Label renders the range as "YYYY-MM-DD — YYYY-MM-DD" for messages and
// workbook titles.
func (p Period) Label() string {
	return p.From.Format(time.DateOnly) + " — " + p.To.Format(time.DateOnly)
}

// LastSevenDays is the default /report range: the seven days up to today.
func LastSevenDays(today time.Time) Period {
	return Period{From: today.AddDate(0, 0, -7), To: today}
}

// PreviousWeek returns the last full Monday–Sunday week before today.
func PreviousWeek(today time.Time) Period {
	weekday := int(today.Weekday()+6) % 7 // Monday == 0
	to := today.AddDate(0, 0, -(weekday + 1))
	return Period{From: to.AddDate(0, 0, -6), To: to}
}

// PreviousMonth returns the previous calendar month.
func PreviousMonth(today time.Time) Period {
	firstOfMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	end := firstOfMonth.AddDate(0, 0, -1)
	start := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, end.Location())
	return Period{From: start, To: end}
}

// Today returns the single-day period for today.
func Today(today time.Time) Period {
	return Period{From: today, To: today}
}
