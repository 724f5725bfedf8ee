package dates

import "time"

const Layout = "2006-01-02"

// Parse accepts an ISO calendar date (no time component).
func Parse(s string) (time.Time, error) {
	return time.Parse(Layout, s)
}

func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

func Format(t time.Time) string {
	return t.Format(Layout)
}

// MonthPrefix returns the "YYYY-MM-" prefix shared by every date in a month.
func MonthPrefix(year int, month time.Month) string {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01-")
}
