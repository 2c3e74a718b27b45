package shared

import "time"

// DateFormat is the calendar-day pattern used everywhere in the sheet, both
// for writing and parsing. There is no time of day and no timezone handling.
const DateFormat = "02/01/2006"

// ParseDate parses a DD/MM/YYYY cell.
func ParseDate(text string) (time.Time, error) {
	return time.Parse(DateFormat, text)
}

// FormatDate renders a day for the sheet.
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}
