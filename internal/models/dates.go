package models

import "time"

// Canonical string forms for the API boundary. Timestamps carry a time of
// day; plain dates do not.
const (
	TimestampLayout = "2006-01-02 15:04:05"
	DateLayout      = "2006-01-02"
)

// FormatTimestamp renders a datetime column value.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// FormatDate renders a date column value.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatNullableDate renders a nullable date column value; null stays null
// rather than becoming an empty string.
func FormatNullableDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}
