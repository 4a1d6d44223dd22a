package query

import (
	"strings"
	"time"

	appErrors "github.com/noah-isme/sma-timetable-api/pkg/errors"
)

// DateLayout is the calendar-date format used for every date parameter.
const DateLayout = "2006-01-02"

// NormalizeDate keeps only the calendar-date portion of raw, which may be a plain
// date or a full ISO-8601 timestamp. No timezone conversion is applied.
func NormalizeDate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if len(raw) < len(DateLayout) {
		return "", invalidDate(raw)
	}
	if len(raw) > len(DateLayout) && raw[len(DateLayout)] != 'T' && raw[len(DateLayout)] != ' ' {
		return "", invalidDate(raw)
	}
	datePart := raw[:len(DateLayout)]
	if _, err := time.Parse(DateLayout, datePart); err != nil {
		return "", invalidDate(raw)
	}
	return datePart, nil
}

// DateOrToday normalizes raw, defaulting to the calendar date of now when raw is blank.
func DateOrToday(raw string, now time.Time) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return now.Format(DateLayout), nil
	}
	return NormalizeDate(raw)
}

func invalidDate(raw string) error {
	return appErrors.Clone(appErrors.ErrValidation, "invalid date \""+raw+"\", expected YYYY-MM-DD")
}
