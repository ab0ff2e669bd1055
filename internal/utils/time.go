package utils

import (
	"strings"
	"time"
)

const (
	layoutDate        = "2006-01-02"
	layoutDisplayDate = "02/01/2006"
	layoutHM          = "15:04"
)

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ParseDate parses YYYY-MM-DD in local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// DateOnly keeps the YYYY-MM-DD prefix of a DATE/DATETIME value.
func DateOnly(v string) string {
	v = strings.TrimSpace(v)
	if len(v) >= 10 {
		return v[:10]
	}
	return v
}

// TimeHM keeps HH:MM of a TIME value ("08:00:00" -> "08:00").
func TimeHM(v string) string {
	v = strings.TrimSpace(v)
	if len(v) >= 5 {
		return v[:5]
	}
	return v
}

// FormatDisplayDate renders an ISO date as DD/MM/YYYY; unparsable input is
// returned trimmed as-is.
func FormatDisplayDate(iso string) string {
	d := DateOnly(iso)
	t, err := time.Parse(layoutDate, d)
	if err != nil {
		return d
	}
	return t.Format(layoutDisplayDate)
}

// ValidTimeHM reports whether s is a HH:MM clock time.
func ValidTimeHM(s string) bool {
	_, err := time.Parse(layoutHM, strings.TrimSpace(s))
	return err == nil
}
