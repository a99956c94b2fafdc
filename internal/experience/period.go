package experience

import (
	"strconv"
	"strings"
	"time"
)

const (
	periodSeparator = " - "
	present         = "Present"
)

var months = map[string]time.Month{
	"Jan": time.January, "January": time.January,
	"Feb": time.February, "February": time.February,
	"Mar": time.March, "March": time.March,
	"Apr": time.April, "April": time.April,
	"May": time.May,
	"Jun": time.June, "June": time.June,
	"Jul": time.July, "July": time.July,
	"Aug": time.August, "August": time.August,
	"Sept": time.September, "Sep": time.September, "September": time.September,
	"Oct": time.October, "October": time.October,
	"Nov": time.November, "November": time.November,
	"Dec": time.December, "December": time.December,
}

// EndToken returns the part of a "Mon YYYY - Mon YYYY" period after the separator.
func EndToken(period string) (string, bool) {
	_, end, ok := strings.Cut(period, periodSeparator)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(end), true
}

// ParseMonth parses "Mon YYYY" into the first day of that month in UTC.
func ParseMonth(token string) (time.Time, bool) {
	fields := strings.Fields(token)
	if len(fields) != 2 {
		return time.Time{}, false
	}
	month, ok := months[fields[0]]
	if !ok {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(fields[1])
	if err != nil || year <= 0 {
		return time.Time{}, false
	}
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), true
}

// EndDate resolves the end of a period. "Present" resolves to now.
// ok is false for malformed periods; callers sort those as the earliest entries.
func EndDate(period string, now time.Time) (t time.Time, ok bool) {
	token, ok := EndToken(period)
	if !ok {
		return time.Time{}, false
	}
	if token == present {
		return now, true
	}
	return ParseMonth(token)
}
