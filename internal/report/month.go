// Package report implements the aggregation engine: pure folds over a
// user's transactions producing the monthly report and the year-to-date
// analysis. Nothing in this package performs I/O; callers fetch the
// transaction set and pass it in.
package report

import (
	"strings"
	"time"
)

// monthIndex resolves the twelve English month names, case-insensitively.
var monthIndex = map[string]time.Month{
	"january":   time.January,
	"february":  time.February,
	"march":     time.March,
	"april":     time.April,
	"may":       time.May,
	"june":      time.June,
	"july":      time.July,
	"august":    time.August,
	"september": time.September,
	"october":   time.October,
	"november":  time.November,
	"december":  time.December,
}

// monthAbbrevs labels the annual series buckets, in fixed Jan..Dec order.
var monthAbbrevs = [12]string{
	"jan", "feb", "mar", "apr", "may", "jun",
	"jul", "aug", "sep", "oct", "nov", "dec",
}

// MonthIndex resolves an English month name to its time.Month. The second
// return value is false for unrecognized names.
func MonthIndex(name string) (time.Month, bool) {
	m, ok := monthIndex[strings.ToLower(name)]
	return m, ok
}

// MonthRange returns the inclusive UTC range covering the given month:
// the first instant of its first day through 23:59:59 of its last day.
func MonthRange(year int, month time.Month) (start, end time.Time) {
	start = time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	// Day zero of the following month normalizes to this month's last day.
	end = time.Date(year, month+1, 0, 23, 59, 59, 0, time.UTC)
	return start, end
}
