package model

import (
	"fmt"
	"regexp"
	"time"
)

var monthKeyPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// ValidMonthKey reports whether s is a well-formed "YYYY-MM" month key.
func ValidMonthKey(s string) bool {
	return monthKeyPattern.MatchString(s)
}

// MonthKey formats a time as a "YYYY-MM" partition key.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// PrevMonthKey returns the month immediately preceding the given key.
// January of year Y decrements to December of year Y-1. The input must be
// a valid month key.
func PrevMonthKey(month string) string {
	var year, m int
	fmt.Sscanf(month, "%d-%d", &year, &m)
	m--
	if m == 0 {
		m = 12
		year--
	}
	return fmt.Sprintf("%04d-%02d", year, m)
}

// MonthTitle renders a month key as "MM/YYYY" for page headers.
func MonthTitle(month string) string {
	if len(month) != 7 {
		return month
	}
	return month[5:] + "/" + month[:4]
}
