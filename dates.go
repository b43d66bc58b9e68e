package main

import (
	"strings"

	"github.com/go-openapi/strfmt"
)

const (
	dateListSeparator = ";"
	daySeparator      = ","
)

// ParseDateList parses a list of dates where each one may contain more than one day in the same
// year and month, and returns the dates separately in input order.
//
// Format expressed in a regular expression is:
// ^[\d]{4}-[\d]{2}-[\d]{2}(,[\d]{2})*(;[\d]{4}-[\d]{2}-[\d]{2}(,[\d]{2})*)*$
//
// Examples:
//
//   - 2022-12-25
//   - 2022-12-25,26
//   - 2022-12-25,26;2023-01-06
//
// Repeated days don't produce an error, they are returned as many times as they appear.
func ParseDateList(s string) ([]strfmt.Date, error) {
	var dates []strfmt.Date
	for _, unit := range strings.Split(s, dateListSeparator) {
		ds, err := parseDateMultipleDays(s, unit)
		if err != nil {
			return nil, err
		}
		dates = append(dates, ds...)
	}

	return dates, nil
}

// parseDateMultipleDays parses "yyyy-mm-dd(,dd)*".
func parseDateMultipleDays(input, unit string) ([]strfmt.Date, error) {
	if unit == "" {
		return nil, newParseError(ErrEmptyUnit, input, unit, "empty date", nil)
	}

	days := strings.Split(unit, daySeparator)
	for _, day := range days {
		if day == "" {
			return nil, newParseError(ErrEmptyUnit, input, unit, "empty day around ','", nil)
		}
	}

	parts := strings.Split(days[0], "-")
	if len(parts) != 3 {
		return nil, newParseError(ErrMalformedShape, input, days[0],
			"it contains an invalid number of '-', expected yyyy-mm-dd", nil)
	}

	yearMonth := parts[0] + "-" + parts[1]
	dates := make([]strfmt.Date, 0, len(days))
	for i, day := range days {
		if i == 0 {
			day = parts[2]
		}

		d, err := parseDate(input, yearMonth+"-"+day)
		if err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}

	return dates, nil
}

func parseDate(input, date string) (strfmt.Date, error) {
	var d strfmt.Date
	if !hasDateShape(date) {
		return d, newParseError(ErrMalformedShape, input, date, `it isn't of the format "yyyy-mm-dd"`, nil)
	}
	if err := d.UnmarshalText([]byte(date)); err != nil {
		return d, newParseError(ErrInvalidCalendarDate, input, date, "it isn't a valid date", err)
	}
	return d, nil
}

// hasDateShape reports whether s is 4, 2 and 2 digits separated by '-'.
func hasDateShape(s string) bool {
	if len(s) != len(strfmt.RFC3339FullDate) {
		return false
	}
	for i := 0; i < len(s); i++ {
		switch i {
		case 4, 7:
			if s[i] != '-' {
				return false
			}
		default:
			if !isDigit(s[i]) {
				return false
			}
		}
	}
	return true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
