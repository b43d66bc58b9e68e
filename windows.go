package main

import (
	"fmt"
	"strconv"
	"strings"
)

const timeWindowListSeparator = ","

// DefaultTimeWindows returns the time windows currently used by the electric companies when none
// are configured.
func DefaultTimeWindows() []TimeWindow {
	return []TimeWindow{
		{Period: 1, Start: 10, End: 14},
		{Period: 1, Start: 18, End: 22},
		{Period: 2, Start: 8, End: 10},
		{Period: 2, Start: 14, End: 18},
		{Period: 2, Start: 22, End: 0},
		{Period: 3, Start: 0, End: 8},
	}
}

// BuildPeriodTimeTable indexes the period of each hour of the day.
//
// Windows are applied in order, so a later window overwrites the hours it shares with an earlier
// one. A window whose end is lower than its start is split in [start, 24) and [0, end).
// Hours that no window covers are period 0.
func BuildPeriodTimeTable(windows []TimeWindow) PeriodTimeTable {
	var table PeriodTimeTable
	for _, w := range windows {
		start, end := clampHour(w.Start), clampHour(w.End)
		if end < start {
			fillHours(&table, w.Period, start, hoursPerDay)
			start = 0
		}
		fillHours(&table, w.Period, start, end)
	}

	return table
}

func fillHours(table *PeriodTimeTable, p Period, from, to int) {
	for h := from; h < to; h++ {
		table[h] = p
	}
}

func clampHour(h uint8) int {
	return min(int(h), hoursPerDay)
}

// ParseTimeWindowList parses a list of time windows and returns them in input order.
//
// Format expressed in a regular expression is: ^p[\d]:[\d]{1,2}-[\d]{1,2}(,p[\d]:[\d]{1,2}-[\d]{1,2})*$
//
// Examples:
//
//   - p1:10-14
//   - p2:22-0,p3:0-8
func ParseTimeWindowList(s string) ([]TimeWindow, error) {
	var windows []TimeWindow
	for _, raw := range strings.Split(s, timeWindowListSeparator) {
		w, err := parseTimeWindow(s, raw)
		if err != nil {
			return nil, err
		}
		windows = append(windows, w)
	}

	return windows, nil
}

func parseTimeWindow(input, raw string) (TimeWindow, error) {
	if raw == "" {
		return TimeWindow{}, newParseError(ErrEmptyUnit, input, raw, "empty time window", nil)
	}

	name, hours, ok := strings.Cut(raw, ":")
	if !ok {
		return TimeWindow{}, newParseError(ErrMalformedShape, input, raw, "it doesn't have a ':'", nil)
	}

	p, err := parsePeriodName(input, name)
	if err != nil {
		return TimeWindow{}, err
	}

	start, end, ok := strings.Cut(hours, "-")
	if !ok {
		return TimeWindow{}, newParseError(ErrMalformedShape, input, raw, "its hours aren't of the format '<start>-<end>'", nil)
	}

	w := TimeWindow{Period: p}
	if w.Start, err = parseHour(input, start, hoursPerDay-1); err != nil {
		return TimeWindow{}, err
	}
	if w.End, err = parseHour(input, end, hoursPerDay); err != nil {
		return TimeWindow{}, err
	}

	return w, nil
}

func parseHour(input, s string, limit uint64) (uint8, error) {
	h, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, newParseError(ErrInvalidHour, input, s, "the hour isn't an unsigned integer", err)
	}
	if h > limit {
		return 0, newParseError(ErrInvalidHour, input, s, fmt.Sprintf("the hour is greater than %d", limit), nil)
	}
	return uint8(h), nil
}

// validateTimeWindow checks a window that didn't come through ParseTimeWindowList.
func validateTimeWindow(w TimeWindow) error {
	raw := fmt.Sprintf("p%d:%d-%d", w.Period, w.Start, w.End)
	switch {
	case w.Period > 9:
		return newParseError(ErrInvalidPeriodName, raw, raw, "the period isn't a single digit number", nil)
	case w.Start >= hoursPerDay:
		return newParseError(ErrInvalidHour, raw, raw, fmt.Sprintf("the start hour is greater than %d", hoursPerDay-1), nil)
	case w.End > hoursPerDay:
		return newParseError(ErrInvalidHour, raw, raw, fmt.Sprintf("the end hour is greater than %d", hoursPerDay), nil)
	}
	return nil
}
