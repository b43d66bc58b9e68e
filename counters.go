package main

import (
	"strconv"
	"strings"
)

const counterListSeparator = ","

// ParseCounterList parses a list of meter counters and returns them in input order.
//
// Format expressed in a regular expression is: ^p[\d]=[\d]+(,p[\d]=[\d]+)*$
//
// Examples:
//
//   - p1=97
//   - p1=97,p3=23
//
// A repeated period isn't an error; every occurrence is returned and the last one is expected to win.
func ParseCounterList(s string) ([]PeriodCounter, error) {
	var counters []PeriodCounter
	for _, pair := range strings.Split(s, counterListSeparator) {
		c, err := parseMeterCounter(s, pair)
		if err != nil {
			return nil, err
		}
		counters = append(counters, c)
	}

	return counters, nil
}

func parseMeterCounter(input, pair string) (PeriodCounter, error) {
	if pair == "" {
		return PeriodCounter{}, newParseError(ErrEmptyUnit, input, pair, "empty counter", nil)
	}

	name, value, ok := strings.Cut(pair, "=")
	if !ok {
		return PeriodCounter{}, newParseError(ErrMalformedShape, input, pair, "it doesn't have an '='", nil)
	}

	p, err := parsePeriodName(input, name)
	if err != nil {
		return PeriodCounter{}, err
	}

	v, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return PeriodCounter{}, newParseError(ErrInvalidCounterValue, input, value,
			"the period's value isn't an unsigned integer", err)
	}

	return PeriodCounter{Period: p, Counter: Counter(v)}, nil
}

// parsePeriodName parses "p<single digit number>".
func parsePeriodName(input, name string) (Period, error) {
	if len(name) != 2 {
		return 0, newParseError(ErrInvalidPeriodName, input, name,
			"the period's name isn't of the format 'p<single digit number>'", nil)
	}
	if name[0] != 'p' {
		return 0, newParseError(ErrInvalidPeriodName, input, name, "the period's name doesn't start with 'p'", nil)
	}
	if !isDigit(name[1]) {
		return 0, newParseError(ErrInvalidPeriodName, input, name, "the period's name doesn't have a digit after 'p'", nil)
	}

	return Period(name[1] - '0'), nil
}
