package main

import (
	"testing"

	"github.com/go-openapi/strfmt"
	"github.com/stretchr/testify/require"
)

func dateStrings(dates []strfmt.Date) []string {
	s := make([]string, 0, len(dates))
	for _, d := range dates {
		s = append(s, d.String())
	}
	return s
}

func TestParseDateList(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect []string
	}{
		{
			name:   "Single date",
			input:  "2022-12-25",
			expect: []string{"2022-12-25"},
		},
		{
			name:   "Same month days",
			input:  "2022-12-25,26",
			expect: []string{"2022-12-25", "2022-12-26"},
		},
		{
			name:   "Several units",
			input:  "2022-12-25,26,31;2023-01-06",
			expect: []string{"2022-12-25", "2022-12-26", "2022-12-31", "2023-01-06"},
		},
		{
			name:   "Repeated days are kept",
			input:  "2022-12-25,25;2022-12-25",
			expect: []string{"2022-12-25", "2022-12-25", "2022-12-25"},
		},
		{
			name:   "Leap year",
			input:  "2024-02-28,29",
			expect: []string{"2024-02-28", "2024-02-29"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			dates, err := ParseDateList(test.input)
			require.NoError(t, err, "%q should be valid", test.input)
			require.Equal(t, test.expect, dateStrings(dates))
		})
	}
}

func TestParseDateListErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect error
	}{
		{name: "September doesn't have the 31st day", input: "2022-09-31", expect: ErrInvalidCalendarDate},
		{name: "Additional day doesn't exist", input: "2022-09-30,31", expect: ErrInvalidCalendarDate},
		{name: "February 29 in a non leap year", input: "2023-02-28,29", expect: ErrInvalidCalendarDate},
		{name: "Month 13", input: "2022-13-01", expect: ErrInvalidCalendarDate},
		{name: "Second day separated with semicolon", input: "2022-12-25;26", expect: ErrMalformedShape},
		{name: "Too many hyphens", input: "2022-12-25-01", expect: ErrMalformedShape},
		{name: "Missing hyphen", input: "2022-1225", expect: ErrMalformedShape},
		{name: "Single digit day", input: "2022-12-5", expect: ErrMalformedShape},
		{name: "Single digit additional day", input: "2022-12-05,6", expect: ErrMalformedShape},
		{name: "Non numeric year", input: "20x2-12-25", expect: ErrMalformedShape},
		{name: "Trailing comma", input: "2022-12-25,", expect: ErrEmptyUnit},
		{name: "Double comma", input: "2022-12-25,,26", expect: ErrEmptyUnit},
		{name: "Trailing semicolon", input: "2022-12-25;", expect: ErrEmptyUnit},
		{name: "Double semicolon", input: "2022-12-25;;2022-12-26", expect: ErrEmptyUnit},
		{name: "Empty", input: "", expect: ErrEmptyUnit},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			dates, err := ParseDateList(test.input)
			require.Error(t, err)
			require.ErrorIs(t, err, test.expect)
			require.Nil(t, dates, "no partial result expected")
			require.True(t, IsParseError(err))
		})
	}
}

func TestParseDateListErrorMessage(t *testing.T) {
	_, err := ParseDateList("2022-12-24;2022-09-31")
	require.Error(t, err)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, "2022-09-31", pe.Part)
	require.Equal(t, "2022-12-24;2022-09-31", pe.Input)
	require.Contains(t, err.Error(), `"2022-09-31"`)
	require.Contains(t, err.Error(), "it isn't a valid date")
}
