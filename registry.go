package main

import (
	"sort"
	"time"

	"github.com/go-openapi/strfmt"
)

// TariffRegistry holds the bank holidays, the base meter counters and the period of each hour of
// the day that the billing of a CSV file consults.
type TariffRegistry struct {
	bankHolidays      map[string]strfmt.Date
	bankHolidayPeriod Period
	counters          map[Period]Counter
	periodTimes       PeriodTimeTable
}

// NewTariffRegistry creates a registry with the hour table of the time windows.
// bankHolidayPeriod is the period that applies during the whole day on bank holidays.
func NewTariffRegistry(windows []TimeWindow, bankHolidayPeriod Period) *TariffRegistry {
	return &TariffRegistry{
		bankHolidays:      make(map[string]strfmt.Date),
		bankHolidayPeriod: bankHolidayPeriod,
		counters:          make(map[Period]Counter),
		periodTimes:       BuildPeriodTimeTable(windows),
	}
}

// AddBankHolidays registers the dates of each list (see ParseDateList) as bank holidays.
//
// Duplicated dates, or dates already registered, are ignored. The first invalid list is returned
// as an error; the lists before it remain registered.
func (r *TariffRegistry) AddBankHolidays(lists []string) error {
	for _, l := range lists {
		dates, err := ParseDateList(l)
		if err != nil {
			return err
		}

		for _, d := range dates {
			r.bankHolidays[d.String()] = d
		}
	}

	return nil
}

// AddCounters registers the meter counters of each list (see ParseCounterList).
//
// If a period appears more than once the last one is used, also across calls. The first invalid
// list is returned as an error; the lists before it remain registered.
func (r *TariffRegistry) AddCounters(lists []string) error {
	for _, l := range lists {
		counters, err := ParseCounterList(l)
		if err != nil {
			return err
		}

		r.SetCounters(counters)
	}

	return nil
}

// SetCounters registers already parsed meter counters, the last one of a period wins.
func (r *TariffRegistry) SetCounters(counters []PeriodCounter) {
	for _, c := range counters {
		r.counters[c.Period] = c.Counter
	}
}

// IsBankHoliday returns true if the date is a registered bank holiday.
func (r *TariffRegistry) IsBankHoliday(d strfmt.Date) bool {
	_, ok := r.bankHolidays[d.String()]
	return ok
}

// BankHolidays returns the registered bank holidays sorted chronologically.
func (r *TariffRegistry) BankHolidays() []strfmt.Date {
	dates := make([]strfmt.Date, 0, len(r.bankHolidays))
	for _, d := range r.bankHolidays {
		dates = append(dates, d)
	}

	sort.Slice(dates, func(i, j int) bool {
		return time.Time(dates[i]).Before(time.Time(dates[j]))
	})
	return dates
}

// BankHolidayPeriod returns the period that applies on bank holidays.
func (r *TariffRegistry) BankHolidayPeriod() Period {
	return r.bankHolidayPeriod
}

// Counter returns the base meter counter of the period and whether it was registered.
func (r *TariffRegistry) Counter(p Period) (Counter, bool) {
	c, ok := r.counters[p]
	return c, ok
}

// Counters returns a copy of the registered base meter counters.
func (r *TariffRegistry) Counters() map[Period]Counter {
	counters := make(map[Period]Counter, len(r.counters))
	for p, c := range r.counters {
		counters[p] = c
	}
	return counters
}

func (r *TariffRegistry) PeriodTimes() PeriodTimeTable {
	return r.periodTimes
}

// PeriodAt returns the period that applies at t: the bank holiday period during a bank holiday,
// otherwise the period of t's hour. t's own date and hour are used as they are.
func (r *TariffRegistry) PeriodAt(t time.Time) Period {
	day := strfmt.Date(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
	if r.IsBankHoliday(day) {
		return r.bankHolidayPeriod
	}
	return r.periodTimes.At(t.Hour())
}
