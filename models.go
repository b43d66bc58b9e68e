package main

// Period identifies a tariff rate period (p0..p9).
type Period uint8

// Counter is a meter reading in kWh.
type Counter uint64

// PeriodCounter is the base meter counter of a period.
type PeriodCounter struct {
	Period  Period
	Counter Counter
}

// TimeWindow is the range of hours [Start, End) where Period applies.
// End lower than Start means the window wraps past midnight; End 24 is the end of the day.
type TimeWindow struct {
	Period Period `yaml:"period"`
	Start  uint8  `yaml:"start"`
	End    uint8  `yaml:"end"`
}

const hoursPerDay = 24

// PeriodTimeTable holds the period that applies on each hour of the day.
type PeriodTimeTable [hoursPerDay]Period

// At returns the period of the hour.
func (t PeriodTimeTable) At(hour int) Period {
	hour %= hoursPerDay
	if hour < 0 {
		hour += hoursPerDay
	}
	return t[hour]
}
