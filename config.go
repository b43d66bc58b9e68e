package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TariffFile is the content of a YAML tariff file.
type TariffFile struct {
	BankHolidayPeriod *Period      `yaml:"bank_holiday_period"`
	BankHolidays      []string     `yaml:"bank_holidays"`
	BaseMeterCounters []string     `yaml:"base_meter_counters"`
	TimeWindows       []TimeWindow `yaml:"time_windows"`
}

// LoadTariffFile reads and validates a YAML tariff file.
// The lists are kept raw; they are parsed when they are added to the registry.
func LoadTariffFile(path string) (*TariffFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var tf TariffFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("failed to decode tariff file %s: %w", path, err)
	}

	for _, w := range tf.TimeWindows {
		if err := validateTimeWindow(w); err != nil {
			return nil, fmt.Errorf("tariff file %s: %w", path, err)
		}
	}
	if tf.BankHolidayPeriod != nil && *tf.BankHolidayPeriod > 9 {
		return nil, fmt.Errorf("tariff file %s: bank holiday period %d isn't a single digit number", path, *tf.BankHolidayPeriod)
	}

	return &tf, nil
}
