package main

import (
	"fmt"
	"log"
	"strings"
)

// Config contains configuration for the application.
type Config struct {
	CSVFilePath       string
	OutputCSV         string
	TariffFile        string
	BankHolidays      []string
	BaseMeterCounters []string
	TimeWindows       []string
	BankHolidayPeriod *Period
}

// defaultBankHolidayPeriod is the cheapest period, the one of weekends and bank holidays.
const defaultBankHolidayPeriod Period = 3

// App manages application dependencies and logic.
type App struct {
	Config   *Config
	Registry *TariffRegistry
}

// NewApp builds the tariff registry from the tariff file and the arguments.
// Arguments are applied after the tariff file, so their counters win.
func NewApp(config *Config) (*App, error) {
	tf := &TariffFile{}
	if config.TariffFile != "" {
		var err error
		tf, err = LoadTariffFile(config.TariffFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load tariff file: %w", err)
		}
		log.Printf("Loaded tariff file %s", config.TariffFile)
	}

	windows := tf.TimeWindows
	if len(config.TimeWindows) > 0 {
		windows = nil
		for _, l := range config.TimeWindows {
			ws, err := ParseTimeWindowList(l)
			if err != nil {
				return nil, fmt.Errorf("invalid time windows: %w", err)
			}
			windows = append(windows, ws...)
		}
	}
	if len(windows) == 0 {
		log.Println("No time windows configured, using the default ones")
		windows = DefaultTimeWindows()
	}

	holidayPeriod := defaultBankHolidayPeriod
	if tf.BankHolidayPeriod != nil {
		holidayPeriod = *tf.BankHolidayPeriod
	}
	if config.BankHolidayPeriod != nil {
		holidayPeriod = *config.BankHolidayPeriod
	}

	registry := NewTariffRegistry(windows, holidayPeriod)

	if err := registry.AddBankHolidays(append(tf.BankHolidays, config.BankHolidays...)); err != nil {
		return nil, fmt.Errorf("invalid bank holidays: %w", err)
	}
	if err := registry.AddCounters(append(tf.BaseMeterCounters, config.BaseMeterCounters...)); err != nil {
		return nil, fmt.Errorf("invalid base meter counters: %w", err)
	}

	return &App{
		Config:   config,
		Registry: registry,
	}, nil
}

func (app *App) Run() error {
	log.Println("Starting application...")
	log.Printf("Using CSV file %s", app.Config.CSVFilePath)

	holidays := app.Registry.BankHolidays()
	days := make([]string, 0, len(holidays))
	for _, d := range holidays {
		days = append(days, d.String())
	}
	log.Printf("Bank holidays (%s): %s", formatPeriod(app.Registry.BankHolidayPeriod()), strings.Join(days, ", "))

	counters := app.Registry.Counters()
	for p := Period(0); p <= 9; p++ {
		if c, ok := counters[p]; ok {
			log.Printf("Base meter counter %s=%d", formatPeriod(p), c)
		}
	}

	table := app.Registry.PeriodTimes()
	periods := make([]string, 0, len(table))
	for h, p := range table {
		periods = append(periods, fmt.Sprintf("%02d:%s", h, formatPeriod(p)))
	}
	log.Printf("Periods by hour: %s", strings.Join(periods, " "))

	if app.Config.OutputCSV == "" {
		return nil
	}

	if err := writeCSV(app.Config.OutputCSV, app.Registry); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	log.Printf("Wrote CSV to %s", app.Config.OutputCSV)

	return nil
}
