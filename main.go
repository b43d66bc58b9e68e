package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

// envOrString returns the environment variable value if set, otherwise returns the default value.
func envOrString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

// listFlag collects every occurrence of a repeatable flag.
type listFlag []string

func (l *listFlag) String() string {
	return strings.Join(*l, " ")
}

func (l *listFlag) Set(v string) error {
	*l = append(*l, v)
	return nil
}

// listOrEnv returns the flag occurrences if any, otherwise the environment variable value as a
// one element list.
func listOrEnv(l listFlag, key string) []string {
	if len(l) > 0 {
		return l
	}
	if v := envOrString(key, ""); v != "" {
		return []string{v}
	}
	return nil
}

func parseFlags(fs *flag.FlagSet, args []string) (*Config, error) {
	var bankHolidays, counters, windows listFlag

	usage := "Bank holidays as yyyy-mm-dd(,dd)*, e.g. 2022-12-25,26. Repeat it or separate dates with ';'"
	fs.Var(&bankHolidays, "bankHolidays", usage)
	fs.Var(&bankHolidays, "d", usage+" (shorthand)")
	usage = "Base meter counters before the first CSV reading as p<digit>=<kWh>, e.g. p1=97,p3=23. Repeat it or separate with ','"
	fs.Var(&counters, "baseMeterCounter", usage)
	fs.Var(&counters, "c", usage+" (shorthand)")
	usage = "Time windows as p<digit>:<start>-<end>, e.g. p2:22-0. Repeat it or separate with ','"
	fs.Var(&windows, "timeWindows", usage)
	fs.Var(&windows, "w", usage+" (shorthand)")
	holidayPeriod := fs.String("holidayPeriod", envOrString("BANK_HOLIDAY_PERIOD", ""), "Period applied during bank holidays (default 3)")
	tariffFile := fs.String("tariff", envOrString("TARIFF_FILE", ""), "YAML tariff file with time windows, bank holidays and base meter counters")
	outCSV := fs.String("out", envOrString("OUTPUT_CSV", ""), "Output CSV file with the period of each hour (empty to disable)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() != 1 {
		return nil, fmt.Errorf("the e-distribution CSV file path is required. Usage: %s [flags] <csv file>", fs.Name())
	}

	config := &Config{
		CSVFilePath:       fs.Arg(0),
		OutputCSV:         *outCSV,
		TariffFile:        *tariffFile,
		BankHolidays:      listOrEnv(bankHolidays, "BANK_HOLIDAYS"),
		BaseMeterCounters: listOrEnv(counters, "BASE_METER_COUNTERS"),
		TimeWindows:       listOrEnv(windows, "TIME_WINDOWS"),
	}

	if *holidayPeriod != "" {
		p, err := strconv.ParseUint(*holidayPeriod, 10, 8)
		if err != nil || p > 9 {
			return nil, fmt.Errorf("invalid holidayPeriod %q, it isn't a single digit number", *holidayPeriod)
		}
		hp := Period(p)
		config.BankHolidayPeriod = &hp
	}

	return config, nil
}

func main() {
	config, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("Invalid arguments: %v", err)
	}

	app, err := NewApp(config)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}

	if err := app.Run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}
