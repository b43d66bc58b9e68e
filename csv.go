package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// formatPeriod formats a period the way it's written in the arguments, e.g. p1.
func formatPeriod(p Period) string {
	return fmt.Sprintf("p%d", p)
}

// Write the period of each hour of the day and its base meter counter to a CSV file
func writeCSV(filename string, r *TariffRegistry) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	header := []string{
		"Hour",
		"Period",
		"Base_Meter_Counter",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	table := r.PeriodTimes()
	for h, p := range table {
		counter := "NaN"
		if c, ok := r.Counter(p); ok {
			counter = strconv.FormatUint(uint64(c), 10)
		}

		record := []string{
			fmt.Sprintf("%02d:00", h),
			formatPeriod(p),
			counter,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
