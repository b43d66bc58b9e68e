package main

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	r := NewTariffRegistry(DefaultTimeWindows(), 3)
	r.SetCounters([]PeriodCounter{{Period: 1, Counter: 97}, {Period: 3, Counter: 23}})

	filename := filepath.Join(t.TempDir(), "periods.csv")
	require.NoError(t, writeCSV(filename, r))

	f, err := os.Open(filename)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 25, "header and one row per hour")
	require.Equal(t, []string{"Hour", "Period", "Base_Meter_Counter"}, records[0])
	require.Equal(t, []string{"00:00", "p3", "23"}, records[1])
	require.Equal(t, []string{"08:00", "p2", "NaN"}, records[9])
	require.Equal(t, []string{"10:00", "p1", "97"}, records[11])
	require.Equal(t, []string{"23:00", "p2", "NaN"}, records[24])
}

func TestWriteCSVInvalidPath(t *testing.T) {
	r := NewTariffRegistry(nil, 0)
	err := writeCSV(filepath.Join(t.TempDir(), "missing", "periods.csv"), r)
	require.Error(t, err)
}
