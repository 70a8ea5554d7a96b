// Package export writes scenario result tables and sweep series to disk.
// The destination directory is always an explicit parameter; nothing is
// derived from the process working directory or other ambient state.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/DChenet/sec-cost-simulator2/core"
	"github.com/DChenet/sec-cost-simulator2/internal/sweep"
)

// resultsDocument is the JSON shape of an exported run.
type resultsDocument struct {
	Scenario string          `json:"scenario"`
	Result   *core.RunResult `json:"result"`
}

// Results writes the per-stage cost table and totals of one run under dir,
// as both CSV and JSON, and returns the written paths.
func Results(dir, scenario string, result *core.RunResult) (csvPath, jsonPath string, err error) {
	if result == nil {
		return "", "", fmt.Errorf("export results: nil result")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("export results: %w", err)
	}

	csvPath = filepath.Join(dir, scenario+"_results.csv")
	if err := writeResultsCSV(csvPath, result); err != nil {
		return "", "", err
	}

	jsonPath = filepath.Join(dir, scenario+"_results.json")
	doc, err := json.MarshalIndent(resultsDocument{Scenario: scenario, Result: result}, "", "  ")
	if err != nil {
		return "", "", fmt.Errorf("export results: marshal: %w", err)
	}
	if err := os.WriteFile(jsonPath, append(doc, '\n'), 0o644); err != nil {
		return "", "", fmt.Errorf("export results: %w", err)
	}

	return csvPath, jsonPath, nil
}

func writeResultsCSV(path string, result *core.RunResult) error {
	records := [][]string{
		{"stage", "kind", "payload_in", "time_cost", "energy_cost", "payload_out"},
	}
	for _, s := range result.Stages {
		records = append(records, []string{
			s.Name,
			s.Kind,
			strconv.FormatInt(int64(s.PayloadIn), 10),
			formatFloat(s.TimeCost),
			formatFloat(s.EnergyCost),
			strconv.FormatInt(int64(s.PayloadOut), 10),
		})
	}
	records = append(records, []string{
		"total",
		"",
		"",
		formatFloat(result.TotalTime),
		formatFloat(result.TotalEnergy),
		strconv.FormatInt(int64(result.FinalPayload), 10),
	})

	if err := writeCSV(path, records); err != nil {
		return fmt.Errorf("export results: %w", err)
	}
	return nil
}

// Series writes each named (x, y) series under dir as its own CSV file and
// returns the written paths in series order.
func Series(dir string, series ...sweep.Series) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("export series: %w", err)
	}

	paths := make([]string, 0, len(series))
	for _, s := range series {
		if s.Name == "" {
			return nil, fmt.Errorf("export series: series without a name")
		}
		path := filepath.Join(dir, s.Name+".csv")
		if err := writeSeriesCSV(path, s); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeSeriesCSV(path string, s sweep.Series) error {
	records := [][]string{{"x", "y"}}
	for _, p := range s.Points {
		records = append(records, []string{formatFloat(p.X), formatFloat(p.Y)})
	}
	if err := writeCSV(path, records); err != nil {
		return fmt.Errorf("export series %q: %w", s.Name, err)
	}
	return nil
}

func writeCSV(path string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
