// Package export writes the visible dashboard as a CSV file.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/emagineer/kpiboard/internal/dashboard"
	"github.com/emagineer/kpiboard/internal/kpi"
	"github.com/emagineer/kpiboard/internal/prefs"
)

// Title is the first line of every export.
const Title = "Emagineer KPI Dashboard Export"

// FileName returns the export file name for the given day.
func FileName(now time.Time) string {
	return fmt.Sprintf("dashboard-export-%s.csv", now.Format("2006-01-02"))
}

// Write renders the export for st to w.
func Write(w io.Writer, st prefs.State, data kpi.Dataset, now time.Time) error {
	cw := csv.NewWriter(w)
	records := [][]string{
		{Title},
		{"Generated", now.Format("2006-01-02 15:04:05")},
		{},
		{"Company", kpi.DisplayName(st.Company)},
		{"View", dashboard.ViewLabel(st.View)},
		{"Time Range", st.TimeRange.Label()},
		{},
		{"Metric", "Current", "Previous", "Change"},
	}
	for _, row := range dashboard.Rows(st, data) {
		records = append(records, []string{row.Metric, row.Current, row.Previous, row.Change})
	}
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}

// ToDir writes the export into dir and returns the file path.
func ToDir(dir string, st prefs.State, data kpi.Dataset, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}
	path := filepath.Join(dir, FileName(now))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating export: %w", err)
	}
	if err := Write(f, st, data, now); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing export: %w", err)
	}
	return path, nil
}
