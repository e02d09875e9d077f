package executors

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yurifrl/overdraft/pkg/csv"
	"github.com/yurifrl/overdraft/pkg/models"
	"github.com/yurifrl/overdraft/pkg/report"
)

// Apply processes a statement and writes the CSV export to outPath, plus an
// .xlsx copy next to it when the configuration asks for one. It returns the
// paths written.
func (e *Executor) Apply(statement *models.Statement, outPath string) ([]string, error) {
	e.logger.Debug("applying statement", "file", statement.FilePath, "output", outPath)

	r, err := e.Run(statement)
	if err != nil {
		return nil, err
	}

	if dir := filepath.Dir(outPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("error creating output directory: %w", err)
		}
	}

	data, err := csv.Create(r)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return nil, fmt.Errorf("error writing output file: %w", err)
	}
	written := []string{outPath}

	if e.config != nil && e.config.XLSX {
		xlsxPath := strings.TrimSuffix(outPath, filepath.Ext(outPath)) + ".xlsx"
		if err := writeXLSX(r, xlsxPath); err != nil {
			return written, err
		}
		written = append(written, xlsxPath)
	}

	e.logger.Info("wrote interest report",
		"file", statement.FilePath,
		"entries", len(r.Rows),
		"total", report.FormatTotal(r.Total.DailyInterest),
		"output", strings.Join(written, ", "))
	return written, nil
}

func writeXLSX(r *models.Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating xlsx file: %w", err)
	}
	defer f.Close()

	if err := report.WriteXLSX(r, f); err != nil {
		return fmt.Errorf("error writing xlsx file: %w", err)
	}
	return f.Close()
}
