package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"

	"github.com/yurifrl/overdraft/pkg/config"
	"github.com/yurifrl/overdraft/pkg/executors"
	"github.com/yurifrl/overdraft/pkg/models"
)

// OutputSuffix is appended to the input base name for exports.
const OutputSuffix = "-interest.csv"

var supportedExt = map[string]bool{
	".xls":  true,
	".xlsx": true,
	".csv":  true,
}

// Processor runs every statement found on disk through the executor using
// the configured institution and rate.
type Processor struct {
	config   *config.Config
	logger   *log.Logger
	executor *executors.Executor
	preview  bool
}

func NewProcessor(config *config.Config, logger *log.Logger) *Processor {
	return &Processor{
		config:   config,
		logger:   logger,
		executor: executors.New(logger, config),
	}
}

// SetPreview makes the processor print reports instead of writing files.
func (p *Processor) SetPreview(preview bool) {
	p.preview = preview
}

func (p *Processor) Executor() *executors.Executor {
	return p.executor
}

// ProcessDirectory processes every supported file in dir. Failures are
// logged per file and do not stop the batch; the number of failed files is
// returned in the error.
func (p *Processor) ProcessDirectory(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("error reading directory: %w", err)
	}

	failed := 0
	for _, entry := range entries {
		if err := p.processEntry(dir, entry); err != nil {
			p.logger.Error("failed to process entry", "file", entry.Name(), "error", err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d file(s) in %s failed", failed, dir)
	}
	return nil
}

func (p *Processor) processEntry(dir string, entry os.DirEntry) error {
	if entry.IsDir() || !IsStatement(entry.Name()) {
		return nil
	}
	return p.ProcessFile(filepath.Join(dir, entry.Name()))
}

// IsStatement reports whether a file name looks like a statement export and
// not one of our own outputs.
func IsStatement(name string) bool {
	lower := strings.ToLower(name)
	if strings.HasSuffix(lower, OutputSuffix) {
		return false
	}
	return supportedExt[filepath.Ext(lower)]
}

// ProcessFile processes one statement with the configured bank and rate.
func (p *Processor) ProcessFile(inputPath string) error {
	inst, err := p.config.Institution()
	if err != nil {
		return err
	}
	return p.ProcessStatement(&models.Statement{
		Institution: inst,
		FilePath:    inputPath,
		RatePercent: decimal.NewFromFloat(p.config.Rate),
	})
}

// ProcessStatement previews or writes the report for a single statement.
func (p *Processor) ProcessStatement(stmt *models.Statement) error {
	p.logger.Info("processing file", "path", stmt.FilePath, "institution", stmt.Institution)

	if p.preview {
		_, err := p.executor.Plan(stmt)
		return err
	}

	outFile := p.determineOutputPath(stmt.FilePath)
	if _, err := p.executor.Apply(stmt, outFile); err != nil {
		return err
	}

	p.logger.Info("processed file successfully", "input", stmt.FilePath, "output", outFile)
	return nil
}

func (p *Processor) determineOutputPath(inputPath string) string {
	fileName := filepath.Base(inputPath)
	baseName := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	if p.config.GetOutputPath() != "" {
		return filepath.Join(p.config.GetOutputPath(), baseName+OutputSuffix)
	}
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + OutputSuffix
}
