package models

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
)

// Statement is one export file to be processed with its institution and rate.
type Statement struct {
	Institution Institution
	FilePath    string
	RatePercent decimal.Decimal
}

// File returns the absolute path to the statement file, expanding ~.
func (s *Statement) File() (string, error) {
	if strings.HasPrefix(s.FilePath, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, s.FilePath[2:]), nil
	}
	return s.FilePath, nil
}

// Read returns the raw bytes of the statement file.
func (s *Statement) Read() ([]byte, error) {
	filePath, err := s.File()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read statement file %s: %w", filePath, err)
	}
	return data, nil
}

// Accrual returns the accrual configuration for the statement's rate.
func (s *Statement) Accrual() (AccrualConfig, error) {
	return NewAccrualConfig(s.RatePercent)
}
