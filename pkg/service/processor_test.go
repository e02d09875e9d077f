package service

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yurifrl/overdraft/pkg/config"
)

const scStatement = `STANDARD CHARTERED BANK,,,
,,,
Date,Value Date,Description,Balance
01/01/2024,01/01/2024,B/F,"-10,000.00"
11/01/2024,11/01/2024,CREDIT,"5,000.00"
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestProcessor(output string) *Processor {
	cfg := config.New(output)
	cfg.Bank = "sc"
	return NewProcessor(cfg, log.New(io.Discard))
}

func TestIsStatement(t *testing.T) {
	assert.True(t, IsStatement("jan.xls"))
	assert.True(t, IsStatement("Jan.XLSX"))
	assert.True(t, IsStatement("jan.csv"))
	assert.False(t, IsStatement("jan-interest.csv"))
	assert.False(t, IsStatement("notes.txt"))
}

func TestDetermineOutputPath(t *testing.T) {
	p := newTestProcessor("")
	assert.Equal(t, filepath.Join("in", "jan-interest.csv"), p.determineOutputPath(filepath.Join("in", "jan.xls")))

	p = newTestProcessor("out")
	assert.Equal(t, filepath.Join("out", "jan-interest.csv"), p.determineOutputPath(filepath.Join("in", "jan.xls")))
}

func TestProcessDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "jan.csv", scStatement)
	writeFile(t, dir, "readme.txt", "not a statement")
	writeFile(t, dir, "old-interest.csv", "date,balance,daily_interest\n")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))

	require.NoError(t, newTestProcessor("").ProcessDirectory(dir))

	data, err := os.ReadFile(filepath.Join(dir, "jan-interest.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "date,balance,daily_interest\n2024-01-01,-10000,")
	assert.NoFileExists(t, filepath.Join(dir, "old-interest-interest.csv"))
	assert.NoFileExists(t, filepath.Join(dir, "readme-interest.csv"))
}

func TestProcessDirectory_ContinuesAfterFailure(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a-broken.csv", "Date,x,Description\n01/01/2024,,X\n")
	writeFile(t, dir, "b-good.csv", scStatement)

	err := newTestProcessor("").ProcessDirectory(dir)
	assert.ErrorContains(t, err, "1 file(s)")
	assert.FileExists(t, filepath.Join(dir, "b-good-interest.csv"))
}

func TestProcessFile_Preview(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "jan.csv", scStatement)

	var out bytes.Buffer
	p := newTestProcessor("")
	p.SetPreview(true)
	p.Executor().SetOutput(&out)

	require.NoError(t, p.ProcessFile(path))
	// 10000 * 0.08 * 10 / 365
	assert.Contains(t, out.String(), "Total month's interest: 21.92")
	assert.NoFileExists(t, filepath.Join(dir, "jan-interest.csv"))
}

func TestProcessFile_NoBank(t *testing.T) {
	p := NewProcessor(config.New(""), log.New(io.Discard))
	assert.Error(t, p.ProcessFile("jan.csv"))
}
