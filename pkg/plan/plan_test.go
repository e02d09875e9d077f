package plan

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yurifrl/overdraft/pkg/models"
)

func writePlan(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAndResolve(t *testing.T) {
	path := writePlan(t, `
defaults:
  institution: axis
  rate: 9.5
  output: out
statements:
  - file: jan.xls
  - file: /data/feb.csv
    institution: HDFC Bank
    rate: 12
  - file: ~/mar.xlsx
    institution: sc
    rate: 0
`)

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "out", p.Defaults.Output)

	stmts, err := p.Resolve(8)
	require.NoError(t, err)
	require.Len(t, stmts, 3)

	assert.Equal(t, models.Axis, stmts[0].Institution)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "jan.xls"), stmts[0].FilePath)
	assert.Equal(t, "9.5", stmts[0].RatePercent.String())

	assert.Equal(t, models.HDFC, stmts[1].Institution)
	assert.Equal(t, "/data/feb.csv", stmts[1].FilePath)
	assert.Equal(t, "12", stmts[1].RatePercent.String())

	assert.Equal(t, models.StandardChartered, stmts[2].Institution)
	assert.Equal(t, "~/mar.xlsx", stmts[2].FilePath)
	assert.True(t, stmts[2].RatePercent.IsZero())
}

func TestResolve_FallbackRate(t *testing.T) {
	p, err := Load(writePlan(t, "statements:\n  - file: a.csv\n    institution: c\n"))
	require.NoError(t, err)

	stmts, err := p.Resolve(8)
	require.NoError(t, err)
	assert.Equal(t, "8", stmts[0].RatePercent.String())
}

func TestResolve_Errors(t *testing.T) {
	p, err := Load(writePlan(t, "statements:\n  - file: a.csv\n"))
	require.NoError(t, err)
	_, err = p.Resolve(8)
	assert.ErrorContains(t, err, "unknown institution")

	p, err = Load(writePlan(t, "statements:\n  - file: a.csv\n    institution: axis\n    rate: 101\n"))
	require.NoError(t, err)
	_, err = p.Resolve(8)
	assert.ErrorContains(t, err, "out of range")

	p, err = Load(writePlan(t, "statements:\n  - institution: axis\n"))
	require.NoError(t, err)
	_, err = p.Resolve(8)
	assert.ErrorContains(t, err, "file is required")
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read plan file")

	_, err = Load(writePlan(t, "statements: [\n"))
	assert.ErrorContains(t, err, "failed to parse yaml")

	_, err = Load(writePlan(t, "defaults:\n  rate: 8\n"))
	assert.ErrorContains(t, err, "no statements")
}

func TestPrint(t *testing.T) {
	p, err := Load(writePlan(t, "defaults:\n  institution: axis\nstatements:\n  - file: a.csv\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	p.Print(&buf)
	assert.Equal(t, "Default institution: axis\n[1] file=a.csv institution=\n", buf.String())
}
