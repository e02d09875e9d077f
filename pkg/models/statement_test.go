package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatementFile(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	s := &Statement{FilePath: "~/statements/jan.xls"}
	got, err := s.File()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "statements", "jan.xls"), got)

	s = &Statement{FilePath: "/tmp/jan.xls"}
	got, err = s.File()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/jan.xls", got)
}

func TestStatementRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jan.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n"), 0o644))

	data, err := (&Statement{FilePath: path}).Read()
	require.NoError(t, err)
	assert.Equal(t, "a,b\n", string(data))

	_, err = (&Statement{FilePath: path + ".missing"}).Read()
	assert.ErrorContains(t, err, "failed to read statement file")
}

func TestStatementAccrual(t *testing.T) {
	cfg, err := (&Statement{RatePercent: decimal.RequireFromString("12.5")}).Accrual()
	require.NoError(t, err)
	assert.Equal(t, "0.125", cfg.AnnualRate.String())

	_, err = (&Statement{RatePercent: decimal.NewFromInt(-3)}).Accrual()
	assert.Error(t, err)
}
