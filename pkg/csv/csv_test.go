package csv

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yurifrl/overdraft/pkg/models"
)

func TestCreate(t *testing.T) {
	d1, _ := time.Parse(DateFormat, "2024-01-01")
	d2, _ := time.Parse(DateFormat, "2024-01-05")
	interest := decimal.RequireFromString("0.4383561643835616")

	r := &models.Report{
		DateColumn:    "tran_date",
		BalanceColumn: "balanceinr",
		Rows: []models.ReportRow{
			{Date: d1, Balance: decimal.RequireFromString("-500.00"), DailyInterest: interest},
			{Date: d2, Balance: decimal.NewFromInt(200), DailyInterest: decimal.Zero},
		},
		Total: models.TotalRow{Label: models.TotalLabel, DailyInterest: interest},
	}

	out, err := Create(r)
	require.NoError(t, err)
	assert.Equal(t, "tran_date,balanceinr,daily_interest\n"+
		"2024-01-01,-500,0.4383561643835616\n"+
		"2024-01-05,200,0\n"+
		"TOTAL,,0.4383561643835616\n", string(out))
}

func TestCreate_Empty(t *testing.T) {
	out, err := Create(&models.Report{
		DateColumn:    "value_date",
		BalanceColumn: "running_balance",
		Total:         models.TotalRow{Label: models.TotalLabel},
	})
	require.NoError(t, err)
	assert.Equal(t, "value_date,running_balance,daily_interest\nTOTAL,,0\n", string(out))
}

func TestCreate_Deterministic(t *testing.T) {
	r := &models.Report{DateColumn: "date", BalanceColumn: "balance", Total: models.TotalRow{Label: models.TotalLabel}}
	a, err := Create(r)
	require.NoError(t, err)
	b, err := Create(r)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
