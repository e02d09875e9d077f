package parser

import (
	"github.com/yurifrl/overdraft/pkg/models"
	"github.com/yurifrl/overdraft/pkg/sheet"
)

// StandardCharteredAdapter reads Standard Chartered statements. Balances are
// formatted with thousands separators.
type StandardCharteredAdapter struct{}

func (StandardCharteredAdapter) Institution() models.Institution { return models.StandardChartered }
func (StandardCharteredAdapter) Name() string                    { return "Standard Chartered" }

func (a StandardCharteredAdapter) LocateHeader(g sheet.Grid) (int, error) {
	return locateByMarker(a.Institution(), g, defaultMarker)
}

func (StandardCharteredAdapter) DateColumn() string    { return "date" }
func (StandardCharteredAdapter) DateLayout() string    { return "2/1/2006" }
func (StandardCharteredAdapter) BalanceColumn() string { return "balance" }
func (StandardCharteredAdapter) NewestFirst() bool     { return false }
