package parser

import (
	"github.com/yurifrl/overdraft/pkg/models"
	"github.com/yurifrl/overdraft/pkg/sheet"
)

// AxisAdapter reads Axis Bank account statements. The header sits below a
// block of account details; dates are dd-mm-yyyy and balances are in INR.
type AxisAdapter struct{}

func (AxisAdapter) Institution() models.Institution { return models.Axis }
func (AxisAdapter) Name() string                    { return "Axis Bank" }

func (a AxisAdapter) LocateHeader(g sheet.Grid) (int, error) {
	return locateByMarker(a.Institution(), g, defaultMarker)
}

func (AxisAdapter) DateColumn() string    { return "tran_date" }
func (AxisAdapter) DateLayout() string    { return "2-1-2006" }
func (AxisAdapter) BalanceColumn() string { return "balanceinr" }
func (AxisAdapter) NewestFirst() bool     { return false }
