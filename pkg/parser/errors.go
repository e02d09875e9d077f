package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yurifrl/overdraft/pkg/models"
)

var (
	// ErrEmptySheet means no usable data rows were found. Callers treat it
	// as an empty ledger rather than a failure.
	ErrEmptySheet = errors.New("no data rows found in sheet")

	ErrUnknownInstitution = errors.New("unknown institution")
)

// SchemaError reports a required column missing after normalization, or a
// sheet without a recognizable header row when Column is empty.
type SchemaError struct {
	Institution models.Institution
	Column      string
	Found       []string
	Marker      int
}

func (e *SchemaError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("%s: no header row found in column %d", e.Institution, e.Marker+1)
	}
	return fmt.Sprintf("%s: column %q not found after cleaning (found: %s)",
		e.Institution, e.Column, strings.Join(e.Found, ", "))
}

// DateFormatError reports a date cell that does not match the layout.
type DateFormatError struct {
	Line   int
	Column string
	Value  string
	Layout string
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("row %d: %s %q does not match date format %s", e.Line, e.Column, e.Value, e.Layout)
}

// CoercionError reports a balance cell that is not a number.
type CoercionError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("row %d: %s %q is not a number", e.Line, e.Column, e.Value)
}

func (e *CoercionError) Unwrap() error { return e.Err }
