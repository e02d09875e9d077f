// Package sheet decodes spreadsheet exports into a grid of typed cells.
package sheet

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Kind is the type of value a cell holds.
type Kind int

const (
	Blank Kind = iota
	Text
	Number
	Date
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Number:
		return "number"
	case Date:
		return "date"
	default:
		return "blank"
	}
}

// Cell is a single spreadsheet value. The zero value is a blank cell.
type Cell struct {
	kind Kind
	text string // display text; the raw literal for numbers
	num  string
	date time.Time
}

func TextCell(s string) Cell {
	if isWhitespace(s) {
		return Cell{}
	}
	return Cell{kind: Text, text: s}
}

// NumberCell holds a numeric literal exactly as stored in the file.
func NumberCell(raw, display string) Cell {
	if display == "" {
		display = raw
	}
	return Cell{kind: Number, text: display, num: raw}
}

func DateCell(t time.Time, display string) Cell {
	return Cell{kind: Date, text: display, date: t}
}

func (c Cell) Kind() Kind { return c.kind }

func (c Cell) String() string {
	if c.kind == Date && c.text == "" {
		return c.date.Format("2006-01-02")
	}
	return c.text
}

var whitespaceOnly = regexp.MustCompile(`^\s*$`)

func isWhitespace(s string) bool {
	return whitespaceOnly.MatchString(s)
}

// IsBlank reports whether the cell is empty or holds only whitespace.
func (c Cell) IsBlank() bool {
	return c.kind == Blank || (c.kind == Text && isWhitespace(c.text))
}

// amountNoise matches currency markers and grouping characters found in
// exported balance columns.
var amountNoise = regexp.MustCompile(`(?i)(inr|rs\.?|₹|\$|,|\s)`)

// Decimal coerces the cell to a decimal number. Thousands separators,
// currency markers and accounting parentheses are accepted.
func (c Cell) Decimal() (decimal.Decimal, error) {
	switch c.kind {
	case Number:
		return decimal.NewFromString(c.num)
	case Text:
		s := amountNoise.ReplaceAllString(strings.TrimSpace(c.text), "")
		negative := false
		if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
			negative = true
			s = s[1 : len(s)-1]
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero, fmt.Errorf("not a number: %q", c.text)
		}
		if negative {
			d = d.Neg()
		}
		return d, nil
	default:
		return decimal.Zero, fmt.Errorf("cannot read %s cell as a number", c.kind)
	}
}

// Time coerces the cell to a date. Text must match layout exactly; date
// cells and Excel serial numbers carry no day/month ambiguity and are
// converted directly.
func (c Cell) Time(layout string) (time.Time, error) {
	switch c.kind {
	case Date:
		return c.date, nil
	case Text:
		return time.Parse(layout, strings.TrimSpace(c.text))
	case Number:
		serial, err := decimal.NewFromString(c.num)
		if err != nil {
			return time.Time{}, err
		}
		return excelize.ExcelDateToTime(serial.InexactFloat64(), false)
	default:
		return time.Time{}, fmt.Errorf("cannot read %s cell as a date", c.kind)
	}
}
