// Copyright 2025, Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package paginate turns a spreadsheet with manually placed horizontal
// page-break markers into one tabular PDF document per logical page.
//
// The engine only sees two small interfaces: a Source (the ingested
// spreadsheet, read once into a Snapshot) and a Surface (the drawing
// side, measured and written through, never inspected).
package paginate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrNoBreaks is returned when the sheet carries no break markers.
	// It means "nothing to paginate", not a processing failure.
	ErrNoBreaks = errors.New("no page break markers")

	// ErrNothingToPackage is returned by BuildArchive for an empty file list.
	ErrNothingToPackage = errors.New("nothing to package")

	// ErrMalformedRange is returned when a sheet dimension such as
	// "A1:S128" cannot be decomposed into column and row parts.
	ErrMalformedRange = errors.New("malformed dimension range")
)

// Font is the header styling the ingestion side exposes per cell.
type Font struct {
	Name string
	Bold bool
}

// ColumnSpec is one laid-out column of a logical page: its header text,
// the font the header cell carried, and the computed width.
type ColumnSpec struct {
	Header string
	Font   Font
	Width  float64
}

// Source is a read-only view of an ingested spreadsheet. Row 1 is the
// header row; rows and columns are 1-based, spreadsheet style.
type Source interface {
	// Dimension returns the sheet bounds as "topLeft:bottomRight" (e.g. "A1:S128").
	Dimension() (string, error)
	// BreakRows returns the horizontal page-break row indices.
	BreakRows() []int
	// CellValue returns nil, float64 or string.
	CellValue(row, col int) (any, error)
	CellFont(row, col int) (Font, error)
}

// Range is one logical page: a contiguous block of data rows between two
// break markers, all spanning the full sheet width.
type Range struct {
	ID               int
	StartRow, EndRow int
	StartCol, EndCol int
}

// Ref returns the range in spreadsheet notation, e.g. "A2:D5".
func (r Range) Ref() string {
	return fmt.Sprintf("%s%d:%s%d", colName(r.StartCol), r.StartRow, colName(r.EndCol), r.EndRow)
}

// RGB is a fill color.
type RGB struct {
	R, G, B int
}

// Config enumerates the formatting and layout policy of the engine.
// Column matching is by exact header text.
type Config struct {
	// CurrencyColumns are prefixed with CurrencySymbol and forced to two decimals.
	CurrencyColumns []string
	// IntegerColumns are coerced to integer display (reference numbers).
	IntegerColumns []string
	// WideColumns get WideMinWidth as a floor instead of the ColWidthCap.
	WideColumns []string
	// NarrowHeaderColumns get a smaller header font so long names fit.
	NarrowHeaderColumns []string
	// NarrowCellColumns get a smaller content font.
	NarrowCellColumns []string
	// BrandColumns are tried in order for the first half of the file name.
	BrandColumns []string
	// CCNColumn provides the second half of the file name.
	CCNColumn string

	CurrencySymbol string

	// MaxTableWidth is the total width budget; widths are rescaled
	// proportionally when the unconstrained sum exceeds it.
	MaxTableWidth float64
	ColWidthCap   float64
	WideMinWidth  float64
	// MinColWidth is the floor used when measurement fails.
	MinColWidth float64
	ColPadding  float64
	RowHeight   float64
	FontSize    float64

	HeaderFill    RGB
	AlternateFill RGB
}

// DefaultConfig carries the canonical policy: the union of the column
// sets the report maintainers actually used.
func DefaultConfig() Config {
	return Config{
		CurrencyColumns:     []string{"RetroRate", "Rate", "Volume", "Retro_Value", "Retro Rate"},
		IntegerColumns:      []string{"Contract", "Contract_Reference_Number"},
		WideColumns:         []string{"Details"},
		NarrowHeaderColumns: []string{"Contract_Reference_Number", "BrandSupplierDescription"},
		NarrowCellColumns:   []string{"Item Name"},
		BrandColumns:        []string{"BrandSupplierDescription", "Supplier"},
		CCNColumn:           "CCN",

		CurrencySymbol: "£",

		MaxTableWidth: 500,
		ColWidthCap:   30,
		WideMinWidth:  50,
		MinColWidth:   10,
		ColPadding:    6,
		RowHeight:     4,
		FontSize:      8,

		HeaderFill:    RGB{200, 200, 200},
		AlternateFill: RGB{230, 230, 230},
	}
}

func (c Config) isCurrency(header string) bool     { return member(c.CurrencyColumns, header) }
func (c Config) isInteger(header string) bool      { return member(c.IntegerColumns, header) }
func (c Config) isWide(header string) bool         { return member(c.WideColumns, header) }
func (c Config) isNarrowHeader(header string) bool { return member(c.NarrowHeaderColumns, header) }
func (c Config) isNarrowCell(header string) bool   { return member(c.NarrowCellColumns, header) }

func member(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}

const defaultFontName = "Arial"

// ParseValue converts a raw cell string to the engine's value model:
// nil for empty, float64 for anything numeric, string otherwise.
func ParseValue(s string) any {
	if s == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return f
	}
	return s
}

// colName converts a 1-based column number to spreadsheet letters (1 → "A").
func colName(n int) string {
	var b []byte
	for n > 0 {
		n--
		b = append([]byte{byte('A' + n%26)}, b...)
		n /= 26
	}
	return string(b)
}

// splitCellRef decomposes "S128" into column 19, row 128.
func splitCellRef(ref string) (col, row int, err error) {
	i := 0
	for i < len(ref) && 'A' <= ref[i] && ref[i] <= 'Z' {
		col = col*26 + int(ref[i]-'A') + 1
		i++
	}
	if i == 0 || i == len(ref) {
		return 0, 0, fmt.Errorf("%q: %w", ref, ErrMalformedRange)
	}
	if row, err = strconv.Atoi(ref[i:]); err != nil || row < 1 {
		return 0, 0, fmt.Errorf("%q: %w", ref, ErrMalformedRange)
	}
	return col, row, nil
}
