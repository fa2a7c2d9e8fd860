// Copyright 2025, Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package xlsx reads .xlsx workbooks into a paginate.Source, using
// excelize for cells and styles and the worksheet XML itself for the
// row-break markers excelize does not expose.
package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/UNO-SOFT/paginate"
)

var _ = (paginate.Source)((*Source)(nil))

// Source is the first worksheet of an .xlsx file.
type Source struct {
	xl     *excelize.File
	sheet  string
	breaks []int
}

// Open reads fn's first worksheet and its horizontal page breaks.
func Open(fn string) (*Source, error) {
	xl, err := excelize.OpenFile(fn)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", fn, err)
	}
	sheets := xl.GetSheetList()
	if len(sheets) == 0 {
		xl.Close()
		return nil, fmt.Errorf("%q: no worksheets", fn)
	}
	breaks, err := readRowBreaks(fn, 0)
	if err != nil {
		xl.Close()
		return nil, fmt.Errorf("row breaks of %q: %w", fn, err)
	}
	return &Source{xl: xl, sheet: sheets[0], breaks: breaks}, nil
}

func (s *Source) Close() error {
	if s == nil || s.xl == nil {
		return nil
	}
	xl := s.xl
	s.xl = nil
	return xl.Close()
}

// Sheet returns the worksheet name being read.
func (s *Source) Sheet() string { return s.sheet }

func (s *Source) Dimension() (string, error) {
	return s.xl.GetSheetDimension(s.sheet)
}

func (s *Source) BreakRows() []int { return s.breaks }

func (s *Source) CellValue(row, col int) (any, error) {
	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return nil, fmt.Errorf("%d/%d: %w", col, row, err)
	}
	v, err := s.xl.GetCellValue(s.sheet, axis)
	if err != nil {
		return nil, fmt.Errorf("%s[%s]: %w", s.sheet, axis, err)
	}
	return paginate.ParseValue(v), nil
}

func (s *Source) CellFont(row, col int) (paginate.Font, error) {
	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return paginate.Font{}, fmt.Errorf("%d/%d: %w", col, row, err)
	}
	styleID, err := s.xl.GetCellStyle(s.sheet, axis)
	if err != nil {
		return paginate.Font{}, fmt.Errorf("%s[%s]: %w", s.sheet, axis, err)
	}
	style, err := s.xl.GetStyle(styleID)
	if err != nil || style == nil || style.Font == nil {
		return paginate.Font{}, err
	}
	return paginate.Font{Name: style.Font.Family, Bold: style.Font.Bold}, nil
}
