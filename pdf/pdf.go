// Copyright 2025, Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package pdf implements paginate.Surface on top of gofpdf: A4 pages
// in millimeters, core fonts only, cp1252 text translated from UTF-8.
package pdf

import (
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/UNO-SOFT/paginate"
)

var _ = (paginate.Surface)((*Surface)(nil))

type Surface struct {
	p  *gofpdf.Fpdf
	tr func(string) string
}

// New returns an empty A4 document; call AddPage before drawing.
func New(landscape bool) *Surface {
	orientation := "P"
	if landscape {
		orientation = "L"
	}
	p := gofpdf.New(orientation, "mm", "A4", "")
	return &Surface{p: p, tr: p.UnicodeTranslatorFromDescriptor("")}
}

func (s *Surface) AddPage()       { s.p.AddPage() }
func (s *Surface) PageCount() int { return s.p.PageCount() }

func (s *Surface) SetFont(family, style string, size float64) {
	s.p.SetFont(coreFont(family), style, size)
}

func (s *Surface) StringWidth(text string) float64 {
	return s.p.GetStringWidth(s.tr(text))
}

func (s *Surface) SetFillColor(r, g, b int) { s.p.SetFillColor(r, g, b) }

func (s *Surface) Cell(x, y, w, h float64, text string, border, fill bool) {
	s.p.SetXY(x, y)
	borderStr := ""
	if border {
		borderStr = "1"
	}
	s.p.CellFormat(w, h, s.tr(text), borderStr, 0, "C", fill, 0, "")
}

func (s *Surface) Margins() (left, top, right, bottom float64) {
	return s.p.GetMargins()
}

func (s *Surface) PageSize() (width, height float64) {
	return s.p.GetPageSize()
}

func (s *Surface) Output(path string) error {
	return s.p.OutputFileAndClose(path)
}

// coreFont maps arbitrary sheet font names onto the standard core
// fonts gofpdf ships with; anything unknown falls back to Arial.
func coreFont(family string) string {
	switch strings.ToLower(family) {
	case "arial", "helvetica", "times", "courier", "symbol", "zapfdingbats":
		return family
	}
	return "Arial"
}
