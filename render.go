// Copyright 2025, Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package paginate

import (
	"fmt"
	"log/slog"
	"path/filepath"
)

// Renderer lays the rows of logical pages onto fixed-size physical
// pages. One Surface is created per document; all per-page state
// (column widths, cursor, physical-page count) lives inside Render.
type Renderer struct {
	Config     Config
	Logger     *slog.Logger
	NewSurface func() Surface
}

// Document is one finished output file.
type Document struct {
	Path          string
	PhysicalPages int
	Range         Range
}

// Render writes the document for one logical page into dir.
//
// The file is named from the first data row's brand and CCN values when
// both columns exist; a page with zero data rows is logged and falls
// back to the id-based name. The header block is emitted once per
// document, not repeated when rows overflow onto further physical
// pages.
func (r *Renderer) Render(snap *Snapshot, pg Range, dir string) (Document, error) {
	cfg, log := r.Config, r.Logger
	if log == nil {
		log = slog.Default()
	}

	rows := snap.DataRows(pg)
	name := fmt.Sprintf("Page%d.pdf", pg.ID)
	if len(rows) == 0 {
		log.Warn("page has no data rows", "page", pg.ID, "range", pg.Ref())
	} else if bi, ci := snap.HeaderIndex(cfg.BrandColumns...), snap.HeaderIndex(cfg.CCNColumn); bi >= 0 && ci >= 0 {
		brand := FormatCell(rows[0][bi], "", cfg)
		ccn := FormatCell(rows[0][ci], "", cfg)
		name = SanitizeFilename(brand) + "_" + SanitizeFilename(ccn) + ".pdf"
	}

	sf := r.NewSurface()
	sf.AddPage()
	measure := safeMeasure(sf, log)

	widths := ColumnWidths(snap.Headers, measure, cfg)
	specs := make([]ColumnSpec, len(snap.Headers))
	for i, h := range snap.Headers {
		specs[i] = ColumnSpec{Header: h, Font: snap.HeaderFonts[i], Width: widths[i]}
	}

	left, top, _, bottom := sf.Margins()
	_, pageH := sf.PageSize()
	printable := pageH - top - bottom

	// Header block, fixed double height, filled, framed.
	x := left
	sf.SetFillColor(cfg.HeaderFill.R, cfg.HeaderFill.G, cfg.HeaderFill.B)
	for _, spec := range specs {
		size := cfg.FontSize
		if cfg.isNarrowHeader(spec.Header) {
			size = cfg.FontSize - 2
		}
		sf.SetFont(spec.Font.Name, "B", size)
		sf.Cell(x, top, spec.Width, 2*cfg.RowHeight, spec.Header, true, true)
		x += spec.Width
	}
	cursorY := top + 2*cfg.RowHeight

	cellFont := Font{Name: defaultFontName}
	for rowIdx, row := range rows {
		// Format and wrap every cell first; the tallest cell sets the
		// row height.
		wrapped := make([][]string, len(specs))
		rowH := cfg.RowHeight
		for i, spec := range specs {
			var v any
			if i < len(row) {
				v = row[i]
			}
			size := cfg.FontSize - 1
			if cfg.isNarrowCell(spec.Header) {
				size = cfg.FontSize - 2
			}
			content := FormatCell(v, spec.Header, cfg)
			wrapped[i] = WrapText(content, spec.Width, func(s string) float64 {
				return measure(s, cellFont, size)
			})
			if h := cfg.RowHeight * float64(len(wrapped[i])); h > rowH {
				rowH = h
			}
		}

		if cursorY+rowH > printable {
			sf.AddPage()
			cursorY = top
		}

		if rowIdx%2 == 0 {
			sf.SetFillColor(255, 255, 255)
		} else {
			sf.SetFillColor(cfg.AlternateFill.R, cfg.AlternateFill.G, cfg.AlternateFill.B)
		}
		x = left
		for i, spec := range specs {
			size := cfg.FontSize - 1
			if cfg.isNarrowCell(spec.Header) {
				size = cfg.FontSize - 2
			}
			sf.SetFont(cellFont.Name, "", size)
			sf.Cell(x, cursorY, spec.Width, rowH, "", false, true)
			for j, line := range wrapped[i] {
				sf.Cell(x, cursorY+float64(j)*cfg.RowHeight, spec.Width, cfg.RowHeight, line, false, false)
			}
			x += spec.Width
		}
		cursorY += rowH
	}

	path := filepath.Join(dir, name)
	if err := sf.Output(path); err != nil {
		return Document{}, fmt.Errorf("write %q: %w", path, err)
	}
	doc := Document{Path: path, PhysicalPages: sf.PageCount(), Range: pg}
	log.Info("generated", "file", name, "pages", doc.PhysicalPages, "range", pg.Ref())
	return doc, nil
}

// safeMeasure wraps the surface's measurer so a failing measurement
// degrades to a per-rune estimate instead of a zero width.
func safeMeasure(sf Surface, log *slog.Logger) MeasureFunc {
	return func(text string, font Font, size float64) float64 {
		style := ""
		if font.Bold {
			style = "B"
		}
		sf.SetFont(font.Name, style, size)
		w := sf.StringWidth(text)
		if w <= 0 && text != "" {
			w = fallbackWidth(text, size)
			log.Warn("measurement failed, using estimate", "text", text, "width", w)
		}
		return w
	}
}

// fallbackWidth estimates in millimeters: half an em per glyph.
func fallbackWidth(text string, size float64) float64 {
	const mmPerPoint = 25.4 / 72
	return 0.5 * size * mmPerPoint * float64(len([]rune(text)))
}
