// Copyright 2025, Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package paginate

// Surface is the drawing side of the engine: one document, written
// cursor-free through absolute coordinates. Implementations keep their
// own current font and fill color, set through SetFont/SetFillColor.
type Surface interface {
	// AddPage starts a new physical page.
	AddPage()
	// PageCount reports the physical pages emitted so far.
	PageCount() int

	SetFont(family, style string, size float64)
	// StringWidth measures text under the current font, in page units.
	StringWidth(text string) float64
	SetFillColor(r, g, b int)

	// Cell draws horizontally centered text in the given box. With fill
	// the box is painted in the current fill color first; with border a
	// frame is drawn around it.
	Cell(x, y, w, h float64, text string, border, fill bool)

	Margins() (left, top, right, bottom float64)
	PageSize() (width, height float64)

	// Output writes the document to path and closes it.
	Output(path string) error
}

// MeasureFunc measures text width for a given font and size, in the
// surface's page units.
type MeasureFunc func(text string, font Font, size float64) float64
