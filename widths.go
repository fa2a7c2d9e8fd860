// Copyright 2025, Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package paginate

// ColumnWidths computes one width per column from the header texts
// alone (header-text sizing: the same grid on every logical page, so
// sibling documents line up). Each width is the measured bold header
// plus padding; wide columns are floored at WideMinWidth, the rest
// capped at ColWidthCap. If the sum exceeds MaxTableWidth all widths
// are scaled by the same ratio, preserving proportions.
//
// A non-positive measurement (a failing measurer) falls back to
// MinColWidth so a column can never collapse to zero.
func ColumnWidths(headers []string, measure MeasureFunc, cfg Config) []float64 {
	widths := make([]float64, len(headers))
	var total float64
	for i, h := range headers {
		w := measure(h, Font{Name: defaultFontName, Bold: true}, cfg.FontSize)
		if w <= 0 {
			w = cfg.MinColWidth
		}
		w += cfg.ColPadding
		if cfg.isWide(h) {
			if w < cfg.WideMinWidth {
				w = cfg.WideMinWidth
			}
		} else if w > cfg.ColWidthCap {
			w = cfg.ColWidthCap
		}
		widths[i] = w
		total += w
	}
	if total > cfg.MaxTableWidth {
		scale := cfg.MaxTableWidth / total
		for i := range widths {
			widths[i] *= scale
		}
	}
	return widths
}
