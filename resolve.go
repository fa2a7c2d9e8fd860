// Copyright 2025, Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package paginate

// ResolvePages turns the snapshot's break markers into the ordered list
// of logical pages. Boundaries are the marker rows with zero prepended;
// each page runs from the row after one boundary to the next boundary,
// the last page to the sheet's last row. The first page starts below
// the header row.
//
// A sheet without break markers resolves to ErrNoBreaks, which callers
// must treat as "nothing to paginate" rather than a failure.
func ResolvePages(snap *Snapshot) ([]Range, error) {
	if len(snap.Breaks) == 0 {
		return nil, ErrNoBreaks
	}
	bounds := append([]int{0}, snap.Breaks...)
	pages := make([]Range, 0, len(bounds))
	for i, b := range bounds {
		start := b + 1
		if i == 0 {
			start = snap.FirstRow + 1
		}
		end := snap.LastRow
		if i+1 < len(bounds) {
			end = bounds[i+1]
		}
		pages = append(pages, Range{
			ID:       i + 1,
			StartRow: start, EndRow: end,
			StartCol: snap.FirstCol, EndCol: snap.LastCol,
		})
	}
	return pages, nil
}
