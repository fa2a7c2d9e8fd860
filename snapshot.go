// Copyright 2025, Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package paginate

import (
	"fmt"
	"sort"
	"strings"
)

// Snapshot is an immutable copy of a Source: everything layout needs,
// read once before any rendering starts, so the engine never touches
// the ingestion library's live objects.
type Snapshot struct {
	Headers     []string
	HeaderFonts []Font
	Breaks      []int

	FirstRow, LastRow int
	FirstCol, LastCol int

	cells [][]any
}

// NewSnapshot reads src in full. The dimension must decompose into
// column letters and row numbers, otherwise ErrMalformedRange is
// returned: without it neither column loops nor row loops can run.
func NewSnapshot(src Source) (*Snapshot, error) {
	dim, err := src.Dimension()
	if err != nil {
		return nil, fmt.Errorf("dimension: %w", err)
	}
	first, last, ok := strings.Cut(dim, ":")
	if !ok {
		return nil, fmt.Errorf("%q: %w", dim, ErrMalformedRange)
	}
	snap := Snapshot{}
	if snap.FirstCol, snap.FirstRow, err = splitCellRef(first); err != nil {
		return nil, err
	}
	if snap.LastCol, snap.LastRow, err = splitCellRef(last); err != nil {
		return nil, err
	}
	if snap.LastRow < snap.FirstRow || snap.LastCol < snap.FirstCol {
		return nil, fmt.Errorf("%q: %w", dim, ErrMalformedRange)
	}

	snap.Breaks = append([]int(nil), src.BreakRows()...)
	sort.Ints(snap.Breaks)

	width := snap.LastCol - snap.FirstCol + 1
	snap.cells = make([][]any, snap.LastRow-snap.FirstRow+1)
	for r := range snap.cells {
		row := make([]any, width)
		for c := range row {
			if row[c], err = src.CellValue(snap.FirstRow+r, snap.FirstCol+c); err != nil {
				return nil, fmt.Errorf("cell %s%d: %w", colName(snap.FirstCol+c), snap.FirstRow+r, err)
			}
		}
		snap.cells[r] = row
	}

	snap.Headers = make([]string, width)
	snap.HeaderFonts = make([]Font, width)
	for c := 0; c < width; c++ {
		if v := snap.cells[0][c]; v != nil {
			snap.Headers[c] = fmt.Sprint(v)
		}
		f, err := src.CellFont(snap.FirstRow, snap.FirstCol+c)
		if err != nil {
			f = Font{Name: defaultFontName}
		}
		if f.Name == "" {
			f.Name = defaultFontName
		}
		snap.HeaderFonts[c] = f
	}
	return &snap, nil
}

// Cell returns the value at the 1-based sheet coordinates, nil outside
// the snapshot bounds.
func (s *Snapshot) Cell(row, col int) any {
	if row < s.FirstRow || row > s.LastRow || col < s.FirstCol || col > s.LastCol {
		return nil
	}
	return s.cells[row-s.FirstRow][col-s.FirstCol]
}

// DataRows returns the rows of the given logical page, aligned to the
// snapshot's column span. Rows outside the sheet are omitted.
func (s *Snapshot) DataRows(pg Range) [][]any {
	var rows [][]any
	for r := pg.StartRow; r <= pg.EndRow && r <= s.LastRow; r++ {
		if r < s.FirstRow {
			continue
		}
		rows = append(rows, s.cells[r-s.FirstRow])
	}
	return rows
}

// HeaderIndex returns the 0-based position of the first of the given
// header names, or -1 when none is present.
func (s *Snapshot) HeaderIndex(names ...string) int {
	for _, name := range names {
		for i, h := range s.Headers {
			if h == name {
				return i
			}
		}
	}
	return -1
}
