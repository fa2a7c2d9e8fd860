// Copyright 2025, Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package paginate

import "strings"

// WrapText greedily wraps text at single-space word boundaries so that
// every line measures below width. A single word wider than width is
// placed alone on its own line, unsplit. The result always has at
// least one line — an empty input yields one empty line — so row
// heights derived from it never collapse to zero.
func WrapText(text string, width float64, measure func(string) float64) []string {
	words := strings.Split(text, " ")
	lines := make([]string, 0, 1)
	var line string
	for _, word := range words {
		if line == "" {
			line = word
			continue
		}
		if cand := line + " " + word; measure(cand) < width {
			line = cand
			continue
		}
		lines = append(lines, line)
		line = word
	}
	return append(lines, line)
}
