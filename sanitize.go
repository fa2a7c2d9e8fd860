// Copyright 2025, Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package paginate

import "strings"

const maxFilenameLen = 50

// SanitizeFilename makes name safe for filesystem use: characters
// illegal in file names are stripped, spaces become underscores, the
// result is truncated to 50 runes, and an empty result is replaced
// with "default". Pure and total, never fails.
func SanitizeFilename(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case '<', '>', ':', '"', '/', '\\', '|', '?', '*':
			return -1
		case ' ':
			return '_'
		}
		return r
	}, name)
	if runes := []rune(name); len(runes) > maxFilenameLen {
		name = string(runes[:maxFilenameLen])
	}
	if name == "" {
		return "default"
	}
	return name
}
