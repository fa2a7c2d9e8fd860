// Copyright 2025, Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package paginate

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatCell renders a raw cell value for display. The order of the
// rules matters: integer coercion runs before rounding and currency
// formatting, so reference-number columns are never mistaken for money.
//
//  1. nil / NaN → empty string
//  2. integer columns → integer display (truncated), empty when null
//  3. numbers → rounded to two decimals
//  4. currency columns → CurrencySymbol plus forced two decimals
//  5. otherwise the plain string form
func FormatCell(value any, header string, cfg Config) string {
	switch v := value.(type) {
	case nil:
		return ""
	case float64:
		if math.IsNaN(v) {
			return ""
		}
		if cfg.isInteger(header) {
			return strconv.FormatInt(int64(v), 10)
		}
		if cfg.isCurrency(header) {
			return cfg.CurrencySymbol + roundDecimal(v, true)
		}
		return roundDecimal(v, false)
	case string:
		if cfg.isInteger(header) {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return strconv.FormatInt(int64(f), 10)
			}
		}
		return v
	case int:
		return FormatCell(float64(v), header, cfg)
	case int64:
		return FormatCell(float64(v), header, cfg)
	default:
		return fmt.Sprint(v)
	}
}

// roundDecimal renders v rounded half away from zero at two decimals.
// It rounds on the shortest decimal representation, so a cell entered
// as 12.345 comes out as "12.35" even though its float64 neighbour
// sits just below. With force the fraction is padded to two digits.
func roundDecimal(v float64, force bool) string {
	if math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	neg := math.Signbit(v)
	whole, frac, _ := strings.Cut(strconv.FormatFloat(math.Abs(v), 'f', -1, 64), ".")
	if len(frac) > 2 {
		carry := frac[2] >= '5'
		frac = frac[:2]
		if carry {
			n, _ := strconv.ParseInt(whole+frac, 10, 64)
			s := strconv.FormatInt(n+1, 10)
			for len(s) < 3 {
				s = "0" + s
			}
			whole, frac = s[:len(s)-2], s[len(s)-2:]
		}
	}
	if force {
		for len(frac) < 2 {
			frac += "0"
		}
	} else {
		frac = strings.TrimRight(frac, "0")
	}
	s := whole
	if frac != "" {
		s += "." + frac
	}
	if neg && s != "0" && s != "0.00" {
		s = "-" + s
	}
	return s
}
