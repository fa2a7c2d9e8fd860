package paginate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// runeWidth measures one unit per rune, so widths read as character counts.
func runeWidth(s string) float64 { return float64(len([]rune(s))) }

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width float64
		want  []string
	}{
		{"empty yields one empty line", "", 10, []string{""}},
		{"fits on one line", "ab cd", 10, []string{"ab cd"}},
		{"wraps at word boundary", "aaa bbb ccc", 8, []string{"aaa bbb", "ccc"}},
		{"one word per line", "aaa bbb ccc", 4, []string{"aaa", "bbb", "ccc"}},
		{"oversize word alone unsplit", "abcdefghij x", 5, []string{"abcdefghij", "x"}},
		{"oversize word only", "abcdefghij", 5, []string{"abcdefghij"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapText(tt.text, tt.width, runeWidth)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, got)
		})
	}
}

// Every line fits in the width, except single words wider than it.
func TestWrapTextLinesFit(t *testing.T) {
	text := "the quick brown fox jumps over the extraordinarily lazy dog"
	for _, width := range []float64{5, 8, 12, 20, 100} {
		for _, line := range WrapText(text, width, runeWidth) {
			if strings.Contains(line, " ") {
				assert.Less(t, runeWidth(line), width, "line %q at width %v", line, width)
			}
		}
	}
}
