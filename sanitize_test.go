package paginate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Acme Ltd", "Acme_Ltd"},
		{`a<b>c:d"e/f\g|h?i*j`, "abcdefghij"},
		{"", "default"},
		{`<>:"/\|?*`, "default"},
		{"  ", "__"},
		{"já/rt", "járt"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeFilename(tt.in), "input %q", tt.in)
	}
}

func TestSanitizeFilenameTruncates(t *testing.T) {
	long := strings.Repeat("x", 80)
	got := SanitizeFilename(long)
	assert.Len(t, got, 50)
}

func TestSanitizeFilenameTotal(t *testing.T) {
	inputs := []string{
		"normal", "with space", "tab\tkept", strings.Repeat("é", 60), "***", "a*b",
	}
	for _, in := range inputs {
		got := SanitizeFilename(in)
		assert.NotEmpty(t, got)
		assert.LessOrEqual(t, len([]rune(got)), 50)
		assert.NotContains(t, got, " ")
		for _, c := range `<>:"/\|?*` {
			assert.NotContains(t, got, string(c), "input %q", in)
		}
	}
}
