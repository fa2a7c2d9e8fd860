package paginate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCell(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name   string
		value  any
		header string
		want   string
	}{
		{"nil", nil, "Details", ""},
		{"nan", math.NaN(), "Rate", ""},
		{"currency rounds then prefixes", 12.345, "Rate", "£12.35"},
		{"currency pads", 7.5, "Volume", "£7.50"},
		{"currency whole", 100.0, "RetroRate", "£100.00"},
		{"currency negative", -2.345, "Retro_Value", "£-2.35"},
		{"integer column truncates", 4711.9, "Contract", "4711"},
		{"integer column beats currency sets", 12.9, "Contract_Reference_Number", "12"},
		{"integer column from text", "4711.0", "Contract", "4711"},
		{"plain number rounds", 12.345, "ID", "12.35"},
		{"plain whole number", 3.0, "ID", "3"},
		{"plain text", "Acme Ltd", "Details", "Acme Ltd"},
		{"text in currency column stays text", "n/a", "Rate", "n/a"},
		{"int value", 7, "ID", "7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCell(tt.value, tt.header, cfg))
		})
	}
}

func TestFormatCellDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	for i := 0; i < 3; i++ {
		assert.Equal(t, "£12.35", FormatCell(12.345, "Rate", cfg))
	}
}

func TestRoundDecimal(t *testing.T) {
	tests := []struct {
		v     float64
		force bool
		want  string
	}{
		{12.345, false, "12.35"},
		{12.344, false, "12.34"},
		{12.0, false, "12"},
		{12.0, true, "12.00"},
		{0.999, false, "1"},
		{0.995, true, "1.00"},
		{-12.345, true, "-12.35"},
		{99.999, false, "100"},
		{2.5, false, "2.5"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, roundDecimal(tt.v, tt.force), "%v force=%t", tt.v, tt.force)
	}
}
