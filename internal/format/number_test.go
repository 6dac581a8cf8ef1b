package format

import (
	"math"
	"testing"
)

func TestFormatFloat(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"zero", 0, "0"},
		{"whole", 32, "32"},
		{"negative whole", -40, "-40"},
		{"fraction", 98.6, "98.6"},
		{"repeating", 37.77777777777778, "37.77777777777778"},
		{"large", 1e21, "1000000000000000000000"},
		{"small", 0.0001, "0.0001"},
		{"nan", math.NaN(), "NaN"},
		{"positive infinity", math.Inf(1), "inf"},
		{"negative infinity", math.Inf(-1), "-inf"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatFloat(tt.in); got != tt.want {
				t.Errorf("FormatFloat(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
