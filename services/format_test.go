package services

import "testing"

func TestFormatThickness(t *testing.T) {
	tests := []struct {
		name   string
		input  float64
		expect string
	}{
		{"zero", 0, "0 mm"},
		{"whole millimetres", 0.1, "100 mm"},
		{"fraction", 0.0125, "12.50 mm"},
		{"sub-millimetre", 0.0005, "0.50 mm"},
		{"one metre", 1, "1000 mm"},
		{"float noise", 0.1 + 0.2, "300 mm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatThickness(tt.input)
			if got != tt.expect {
				t.Errorf("FormatThickness(%v) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestFormatRange(t *testing.T) {
	got := FormatRange(0.01, 0.025)
	want := "Range: 10 mm - 25 mm"
	if got != want {
		t.Errorf("FormatRange() = %q, want %q", got, want)
	}
}
