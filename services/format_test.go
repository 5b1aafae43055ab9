package services

import "testing"

func TestFormatEUR_Values(t *testing.T) {
	tests := []struct {
		name   string
		input  float64
		expect string
	}{
		{"zero", 0, "0,00 €"},
		{"small integer", 5, "5,00 €"},
		{"with decimals", 42.5, "42,50 €"},
		{"hundreds", 999.99, "999,99 €"},
		{"thousands", 3120, "3 120,00 €"},
		{"ten thousands", 12345.67, "12 345,67 €"},
		{"millions", 1234567.89, "1 234 567,89 €"},
		{"negative", -250, "-250,00 €"},
		{"exact thousands boundary", 1000, "1 000,00 €"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatEUR(tt.input)
			if got != tt.expect {
				t.Errorf("FormatEUR(%v) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestFormatEURCompact(t *testing.T) {
	tests := []struct {
		name   string
		input  float64
		expect string
	}{
		{"whole", 180, "180 €"},
		{"whole thousands", 1220, "1 220 €"},
		{"fraction", 412.5, "412,50 €"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatEURCompact(tt.input)
			if got != tt.expect {
				t.Errorf("FormatEURCompact(%v) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestFormatDays(t *testing.T) {
	tests := []struct {
		input  float64
		expect string
	}{
		{0.5, "0,5 jour"},
		{1, "1 jour"},
		{1.5, "1,5 jours"},
		{2, "2 jours"},
		{10, "10 jours"},
	}

	for _, tt := range tests {
		t.Run(tt.expect, func(t *testing.T) {
			got := FormatDays(tt.input)
			if got != tt.expect {
				t.Errorf("FormatDays(%v) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		input  float64
		expect string
	}{
		{0.20, "20 %"},
		{0.055, "5,5 %"},
		{0, "0 %"},
	}

	for _, tt := range tests {
		t.Run(tt.expect, func(t *testing.T) {
			if got := FormatPercent(tt.input); got != tt.expect {
				t.Errorf("FormatPercent(%v) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}
