package parser

import (
	"math"
	"testing"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"0", 0},
		{"45", 45},
		{"4.2", 4.2},
		{"1e3", 1000},
		{"1_000_000", 1000000},
		{"0x10", 16},
		{"0b101", 5},
		{"0o17", 15},
		{"0xFF", 255},
	}
	for _, tt := range tests {
		got, err := ParseNumber(tt.raw)
		if err != nil {
			t.Errorf("ParseNumber(%q) failed: %v", tt.raw, err)
			continue
		}
		if got.Value != tt.want {
			t.Errorf("ParseNumber(%q) = %v, want %v", tt.raw, got.Value, tt.want)
		}
		if got.Raw != tt.raw {
			t.Errorf("ParseNumber(%q) lost the raw lexeme: %q", tt.raw, got.Raw)
		}
	}
}

func TestParseNumberOverflow(t *testing.T) {
	got, err := ParseNumber("1e999")
	if err != nil {
		t.Fatalf("overflow should not error: %v", err)
	}
	if !math.IsInf(got.Value, 1) {
		t.Errorf("ParseNumber(1e999) = %v, want +Inf", got.Value)
	}
}

func TestParseNumberInvalid(t *testing.T) {
	if _, err := ParseNumber("0xZZ"); err == nil {
		t.Error("ParseNumber(0xZZ) should fail")
	}
}
