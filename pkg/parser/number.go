package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// NumberValue is a parsed numeric literal: the raw lexeme as written plus
// its float64 value (numbers are IEEE 754 doubles at the language level).
type NumberValue struct {
	Raw   string
	Value float64
}

// ParseNumber converts a raw numeric lexeme into a NumberValue. It handles
// decimal, float, exponent, and 0x/0b/0o prefixed forms, with underscore
// separators.
func ParseNumber(raw string) (NumberValue, error) {
	base := 10
	prefixLen := 0
	if strings.HasPrefix(raw, "0x") || strings.HasPrefix(raw, "0X") {
		base = 16
		prefixLen = 2
	} else if strings.HasPrefix(raw, "0b") || strings.HasPrefix(raw, "0B") {
		base = 2
		prefixLen = 2
	} else if strings.HasPrefix(raw, "0o") || strings.HasPrefix(raw, "0O") {
		base = 8
		prefixLen = 2
	}

	cleaned := strings.ReplaceAll(raw[prefixLen:], "_", "")

	if base == 10 && (strings.Contains(cleaned, ".") || strings.ContainsAny(cleaned, "eE")) {
		value, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
				// Overflow becomes Infinity, matching runtime semantics.
				return NumberValue{Raw: raw, Value: value}, nil
			}
			return NumberValue{}, fmt.Errorf("could not parse %q as float64: %w", raw, err)
		}
		return NumberValue{Raw: raw, Value: value}, nil
	}

	value, err := strconv.ParseInt(cleaned, base, 64)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			floatVal, floatErr := strconv.ParseFloat(cleaned, 64)
			if floatErr != nil {
				return NumberValue{}, fmt.Errorf("could not parse %q as number: %w", raw, floatErr)
			}
			return NumberValue{Raw: raw, Value: floatVal}, nil
		}
		return NumberValue{}, fmt.Errorf("could not parse %q as int (base %d): %w", raw, base, err)
	}
	return NumberValue{Raw: raw, Value: float64(value)}, nil
}
