package validation

import (
	"strconv"
	"strings"
)

// ParseIntOrNil parses an optional numeric form field.
// Empty or unparseable input yields nil so the value is stored as NULL
// instead of failing the whole submission.
func ParseIntOrNil(s string) *int {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}

	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil
	}

	return &n
}

// ParseFloatOrNil parses an optional decimal form field.
// Empty or unparseable input yields nil.
func ParseFloatOrNil(s string) *float64 {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}

	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil
	}

	return &f
}
