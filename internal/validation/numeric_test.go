package validation

import "testing"

func TestParseIntOrNil(t *testing.T) {
	if got := ParseIntOrNil("42"); got == nil || *got != 42 {
		t.Errorf("expected 42, got %v", got)
	}
	if got := ParseIntOrNil(" 30 "); got == nil || *got != 30 {
		t.Errorf("expected surrounding whitespace trimmed, got %v", got)
	}
	if got := ParseIntOrNil(""); got != nil {
		t.Errorf("expected nil for empty input, got %d", *got)
	}
	if got := ParseIntOrNil("abc"); got != nil {
		t.Errorf("expected nil for unparseable input, got %d", *got)
	}
	if got := ParseIntOrNil("17.5"); got != nil {
		t.Errorf("expected nil for decimal input, got %d", *got)
	}
}

func TestParseFloatOrNil(t *testing.T) {
	if got := ParseFloatOrNil("175.5"); got == nil || *got != 175.5 {
		t.Errorf("expected 175.5, got %v", got)
	}
	if got := ParseFloatOrNil("70"); got == nil || *got != 70 {
		t.Errorf("expected 70, got %v", got)
	}
	if got := ParseFloatOrNil(""); got != nil {
		t.Errorf("expected nil for empty input, got %f", *got)
	}
	if got := ParseFloatOrNil("abc"); got != nil {
		t.Errorf("expected nil for unparseable input, got %f", *got)
	}
}
