package core

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in       string
		expected Color
		ok       bool
	}{
		{"red", ColorRed, true},
		{"Bright_Cyan", ColorBrightCyan, true},
		{" orange ", ColorOrange, true},
		{"grey", ColorGray, true},
		{"dark-grey", ColorDarkGray, true},
		{"default", ColorDefault, true},
		{"chartreuse", ColorDefault, false},
		{"", ColorDefault, false},
	}

	for _, tc := range tests {
		got, ok := ParseColor(tc.in)
		if got != tc.expected || ok != tc.ok {
			t.Errorf("ParseColor(%q) = (%v, %v), expected (%v, %v)", tc.in, got, ok, tc.expected, tc.ok)
		}
	}
}

func TestColorNamesRoundTrip(t *testing.T) {
	for _, c := range AllColors() {
		parsed, ok := ParseColor(c.String())
		if !ok || parsed != c {
			t.Errorf("ParseColor(%q) = (%v, %v), expected %v", c.String(), parsed, ok, c)
		}
	}
	if Color(200).String() != "unknown" {
		t.Error("out of range color should be unknown")
	}
}
