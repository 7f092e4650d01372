package models

import "testing"

func TestParseCategory(t *testing.T) {
	for _, c := range Categories {
		got, ok := ParseCategory(string(c))
		if !ok || got != c {
			t.Errorf("ParseCategory(%q) = %v, %v", c, got, ok)
		}
	}

	for _, bad := range []string{"", "sports", "AI", "Economy "} {
		if _, ok := ParseCategory(bad); ok {
			t.Errorf("ParseCategory(%q) unexpectedly succeeded", bad)
		}
	}
}
