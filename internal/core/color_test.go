package core

import "testing"

func TestColorRGB(t *testing.T) {
	r, g, b, ok := Color("#e74c3c").RGB()
	if !ok {
		t.Fatal("RGB() should parse a valid colour")
	}
	if r != 0xe7 || g != 0x4c || b != 0x3c {
		t.Errorf("RGB() = (%d, %d, %d), expected (231, 76, 60)", r, g, b)
	}

	for _, bad := range []Color{"", "#fff", "#zzzzzz", "e74c3c00"} {
		if _, _, _, ok := bad.RGB(); ok {
			t.Errorf("RGB(%q) should fail", bad)
		}
	}
}

func TestColorDarkenLighten(t *testing.T) {
	tests := []struct {
		name     string
		got      Color
		expected Color
	}{
		{"darken red 20%", Color("#e74c3c").Darken(20), "#b41909"},
		{"darken clamps at zero", Color("#101010").Darken(20), "#000000"},
		{"lighten red 20%", Color("#e74c3c").Lighten(20), "#ff7f6f"},
		{"lighten clamps at 255", Color("#f0f0f0").Lighten(30), "#ffffff"},
		{"darken empty", Color("").Darken(20), ColorDark},
		{"darken malformed", Color("#nothex").Darken(20), ColorDark},
		{"lighten empty", Color("").Lighten(30), ColorLight},
		{"lighten malformed", Color("blue").Lighten(30), ColorLight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.expected {
				t.Errorf("got %q, expected %q", tc.got, tc.expected)
			}
		})
	}
}

func TestColorOrDefault(t *testing.T) {
	if Color("").OrDefault() != ColorNeutral {
		t.Errorf("empty colour should resolve to %q", ColorNeutral)
	}
	if Color("#3498db").OrDefault() != "#3498db" {
		t.Error("non-empty colour should be kept")
	}
}
