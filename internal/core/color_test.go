package core

import "testing"

func TestColorANSI(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{ColorDefault, ""},
		{ColorRed, "1"},
		{ColorBrightWhite, "15"},
		{ColorOrange, "208"},
		{ColorGray, "245"},
		{colorCount, ""},
		{Color(200), ""},
	}

	for _, tt := range tests {
		if got := tt.c.ANSI(); got != tt.want {
			t.Errorf("Color(%d).ANSI() = %q, expected %q", tt.c, got, tt.want)
		}
	}
}

func TestColorsListsPalette(t *testing.T) {
	colors := Colors()
	if len(colors) != int(colorCount) || colors[0] != ColorDefault {
		t.Fatalf("Colors() = %v", colors)
	}
	for _, c := range colors[1:] {
		if c.ANSI() == "" {
			t.Errorf("color %d has no ANSI code", c)
		}
	}
}
