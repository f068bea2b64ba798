package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 15, 20)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"origin", 0, 0, true},
		{"last cell", 14, 19, true},
		{"past right edge", 15, 0, false},
		{"past bottom edge", 0, 20, false},
		{"negative x", -1, 5, false},
		{"negative y", 5, -1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(3, 4, 10, 5)
	if r.Right() != 13 || r.Bottom() != 9 {
		t.Errorf("Right()=%d Bottom()=%d, expected 13, 9", r.Right(), r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct{ val, lo, hi, want int }{
		{5, 0, 14, 5},
		{-3, 0, 14, 0},
		{20, 0, 14, 14},
		{14, 0, 14, 14},
	}
	for _, tt := range tests {
		if got := Clamp(tt.val, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tt.val, tt.lo, tt.hi, got, tt.want)
		}
	}
}
