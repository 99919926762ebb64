package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 12, 6)

	tests := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"origin", Pt(0, 0), true},
		{"last cell", Pt(11, 5), true},
		{"right edge exclusive", Pt(12, 0), false},
		{"bottom edge exclusive", Pt(0, 6), false},
		{"negative col", Pt(-1, 3), false},
		{"negative row", Pt(3, -1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tt.p, got, tt.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	if r.Right() != 40 {
		t.Errorf("Right() = %d, expected 40", r.Right())
	}
	if r.Bottom() != 60 {
		t.Errorf("Bottom() = %d, expected 60", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.lo, tt.hi); got != tt.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tt.val, tt.lo, tt.hi, got, tt.expected)
		}
	}
}

func TestAbs(t *testing.T) {
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs failed")
	}
}

func TestMod(t *testing.T) {
	tests := []struct {
		x, n, expected int
	}{
		{5, 4, 1},
		{-1, 4, 3},
		{-4, 4, 0},
		{-9, 4, 3},
		{0, 3, 0},
	}

	for _, tt := range tests {
		if got := Mod(tt.x, tt.n); got != tt.expected {
			t.Errorf("Mod(%d, %d) = %d, expected %d", tt.x, tt.n, got, tt.expected)
		}
	}
}
