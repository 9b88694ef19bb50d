package core

import "testing"

func TestRectContains(t *testing.T) {
	// A 3-wide board drawn two cells per tile inside a frame.
	cells := NewRect(10, 4, 6, 3)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"first cell", 10, 4, true},
		{"last cell", 15, 6, true},
		{"right of board", 16, 5, false},
		{"below board", 12, 7, false},
		{"on frame left", 9, 5, false},
		{"on frame top", 12, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cells.Contains(tt.x, tt.y); got != tt.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.expected)
			}
		})
	}
}

func TestRectInset(t *testing.T) {
	frame := NewRect(9, 3, 8, 5)

	inner := frame.Inset(1)
	if inner != NewRect(10, 4, 6, 3) {
		t.Errorf("Inset(1) = %+v, expected {10 4 6 3}", inner)
	}

	if got := NewRect(0, 0, 1, 1).Inset(1); got.W != 0 || got.H != 0 {
		t.Errorf("Inset past the size = %+v, expected zero size", got)
	}
}

func TestCenteredAt(t *testing.T) {
	r := CenteredAt(20, 10, 9, 4)
	if r != NewRect(16, 8, 9, 4) {
		t.Errorf("CenteredAt() = %+v, expected {16 8 9 4}", r)
	}

	cx, cy := r.Center()
	if cx != 20 || cy != 10 {
		t.Errorf("Center() = (%d, %d), expected (20, 10)", cx, cy)
	}
	if r.Right() != 25 || r.Bottom() != 12 {
		t.Errorf("Right/Bottom = %d/%d, expected 25/12", r.Right(), r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{3, 0, 9, 3},
		{-1, 0, 9, 0},
		{10, 0, 9, 9},
		{0, 0, 0, 0},
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.lo, tt.hi); got != tt.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tt.val, tt.lo, tt.hi, got, tt.expected)
		}
	}
}
