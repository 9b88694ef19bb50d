// Package core holds the frontend-neutral types shared by games and the
// platform: screen buffer, geometry, input frames and runtime settings.
// It imports nothing outside the standard library.
package core

// Rect is a screen area in cell coordinates. X and Y are the top-left cell.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle from its top-left cell and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// CenteredAt returns a w x h rectangle whose center is (cx, cy).
func CenteredAt(cx, cy, w, h int) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Right is the first column past the rectangle.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom is the first row past the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset shrinks r by n cells on every side. The size never goes negative.
func (r Rect) Inset(n int) Rect {
	return Rect{
		X: r.X + n,
		Y: r.Y + n,
		W: max(r.W-2*n, 0),
		H: max(r.H-2*n, 0),
	}
}

// Center returns the middle cell, rounding toward the top-left.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Clamp limits val to [lo, hi].
func Clamp(val, lo, hi int) int {
	return min(max(val, lo), hi)
}
