// Package core provides fundamental types and utilities shared by the
// simulation and its hosts. It has no external dependencies (especially no
// Bubble Tea or Ebitengine) so that game logic stays pure and testable.
package core

// Rect represents an axis-aligned bounding box used for collision detection.
// Coordinates follow screen convention: Y grows downward.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// CenterX returns the horizontal center, rounded toward the left edge.
func (r Rect) CenterX() int {
	return r.X + r.W/2
}

// CenterY returns the vertical center, rounded toward the top edge.
func (r Rect) CenterY() int {
	return r.Y + r.H/2
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.CenterX(), r.CenterY()
}

// WithCenterX returns a copy moved horizontally so that CenterX() == cx.
func (r Rect) WithCenterX(cx int) Rect {
	r.X = cx - r.W/2
	return r
}

// WithCenter returns a copy moved so that Center() == (cx, cy).
func (r Rect) WithCenter(cx, cy int) Rect {
	r.X = cx - r.W/2
	r.Y = cy - r.H/2
	return r
}

// Translate returns a copy moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ClampInto returns a copy shifted the minimum amount needed to lie within
// [0,w]x[0,h]. Each axis is clamped independently.
func (r Rect) ClampInto(w, h int) Rect {
	r.X = Clamp(r.X, 0, Max(0, w-r.W))
	r.Y = Clamp(r.Y, 0, Max(0, h-r.H))
	return r
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
