package entity

// Rect is a screen-space rectangle in physical pixels.
type Rect struct {
	X      int `json:"x" yaml:"x"`
	Y      int `json:"y" yaml:"y"`
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (cx, cy int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

func (r Rect) Right() int  { return r.X + r.Width }
func (r Rect) Bottom() int { return r.Y + r.Height }

// Inset shrinks the rectangle by dx on the left and right and dy on the top and bottom.
func (r Rect) Inset(dx, dy int) Rect {
	return Rect{
		X:      r.X + dx,
		Y:      r.Y + dy,
		Width:  max(r.Width-2*dx, 0),
		Height: max(r.Height-2*dy, 0),
	}
}

// OverlapsVertically reports whether the two rects share any row.
func (r Rect) OverlapsVertically(other Rect) bool {
	return r.Y < other.Bottom() && other.Y < r.Bottom()
}

// OverlapsHorizontally reports whether the two rects share any column.
func (r Rect) OverlapsHorizontally(other Rect) bool {
	return r.X < other.Right() && other.X < r.Right()
}
