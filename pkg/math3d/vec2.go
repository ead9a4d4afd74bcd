package math3d

import "image"

// Vec2 is a projected point in screen space (Y grows downward).
type Vec2 struct {
	X, Y float64
}

// V2 creates a new Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{x, y}
}

// Add returns the vector sum a + b.
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

// Point truncates to integer pixel coordinates.
func (a Vec2) Point() image.Point {
	return image.Pt(int(a.X), int(a.Y))
}

// Centroid returns the mean of pts, or the zero point for an empty slice.
func Centroid(pts []Vec2) Vec2 {
	if len(pts) == 0 {
		return Vec2{}
	}
	var c Vec2
	for _, p := range pts {
		c = c.Add(p)
	}
	n := float64(len(pts))
	return Vec2{c.X / n, c.Y / n}
}
