// Package geometry provides the geometric types used by the strip
// detection pipeline: integer points, Hough-space lines, and the
// quadrilateral region of interest built from them.
package geometry

// PointInt represents a 2D point with integer pixel coordinates.
type PointInt struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// NewPointInt creates a new PointInt.
func NewPointInt(x, y int) PointInt {
	return PointInt{X: x, Y: y}
}
