package geometry

import (
	"fmt"
	"image"
	"sort"
)

// Quad is a quadrilateral region of interest with corners in
// top-left, top-right, bottom-right, bottom-left order.
type Quad struct {
	TopLeft     PointInt `json:"top_left"`
	TopRight    PointInt `json:"top_right"`
	BottomRight PointInt `json:"bottom_right"`
	BottomLeft  PointInt `json:"bottom_left"`
}

// NewQuad builds a Quad from border intersection points. The points are
// sorted by y, the upper pair ordered by x becoming the top edge and the
// lower pair the bottom edge. At least four points are required.
func NewQuad(points []PointInt) (Quad, error) {
	if len(points) < 4 {
		return Quad{}, fmt.Errorf("need 4 corner points, got %d", len(points))
	}

	sorted := make([]PointInt, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Y < sorted[j].Y
	})

	top := []PointInt{sorted[0], sorted[1]}
	bottom := []PointInt{sorted[len(sorted)-2], sorted[len(sorted)-1]}
	sort.SliceStable(top, func(i, j int) bool { return top[i].X < top[j].X })
	sort.SliceStable(bottom, func(i, j int) bool { return bottom[i].X < bottom[j].X })

	return Quad{
		TopLeft:     top[0],
		TopRight:    top[1],
		BottomRight: bottom[1],
		BottomLeft:  bottom[0],
	}, nil
}

// Bounds returns the axis-aligned bounding box of the four corners.
func (q Quad) Bounds() image.Rectangle {
	corners := []PointInt{q.TopLeft, q.TopRight, q.BottomRight, q.BottomLeft}
	minX, minY := corners[0].X, corners[0].Y
	maxX, maxY := minX, minY
	for _, c := range corners[1:] {
		if c.X < minX {
			minX = c.X
		}
		if c.X > maxX {
			maxX = c.X
		}
		if c.Y < minY {
			minY = c.Y
		}
		if c.Y > maxY {
			maxY = c.Y
		}
	}
	return image.Rect(minX, minY, maxX, maxY)
}
