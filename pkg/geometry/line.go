package geometry

import "math"

// PolarLine is a straight line in Hough normal form: Rho is the
// perpendicular distance from the origin, Theta the angle of the normal.
// Lines are immutable once detected.
type PolarLine struct {
	Rho   float64 `json:"rho"`
	Theta float64 `json:"theta"`
}

// AlignedWith reports whether the two lines are parallel or anti-parallel
// within tol radians.
func (l PolarLine) AlignedWith(other PolarLine, tol float64) bool {
	return math.Abs(l.Theta-other.Theta) < tol ||
		math.Abs(l.Theta-other.Theta-math.Pi) < tol
}

// SeparatedFrom reports whether the perpendicular distances of the two
// lines differ by more than minSep pixels. Lines closer than that are
// usually the same physical edge detected twice.
func (l PolarLine) SeparatedFrom(other PolarLine, minSep float64) bool {
	return math.Abs(l.Rho-other.Rho) > minSep
}

// BorderIntersections returns the points where the line crosses the four
// borders of a width x height image, capped at two points. The line is
// extended well past the image from its foot point before intersecting,
// and only in-bounds crossings are kept.
func (l PolarLine) BorderIntersections(width, height int) []PointInt {
	a := math.Cos(l.Theta)
	b := math.Sin(l.Theta)
	x0 := a * l.Rho
	y0 := b * l.Rho

	extent := math.Max(1000, float64(width+height))
	x1 := x0 - extent*b
	y1 := y0 + extent*a
	x2 := x0 + extent*b
	y2 := y0 - extent*a

	points := make([]PointInt, 0, 2)
	w := float64(width)
	h := float64(height)

	if x1 != x2 {
		yLeft := y1 + (y2-y1)*(0-x1)/(x2-x1)
		if yLeft >= 0 && yLeft <= h {
			points = append(points, PointInt{X: 0, Y: int(yLeft)})
		}
		yRight := y1 + (y2-y1)*(w-x1)/(x2-x1)
		if yRight >= 0 && yRight <= h {
			points = append(points, PointInt{X: width, Y: int(yRight)})
		}
	}
	if y1 != y2 {
		xTop := x1 + (x2-x1)*(0-y1)/(y2-y1)
		if xTop >= 0 && xTop <= w {
			points = append(points, PointInt{X: int(xTop), Y: 0})
		}
		xBottom := x1 + (x2-x1)*(h-y1)/(y2-y1)
		if xBottom >= 0 && xBottom <= w {
			points = append(points, PointInt{X: int(xBottom), Y: height})
		}
	}

	if len(points) > 2 {
		points = points[:2]
	}
	return points
}
