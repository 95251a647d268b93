package geometry

import (
	"math"
	"testing"
)

func TestBorderIntersectionsHorizontalLine(t *testing.T) {
	// A horizontal line at y=100 in Hough form: theta=pi/2, rho=100.
	line := PolarLine{Rho: 100, Theta: math.Pi / 2}

	points := line.BorderIntersections(640, 480)
	if len(points) != 2 {
		t.Fatalf("Expected 2 intersections, got %d", len(points))
	}

	for _, p := range points {
		if p.X != 0 && p.X != 640 {
			t.Errorf("Expected intersection on left or right border, got x=%d", p.X)
		}
		if p.Y < 99 || p.Y > 101 {
			t.Errorf("Expected intersection near y=100, got y=%d", p.Y)
		}
	}
}

func TestBorderIntersectionsVerticalLine(t *testing.T) {
	// A vertical line at x=120: theta=0, rho=120.
	line := PolarLine{Rho: 120, Theta: 0}

	points := line.BorderIntersections(640, 480)
	if len(points) != 2 {
		t.Fatalf("Expected 2 intersections, got %d", len(points))
	}

	for _, p := range points {
		if p.X < 119 || p.X > 121 {
			t.Errorf("Expected intersection near x=120, got x=%d", p.X)
		}
		if p.Y != 0 && p.Y != 480 {
			t.Errorf("Expected intersection on top or bottom border, got y=%d", p.Y)
		}
	}
}

func TestBorderIntersectionsDiagonalLine(t *testing.T) {
	// The y=x diagonal: theta=3pi/4, rho=0.
	line := PolarLine{Rho: 0, Theta: 3 * math.Pi / 4}

	points := line.BorderIntersections(100, 100)
	if len(points) != 2 {
		t.Fatalf("Expected 2 intersections, got %d", len(points))
	}

	for _, p := range points {
		if int(math.Abs(float64(p.X-p.Y))) > 1 {
			t.Errorf("Expected point on the y=x diagonal, got (%d,%d)", p.X, p.Y)
		}
	}
}

func TestBorderIntersectionsOffImage(t *testing.T) {
	// A horizontal line far below the image.
	line := PolarLine{Rho: 5000, Theta: math.Pi / 2}

	points := line.BorderIntersections(640, 480)
	if len(points) != 0 {
		t.Errorf("Expected no in-bounds intersections, got %d", len(points))
	}
}

func TestAlignedWith(t *testing.T) {
	main := PolarLine{Rho: 100, Theta: math.Pi / 2}

	tests := []struct {
		name    string
		line    PolarLine
		aligned bool
	}{
		{"parallel", PolarLine{Rho: 200, Theta: math.Pi/2 + 0.005}, true},
		{"anti-parallel", PolarLine{Rho: -200, Theta: math.Pi/2 + math.Pi + 0.005}, true},
		{"perpendicular", PolarLine{Rho: 200, Theta: 0}, false},
		{"just outside tolerance", PolarLine{Rho: 200, Theta: math.Pi/2 + 0.02}, false},
	}

	for _, tt := range tests {
		if got := tt.line.AlignedWith(main, 0.01); got != tt.aligned {
			t.Errorf("%s: AlignedWith=%v, want %v", tt.name, got, tt.aligned)
		}
	}
}

func TestSeparatedFrom(t *testing.T) {
	main := PolarLine{Rho: 100, Theta: math.Pi / 2}

	if (PolarLine{Rho: 130, Theta: math.Pi / 2}).SeparatedFrom(main, 40) {
		t.Error("Lines 30px apart should not count as separated with minSep=40")
	}
	if !(PolarLine{Rho: 150, Theta: math.Pi / 2}).SeparatedFrom(main, 40) {
		t.Error("Lines 50px apart should count as separated with minSep=40")
	}
}
