// Package calibration defines the reference data that maps reagent-pad
// colors to analyte concentrations. A table is static configuration:
// it is loaded (or built in) once and never modified at runtime.
package calibration

import (
	"fmt"

	"stripscan/pkg/colorutil"
)

// Point is one step of an analyte's reference ramp: a printed calibration
// color and the concentration it represents.
type Point struct {
	Value float64       `json:"value" yaml:"value"`
	Color colorutil.RGB `json:"color" yaml:"color"`
}

// Analyte is a named reference ramp, ordered along the physical color
// gradient (highest concentration first on the strips this ships with).
type Analyte struct {
	Name   string  `json:"name" yaml:"name"`
	Points []Point `json:"points" yaml:"points"`
}

// Nearest returns the index and value of the ramp point whose color is
// closest to c by squared Euclidean RGB distance. Ties go to the lowest
// index.
func (a Analyte) Nearest(c colorutil.RGB) (int, float64) {
	bestIdx := 0
	bestDist := c.SquaredDistanceTo(a.Points[0].Color)
	for i, p := range a.Points[1:] {
		if d := c.SquaredDistanceTo(p.Color); d < bestDist {
			bestDist = d
			bestIdx = i + 1
		}
	}
	return bestIdx, a.Points[bestIdx].Value
}

// Table is the ordered set of analytes printed on a strip. Order is
// significant: bands are paired with analytes positionally.
type Table struct {
	Analytes []Analyte `json:"analytes" yaml:"analytes"`
}

// Len returns the number of analytes in the table.
func (t Table) Len() int {
	return len(t.Analytes)
}

// Validate checks the table invariants.
func (t Table) Validate() error {
	if len(t.Analytes) == 0 {
		return fmt.Errorf("calibration table has no analytes")
	}
	seen := make(map[string]bool, len(t.Analytes))
	for i, a := range t.Analytes {
		if a.Name == "" {
			return fmt.Errorf("analyte %d has no name", i)
		}
		if seen[a.Name] {
			return fmt.Errorf("duplicate analyte %q", a.Name)
		}
		seen[a.Name] = true
		if len(a.Points) < 2 {
			return fmt.Errorf("analyte %q needs at least 2 ramp points, got %d", a.Name, len(a.Points))
		}
	}
	return nil
}
