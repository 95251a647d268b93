package calibration

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"stripscan/pkg/colorutil"
)

// YAML layout mirrors the printed reference chart:
//
//	analytes:
//	  - name: Iron
//	    points:
//	      - value: 5.0
//	        color: [236, 71, 35]
type fileTable struct {
	Analytes []fileAnalyte `yaml:"analytes"`
}

type fileAnalyte struct {
	Name   string      `yaml:"name"`
	Points []filePoint `yaml:"points"`
}

type filePoint struct {
	Value float64  `yaml:"value"`
	Color [3]uint8 `yaml:"color"`
}

// Parse decodes a YAML calibration table and validates it.
func Parse(data []byte) (Table, error) {
	var raw fileTable
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Table{}, fmt.Errorf("parse calibration: %w", err)
	}

	table := Table{Analytes: make([]Analyte, 0, len(raw.Analytes))}
	for _, a := range raw.Analytes {
		analyte := Analyte{Name: a.Name, Points: make([]Point, 0, len(a.Points))}
		for _, p := range a.Points {
			analyte.Points = append(analyte.Points, Point{
				Value: p.Value,
				Color: colorutil.RGB{R: p.Color[0], G: p.Color[1], B: p.Color[2]},
			})
		}
		table.Analytes = append(table.Analytes, analyte)
	}

	if err := table.Validate(); err != nil {
		return Table{}, fmt.Errorf("invalid calibration table: %w", err)
	}
	return table, nil
}

// Load reads and parses a YAML calibration table from disk.
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("read calibration file: %w", err)
	}
	return Parse(data)
}
