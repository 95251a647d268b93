package calibration

import (
	"os"
	"path/filepath"
	"testing"

	"stripscan/pkg/colorutil"
)

const sampleYAML = `
analytes:
  - name: Iron
    points:
      - value: 5.0
        color: [236, 71, 35]
      - value: 3.0
        color: [231, 95, 37]
      - value: 0.0
        color: [180, 180, 180]
  - name: Copper
    points:
      - value: 5
        color: [212, 111, 119]
      - value: 0
        color: [177, 175, 143]
`

func TestParse(t *testing.T) {
	table, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if table.Len() != 2 {
		t.Fatalf("Expected 2 analytes, got %d", table.Len())
	}
	if table.Analytes[0].Name != "Iron" || table.Analytes[1].Name != "Copper" {
		t.Errorf("Analyte order not preserved: %q, %q",
			table.Analytes[0].Name, table.Analytes[1].Name)
	}

	first := table.Analytes[0].Points[0]
	if first.Value != 5.0 {
		t.Errorf("First point value = %v, want 5.0", first.Value)
	}
	if first.Color != (colorutil.RGB{R: 236, G: 71, B: 35}) {
		t.Errorf("First point color = %v", first.Color)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"not yaml", "{{{"},
		{"no analytes", "analytes: []"},
		{"missing name", "analytes:\n  - points:\n      - {value: 1, color: [1,2,3]}\n      - {value: 0, color: [4,5,6]}"},
		{"single point", "analytes:\n  - name: X\n    points:\n      - {value: 1, color: [1,2,3]}"},
	}

	for _, tt := range tests {
		if _, err := Parse([]byte(tt.yaml)); err == nil {
			t.Errorf("%s: expected parse error", tt.name)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	table, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if table.Len() != 2 {
		t.Errorf("Expected 2 analytes, got %d", table.Len())
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("Expected error for missing file")
	}
}
