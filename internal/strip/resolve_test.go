package strip

import (
	"testing"

	"stripscan/internal/calibration"
	"stripscan/pkg/colorutil"
)

func primaryTable() calibration.Table {
	return calibration.Table{Analytes: []calibration.Analyte{
		{Name: "Test", Points: []calibration.Point{
			{Value: 10, Color: colorutil.RGB{R: 255, G: 0, B: 0}},
			{Value: 5, Color: colorutil.RGB{R: 0, G: 255, B: 0}},
			{Value: 0, Color: colorutil.RGB{R: 0, G: 0, B: 255}},
		}},
	}}
}

func TestResolveNearestReference(t *testing.T) {
	// (250,10,5) is closest to the first reference, value 10.
	bands := []BandSample{
		band(3, 250, 10, 5),
		band(6, 255, 255, 255), // trailing blank pad
	}

	readings, confidence := resolve(bands, primaryTable(), DefaultParams())
	if confidence != OrientationHigh {
		t.Errorf("Confidence = %s, want high", confidence)
	}
	r, ok := readings["Test"]
	if !ok || r.Value == nil {
		t.Fatalf("Missing Test reading: %+v", readings)
	}
	if *r.Value != 10 {
		t.Errorf("Value = %v, want 10", *r.Value)
	}
}

func TestResolveExactMatchIsZeroDistance(t *testing.T) {
	bands := []BandSample{
		band(3, 0, 255, 0),
		band(6, 255, 255, 255),
	}

	readings, _ := resolve(bands, primaryTable(), DefaultParams())
	if r := readings["Test"]; r.Value == nil || *r.Value != 5 {
		t.Errorf("Exact reference color should resolve to its own value, got %+v", r)
	}
}

func TestResolveReversalInvariance(t *testing.T) {
	forward := []BandSample{
		band(3, 223, 53, 35),
		band(6, 40, 79, 58),
		band(9, 110, 58, 87),
		band(12, 255, 255, 255),
	}
	backward := make([]BandSample, len(forward))
	for i, b := range forward {
		backward[len(forward)-1-i] = b
	}

	table := calibration.Default()
	p := DefaultParams()

	forwardReadings, forwardConf := resolve(forward, table, p)
	backwardReadings, backwardConf := resolve(backward, table, p)

	if forwardConf != OrientationHigh || backwardConf != OrientationHigh {
		t.Errorf("Confidence = %s/%s, want high/high", forwardConf, backwardConf)
	}
	if len(forwardReadings) != len(backwardReadings) {
		t.Fatalf("Reading counts differ: %d vs %d", len(forwardReadings), len(backwardReadings))
	}
	for name, fr := range forwardReadings {
		br, ok := backwardReadings[name]
		if !ok {
			t.Errorf("Backward run missing %q", name)
			continue
		}
		if (fr.Value == nil) != (br.Value == nil) {
			t.Errorf("%q: nil mismatch", name)
			continue
		}
		if fr.Value != nil && *fr.Value != *br.Value {
			t.Errorf("%q: %v vs %v", name, *fr.Value, *br.Value)
		}
	}
}

func TestResolveAmbiguousOrientation(t *testing.T) {
	// Neither end is near-white: keep order, report low confidence.
	bands := []BandSample{
		band(3, 250, 10, 5),
		band(6, 10, 250, 5),
	}

	readings, confidence := resolve(bands, primaryTable(), DefaultParams())
	if confidence != OrientationLow {
		t.Errorf("Confidence = %s, want low", confidence)
	}
	// The trailing band is still discarded as the blank position.
	if len(readings) != 1 {
		t.Fatalf("Expected 1 reading, got %d", len(readings))
	}
	if r := readings["Test"]; r.Value == nil || *r.Value != 10 {
		t.Errorf("Test = %+v, want 10", r)
	}
}

func TestResolveExtraBands(t *testing.T) {
	table := calibration.Table{Analytes: []calibration.Analyte{
		primaryTable().Analytes[0],
		{Name: "Second", Points: []calibration.Point{
			{Value: 1, Color: colorutil.RGB{R: 50, G: 50, B: 50}},
			{Value: 0, Color: colorutil.RGB{R: 150, G: 150, B: 150}},
		}},
	}}

	bands := []BandSample{
		band(3, 255, 0, 0),
		band(6, 60, 60, 60),
		band(9, 10, 20, 30),
		band(12, 40, 50, 60),
		band(15, 255, 255, 255),
	}

	readings, _ := resolve(bands, table, DefaultParams())
	if len(readings) != 4 {
		t.Fatalf("Expected 4 readings, got %d: %+v", len(readings), readings)
	}
	for _, name := range []string{"Extra 3", "Extra 4"} {
		r, ok := readings[name]
		if !ok {
			t.Errorf("Missing %q entry", name)
			continue
		}
		if r.Value != nil {
			t.Errorf("%q should have a null value, got %v", name, *r.Value)
		}
	}
}

func TestResolveShortSequence(t *testing.T) {
	// Fewer bands than analytes: the rest stay absent, no error.
	bands := []BandSample{
		band(3, 40, 79, 58),
		band(6, 223, 53, 35),
		band(9, 255, 255, 255),
	}

	readings, _ := resolve(bands, calibration.Default(), DefaultParams())
	if len(readings) != 2 {
		t.Fatalf("Expected 2 readings, got %d", len(readings))
	}
	if _, ok := readings["Hardness"]; ok {
		t.Error("Unsampled analyte should be absent, not null")
	}
}

func TestResolveEmptyAndSingle(t *testing.T) {
	readings, confidence := resolve(nil, primaryTable(), DefaultParams())
	if len(readings) != 0 || confidence != OrientationLow {
		t.Errorf("Empty input: got %d readings, confidence %s", len(readings), confidence)
	}

	// A lone band is treated as the trailing blank and discarded.
	readings, _ = resolve([]BandSample{band(3, 255, 255, 255)}, primaryTable(), DefaultParams())
	if len(readings) != 0 {
		t.Errorf("Single band should produce no readings, got %d", len(readings))
	}
}
