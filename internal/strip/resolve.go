package strip

import (
	"fmt"
	"slices"

	"stripscan/internal/calibration"
)

// Orientation confidence reported alongside the readings. High means a
// white/gray blank pad anchored the band order; low means neither strip
// end looked blank and the printed order was assumed.
const (
	OrientationHigh = "high"
	OrientationLow  = "low"
)

// Reading is one resolved analyte concentration. Value is nil for extra
// bands with no analyte to map to.
type Reading struct {
	Value *float64 `json:"value"`
}

// resolve pairs the sampled band colors with the calibration table's
// analytes in declared order and picks each analyte's nearest ramp value.
//
// The first or last band being near-white identifies the blank pad end of
// the strip: blank-first means the photo was captured bottom-up, so the
// sequence is reversed. Neither end being blank is not an error; the
// order is kept and the low confidence tells the caller it was a guess.
func resolve(bands []BandSample, table calibration.Table, p Params) (map[string]Reading, string) {
	if len(bands) == 0 {
		return map[string]Reading{}, OrientationLow
	}

	ordered := make([]BandSample, len(bands))
	copy(ordered, bands)

	confidence := OrientationLow
	switch {
	case ordered[0].Color.AllAbove(p.GrayWhiteThreshold):
		slices.Reverse(ordered)
		confidence = OrientationHigh
	case ordered[len(ordered)-1].Color.AllAbove(p.GrayWhiteThreshold):
		confidence = OrientationHigh
	}

	// The last position is the trailing blank pad, not a reagent reading.
	ordered = ordered[:len(ordered)-1]

	readings := make(map[string]Reading, len(ordered))
	for i, band := range ordered {
		if i >= table.Len() {
			readings[fmt.Sprintf("Extra %d", i+1)] = Reading{}
			continue
		}
		analyte := table.Analytes[i]
		_, value := analyte.Nearest(band.Color)
		v := value
		readings[analyte.Name] = Reading{Value: &v}
	}
	return readings, confidence
}
