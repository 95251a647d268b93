package strip

import (
	"image"
	"math"

	"gocv.io/x/gocv"
	"gonum.org/v1/gonum/stat"

	"stripscan/pkg/colorutil"
)

// BandSample is the averaged color of one sampled strip section, with the
// source rectangle it was read from. Sentinel marks a band where every
// pixel was background/glare, reported as pure white rather than failing.
type BandSample struct {
	Section   int             `json:"section"`
	Color     colorutil.RGB   `json:"rgb"`
	Hex       string          `json:"hex"`
	ColorName string          `json:"color_name"`
	Box       image.Rectangle `json:"-"`
	Sentinel  bool            `json:"sentinel,omitempty"`
}

// sampleBands walks the rectified strip top to bottom, averaging a narrow
// centerline band for every SectionStride-th of the Sections equal-height
// slices. Band order follows the strip's printed pad order.
func sampleBands(strip gocv.Mat, p Params) []BandSample {
	height, width := strip.Rows(), strip.Cols()
	sectionHeight := height / p.Sections
	centerX := width / 2

	bands := make([]BandSample, 0, p.SampledBands())
	for i := p.SectionStride; i <= p.Sections; i += p.SectionStride {
		yStart := (i - 1) * sectionHeight
		yEnd := min(i*sectionHeight, height)
		xStart := max(0, centerX-p.BandWidth/2)
		xEnd := min(width, centerX+p.BandWidth/2)
		box := image.Rect(xStart, yStart, xEnd, yEnd)

		c, sentinel := bandColor(strip, box, p.WhiteThreshold)
		name, _ := colorutil.NearestCSSName(c)
		bands = append(bands, BandSample{
			Section:   i,
			Color:     c,
			Hex:       c.Hex(),
			ColorName: name,
			Box:       box,
			Sentinel:  sentinel,
		})
	}
	return bands
}

// bandColor averages the band pixels whose every channel sits below the
// white threshold. An empty rectangle reads as black; a band with no
// qualifying pixels reads as the white sentinel.
func bandColor(strip gocv.Mat, box image.Rectangle, whiteThreshold uint8) (colorutil.RGB, bool) {
	if box.Empty() {
		return colorutil.RGB{}, false
	}

	var rs, gs, bs []float64
	for y := box.Min.Y; y < box.Max.Y; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			// Mat channel order is B,G,R; samples are RGB.
			v := strip.GetVecbAt(y, x)
			b, g, r := v[0], v[1], v[2]
			if b < whiteThreshold && g < whiteThreshold && r < whiteThreshold {
				rs = append(rs, float64(r))
				gs = append(gs, float64(g))
				bs = append(bs, float64(b))
			}
		}
	}
	if len(rs) == 0 {
		return colorutil.White, true
	}

	return colorutil.RGB{
		R: uint8(math.Round(stat.Mean(rs, nil))),
		G: uint8(math.Round(stat.Mean(gs, nil))),
		B: uint8(math.Round(stat.Mean(bs, nil))),
	}, false
}
