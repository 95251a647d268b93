package strip

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"stripscan/internal/imageio"
)

// ProcessWithOverlay is Process plus an annotated copy of the rectified
// strip with each sampled band outlined and labeled, for visual debugging
// of calibration issues. The caller owns the returned Mat.
func (pl *Pipeline) ProcessWithOverlay(buf []byte) (*Report, gocv.Mat, error) {
	img, err := imageio.Decode(buf)
	if err != nil {
		return nil, gocv.Mat{}, err
	}
	defer img.Close()

	report, rectified, err := pl.analyze(img)
	if err != nil {
		return nil, gocv.Mat{}, err
	}

	overlay := renderOverlay(rectified, report.Bands)
	rectified.Close()
	return report, overlay, nil
}

func renderOverlay(strip gocv.Mat, bands []BandSample) gocv.Mat {
	out := strip.Clone()
	green := color.RGBA{G: 255, A: 255}
	for _, band := range bands {
		gocv.Rectangle(&out, band.Box, green, 2)
		label := fmt.Sprintf("Section %d: RGB%s", band.Section, band.Color)
		origin := image.Pt(5, band.Box.Min.Y+20)
		gocv.PutText(&out, label, origin, gocv.FontHersheySimplex, 0.6, green, 2)
	}
	return out
}
