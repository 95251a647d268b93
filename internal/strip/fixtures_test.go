package strip

import (
	"image"
	"image/color"
	"testing"

	"gocv.io/x/gocv"

	"stripscan/pkg/colorutil"
)

// makeSolidMat creates a BGR Mat filled with one color.
func makeSolidMat(rows, cols int, c color.RGBA) gocv.Mat {
	scalar := gocv.NewScalar(float64(c.B), float64(c.G), float64(c.R), 0)
	return gocv.NewMatWithSizeFromScalar(scalar, rows, cols, gocv.MatTypeCV8UC3)
}

// makeStripScene creates a dark photo with a bright strip rectangle, the
// simplest scene the locator can resolve.
func makeStripScene(width, height int, strip image.Rectangle) gocv.Mat {
	scene := makeSolidMat(height, width, color.RGBA{A: 255})
	gocv.Rectangle(&scene, strip, color.RGBA{R: 255, G: 255, B: 255, A: 255}, -1)
	return scene
}

// encodePNG turns a Mat into PNG bytes for the decode entry points.
func encodePNG(t *testing.T, mat gocv.Mat) []byte {
	t.Helper()
	buf, err := gocv.IMEncode(gocv.PNGFileExt, mat)
	if err != nil {
		t.Fatalf("png encode: %v", err)
	}
	defer buf.Close()
	out := make([]byte, len(buf.GetBytes()))
	copy(out, buf.GetBytes())
	return out
}

// band builds a BandSample with just a color, for resolver tests.
func band(section int, r, g, b uint8) BandSample {
	return BandSample{Section: section, Color: colorutil.RGB{R: r, G: g, B: b}}
}
