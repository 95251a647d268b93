// Package imageio decodes encoded image buffers into OpenCV rasters.
package imageio

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"gocv.io/x/gocv"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrDecode reports that an input buffer is not a decodable image or
// decoded to an empty raster.
var ErrDecode = errors.New("image decode failed")

// Decode turns encoded image bytes into a BGR Mat. The caller owns the
// returned Mat and must Close it.
func Decode(buf []byte) (gocv.Mat, error) {
	if len(buf) == 0 {
		return gocv.Mat{}, fmt.Errorf("%w: empty buffer", ErrDecode)
	}

	mat, err := gocv.IMDecode(buf, gocv.IMReadColor)
	if err == nil && !mat.Empty() {
		return mat, nil
	}
	if err == nil {
		mat.Close()
	}

	// Fall back to the Go decoders for formats the OpenCV build may lack
	// (webp, bmp, some tiff variants).
	img, _, derr := image.Decode(bytes.NewReader(buf))
	if derr != nil {
		return gocv.Mat{}, fmt.Errorf("%w: %v", ErrDecode, derr)
	}
	return fromImage(img)
}

// DecodeBase64 decodes a base64-encoded image payload, the wire format
// the upstream capture flow submits.
func DecodeBase64(encoded string) (gocv.Mat, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return gocv.Mat{}, fmt.Errorf("%w: invalid base64: %v", ErrDecode, err)
	}
	return Decode(raw)
}

func fromImage(img image.Image) (gocv.Mat, error) {
	rgb, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return gocv.Mat{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if rgb.Empty() {
		rgb.Close()
		return gocv.Mat{}, fmt.Errorf("%w: zero-size raster", ErrDecode)
	}
	// The pipeline works in BGR like the rest of the OpenCV surface.
	// The RGB<->BGR swap is symmetric, so the same conversion code works.
	bgr := gocv.NewMat()
	gocv.CvtColor(rgb, &bgr, gocv.ColorBGRToRGB)
	rgb.Close()
	return bgr, nil
}
