package strip

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"stripscan/pkg/geometry"
)

// rectify crops the photo to the located region, isolates the light strip
// substrate inside it, and returns the strip raster oriented vertically.
// The caller owns the returned Mat.
func rectify(img gocv.Mat, quad geometry.Quad, p Params) (gocv.Mat, error) {
	frame := image.Rect(0, 0, img.Cols(), img.Rows())
	bounds := quad.Bounds().Intersect(frame)
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return gocv.Mat{}, fmt.Errorf("%w: crop region is empty", ErrNoStripContour)
	}

	roi := img.Region(bounds)
	cropped := roi.Clone()
	roi.Close()
	defer cropped.Close()

	union, err := substrateBounds(cropped, p)
	if err != nil {
		return gocv.Mat{}, err
	}

	stripRegion := cropped.Region(union)
	rectified := stripRegion.Clone()
	stripRegion.Close()

	// Process top-to-bottom regardless of how the strip lay in the photo.
	if rectified.Cols() > rectified.Rows() {
		rotated := gocv.NewMat()
		gocv.Rotate(rectified, &rotated, gocv.Rotate90Clockwise)
		rectified.Close()
		return rotated, nil
	}
	return rectified, nil
}

// substrateBounds finds the union bounding box of all sufficiently large
// light-colored contours in the crop. This trims away background that
// survived the first crop.
func substrateBounds(cropped gocv.Mat, p Params) (image.Rectangle, error) {
	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(cropped, &gray, gocv.ColorBGRToGray)

	mask := gocv.NewMat()
	defer mask.Close()
	gocv.Threshold(gray, &mask, p.SubstrateThreshold, 255, gocv.ThresholdBinary)

	kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Pt(p.MorphKernel, p.MorphKernel))
	defer kernel.Close()
	gocv.MorphologyEx(mask, &mask, gocv.MorphClose, kernel)
	gocv.MorphologyEx(mask, &mask, gocv.MorphOpen, kernel)

	contours := gocv.FindContours(mask, gocv.RetrievalList, gocv.ChainApproxSimple)
	defer contours.Close()

	var union image.Rectangle
	found := false
	for i := 0; i < contours.Size(); i++ {
		contour := contours.At(i)
		if gocv.ContourArea(contour) <= p.MinContourArea {
			continue
		}
		box := gocv.BoundingRect(contour)
		if !found {
			union = box
			found = true
		} else {
			union = union.Union(box)
		}
	}
	if !found {
		return image.Rectangle{}, ErrNoStripContour
	}
	return union.Intersect(image.Rect(0, 0, cropped.Cols(), cropped.Rows())), nil
}
