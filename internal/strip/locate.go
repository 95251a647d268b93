package strip

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"stripscan/pkg/geometry"
)

// locate finds the strip's two dominant aligned edges and derives the
// quadrilateral crop region from their border intersections.
func locate(img gocv.Mat, p Params) (geometry.Quad, error) {
	edges := edgeMap(img, p)
	defer edges.Close()

	mainLines := houghLines(edges, p.HoughRho, p.HoughTheta, p.MainVoteThreshold)
	if len(mainLines) == 0 {
		return geometry.Quad{}, ErrNoMainLine
	}
	main := mainLines[0]

	candidates := houghLines(edges, p.HoughRho, p.HoughTheta, p.SecondaryVoteThreshold)
	secondary, ok := firstAligned(candidates, main, p)
	if !ok {
		return geometry.Quad{}, ErrNoSecondaryLine
	}

	width, height := img.Cols(), img.Rows()
	points := main.BorderIntersections(width, height)
	points = append(points, secondary.BorderIntersections(width, height)...)
	if len(points) < 4 {
		return geometry.Quad{}, fmt.Errorf("%w: got %d points", ErrInsufficientGeometry, len(points))
	}

	quad, err := geometry.NewQuad(points)
	if err != nil {
		return geometry.Quad{}, fmt.Errorf("%w: %v", ErrInsufficientGeometry, err)
	}
	return quad, nil
}

// edgeMap builds the binary edge raster the Hough passes vote on:
// blur, grayscale, Laplacian response, threshold, median despeckle.
func edgeMap(img gocv.Mat, p Params) gocv.Mat {
	blurred := gocv.NewMat()
	defer blurred.Close()
	ksize := image.Pt(p.GaussianKernel, p.GaussianKernel)
	gocv.GaussianBlur(img, &blurred, ksize, p.GaussianSigma, p.GaussianSigma, gocv.BorderDefault)

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(blurred, &gray, gocv.ColorBGRToGray)

	response := gocv.NewMat()
	defer response.Close()
	gocv.Laplacian(gray, &response, gocv.MatTypeCV32F, 1, 1, 0, gocv.BorderDefault)

	binary := gocv.NewMat()
	defer binary.Close()
	gocv.Threshold(response, &binary, p.LaplacianThreshold, 255, gocv.ThresholdBinary)

	smoothed := gocv.NewMat()
	defer smoothed.Close()
	gocv.MedianBlur(binary, &smoothed, p.MedianKernel)

	edges := gocv.NewMat()
	smoothed.ConvertTo(&edges, gocv.MatTypeCV8U)
	return edges
}

// houghLines runs the standard Hough transform and returns the detected
// lines in vote order, strongest first.
func houghLines(edges gocv.Mat, rho, theta float32, votes int) []geometry.PolarLine {
	detected := gocv.NewMat()
	defer detected.Close()
	gocv.HoughLines(edges, &detected, rho, theta, votes)

	lines := make([]geometry.PolarLine, 0, detected.Rows())
	for i := 0; i < detected.Rows(); i++ {
		v := detected.GetVecfAt(i, 0)
		lines = append(lines, geometry.PolarLine{Rho: float64(v[0]), Theta: float64(v[1])})
	}
	return lines
}

// firstAligned returns the first candidate that runs parallel (or
// anti-parallel) to the main line but along a different physical edge.
func firstAligned(candidates []geometry.PolarLine, main geometry.PolarLine, p Params) (geometry.PolarLine, bool) {
	for _, c := range candidates {
		if c.AlignedWith(main, p.AngleTolerance) && c.SeparatedFrom(main, p.MinRhoSeparation) {
			return c, true
		}
	}
	return geometry.PolarLine{}, false
}
