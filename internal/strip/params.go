// Package strip implements the colorimetric test-strip decoding pipeline:
// locate the strip in a photograph, rectify it, sample the reagent pads,
// and resolve each pad color to an analyte concentration.
package strip

import "math"

// Params holds the pipeline tuning constants. All stages take their
// thresholds from here so tests can run against synthetic fixtures
// without touching global state.
type Params struct {
	// Edge map construction
	GaussianKernel     int     // Blur kernel side; odd
	GaussianSigma      float64 // 0 lets OpenCV derive sigma from the kernel
	LaplacianThreshold float32 // Edge response cutoff before binarization
	MedianKernel       int     // Speckle suppression on the binary edge map

	// Hough line detection. The primary pass wants one unambiguous strong
	// edge, so its vote threshold is high; the secondary pass casts a wide
	// net and relies on the alignment filter.
	HoughRho               float32 // Distance resolution in pixels
	HoughTheta             float32 // Angular resolution in radians
	MainVoteThreshold      int
	SecondaryVoteThreshold int
	AngleTolerance         float64 // Parallel/anti-parallel tolerance, radians
	MinRhoSeparation       float64 // Below this the lines are the same physical edge

	// Substrate isolation within the first crop
	SubstrateThreshold float32 // The strip body is light against background
	MorphKernel        int     // Close/open kernel side for mask cleanup
	MinContourArea     float64 // Contours smaller than this are noise

	// Band sampling
	Sections       int   // Equal-height sections along the strip
	SectionStride  int   // Sample every Nth section
	BandWidth      int   // Pixel width of the centerline band
	WhiteThreshold uint8 // Pixels with any channel at or above are background/glare

	// Orientation heuristic
	GrayWhiteThreshold uint8 // All channels above this reads as a blank pad
}

// DefaultParams returns parameters tuned for handheld photos of 16-pad
// consumer test strips against a darker background.
func DefaultParams() Params {
	return Params{
		GaussianKernel:     9,
		GaussianSigma:      0,
		LaplacianThreshold: 3,
		MedianKernel:       3,

		HoughRho:               1,
		HoughTheta:             float32(math.Pi / 180),
		MainVoteThreshold:      200,
		SecondaryVoteThreshold: 50,
		AngleTolerance:         0.01,
		MinRhoSeparation:       40,

		SubstrateThreshold: 160,
		MorphKernel:        1,
		MinContourArea:     700,

		Sections:       52,
		SectionStride:  3,
		BandWidth:      15,
		WhiteThreshold: 240,

		GrayWhiteThreshold: 170,
	}
}

// WithSections returns a copy of params with a different section count
// and stride.
func (p Params) WithSections(sections, stride int) Params {
	p.Sections = sections
	p.SectionStride = stride
	return p
}

// WithVoteThresholds returns a copy of params with custom Hough vote
// thresholds. Useful for small synthetic fixtures where edges are short.
func (p Params) WithVoteThresholds(main, secondary int) Params {
	p.MainVoteThreshold = main
	p.SecondaryVoteThreshold = secondary
	return p
}

// SampledBands returns how many bands the sampler will produce for these
// parameters.
func (p Params) SampledBands() int {
	if p.SectionStride <= 0 {
		return 0
	}
	return p.Sections / p.SectionStride
}
