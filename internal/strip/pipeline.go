package strip

import (
	"fmt"

	"github.com/rs/zerolog"
	"gocv.io/x/gocv"

	"stripscan/internal/calibration"
	"stripscan/internal/imageio"
)

// Pipeline decodes a strip photograph into analyte readings. It holds no
// per-call state, so one Pipeline may serve concurrent invocations.
type Pipeline struct {
	params Params
	table  calibration.Table
	log    zerolog.Logger
}

// NewPipeline builds a pipeline with the given tuning parameters and
// calibration table. Pass zerolog.Nop() to silence stage logging.
func NewPipeline(params Params, table calibration.Table, log zerolog.Logger) *Pipeline {
	return &Pipeline{params: params, table: table, log: log}
}

// Report is the terminal output of one pipeline invocation.
type Report struct {
	Readings              map[string]Reading `json:"readings"`
	OrientationConfidence string             `json:"orientation_confidence"`
	Bands                 []BandSample       `json:"bands"`
}

// Process runs the full decode→locate→rectify→sample→resolve chain on an
// encoded image. It either returns a complete report or one of the
// pipeline's sentinel errors; there is no partial result.
func (pl *Pipeline) Process(buf []byte) (*Report, error) {
	img, err := imageio.Decode(buf)
	if err != nil {
		return nil, err
	}
	defer img.Close()

	report, rectified, err := pl.analyze(img)
	if err != nil {
		return nil, err
	}
	rectified.Close()
	return report, nil
}

// ProcessBase64 is Process for a base64-encoded image payload.
func (pl *Pipeline) ProcessBase64(encoded string) (*Report, error) {
	img, err := imageio.DecodeBase64(encoded)
	if err != nil {
		return nil, err
	}
	defer img.Close()

	report, rectified, err := pl.analyze(img)
	if err != nil {
		return nil, err
	}
	rectified.Close()
	return report, nil
}

// analyze runs the stages after decode. On success the caller owns the
// returned rectified strip Mat.
func (pl *Pipeline) analyze(img gocv.Mat) (*Report, gocv.Mat, error) {
	pl.log.Debug().
		Int("width", img.Cols()).
		Int("height", img.Rows()).
		Msg("locating strip")

	quad, err := locate(img, pl.params)
	if err != nil {
		return nil, gocv.Mat{}, fmt.Errorf("locate strip: %w", err)
	}

	rectified, err := rectify(img, quad, pl.params)
	if err != nil {
		return nil, gocv.Mat{}, fmt.Errorf("rectify strip: %w", err)
	}

	pl.log.Debug().
		Int("strip_width", rectified.Cols()).
		Int("strip_height", rectified.Rows()).
		Msg("strip rectified")

	bands := sampleBands(rectified, pl.params)
	readings, confidence := resolve(bands, pl.table, pl.params)
	if confidence == OrientationLow {
		pl.log.Warn().Msg("neither strip end reads as a blank pad; assuming printed order")
	}

	report := &Report{
		Readings:              readings,
		OrientationConfidence: confidence,
		Bands:                 bands,
	}
	return report, rectified, nil
}
