package strip

import (
	"errors"

	"stripscan/internal/imageio"
)

// Pipeline failures are terminal: any of these aborts the whole call and
// no partial result is produced. Callers match them with errors.Is.
var (
	// ErrDecode mirrors the loader's sentinel so callers only need this
	// package to classify failures.
	ErrDecode = imageio.ErrDecode

	ErrNoMainLine           = errors.New("no main strip edge detected")
	ErrNoSecondaryLine      = errors.New("no secondary strip edge detected")
	ErrInsufficientGeometry = errors.New("too few boundary intersections for a crop region")
	ErrNoStripContour       = errors.New("no strip contour above minimum area")
)
