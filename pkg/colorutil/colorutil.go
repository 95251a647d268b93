// Package colorutil provides the RGB color type and color-distance
// helpers shared by the strip decoding pipeline.
package colorutil

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit-per-channel color triple in RGB order.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// White is the sentinel color reported for unreadable pads.
var White = RGB{R: 255, G: 255, B: 255}

// SquaredDistanceTo returns the squared Euclidean distance between two
// colors in RGB space.
func (c RGB) SquaredDistanceTo(other RGB) int {
	dr := int(c.R) - int(other.R)
	dg := int(c.G) - int(other.G)
	db := int(c.B) - int(other.B)
	return dr*dr + dg*dg + db*db
}

// AllBelow reports whether every channel is strictly below threshold.
func (c RGB) AllBelow(threshold uint8) bool {
	return c.R < threshold && c.G < threshold && c.B < threshold
}

// AllAbove reports whether every channel is strictly above threshold.
// Used to classify near-white/gray pad colors.
func (c RGB) AllAbove(threshold uint8) bool {
	return c.R > threshold && c.G > threshold && c.B > threshold
}

// Hex returns the color as a "#rrggbb" string.
func (c RGB) Hex() string {
	return c.toColorful().Hex()
}

func (c RGB) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.R, c.G, c.B)
}

func (c RGB) toColorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}
