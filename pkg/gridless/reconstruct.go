package gridless

import (
	"errors"
	"fmt"
	"math"

	"github.com/tart-telescope/web-app/pkg/fastmath"
	"github.com/tart-telescope/web-app/pkg/sphere"
)

var (
	// ErrDimensionMismatch reports visibility/coordinate arrays that
	// disagree in length.
	ErrDimensionMismatch = errors.New("visibility and coordinate arrays must have the same length")

	// ErrEmptySky reports a hemisphere with no visible pixels. Every
	// valid nside produces a non-empty hemisphere, so hitting this
	// means the caller handed over a corrupted geometry.
	ErrEmptySky = errors.New("sky hemisphere has no visible pixels")
)

// Reconstruct computes the sky image for one observation and writes it
// into sky's brightness array. Each baseline's visibility weights its
// harmonic array; the weighted harmonics are summed per pixel,
// normalized by 1/sqrt(pixel count), and reduced to a real value:
// the real part when realOnly is set (cheaper, assumes symmetric
// coverage), the magnitude otherwise (robust to asymmetric coverage).
//
// On any validation error the brightness array is left exactly as it
// was; there is no partial output.
func Reconstruct(vis []complex128, u, v, w []float64, sky *sphere.Hemisphere, realOnly bool, opts Options) error {
	numBaselines := len(vis)
	if len(u) != numBaselines || len(v) != numBaselines || len(w) != numBaselines {
		return fmt.Errorf("%w: vis=%d u=%d v=%d w=%d",
			ErrDimensionMismatch, numBaselines, len(u), len(v), len(w))
	}

	numPixels := sky.NumPixels()
	if numPixels == 0 {
		return ErrEmptySky
	}

	harmonics := Harmonics(sky, u, v, w, opts)

	// Accumulate into a scratch buffer so a future failure mode could
	// never leave sky half written
	acc := make([]complex128, numPixels)
	for k, visibility := range vis {
		row := harmonics[k]
		for p := 0; p < numPixels; p++ {
			acc[p] += visibility * row[p]
		}
	}

	norm := 1 / math.Sqrt(float64(numPixels))
	if realOnly {
		for p := 0; p < numPixels; p++ {
			sky.Pixels[p] = real(acc[p]) * norm
		}
	} else {
		for p := 0; p < numPixels; p++ {
			sky.Pixels[p] = fastmath.Magnitude(acc[p]) * norm
		}
	}

	return nil
}
