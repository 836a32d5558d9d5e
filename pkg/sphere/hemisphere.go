package sphere

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidNside is returned when a hemisphere is requested for a
// resolution parameter that is zero or not a power of two.
var ErrInvalidNside = errors.New("nside must be a positive power of two")

// Hemisphere holds the visible-sky pixel grid for one resolution
// parameter. All slices are parallel: entry k describes visible pixel k.
// The geometry fields are immutable after construction; only Pixels, the
// brightness array, is overwritten by reconstruction.
type Hemisphere struct {
	// Nside is the HEALPix resolution parameter this grid was built for
	Nside int

	// VisibleIndices maps each visible pixel back to its ring-scheme
	// index on the full sphere
	VisibleIndices []int

	// El and Az are the pixel center directions in radians
	El []float64
	Az []float64

	// L, M, N are the direction cosines of the pixel centers
	L []float64
	M []float64
	N []float64

	// Pixels is the brightness value per visible pixel, zero until a
	// reconstruction writes it
	Pixels []float64
}

// NewHemisphere enumerates the full-sphere tessellation for nside and
// keeps the pixels above the horizon (colatitude strictly less than
// pi/2). Pixels are kept in ascending ring order, so the layout is
// deterministic for a given nside.
func NewHemisphere(nside int) (*Hemisphere, error) {
	if !ValidNside(nside) {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidNside, nside)
	}

	npix := Npix(nside)

	// First pass: count visible pixels so every slice is sized exactly
	// once. The horizon ring itself (theta == pi/2) is not visible.
	visible := 0
	for p := 0; p < npix; p++ {
		theta, _ := PixelCenter(nside, p)
		if theta < math.Pi/2 {
			visible++
		}
	}

	h := &Hemisphere{
		Nside:          nside,
		VisibleIndices: make([]int, 0, visible),
		El:             make([]float64, 0, visible),
		Az:             make([]float64, 0, visible),
		L:              make([]float64, 0, visible),
		M:              make([]float64, 0, visible),
		N:              make([]float64, 0, visible),
		Pixels:         make([]float64, visible),
	}

	// Second pass: fill the pre-sized slices
	for p := 0; p < npix; p++ {
		theta, phi := PixelCenter(nside, p)
		if theta >= math.Pi/2 {
			continue
		}

		ea := ElAzFromHp(HpAngle{Theta: theta, Phi: phi})
		l, m, n := ea.LMN()

		h.VisibleIndices = append(h.VisibleIndices, p)
		h.El = append(h.El, ea.El)
		h.Az = append(h.Az, ea.Az)
		h.L = append(h.L, l)
		h.M = append(h.M, m)
		h.N = append(h.N, n)
	}

	return h, nil
}

// NumPixels returns the visible pixel count.
func (h *Hemisphere) NumPixels() int {
	return len(h.Pixels)
}

// Copy returns a deep copy of the hemisphere. Mutating the copy's
// brightness array does not affect the receiver, which is what lets the
// cache hand out hemispheres without being corrupted by callers.
func (h *Hemisphere) Copy() *Hemisphere {
	dup := &Hemisphere{
		Nside:          h.Nside,
		VisibleIndices: make([]int, len(h.VisibleIndices)),
		El:             make([]float64, len(h.El)),
		Az:             make([]float64, len(h.Az)),
		L:              make([]float64, len(h.L)),
		M:              make([]float64, len(h.M)),
		N:              make([]float64, len(h.N)),
		Pixels:         make([]float64, len(h.Pixels)),
	}
	copy(dup.VisibleIndices, h.VisibleIndices)
	copy(dup.El, h.El)
	copy(dup.Az, h.Az)
	copy(dup.L, h.L)
	copy(dup.M, h.M)
	copy(dup.N, h.N)
	copy(dup.Pixels, h.Pixels)
	return dup
}
