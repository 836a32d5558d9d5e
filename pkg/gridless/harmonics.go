// Package gridless reconstructs sky brightness directly from calibrated
// visibilities, without regridding onto a uniform uv-plane. For every
// baseline it evaluates the complex exponential response at every
// visible hemisphere pixel, accumulates the visibility-weighted
// harmonics per pixel, and reduces the complex sums to a real image.
package gridless

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/tart-telescope/web-app/pkg/fastmath"
	"github.com/tart-telescope/web-app/pkg/sphere"
)

// Options selects the numerics of a reconstruction run. The zero value
// picks the fast trigonometry path and one worker per CPU.
type Options struct {
	// Trig is the sine/cosine strategy for the harmonic phases. Nil
	// selects fastmath.Fast; callers needing exact results pass
	// fastmath.Exact.
	Trig fastmath.Trig

	// Workers bounds the goroutines computing baseline harmonics.
	// Zero or negative means GOMAXPROCS.
	Workers int
}

func (o Options) trig() fastmath.Trig {
	if o.Trig == nil {
		return fastmath.Fast{}
	}
	return o.Trig
}

func (o Options) workers() int {
	if o.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return o.Workers
}

// Harmonics computes the per-baseline Fourier harmonic arrays for the
// given sky. For baseline k and pixel p:
//
//	phase = -2*pi * (u_k*l_p + v_k*m_p + w_k*(n_p - 1))
//	harmonic = cos(phase) + i*sin(phase)
//
// Baselines are mutually independent, so they are distributed over a
// bounded worker pool; each worker writes only its own rows, which keeps
// the output identical regardless of scheduling order.
func Harmonics(sky *sphere.Hemisphere, u, v, w []float64, opts Options) [][]complex128 {
	numBaselines := len(u)
	numPixels := sky.NumPixels()
	trig := opts.trig()

	// (n - 1) is the same for every baseline; hoist it out of the loop
	nMinusOne := make([]float64, numPixels)
	for p, n := range sky.N {
		nMinusOne[p] = n - 1
	}

	harmonics := make([][]complex128, numBaselines)

	var g errgroup.Group
	g.SetLimit(opts.workers())
	for k := 0; k < numBaselines; k++ {
		k := k
		g.Go(func() error {
			uk, vk, wk := u[k], v[k], w[k]
			row := make([]complex128, numPixels)
			for p := 0; p < numPixels; p++ {
				phase := -2 * math.Pi * (uk*sky.L[p] + vk*sky.M[p] + wk*nMinusOne[p])
				sin, cos := trig.SinCos(phase)
				row[p] = complex(cos, sin)
			}
			harmonics[k] = row
			return nil
		})
	}
	// Workers never return errors; Wait is only the join point.
	_ = g.Wait()

	return harmonics
}
