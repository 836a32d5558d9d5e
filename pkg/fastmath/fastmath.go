// Package fastmath provides the trigonometric primitives used by the
// imaging hot loops. Two interchangeable strategies are offered: an exact
// one backed by the standard library, and a polynomial approximation that
// trades a bounded error for speed. Callers pick the strategy once at
// configuration time and pass it down; the numeric code never branches on
// precision itself.
package fastmath

import "math"

const twoPi = 2 * math.Pi

// Trig computes sine and cosine of an angle in radians. Implementations
// must be safe for concurrent use; both provided strategies are stateless.
type Trig interface {
	// SinCos returns (sin(x), cos(x))
	SinCos(x float64) (sin, cos float64)

	// MaxError is the documented worst-case absolute error of the
	// strategy, part of its contract so callers can choose based on
	// required precision. Zero means exact to machine precision.
	MaxError() float64
}

// Exact evaluates sine and cosine with the standard library.
type Exact struct{}

// SinCos returns math.Sin(x) and math.Cos(x).
func (Exact) SinCos(x float64) (float64, float64) {
	return math.Sincos(x)
}

// MaxError reports zero: Exact is accurate to machine precision.
func (Exact) MaxError() float64 { return 0 }

// Fast approximates sine and cosine with a 7th-order Taylor polynomial
// after range reduction to [0, pi/2].
//
// Accuracy:
//   - worst-case absolute error ~1e-3 (0.1%)
//   - typical error ~1e-4 (0.01%)
//
// The phase terms accumulated per pixel are well inside this tolerance
// for display-resolution imaging, which is the intended use.
type Fast struct{}

// SinCos returns polynomial approximations of sin(x) and cos(x).
func (Fast) SinCos(x float64) (float64, float64) {
	// Reduce to [-pi, pi] in one step rather than looping
	angle := x - math.Round(x/twoPi)*twoPi

	sinSign := 1.0
	if angle < 0 {
		sinSign = -1.0
		angle = -angle
	}

	// Fold [pi/2, pi] onto [0, pi/2]; cosine flips sign in that half
	cosSign := 1.0
	if angle > math.Pi/2 {
		angle = math.Pi - angle
		cosSign = -1.0
	}

	x2 := angle * angle

	// Horner form of the Taylor series up to x^7 (sin) and x^6 (cos)
	sinPoly := 1.0 - x2*(1.0/6.0-x2*(1.0/120.0-x2/5040.0))
	cosPoly := 1.0 - x2*(0.5-x2*(1.0/24.0-x2/720.0))

	return sinSign * angle * sinPoly, cosSign * cosPoly
}

// MaxError reports the documented worst-case absolute error bound.
func (Fast) MaxError() float64 { return 1e-3 }

// Magnitude returns |z| for a complex accumulator value. The explicit
// zero check avoids a wasted sqrt on the empty pixels that dominate
// sparsely illuminated skies.
func Magnitude(z complex128) float64 {
	re, im := real(z), imag(z)
	normSq := re*re + im*im
	if normSq == 0 {
		return 0
	}
	return math.Sqrt(normSq)
}
