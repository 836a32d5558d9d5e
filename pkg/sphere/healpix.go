package sphere

import "math"

// The HEALPix tessellation divides the sphere into 12*nside^2 equal-area
// pixels arranged on iso-latitude rings. Only the ring indexing scheme is
// implemented here: ring order enumerates pixels north to south, which
// gives the hemisphere builder its stable, deterministic pixel ordering.

// Npix returns the total number of pixels on the full sphere for the
// given resolution parameter.
func Npix(nside int) int {
	return 12 * nside * nside
}

// ncap is the number of pixels in the north polar cap, i.e. in the rings
// strictly above the northern equatorial belt boundary.
func ncap(nside int) int {
	return 2 * nside * (nside - 1)
}

// ValidNside reports whether nside is a positive power of two.
func ValidNside(nside int) bool {
	return nside > 0 && nside&(nside-1) == 0
}

// PixelCenter returns the angular center of ring-scheme pixel p as a
// colatitude theta in [0, pi] and longitude phi in [0, 2*pi). The caller
// is expected to pass a valid nside and 0 <= p < Npix(nside); the routine
// does not re-validate.
func PixelCenter(nside, p int) (theta, phi float64) {
	npix := Npix(nside)
	npolar := ncap(nside)
	fnside := float64(nside)

	switch {
	case p < npolar:
		// North polar cap: ring i has 4i pixels
		hip := (float64(p) + 1) / 2
		iring := int(math.Sqrt(hip-math.Sqrt(math.Floor(hip)))) + 1
		iphi := p + 1 - 2*iring*(iring-1)

		z := 1 - float64(iring*iring)/(3*fnside*fnside)
		theta = math.Acos(z)
		phi = (float64(iphi) - 0.5) * math.Pi / (2 * float64(iring))

	case p < npix-npolar:
		// Equatorial belt: every ring has 4*nside pixels, with a
		// half-pixel longitude stagger on alternate rings
		ip := p - npolar
		iring := ip/(4*nside) + nside
		iphi := ip%(4*nside) + 1

		fodd := 0.5 * float64(1+(iring+nside)&1)
		z := 4.0/3.0 - 2*float64(iring)/(3*fnside)
		theta = math.Acos(z)
		phi = (float64(iphi) - fodd) * math.Pi / (2 * fnside)

	default:
		// South polar cap, mirror of the north cap
		ip := npix - p
		hip := float64(ip) / 2
		iring := int(math.Sqrt(hip-math.Sqrt(math.Floor(hip)))) + 1
		iphi := 4*iring + 1 - (ip - 2*iring*(iring-1))

		z := -1 + float64(iring*iring)/(3*fnside*fnside)
		theta = math.Acos(z)
		phi = (float64(iphi) - 0.5) * math.Pi / (2 * float64(iring))
	}

	return theta, phi
}
