// Package sphere models the visible sky as a pixelated hemisphere on the
// HEALPix equal-area tessellation. It provides the angular coordinate
// conversions, the hemisphere builder, a single-slot geometry cache and a
// binary codec for transferring hemisphere geometry between processes.
package sphere

import "math"

// ElAz is a sky direction as elevation above the horizon and azimuth,
// both in radians.
type ElAz struct {
	El float64
	Az float64
}

// HpAngle is the angle convention used by the HEALPix tessellation:
// Theta is a colatitude (zero at the zenith, pi/2 at the horizon) and
// Phi is a longitude.
type HpAngle struct {
	Theta float64
	Phi   float64
}

// LonLat is a longitude/latitude pair, the native output of the HEALPix
// pixel center computation.
type LonLat struct {
	Lon float64
	Lat float64
}

// HpFromElAz converts elevation/azimuth to the HEALPix angle convention.
// Azimuth increases clockwise from north, hence the sign flip on Phi.
func HpFromElAz(el, az float64) HpAngle {
	return HpAngle{Theta: math.Pi/2 - el, Phi: -az}
}

// HpFromLonLat converts a longitude/latitude pair to colatitude/longitude.
func HpFromLonLat(ll LonLat) HpAngle {
	return HpAngle{Theta: math.Pi/2 - ll.Lat, Phi: ll.Lon}
}

// ElAzFromHp converts colatitude/longitude back to elevation/azimuth.
func ElAzFromHp(hp HpAngle) ElAz {
	return ElAz{El: math.Pi/2 - hp.Theta, Az: -hp.Phi}
}

// Proj projects the direction onto the unit disk as seen from straight
// above, for drawing on a 2-D surface. The zenith maps to the origin and
// the horizon to the unit circle.
func (hp HpAngle) Proj() (x, y float64) {
	r := math.Sin(hp.Theta)
	sinPhi, cosPhi := math.Sincos(hp.Phi)
	return r * sinPhi, -r * cosPhi
}

// LMN returns the direction cosines of the sky direction relative to the
// observing frame: l east, m north, n up.
func (ea ElAz) LMN() (l, m, n float64) {
	sinAz, cosAz := math.Sincos(ea.Az)
	sinEl, cosEl := math.Sincos(ea.El)
	l = sinAz * cosEl
	m = cosAz * cosEl
	// n could equally be written sqrt(1 - l^2 - m^2)
	n = sinEl
	return l, m, n
}
