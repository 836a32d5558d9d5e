package sphere

import (
	"math"
	"testing"
)

func TestHpFromElAzZenith(t *testing.T) {
	hp := HpFromElAz(math.Pi/2, 0)
	if hp.Theta != 0 {
		t.Errorf("zenith colatitude = %v, want 0", hp.Theta)
	}
}

func TestHpFromElAzHorizon(t *testing.T) {
	hp := HpFromElAz(0, 0)
	if hp.Theta != math.Pi/2 {
		t.Errorf("horizon colatitude = %v, want pi/2", hp.Theta)
	}

	ea := ElAzFromHp(hp)
	if ea.El != 0 {
		t.Errorf("round-trip elevation = %v, want 0", ea.El)
	}
	if ea.Az != 0 {
		t.Errorf("round-trip azimuth = %v, want 0", ea.Az)
	}
}

func TestLonLatHpRoundTrip(t *testing.T) {
	ll := LonLat{Lon: 1.2, Lat: 0.4}
	hp := HpFromLonLat(ll)
	if math.Abs(hp.Theta-(math.Pi/2-0.4)) > 1e-15 {
		t.Errorf("colatitude = %v, want %v", hp.Theta, math.Pi/2-0.4)
	}
	if hp.Phi != 1.2 {
		t.Errorf("longitude = %v, want 1.2", hp.Phi)
	}
}

// TestLMNUnitNorm checks l^2+m^2+n^2 == 1 for a spread of directions.
func TestLMNUnitNorm(t *testing.T) {
	for el := 0.0; el <= math.Pi/2; el += math.Pi / 20 {
		for az := -math.Pi; az <= math.Pi; az += math.Pi / 10 {
			l, m, n := (ElAz{El: el, Az: az}).LMN()
			norm := l*l + m*m + n*n
			if math.Abs(norm-1) > 1e-12 {
				t.Fatalf("LMN(el=%v, az=%v) norm = %v, want 1", el, az, norm)
			}
		}
	}
}

func TestLMNKnownDirections(t *testing.T) {
	// Zenith: n = 1, l = m = 0
	l, m, n := (ElAz{El: math.Pi / 2, Az: 0}).LMN()
	if math.Abs(l) > 1e-15 || math.Abs(m) > 1e-15 || math.Abs(n-1) > 1e-15 {
		t.Errorf("zenith LMN = (%v, %v, %v), want (0, 0, 1)", l, m, n)
	}

	// North horizon: m = 1
	l, m, n = (ElAz{El: 0, Az: 0}).LMN()
	if math.Abs(l) > 1e-15 || math.Abs(m-1) > 1e-15 || math.Abs(n) > 1e-15 {
		t.Errorf("north horizon LMN = (%v, %v, %v), want (0, 1, 0)", l, m, n)
	}

	// East horizon: l = 1
	l, m, n = (ElAz{El: 0, Az: math.Pi / 2}).LMN()
	if math.Abs(l-1) > 1e-15 || math.Abs(m) > 1e-15 || math.Abs(n) > 1e-15 {
		t.Errorf("east horizon LMN = (%v, %v, %v), want (1, 0, 0)", l, m, n)
	}
}

func TestProjZenithAndHorizon(t *testing.T) {
	// Zenith projects to the origin
	x, y := (HpAngle{Theta: 0, Phi: 0}).Proj()
	if math.Abs(x) > 1e-15 || math.Abs(y) > 1e-15 {
		t.Errorf("zenith projects to (%v, %v), want origin", x, y)
	}

	// A horizon point projects onto the unit circle
	x, y = (HpAngle{Theta: math.Pi / 2, Phi: 1.1}).Proj()
	if r := math.Hypot(x, y); math.Abs(r-1) > 1e-12 {
		t.Errorf("horizon projection radius = %v, want 1", r)
	}
}
