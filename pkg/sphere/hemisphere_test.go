package sphere

import (
	"errors"
	"math"
	"testing"
)

func TestNpix(t *testing.T) {
	cases := []struct{ nside, npix int }{
		{1, 12},
		{4, 192},
		{16, 3072},
	}
	for _, tc := range cases {
		if got := Npix(tc.nside); got != tc.npix {
			t.Errorf("Npix(%d) = %d, want %d", tc.nside, got, tc.npix)
		}
	}
}

func TestValidNside(t *testing.T) {
	for _, nside := range []int{1, 2, 4, 8, 64, 1024} {
		if !ValidNside(nside) {
			t.Errorf("ValidNside(%d) = false, want true", nside)
		}
	}
	for _, nside := range []int{0, -1, 3, 6, 12, 100} {
		if ValidNside(nside) {
			t.Errorf("ValidNside(%d) = true, want false", nside)
		}
	}
}

// TestPixelCenterNsideOne pins the twelve base pixels against the known
// HEALPix layout: rings at z = 2/3, 0, -2/3 with four pixels each.
func TestPixelCenterNsideOne(t *testing.T) {
	wantZ := []float64{
		2.0 / 3, 2.0 / 3, 2.0 / 3, 2.0 / 3,
		0, 0, 0, 0,
		-2.0 / 3, -2.0 / 3, -2.0 / 3, -2.0 / 3,
	}
	for p := 0; p < 12; p++ {
		theta, phi := PixelCenter(1, p)
		if z := math.Cos(theta); math.Abs(z-wantZ[p]) > 1e-12 {
			t.Errorf("pixel %d: z = %v, want %v", p, z, wantZ[p])
		}
		if phi < 0 || phi >= 2*math.Pi {
			t.Errorf("pixel %d: longitude %v outside [0, 2pi)", p, phi)
		}
	}

	// First base pixel sits at phi = pi/4
	_, phi := PixelCenter(1, 0)
	if math.Abs(phi-math.Pi/4) > 1e-12 {
		t.Errorf("pixel 0 longitude = %v, want pi/4", phi)
	}
}

func TestNewHemisphereRejectsBadNside(t *testing.T) {
	for _, nside := range []int{0, 3, -4} {
		_, err := NewHemisphere(nside)
		if !errors.Is(err, ErrInvalidNside) {
			t.Errorf("NewHemisphere(%d) err = %v, want ErrInvalidNside", nside, err)
		}
	}
}

func TestNewHemisphereGeometry(t *testing.T) {
	for _, nside := range []int{1, 2, 4, 8, 16} {
		sky, err := NewHemisphere(nside)
		if err != nil {
			t.Fatalf("NewHemisphere(%d): %v", nside, err)
		}

		n := sky.NumPixels()
		if n == 0 {
			t.Fatalf("nside %d: no visible pixels", nside)
		}

		// All parallel arrays share the visible-pixel length
		for name, length := range map[string]int{
			"VisibleIndices": len(sky.VisibleIndices),
			"El":             len(sky.El),
			"Az":             len(sky.Az),
			"L":              len(sky.L),
			"M":              len(sky.M),
			"N":              len(sky.N),
		} {
			if length != n {
				t.Errorf("nside %d: len(%s) = %d, want %d", nside, name, length, n)
			}
		}

		for i := 0; i < n; i++ {
			if el := sky.El[i]; el < 0 || el > math.Pi/2 {
				t.Fatalf("nside %d pixel %d: elevation %v outside [0, pi/2]", nside, i, el)
			}
			norm := sky.L[i]*sky.L[i] + sky.M[i]*sky.M[i] + sky.N[i]*sky.N[i]
			if math.Abs(norm-1) > 1e-3 {
				t.Fatalf("nside %d pixel %d: |lmn| = %v, want 1", nside, i, norm)
			}
			if sky.Pixels[i] != 0 {
				t.Fatalf("nside %d pixel %d: brightness %v, want 0 after build", nside, i, sky.Pixels[i])
			}
		}
	}
}

// TestNewHemisphereVisibleCount checks the closed-form count: the polar
// cap plus the nside above-equator belt rings of 4*nside pixels each.
// The equator ring itself sits exactly on the horizon and is excluded.
func TestNewHemisphereVisibleCount(t *testing.T) {
	for _, nside := range []int{1, 2, 4, 8} {
		sky, err := NewHemisphere(nside)
		if err != nil {
			t.Fatalf("NewHemisphere(%d): %v", nside, err)
		}
		want := 2*nside*(nside-1) + 4*nside*nside
		if sky.NumPixels() != want {
			t.Errorf("nside %d: %d visible pixels, want %d", nside, sky.NumPixels(), want)
		}
	}
}

func TestNewHemisphereDeterministic(t *testing.T) {
	a, err := NewHemisphere(8)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewHemisphere(8)
	if err != nil {
		t.Fatal(err)
	}

	if len(a.VisibleIndices) != len(b.VisibleIndices) {
		t.Fatalf("pixel counts differ: %d vs %d", len(a.VisibleIndices), len(b.VisibleIndices))
	}
	for i := range a.VisibleIndices {
		if a.VisibleIndices[i] != b.VisibleIndices[i] {
			t.Fatalf("pixel %d: index %d vs %d", i, a.VisibleIndices[i], b.VisibleIndices[i])
		}
		if a.L[i] != b.L[i] || a.M[i] != b.M[i] || a.N[i] != b.N[i] {
			t.Fatalf("pixel %d: direction cosines differ between builds", i)
		}
	}

	// Indices come out in ascending ring order
	for i := 1; i < len(a.VisibleIndices); i++ {
		if a.VisibleIndices[i] <= a.VisibleIndices[i-1] {
			t.Fatalf("visible indices not strictly ascending at %d", i)
		}
	}
}

func TestHemisphereCopyIndependence(t *testing.T) {
	sky, err := NewHemisphere(4)
	if err != nil {
		t.Fatal(err)
	}

	dup := sky.Copy()
	dup.Pixels[0] = 42
	if sky.Pixels[0] != 0 {
		t.Error("mutating the copy's brightness changed the original")
	}

	dup.L[0] = -99
	if sky.L[0] == -99 {
		t.Error("mutating the copy's geometry changed the original")
	}
}

func BenchmarkNewHemisphere(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := NewHemisphere(32); err != nil {
			b.Fatal(err)
		}
	}
}
