// Package observation turns a parsed dataset into the calibrated,
// geometry-annotated observation the imaging core consumes: antenna
// gain/phase calibration of the raw visibilities and the (u, v, w)
// spatial-frequency coordinates of every baseline.
package observation

import (
	"fmt"
	"math"
	"time"

	"github.com/tart-telescope/web-app/internal/models"
	"github.com/tart-telescope/web-app/pkg/dataset"
)

// The telescope observes at the GPS L1 frequency; baselines are
// expressed in wavelengths of that carrier.
const (
	speedOfLight = 2.99793e8
	l1Frequency  = 1.57542e9

	// Wavelength is the reference wavelength in metres used to
	// normalize baseline separations.
	Wavelength = speedOfLight / l1Frequency
)

// Observation is the read-only aggregate handed to the imaging core:
// calibrated visibilities, antenna positions, the baseline list and the
// shared timestamp. Built once per dataset, never mutated afterwards.
type Observation struct {
	Timestamp time.Time
	Vis       []complex128
	AntX      []float64
	AntY      []float64
	AntZ      []float64
	Baselines []models.Baseline
}

// ApplyGains converts raw visibilities into gain/phase-corrected ones.
// For visibility k on baseline (i, j):
//
//	cal_k = vis_k * gain_i * gain_j * exp(-i*(phase_i - phase_j))
//
// Indices must be in range of the coefficient arrays; the dataset layer
// validates that before anything reaches here. The map is purely
// elementwise and leaves its inputs untouched.
func ApplyGains(baselines []models.Baseline, vis []complex128, gains, phaseOffsets []float64) []complex128 {
	cal := make([]complex128, len(vis))
	for k, bl := range baselines {
		g := gains[bl.I] * gains[bl.J]
		sinP, cosP := math.Sincos(phaseOffsets[bl.J] - phaseOffsets[bl.I])
		// exp(-i*(phase_i - phase_j)) = cos(dp) + i*sin(dp) with
		// dp = phase_j - phase_i
		cal[k] = vis[k] * complex(g*cosP, g*sinP)
	}
	return cal
}

// UVW maps each baseline to its wavelength-normalized antenna
// separation, one (u, v, w) triple per baseline.
func UVW(baselines []models.Baseline, x, y, z []float64) (u, v, w []float64) {
	u = make([]float64, len(baselines))
	v = make([]float64, len(baselines))
	w = make([]float64, len(baselines))
	for k, bl := range baselines {
		u[k] = spatialFrequency(x[bl.I], x[bl.J])
		v[k] = spatialFrequency(y[bl.I], y[bl.J])
		w[k] = spatialFrequency(z[bl.I], z[bl.J])
	}
	return u, v, w
}

func spatialFrequency(a, b float64) float64 {
	return (a - b) / Wavelength
}

// FromDataset builds the calibrated observation from a parsed dataset.
// The first visibility block of the bundle is the one imaged.
func FromDataset(ds *dataset.Dataset) (*Observation, error) {
	visBlock := ds.Data[0].Data

	ts, err := time.Parse(time.RFC3339, visBlock.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("parsing observation timestamp %q: %w", visBlock.Timestamp, err)
	}

	numAnt := len(ds.AntPos)
	numVis := len(visBlock.Data)

	obs := &Observation{
		Timestamp: ts.UTC(),
		AntX:      make([]float64, numAnt),
		AntY:      make([]float64, numAnt),
		AntZ:      make([]float64, numAnt),
		Baselines: make([]models.Baseline, numVis),
	}
	for i, pos := range ds.AntPos {
		obs.AntX[i] = pos.X
		obs.AntY[i] = pos.Y
		obs.AntZ[i] = pos.Z
	}

	raw := make([]complex128, numVis)
	for k, v := range visBlock.Data {
		raw[k] = complex(v.Re, v.Im)
		obs.Baselines[k] = models.Baseline{I: v.I, J: v.J}
	}

	obs.Vis = ApplyGains(obs.Baselines, raw, ds.Gains.Gain, ds.Gains.PhaseOffset)
	return obs, nil
}

// UVW returns the spatial-frequency coordinates of the observation's
// baselines.
func (o *Observation) UVW() (u, v, w []float64) {
	return UVW(o.Baselines, o.AntX, o.AntY, o.AntZ)
}
