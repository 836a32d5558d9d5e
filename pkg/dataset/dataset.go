// Package dataset parses the JSON observation bundles produced by the
// telescope API tooling. It is a thin adapter: it validates that the
// arrays it hands to the numeric core are mutually consistent, and does
// nothing else.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tart-telescope/web-app/internal/models"
)

// Gains holds the per-antenna calibration coefficients. Both arrays are
// indexed by antenna number.
type Gains struct {
	Gain        []float64 `json:"gain"`
	PhaseOffset []float64 `json:"phase_offset"`
}

// VisEntry is one raw visibility sample between antennas I and J.
type VisEntry struct {
	I  int     `json:"i"`
	J  int     `json:"j"`
	Re float64 `json:"re"`
	Im float64 `json:"im"`
}

// VisData is a block of visibility samples sharing one timestamp.
type VisData struct {
	Data      []VisEntry `json:"data"`
	Timestamp string     `json:"timestamp"`
}

// AntPosition is an antenna location in metres, east/north/up.
type AntPosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// SourceEntry is a known celestial source annotation (degrees, Jansky).
type SourceEntry struct {
	Az   float64 `json:"az"`
	El   float64 `json:"el"`
	Jy   float64 `json:"jy"`
	Name string  `json:"name"`
	R    float64 `json:"r"`
}

// VisSource pairs a visibility block with the sources known at that time.
type VisSource struct {
	Data    VisData       `json:"data"`
	Sources []SourceEntry `json:"sources"`
}

// Dataset is the full observation bundle as downloaded by the telescope
// calibration tooling.
type Dataset struct {
	AntPos []AntPosition `json:"ant_pos"`
	Gains  Gains         `json:"gains"`
	Data   []VisSource   `json:"data"`
}

// Parse decodes and validates a JSON observation bundle.
func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("invalid dataset JSON: %w", err)
	}
	if err := ds.validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// Load reads and parses a dataset file.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset file: %w", err)
	}
	return Parse(data)
}

// validate enforces the consistency the numeric core relies on: aligned
// calibration arrays and in-range antenna indices. A malformed bundle is
// rejected here so the core never sees mismatched inputs.
func (ds *Dataset) validate() error {
	numAnt := len(ds.AntPos)
	if numAnt == 0 {
		return fmt.Errorf("dataset has no antenna positions")
	}
	if len(ds.Gains.Gain) != numAnt {
		return fmt.Errorf("dataset has %d gains for %d antennas", len(ds.Gains.Gain), numAnt)
	}
	if len(ds.Gains.PhaseOffset) != numAnt {
		return fmt.Errorf("dataset has %d phase offsets for %d antennas", len(ds.Gains.PhaseOffset), numAnt)
	}
	if len(ds.Data) == 0 {
		return fmt.Errorf("dataset has no visibility blocks")
	}

	vis := ds.Data[0].Data
	if len(vis.Data) == 0 {
		return fmt.Errorf("dataset visibility block is empty")
	}
	if vis.Timestamp == "" {
		return fmt.Errorf("dataset visibility block has no timestamp")
	}
	for k, v := range vis.Data {
		if v.I < 0 || v.I >= numAnt || v.J < 0 || v.J >= numAnt {
			return fmt.Errorf("visibility %d references antenna pair (%d, %d) outside 0..%d",
				k, v.I, v.J, numAnt-1)
		}
		if v.I == v.J {
			return fmt.Errorf("visibility %d is an autocorrelation on antenna %d", k, v.I)
		}
	}
	return nil
}

// Sources returns the source annotations of the first visibility block
// as model types for the rendering layer.
func (ds *Dataset) Sources() []models.Source {
	if len(ds.Data) == 0 {
		return nil
	}
	out := make([]models.Source, 0, len(ds.Data[0].Sources))
	for _, s := range ds.Data[0].Sources {
		out = append(out, models.Source{El: s.El, Az: s.Az, Jy: s.Jy, Name: s.Name})
	}
	return out
}
