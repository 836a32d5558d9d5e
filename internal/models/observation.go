package models

// Baseline identifies the pair of antennas that produced one visibility
// sample. The indices point into the antenna position arrays of the
// observation; i and j are always distinct.
type Baseline struct {
	// I is the index of the first antenna of the pair
	I int

	// J is the index of the second antenna of the pair
	J int
}

// AntennaPosition is the location of one antenna in the local frame,
// measured in metres east (X), north (Y) and up (Z) of the array origin.
type AntennaPosition struct {
	X, Y, Z float64
}

// Source is a known celestial source supplied with a dataset. Sources are
// only used by the rendering layer to overlay markers on the sky image;
// the reconstruction itself never reads them.
type Source struct {
	// El and Az are the source direction in degrees above the horizon
	// and degrees clockwise from north.
	El float64
	Az float64

	// Jy is the source flux in Jansky
	Jy float64

	// Name is the catalogue name of the source
	Name string
}

// Stats summarises a brightness array for the rendering layer, which uses
// it for color-scale normalization and the statistics overlay.
type Stats struct {
	// Min and Max bound the brightness values
	Min float64
	Max float64

	// Mean and StdDev are the first two moments
	Mean   float64
	StdDev float64

	// Median and MAD (median absolute deviation) are the robust
	// counterparts, less sensitive to bright point sources
	Median float64
	MAD    float64
}
