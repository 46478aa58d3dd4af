package model

// RunConfig is the immutable configuration of one pull run. It is passed to
// every pipeline stage explicitly.
type RunConfig struct {
	UniFile             string
	StartIndex          int
	Count               int
	ImageDir            string
	PointsPerUniversity int

	// UniversityWorkers bounds per-university fan-out (points and pulls).
	UniversityWorkers int
	// CoordinateWorkers bounds per-coordinate fan-out (metadata and images).
	CoordinateWorkers int

	// KeepErrorBodies writes the response body to disk even when the image
	// request did not return 200.
	KeepErrorBodies bool
}
