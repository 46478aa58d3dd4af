package model

import (
	"strconv"
	"strings"

	"github.com/twpayne/go-geom"
)

// Coordinate is a WGS84 latitude/longitude pair.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// String renders the coordinate as "<lat>,<lng>". This is both the
// Street View location parameter and the image file stem.
func (c Coordinate) String() string {
	return formatDegrees(c.Lat) + "," + formatDegrees(c.Lng)
}

// formatDegrees writes the shortest decimal form of v, keeping a trailing
// ".0" on whole numbers so file names match earlier runs.
func formatDegrees(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Viewport is the rectangular region a geocoder recommends for displaying a result.
type Viewport struct {
	Northeast Coordinate `json:"northeast"`
	Southwest Coordinate `json:"southwest"`
}

// Bounds returns the viewport as an XY bounding box (X = longitude, Y = latitude).
func (v Viewport) Bounds() *geom.Bounds {
	return geom.NewMultiPointFlat(geom.XY, []float64{
		v.Southwest.Lng, v.Southwest.Lat,
		v.Northeast.Lng, v.Northeast.Lat,
	}).Bounds()
}

// world is the valid WGS84 range in XY (longitude, latitude) order.
var world = geom.NewBounds(geom.XY).Set(-180, -90, 180, 90)

// Valid reports whether the viewport can be sampled: both corners lie on the
// globe, the northeast corner is not south of the southwest one and the box
// has extent along both axes. A missing viewport decodes to all zeros and
// fails the extent check.
func (v Viewport) Valid() bool {
	for _, c := range []Coordinate{v.Northeast, v.Southwest} {
		if !world.OverlapsPoint(geom.XY, geom.Coord{c.Lng, c.Lat}) {
			return false
		}
	}
	if v.Northeast.Lat < v.Southwest.Lat {
		return false
	}
	b := v.Bounds()
	return b.Max(0) > b.Min(0) && b.Max(1) > b.Min(1)
}
