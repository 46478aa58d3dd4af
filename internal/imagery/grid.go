package imagery

import (
	"math"

	"github.com/sells-group/campus-imagery-cli/internal/model"
)

// GridSide returns ceil(sqrt(n)), the number of samples along each axis
// needed for at least n grid points.
func GridSide(n int) int {
	if n < 1 {
		return 0
	}
	side := int(math.Sqrt(float64(n)))
	for side*side > n {
		side--
	}
	if side*side < n {
		side++
	}
	return side
}

// GenerateGrid samples a GridSide(n) x GridSide(n) grid spanning the
// rectangle between two corners, endpoints included. Points are returned
// latitude-major: every longitude of the first latitude, then the next.
func GenerateGrid(topLeft, bottomRight model.Coordinate, n int) []model.Coordinate {
	side := GridSide(n)
	if side == 0 {
		return nil
	}

	lats := linspace(topLeft.Lat, bottomRight.Lat, side)
	lngs := linspace(topLeft.Lng, bottomRight.Lng, side)

	points := make([]model.Coordinate, 0, side*side)
	for _, lat := range lats {
		for _, lng := range lngs {
			points = append(points, model.Coordinate{Lat: lat, Lng: lng})
		}
	}
	return points
}

// linspace returns num evenly spaced values over [start, stop]. The last
// value is exactly stop; a single sample is start.
func linspace(start, stop float64, num int) []float64 {
	out := make([]float64, num)
	if num == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(num-1)
	for i := range out {
		out[i] = float64(i)*step + start
	}
	out[num-1] = stop
	return out
}
