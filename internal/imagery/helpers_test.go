package imagery

import (
	"context"
	"io"
	"net/http"
	"sync/atomic"

	"github.com/sells-group/campus-imagery-cli/internal/model"
	"github.com/sells-group/campus-imagery-cli/pkg/geocode"
	"github.com/sells-group/campus-imagery-cli/pkg/streetview"
)

// fakeGeocoder answers from a name -> viewport table. before, when set, runs
// ahead of every lookup so tests can control completion order.
type fakeGeocoder struct {
	viewports map[string]model.Viewport
	before    func(query string)
}

func (f *fakeGeocoder) Geocode(_ context.Context, query string) (*geocode.Response, error) {
	if f.before != nil {
		f.before(query)
	}
	vp, ok := f.viewports[query]
	if !ok {
		return &geocode.Response{Status: "ZERO_RESULTS"}, nil
	}
	return &geocode.Response{
		Status: "OK",
		Results: []geocode.Result{{
			Geometry: geocode.Geometry{Viewport: geocode.Viewport{
				Northeast: geocode.LatLng{Lat: vp.Northeast.Lat, Lng: vp.Northeast.Lng},
				Southwest: geocode.LatLng{Lat: vp.Southwest.Lat, Lng: vp.Southwest.Lng},
			}},
		}},
	}, nil
}

// fakeStreetView approves every location not listed in uncovered and serves
// body for every image.
type fakeStreetView struct {
	uncovered     map[string]bool
	body          []byte
	status        int
	metadataCalls atomic.Int64
	imageCalls    atomic.Int64
}

func (f *fakeStreetView) Metadata(_ context.Context, location string) (*streetview.Metadata, error) {
	f.metadataCalls.Add(1)
	if f.uncovered[location] {
		return &streetview.Metadata{Status: streetview.StatusZeroResults}, nil
	}
	return &streetview.Metadata{Status: "OK"}, nil
}

func (f *fakeStreetView) Image(_ context.Context, _ string) (*streetview.Image, error) {
	f.imageCalls.Add(1)
	status := f.status
	if status == 0 {
		status = http.StatusOK
	}
	return &streetview.Image{StatusCode: status, ContentType: "image/jpeg", Body: f.body}, nil
}

func newTestPuller(g geocode.Client, sv streetview.Client, cfg model.RunConfig) *Puller {
	if cfg.UniversityWorkers == 0 {
		cfg.UniversityWorkers = 4
	}
	if cfg.CoordinateWorkers == 0 {
		cfg.CoordinateWorkers = 8
	}
	return NewPuller(g, sv, cfg, WithOutput(io.Discard), WithProgressOutput(io.Discard))
}

func unitSquare() model.Viewport {
	return model.Viewport{
		Northeast: model.Coordinate{Lat: 1, Lng: 1},
		Southwest: model.Coordinate{Lat: 0, Lng: 0},
	}
}
