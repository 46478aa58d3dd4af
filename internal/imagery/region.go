package imagery

import (
	"context"

	"go.uber.org/zap"

	"github.com/sells-group/campus-imagery-cli/internal/model"
	"github.com/sells-group/campus-imagery-cli/pkg/geocode"
)

const campusSuffix = " Main Campus"

// ResolveRegion geocodes "<name> Main Campus" and returns the first result's
// viewport. It returns nil when the lookup fails, matches nothing or yields
// a viewport that cannot be sampled; callers skip the university.
func ResolveRegion(ctx context.Context, g geocode.Client, uni model.University) *model.Viewport {
	query := uni.Name + campusSuffix

	resp, err := g.Geocode(ctx, query)
	if err != nil {
		zap.L().Debug("region: geocode failed", zap.String("query", query), zap.Error(err))
		return nil
	}
	if resp == nil || len(resp.Results) == 0 {
		zap.L().Debug("region: no results", zap.String("query", query))
		return nil
	}

	r := resp.Results[0].Geometry.Viewport
	vp := &model.Viewport{
		Northeast: model.Coordinate{Lat: r.Northeast.Lat, Lng: r.Northeast.Lng},
		Southwest: model.Coordinate{Lat: r.Southwest.Lat, Lng: r.Southwest.Lng},
	}
	if !vp.Valid() {
		zap.L().Warn("region: unusable viewport",
			zap.String("query", query),
			zap.Stringer("northeast", vp.Northeast),
			zap.Stringer("southwest", vp.Southwest),
		)
		return nil
	}
	return vp
}
