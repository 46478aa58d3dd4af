package imagery

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/campus-imagery-cli/internal/model"
)

// CollectPoints resolves, samples and filters every university concurrently.
// The result is index-aligned with unis; a university without a region gets
// an empty list.
func (p *Puller) CollectPoints(ctx context.Context, unis []model.University) [][]model.Coordinate {
	results := make([][]model.Coordinate, len(unis))
	if len(unis) == 0 {
		return results
	}
	bar := newProgressBar(p.progress, len(unis), "Pulling university points")

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(poolSize(p.cfg.UniversityWorkers))

	for i, uni := range unis {
		g.Go(func() error {
			results[i] = p.CollectUniversityPoints(gCtx, uni)
			_ = bar.Add(1)
			return nil
		})
	}

	_ = g.Wait()
	_ = bar.Finish()
	return results
}

// CollectUniversityPoints returns the grid points with Street View coverage
// inside one university's campus viewport.
func (p *Puller) CollectUniversityPoints(ctx context.Context, uni model.University) []model.Coordinate {
	log := zap.L().With(zap.String("university", uni.Name))

	vp := ResolveRegion(ctx, p.geocoder, uni)
	if vp == nil {
		log.Info("no campus region found, skipping")
		return []model.Coordinate{}
	}

	grid := GenerateGrid(vp.Northeast, vp.Southwest, p.cfg.PointsPerUniversity)

	b := vp.Bounds()
	log.Debug("sampling campus viewport",
		zap.Float64("lat_span", b.Max(1)-b.Min(1)),
		zap.Float64("lng_span", b.Max(0)-b.Min(0)),
		zap.Int("grid_points", len(grid)),
	)

	valid := FilterCoverage(ctx, p.sv, grid, p.cfg.CoordinateWorkers)
	log.Info("coverage checked",
		zap.Int("grid_points", len(grid)),
		zap.Int("valid_points", len(valid)),
	)
	return valid
}
