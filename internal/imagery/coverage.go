package imagery

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/campus-imagery-cli/internal/model"
	"github.com/sells-group/campus-imagery-cli/pkg/streetview"
)

// HasCoverage asks the metadata endpoint whether imagery exists at c.
// Request and decode failures count as no coverage.
func HasCoverage(ctx context.Context, sv streetview.Client, c model.Coordinate) bool {
	md, err := sv.Metadata(ctx, c.String())
	if err != nil {
		zap.L().Debug("coverage: metadata failed", zap.Stringer("location", c), zap.Error(err))
		return false
	}
	return md != nil && md.HasImagery()
}

// FilterCoverage checks every coordinate concurrently, at most workers at a
// time, and returns those with coverage. Each check is independent.
func FilterCoverage(ctx context.Context, sv streetview.Client, coords []model.Coordinate, workers int) []model.Coordinate {
	keep := make([]bool, len(coords))

	var g errgroup.Group
	g.SetLimit(poolSize(workers))

	for i, c := range coords {
		g.Go(func() error {
			keep[i] = HasCoverage(ctx, sv, c)
			return nil
		})
	}
	_ = g.Wait()

	kept := make([]model.Coordinate, 0, len(coords))
	for i, ok := range keep {
		if ok {
			kept = append(kept, coords[i])
		}
	}
	return kept
}

func poolSize(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
