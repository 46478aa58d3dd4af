package imagery

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/campus-imagery-cli/internal/model"
)

// RunResult summarises a full pull run.
type RunResult struct {
	Points  [][]model.Coordinate
	Pull    PullStats
	Removed []string
}

// Run collects points for unis, downloads their images and removes
// university folders that ended up empty.
func (p *Puller) Run(ctx context.Context, unis []model.University) (*RunResult, error) {
	points := p.CollectPoints(ctx, unis)
	p.printf("Got %d universities!\n", len(points))

	stats, err := p.PullImages(ctx, unis, points)
	if err != nil {
		return nil, err
	}

	removed, err := RemoveEmptyDirs(p.cfg.ImageDir)
	if err != nil {
		return nil, eris.Wrap(err, "run: cleanup")
	}

	zap.L().Info("pull complete",
		zap.Int("universities", len(unis)),
		zap.Int("pulled", stats.Pulled),
		zap.Int("skipped", stats.Skipped),
		zap.Int("images", stats.Images),
		zap.Int("failed_images", stats.FailedImages),
		zap.Int("empty_removed", len(removed)),
	)
	p.printf("Pulled all images!\n")

	return &RunResult{Points: points, Pull: stats, Removed: removed}, nil
}
