package imagery

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/campus-imagery-cli/internal/model"
	"github.com/sells-group/campus-imagery-cli/internal/university"
)

// PullStats summarises one image pull.
type PullStats struct {
	Pulled        int // universities whose folder was created this run
	Skipped       int // universities whose folder already existed
	Images        int // images written
	FailedImages  int // fetches that wrote nothing
	FailedFolders int // universities whose folder could not be created
}

type pullCounters struct {
	pulled, skipped, images, failedImages, failedFolders atomic.Int64
}

func (c *pullCounters) stats() PullStats {
	return PullStats{
		Pulled:        int(c.pulled.Load()),
		Skipped:       int(c.skipped.Load()),
		Images:        int(c.images.Load()),
		FailedImages:  int(c.failedImages.Load()),
		FailedFolders: int(c.failedFolders.Load()),
	}
}

// PullImages downloads the images for every university, skipping those whose
// folder already exists under the image directory. points must be
// index-aligned with unis.
func (p *Puller) PullImages(ctx context.Context, unis []model.University, points [][]model.Coordinate) (PullStats, error) {
	if err := os.MkdirAll(p.cfg.ImageDir, 0o755); err != nil {
		return PullStats{}, eris.Wrapf(err, "pull: create image dir %s", p.cfg.ImageDir)
	}

	var counters pullCounters
	if len(unis) == 0 {
		return counters.stats(), nil
	}
	bar := newProgressBar(p.progress, len(unis), "Pulling university images")

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(poolSize(p.cfg.UniversityWorkers))

	for i, uni := range unis {
		var pts []model.Coordinate
		if i < len(points) {
			pts = points[i]
		}
		g.Go(func() error {
			p.pullUniversity(gCtx, uni, pts, &counters)
			_ = bar.Add(1)
			return nil
		})
	}

	_ = g.Wait()
	_ = bar.Finish()
	return counters.stats(), nil
}

func (p *Puller) pullUniversity(ctx context.Context, uni model.University, points []model.Coordinate, counters *pullCounters) {
	slug := university.Slug(uni.Name)
	log := zap.L().With(zap.String("university", uni.Name), zap.String("slug", slug))

	if slug == "" {
		log.Warn("university name has no usable characters for a folder, skipping")
		counters.failedFolders.Add(1)
		return
	}

	// Mkdir fails with ErrExist for folders from earlier runs, which doubles
	// as the skip check.
	dir := filepath.Join(p.cfg.ImageDir, slug)
	if err := os.Mkdir(dir, 0o755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			log.Debug("folder exists, skipping")
			counters.skipped.Add(1)
			return
		}
		log.Error("create university folder failed", zap.Error(err))
		counters.failedFolders.Add(1)
		return
	}
	counters.pulled.Add(1)

	p.printf("%s %d\n", slug, len(points))

	var g errgroup.Group
	g.SetLimit(poolSize(p.cfg.CoordinateWorkers))

	for _, c := range points {
		g.Go(func() error {
			if err := FetchImage(ctx, p.sv, p.cfg.ImageDir, slug, c, p.cfg.KeepErrorBodies); err != nil {
				log.Warn("image fetch failed", zap.Stringer("location", c), zap.Error(err))
				counters.failedImages.Add(1)
				return nil
			}
			counters.images.Add(1)
			return nil
		})
	}
	_ = g.Wait()
}
