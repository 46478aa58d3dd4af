package imagery

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"

	"github.com/sells-group/campus-imagery-cli/internal/model"
	"github.com/sells-group/campus-imagery-cli/pkg/streetview"
)

// ImagePath returns <dir>/<slug>/<lat>,<lng>.jpg.
func ImagePath(dir, slug string, c model.Coordinate) string {
	return filepath.Join(dir, slug, c.String()+".jpg")
}

// FetchImage downloads the image at c and writes the body verbatim to
// ImagePath. Non-200 responses are not written unless keepErrorBodies is set.
func FetchImage(ctx context.Context, sv streetview.Client, dir, slug string, c model.Coordinate, keepErrorBodies bool) error {
	img, err := sv.Image(ctx, c.String())
	if err != nil {
		return eris.Wrapf(err, "fetch: image at %s", c)
	}
	if !img.OK() && !keepErrorBodies {
		return eris.Errorf("fetch: image at %s returned status %d", c, img.StatusCode)
	}

	path := ImagePath(dir, slug, c)
	if err := os.WriteFile(path, img.Body, 0o644); err != nil {
		return eris.Wrapf(err, "fetch: write %s", path)
	}
	return nil
}
