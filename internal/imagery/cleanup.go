package imagery

import (
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// RemoveEmptyDirs deletes every immediate subdirectory of dir that has no
// entries and returns the names removed. Files directly in dir are ignored.
func RemoveEmptyDirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, eris.Wrapf(err, "cleanup: read %s", dir)
	}

	var removed []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		sub := filepath.Join(dir, e.Name())
		children, err := os.ReadDir(sub)
		if err != nil {
			return removed, eris.Wrapf(err, "cleanup: read %s", sub)
		}
		if len(children) > 0 {
			continue
		}
		if err := os.Remove(sub); err != nil {
			return removed, eris.Wrapf(err, "cleanup: remove %s", sub)
		}
		zap.L().Debug("removed empty folder", zap.String("dir", sub))
		removed = append(removed, e.Name())
	}
	return removed, nil
}
