// Package university loads the input university list and derives folder names.
package university

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/campus-imagery-cli/internal/model"
)

// ErrNotFound is returned by Load when the list file does not exist.
var ErrNotFound = eris.New("university list not found")

// Load reads a university list. Files ending in .yaml or .yml are decoded as
// YAML; everything else as JSON.
func Load(path string) ([]model.University, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, eris.Wrapf(ErrNotFound, "university: list %q doesn't exist", path)
	}
	if err != nil {
		return nil, eris.Wrapf(err, "university: read %s", path)
	}

	var unis []model.University
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &unis)
	default:
		err = json.Unmarshal(data, &unis)
	}
	if err != nil {
		return nil, eris.Wrapf(err, "university: parse %s", path)
	}
	return unis, nil
}

// Window returns unis[start:start+count], clamped to the list bounds.
func Window(unis []model.University, start, count int) []model.University {
	if start < 0 {
		start = 0
	}
	if start >= len(unis) || count <= 0 {
		return nil
	}
	end := start + count
	if end > len(unis) {
		end = len(unis)
	}
	return unis[start:end]
}
