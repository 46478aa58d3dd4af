package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// chdirTemp moves into an empty temp dir so no config.yaml is found.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv(APIKeyEnv, "")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "unis.json", cfg.Pull.UniFile)
	assert.Equal(t, 0, cfg.Pull.StartIndex)
	assert.Equal(t, 25, cfg.Pull.Count)
	assert.Equal(t, "imgs", cfg.Pull.ImageDir)
	assert.Equal(t, 1000, cfg.Pull.NumPoints)
	assert.False(t, cfg.Pull.KeepErrorBodies)
	assert.Equal(t, DefaultWorkers(), cfg.Concurrency.Universities)
	assert.Equal(t, DefaultWorkers(), cfg.Concurrency.Coordinates)
	assert.Equal(t, "https://maps.googleapis.com/maps/api/geocode/json", cfg.Google.GeocodeURL)
	assert.Equal(t, "https://maps.googleapis.com/maps/api/streetview", cfg.Google.StreetViewURL)
	assert.Equal(t, 30, cfg.Google.TimeoutSecs)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Empty(t, cfg.Google.APIKey)
}

func TestLoadAPIKeyFromEnv(t *testing.T) {
	chdirTemp(t)
	t.Setenv(APIKeyEnv, "AIza-test")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "AIza-test", cfg.Google.APIKey)
}

func TestLoadFromYAML(t *testing.T) {
	dir := chdirTemp(t)

	yaml := `
pull:
  img_dir: out
  num_points: 64
concurrency:
  universities: 2
log:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "out", cfg.Pull.ImageDir)
	assert.Equal(t, 64, cfg.Pull.NumPoints)
	assert.Equal(t, 2, cfg.Concurrency.Universities)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	// Defaults still apply for unset values
	assert.Equal(t, 25, cfg.Pull.Count)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("pull:\n  n_unis: 5\n"), 0644))
	t.Setenv("CAMPUS_PULL_N_UNIS", "7")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Pull.Count)
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	chdirTemp(t)
	t.Setenv("CAMPUS_PULL_IMG_DIR", "from-env")

	fs := pflag.NewFlagSet("pull", pflag.ContinueOnError)
	fs.String("img_dir", "imgs", "")
	fs.Int("num_points", 1000, "")
	fs.Int("uni_starting_idx", 0, "")
	require.NoError(t, fs.Parse([]string{"--img_dir", "from-flag", "--uni_starting_idx", "50"}))

	cfg, err := Load(fs)
	require.NoError(t, err)
	assert.Equal(t, "from-flag", cfg.Pull.ImageDir)
	assert.Equal(t, 50, cfg.Pull.StartIndex)
	// Unchanged flags leave the default in place.
	assert.Equal(t, 1000, cfg.Pull.NumPoints)
}

func TestInitLoggerConsole(t *testing.T) {
	err := InitLogger(LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerJSON(t *testing.T) {
	err := InitLogger(LogConfig{Level: "info", Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestZapConfig_DefaultsToJSON(t *testing.T) {
	assert.Equal(t, "json", zapConfig("").Encoding)
	assert.Equal(t, "json", zapConfig("json").Encoding)
	assert.Equal(t, "console", zapConfig("console").Encoding)
}

func TestInitLoggerInvalidLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "invalid", Format: "json"})
	assert.Error(t, err)
}

// validDefaults returns a Config with all defaults populated for validation tests.
func validDefaults() *Config {
	cfg := &Config{}
	cfg.Google.APIKey = "AIza-test"
	cfg.Pull.UniFile = "unis.json"
	cfg.Pull.Count = 25
	cfg.Pull.ImageDir = "imgs"
	cfg.Pull.NumPoints = 1000
	cfg.Concurrency.Universities = 8
	cfg.Concurrency.Coordinates = 8
	return cfg
}

func TestValidatePull_AllPresent(t *testing.T) {
	assert.NoError(t, validDefaults().Validate("pull"))
	assert.NoError(t, validDefaults().Validate("points"))
}

func TestValidatePull_MissingKey(t *testing.T) {
	cfg := validDefaults()
	cfg.Google.APIKey = "  "

	err := cfg.Validate("pull")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "GOOGLE_MAPS_API_KEY")
}

func TestValidatePull_Bounds(t *testing.T) {
	cfg := validDefaults()
	cfg.Pull.NumPoints = 0
	cfg.Pull.StartIndex = -1
	cfg.Concurrency.Coordinates = 0
	cfg.Concurrency.Universities = 257

	err := cfg.Validate("pull")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "pull.num_points must be >= 1")
	assert.Contains(t, err.Error(), "pull.uni_starting_idx must be >= 0")
	assert.Contains(t, err.Error(), "concurrency.coordinates must be between 1 and 256")
	assert.Contains(t, err.Error(), "concurrency.universities must be between 1 and 256")
}

func TestValidateCleanup_NoKeyNeeded(t *testing.T) {
	cfg := validDefaults()
	cfg.Google.APIKey = ""
	assert.NoError(t, cfg.Validate("cleanup"))

	cfg.Pull.ImageDir = ""
	err := cfg.Validate("cleanup")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "pull.img_dir is required")
}

func TestValidateUnknownMode(t *testing.T) {
	err := validDefaults().Validate("unknown")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mode")
}

func TestRunConfig(t *testing.T) {
	cfg := validDefaults()
	cfg.Pull.StartIndex = 3
	cfg.Pull.KeepErrorBodies = true

	rc := cfg.RunConfig()
	assert.Equal(t, "unis.json", rc.UniFile)
	assert.Equal(t, 3, rc.StartIndex)
	assert.Equal(t, 25, rc.Count)
	assert.Equal(t, "imgs", rc.ImageDir)
	assert.Equal(t, 1000, rc.PointsPerUniversity)
	assert.Equal(t, 8, rc.UniversityWorkers)
	assert.Equal(t, 8, rc.CoordinateWorkers)
	assert.True(t, rc.KeepErrorBodies)
}
