package config

import (
	"runtime"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sells-group/campus-imagery-cli/internal/model"
)

// APIKeyEnv is the environment variable holding the Google Maps Platform key.
const APIKeyEnv = "GOOGLE_MAPS_API_KEY"

// maxWorkers caps both worker pools.
const maxWorkers = 256

// Config holds the full application configuration.
type Config struct {
	Google      GoogleConfig      `yaml:"google" mapstructure:"google"`
	Pull        PullConfig        `yaml:"pull" mapstructure:"pull"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Log         LogConfig         `yaml:"log" mapstructure:"log"`
}

// GoogleConfig holds Google Maps Platform credentials and endpoints.
type GoogleConfig struct {
	APIKey        string `yaml:"api_key" mapstructure:"api_key"`
	GeocodeURL    string `yaml:"geocode_url" mapstructure:"geocode_url"`
	StreetViewURL string `yaml:"streetview_url" mapstructure:"streetview_url"`
	TimeoutSecs   int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
}

// PullConfig selects the universities and output of a pull run.
type PullConfig struct {
	UniFile         string `yaml:"uni_file" mapstructure:"uni_file"`
	StartIndex      int    `yaml:"uni_starting_idx" mapstructure:"uni_starting_idx"`
	Count           int    `yaml:"n_unis" mapstructure:"n_unis"`
	ImageDir        string `yaml:"img_dir" mapstructure:"img_dir"`
	NumPoints       int    `yaml:"num_points" mapstructure:"num_points"`
	KeepErrorBodies bool   `yaml:"keep_error_bodies" mapstructure:"keep_error_bodies"`
}

// ConcurrencyConfig sizes the worker pools.
type ConcurrencyConfig struct {
	Universities int `yaml:"universities" mapstructure:"universities"`
	Coordinates  int `yaml:"coordinates" mapstructure:"coordinates"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"uni_file":           "pull.uni_file",
	"uni_starting_idx":   "pull.uni_starting_idx",
	"n_unis":             "pull.n_unis",
	"img_dir":            "pull.img_dir",
	"num_points":         "pull.num_points",
	"keep_error_bodies":  "pull.keep_error_bodies",
	"university_workers": "concurrency.universities",
	"coordinate_workers": "concurrency.coordinates",
	"log_level":          "log.level",
}

// DefaultWorkers is the pool width used when none is configured:
// min(32, NumCPU+4).
func DefaultWorkers() int {
	return min(32, runtime.NumCPU()+4)
}

// Load reads configuration from config.yaml, the environment and any
// recognised flags in fs (which may be nil). Changed flags take precedence.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("CAMPUS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("google.api_key", APIKeyEnv); err != nil {
		return nil, eris.Wrap(err, "config: bind api key env")
	}

	// Defaults
	v.SetDefault("google.geocode_url", "https://maps.googleapis.com/maps/api/geocode/json")
	v.SetDefault("google.streetview_url", "https://maps.googleapis.com/maps/api/streetview")
	v.SetDefault("google.timeout_secs", 30)
	v.SetDefault("pull.uni_file", "unis.json")
	v.SetDefault("pull.uni_starting_idx", 0)
	v.SetDefault("pull.n_unis", 25)
	v.SetDefault("pull.img_dir", "imgs")
	v.SetDefault("pull.num_points", 1000)
	v.SetDefault("pull.keep_error_bodies", false)
	v.SetDefault("concurrency.universities", DefaultWorkers())
	v.SetDefault("concurrency.coordinates", DefaultWorkers())
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	if fs != nil {
		for name, key := range flagKeys {
			f := fs.Lookup(name)
			if f == nil || !f.Changed {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, eris.Wrapf(err, "config: bind flag %s", name)
			}
		}
	}

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks the settings a command needs. mode is "pull", "points"
// or "cleanup".
func (c *Config) Validate(mode string) error {
	var problems []string

	switch mode {
	case "pull", "points":
		if strings.TrimSpace(c.Google.APIKey) == "" {
			problems = append(problems, "google.api_key is required (set "+APIKeyEnv+")")
		}
		if c.Pull.UniFile == "" {
			problems = append(problems, "pull.uni_file is required")
		}
		if c.Pull.StartIndex < 0 {
			problems = append(problems, "pull.uni_starting_idx must be >= 0")
		}
		if c.Pull.Count < 0 {
			problems = append(problems, "pull.n_unis must be >= 0")
		}
		if c.Pull.NumPoints < 1 {
			problems = append(problems, "pull.num_points must be >= 1")
		}
		if c.Concurrency.Universities < 1 || c.Concurrency.Universities > maxWorkers {
			problems = append(problems, "concurrency.universities must be between 1 and 256")
		}
		if c.Concurrency.Coordinates < 1 || c.Concurrency.Coordinates > maxWorkers {
			problems = append(problems, "concurrency.coordinates must be between 1 and 256")
		}
		if mode == "pull" && c.Pull.ImageDir == "" {
			problems = append(problems, "pull.img_dir is required")
		}
	case "cleanup":
		if c.Pull.ImageDir == "" {
			problems = append(problems, "pull.img_dir is required")
		}
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	if len(problems) > 0 {
		return eris.Errorf("config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// RunConfig projects the pull settings into a run configuration.
func (c *Config) RunConfig() model.RunConfig {
	return model.RunConfig{
		UniFile:             c.Pull.UniFile,
		StartIndex:          c.Pull.StartIndex,
		Count:               c.Pull.Count,
		ImageDir:            c.Pull.ImageDir,
		PointsPerUniversity: c.Pull.NumPoints,
		UniversityWorkers:   c.Concurrency.Universities,
		CoordinateWorkers:   c.Concurrency.Coordinates,
		KeepErrorBodies:     c.Pull.KeepErrorBodies,
	}
}

// zapConfig picks the development config for "console" and the production
// (JSON) config for anything else.
func zapConfig(format string) zap.Config {
	if format == "console" {
		return zap.NewDevelopmentConfig()
	}
	return zap.NewProductionConfig()
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	zapCfg := zapConfig(cfg.Format)

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
