package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/campus-imagery-cli/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:          "campus-imagery",
	Short:        "Street View image puller for university campuses",
	Long:         "Geocodes each university's main campus, samples a grid of points inside it, keeps the points with Street View coverage and downloads one image per point.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; real environment variables win.
		dotenvErr := godotenv.Load()

		c, err := config.Load(cmd.Flags())
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		if dotenvErr != nil && !errors.Is(dotenvErr, fs.ErrNotExist) {
			zap.L().Warn("could not read .env", zap.Error(dotenvErr))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().String("log_level", "info", "log level (debug, info, warn, error)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
