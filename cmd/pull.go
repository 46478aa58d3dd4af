package main

import (
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/sells-group/campus-imagery-cli/internal/imagery"
	"github.com/sells-group/campus-imagery-cli/internal/model"
	"github.com/sells-group/campus-imagery-cli/internal/university"
)

var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Pull Street View images for a slice of the university list",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := cfg.Validate("pull"); err != nil {
			return err
		}

		runCfg := cfg.RunConfig()
		log := zap.L().With(zap.String("command", "pull"), zap.String("run_id", uuid.NewString()))
		log.Info("using api key", zap.String("key", maskKey(cfg.Google.APIKey)))

		unis, err := loadUniversities(runCfg)
		if err != nil {
			return err
		}
		log.Info("loaded universities",
			zap.Int("count", len(unis)),
			zap.Int("start", runCfg.StartIndex),
			zap.Int("points_per_university", runCfg.PointsPerUniversity),
			zap.String("img_dir", runCfg.ImageDir),
		)

		g, sv := newClients(cfg)
		puller := imagery.NewPuller(g, sv, runCfg,
			imagery.WithOutput(cmd.OutOrStdout()),
			imagery.WithProgressOutput(cmd.ErrOrStderr()),
		)

		_, err = puller.Run(ctx, unis)
		return err
	},
}

// loadUniversities reads the configured list and applies the start/count window.
func loadUniversities(runCfg model.RunConfig) ([]model.University, error) {
	unis, err := university.Load(runCfg.UniFile)
	if err != nil {
		return nil, err
	}
	return university.Window(unis, runCfg.StartIndex, runCfg.Count), nil
}

// addSelectionFlags registers the flags that pick universities and grid size.
func addSelectionFlags(fs *pflag.FlagSet) {
	fs.String("uni_file", "unis.json", "file to use for uni names (.json, .yaml)")
	fs.Int("uni_starting_idx", 0, "starting index of universities to pull images for")
	fs.Int("n_unis", 25, "number of universities to pull images for")
	fs.Int("num_points", 1000, "number of points to generate per university")
	fs.Int("university_workers", 0, "universities processed concurrently (default min(32, NumCPU+4))")
	fs.Int("coordinate_workers", 0, "coordinates checked or fetched concurrently per university (default min(32, NumCPU+4))")
}

func init() {
	addSelectionFlags(pullCmd.Flags())
	pullCmd.Flags().String("img_dir", "imgs", "where to save all the images")
	pullCmd.Flags().Bool("keep_error_bodies", false, "write image responses to disk even when the API returned an error status")
	rootCmd.AddCommand(pullCmd)
}
