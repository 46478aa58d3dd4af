package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/campus-imagery-cli/internal/imagery"
)

var pointsCmd = &cobra.Command{
	Use:   "points",
	Short: "Count valid Street View points per university without downloading images",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := cfg.Validate("points"); err != nil {
			return err
		}

		runCfg := cfg.RunConfig()
		unis, err := loadUniversities(runCfg)
		if err != nil {
			return err
		}

		g, sv := newClients(cfg)
		puller := imagery.NewPuller(g, sv, runCfg, imagery.WithProgressOutput(cmd.ErrOrStderr()))
		points := puller.CollectPoints(ctx, unis)

		out := cmd.OutOrStdout()
		total := 0
		for i, uni := range unis {
			total += len(points[i])
			_, _ = fmt.Fprintf(out, "%s\t%d\n", uni.Name, len(points[i]))
		}
		zap.L().Info("points collected", zap.Int("universities", len(unis)), zap.Int("valid_points", total))
		return nil
	},
}

func init() {
	addSelectionFlags(pointsCmd.Flags())
	rootCmd.AddCommand(pointsCmd)
}
