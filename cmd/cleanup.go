package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/campus-imagery-cli/internal/imagery"
)

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Remove empty university folders from the image directory",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := cfg.Validate("cleanup"); err != nil {
			return err
		}

		removed, err := imagery.RemoveEmptyDirs(cfg.Pull.ImageDir)
		if err != nil {
			return err
		}
		for _, name := range removed {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		zap.L().Info("cleanup complete", zap.String("img_dir", cfg.Pull.ImageDir), zap.Int("removed", len(removed)))
		return nil
	},
}

func init() {
	cleanupCmd.Flags().String("img_dir", "imgs", "image directory to clean")
	rootCmd.AddCommand(cleanupCmd)
}
