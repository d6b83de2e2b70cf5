package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/dao-cli/internal/cli/render"
)

// NewDevCmd creates the dev command group
func NewDevCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Local development tools",
	}

	cmd.AddCommand(NewDevWarpCmd())

	return cmd
}

// NewDevWarpCmd creates the dev warp subcommand
func NewDevWarpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "warp <duration>",
		Short: "Move the local chain clock forward",
		Long: `Move the local chain clock forward, e.g. past a proposal's deadline.

Durations use Go syntax with an extra d unit for days:
  dao dev warp 25h
  dao dev warp 3d`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			d, err := parseDuration(args[0])
			if err != nil {
				return err
			}

			result, err := app.WarpTime.Run(cmd.Context(), d)
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.JSON(cmd.OutOrStdout(), result)
			}
			return render.NewDevRenderer(cmd.OutOrStdout()).RenderWarp(result)
		},
	}
}

// parseDuration extends time.ParseDuration with a whole-day suffix
func parseDuration(s string) (time.Duration, error) {
	var days int
	if n, err := fmt.Sscanf(s, "%dd", &days); err == nil && n == 1 && fmt.Sprintf("%dd", days) == s {
		return time.Duration(days) * 24 * time.Hour, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	return d, nil
}
