package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/dao-cli/internal/cli/render"
	"github.com/trebuchet-org/dao-cli/internal/config"
)

type versionInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// NewVersionCmd creates the version command. It runs without an app, so
// --json is read from the flag directly.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of dao",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := versionInfo{Version: config.Version, Commit: config.Commit, Date: config.Date}
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return render.JSON(cmd.OutOrStdout(), info)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "dao version %s (commit %s, built %s)\n", info.Version, info.Commit, info.Date)
			return nil
		},
	}
}
