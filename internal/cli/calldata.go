package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/dao-cli/internal/cli/render"
)

// NewCalldataCmd creates the calldata command
func NewCalldataCmd() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "calldata <method> [args...]",
		Short: "Encode call data for a token method",
		Long: `Encode call data for a token method, for use as proposal call data.

Examples:
  dao calldata grantMinter 0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC
  dao calldata transfer 0x70997970C51812dc3A010C7d01b50e0d17dc79C8 1000
  dao calldata --list`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if list {
				if app.Config.JSON {
					return render.JSON(cmd.OutOrStdout(), app.EncodeCalldata.Methods())
				}
				return render.NewDevRenderer(cmd.OutOrStdout()).RenderMethods(app.EncodeCalldata.Methods())
			}
			if len(args) == 0 {
				return fmt.Errorf("method is required (see --list)")
			}

			result, err := app.EncodeCalldata.Run(args[0], args[1:])
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.JSON(cmd.OutOrStdout(), result)
			}
			return render.NewDevRenderer(cmd.OutOrStdout()).RenderCalldata(result)
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "List the token methods")

	return cmd
}
