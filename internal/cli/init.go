package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/dao-cli/internal/cli/render"
	"github.com/trebuchet-org/dao-cli/internal/usecase"
)

// NewInitCmd creates the init command
func NewInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the local treasury from dao.toml",
		Long: `Create .dao/state.json from dao.toml.

The treasury, token, voting period, quorum, chairmen and genesis balances
are read from dao.toml; anything left out uses the defaults. The admin
(treasury.admin or the sender) becomes admin of the treasury and the token
and may mint. The treasury itself is made an admin of both so that passed
proposals can manage roles.

Example dao.toml:
  [treasury]
  voting_period = "24h"
  min_quorum = "10000"
  chairmen = ["0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"]

  [token]
  name = "Crypton"
  symbol = "CRT"

  [token.balances]
  "0x70997970C51812dc3A010C7d01b50e0d17dc79C8" = "1000ether"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.InitTreasury.Run(cmd.Context(), usecase.InitTreasuryParams{Force: force})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.JSON(cmd.OutOrStdout(), result)
			}
			return render.NewTreasuryRenderer(cmd.OutOrStdout()).RenderInit(result)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Replace an existing state file")

	return cmd
}
