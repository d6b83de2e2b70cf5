package cli

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/dao-cli/internal/cli/render"
	"github.com/trebuchet-org/dao-cli/internal/usecase"
)

// NewTokenCmd creates the token command
func NewTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Operate the governed token",
		Long: `Operate the governed token.

When run without subcommands, shows the token's metadata and supply.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			info, err := app.ManageToken.Info(cmd.Context())
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.JSON(cmd.OutOrStdout(), info)
			}
			return render.NewTokenRenderer(cmd.OutOrStdout()).RenderInfo(info)
		},
	}

	cmd.AddCommand(newTokenTransferCmd("mint <to> <amount>", "Mint tokens (minters only)", "Minted",
		func(app *usecase.ManageToken, cmd *cobra.Command, to common.Address, args []string) (*usecase.TokenTransferResult, error) {
			amount, err := parseAmount(args[1])
			if err != nil {
				return nil, err
			}
			return app.Mint(cmd.Context(), to, amount)
		}))
	cmd.AddCommand(newTokenTransferCmd("transfer <to> <amount>", "Transfer tokens from the sender", "Transferred",
		func(app *usecase.ManageToken, cmd *cobra.Command, to common.Address, args []string) (*usecase.TokenTransferResult, error) {
			amount, err := parseAmount(args[1])
			if err != nil {
				return nil, err
			}
			return app.Transfer(cmd.Context(), to, amount)
		}))
	cmd.AddCommand(NewTokenApproveCmd())

	return cmd
}

type tokenOp func(app *usecase.ManageToken, cmd *cobra.Command, to common.Address, args []string) (*usecase.TokenTransferResult, error)

func newTokenTransferCmd(use, short, verb string, op tokenOp) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			to, err := parseAddress(args[0])
			if err != nil {
				return err
			}
			result, err := op(app.ManageToken, cmd, to, args)
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.JSON(cmd.OutOrStdout(), result)
			}
			return render.NewTokenRenderer(cmd.OutOrStdout()).RenderTransfer(verb, result)
		},
	}
}

// NewTokenApproveCmd creates the token approve subcommand
func NewTokenApproveCmd() *cobra.Command {
	var spender string

	cmd := &cobra.Command{
		Use:   "approve <amount>",
		Short: "Allow the treasury (or --spender) to move the sender's tokens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			var to *common.Address
			if spender != "" {
				addr, err := parseAddress(spender)
				if err != nil {
					return err
				}
				to = &addr
			}

			result, err := app.ManageToken.Approve(cmd.Context(), to, amount)
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.JSON(cmd.OutOrStdout(), result)
			}
			return render.NewTokenRenderer(cmd.OutOrStdout()).RenderTransfer("Approved", result)
		},
	}

	cmd.Flags().StringVar(&spender, "spender", "", "Spender to approve (defaults to the treasury)")

	return cmd
}
