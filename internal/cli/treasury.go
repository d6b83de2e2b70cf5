package cli

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/dao-cli/internal/cli/render"
	"github.com/trebuchet-org/dao-cli/internal/usecase"
)

// NewDepositCmd creates the deposit command
func NewDepositCmd() *cobra.Command {
	var approve bool

	cmd := &cobra.Command{
		Use:   "deposit <amount>",
		Short: "Deposit tokens into the treasury for voting weight",
		Long: `Deposit tokens into the treasury. The deposit is your voting weight.

The treasury pulls the tokens with transferFrom, so it needs an allowance
first: pass --approve, or run 'dao token approve'.

Amounts are base units, or use an ether/gwei suffix:
  dao deposit 1000
  dao deposit 1.5ether --approve`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}

			result, err := app.DepositTokens.Run(cmd.Context(), usecase.DepositTokensParams{
				Amount:  amount,
				Approve: approve,
			})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.JSON(cmd.OutOrStdout(), result)
			}
			return render.NewTreasuryRenderer(cmd.OutOrStdout()).RenderDeposit(result)
		},
	}

	cmd.Flags().BoolVar(&approve, "approve", false, "Approve the treasury for the amount before depositing")

	return cmd
}

// NewWithdrawCmd creates the withdraw command
func NewWithdrawCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "withdraw [amount]",
		Short: "Withdraw deposited tokens",
		Long: `Withdraw tokens from your deposit.

Withdrawals are blocked while any proposal you voted on is still open.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.WithdrawTokensParams{All: all}
			switch {
			case all && len(args) == 1:
				return fmt.Errorf("pass either an amount or --all")
			case !all && len(args) == 0:
				return fmt.Errorf("amount is required (or pass --all)")
			case !all:
				if params.Amount, err = parseAmount(args[0]); err != nil {
					return err
				}
			}

			result, err := app.WithdrawTokens.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.JSON(cmd.OutOrStdout(), result)
			}
			return render.NewTreasuryRenderer(cmd.OutOrStdout()).RenderWithdraw(result)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Withdraw the whole deposit")

	return cmd
}

// NewBalanceCmd creates the balance command
func NewBalanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance [address]",
		Short: "Show deposits, wallet balance and withdrawal lock of an account",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			var account *common.Address
			if len(args) == 1 {
				addr, err := parseAddress(args[0])
				if err != nil {
					return err
				}
				account = &addr
			}

			summary, err := app.ShowBalance.Run(cmd.Context(), account)
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.JSON(cmd.OutOrStdout(), summary)
			}
			return render.NewTreasuryRenderer(cmd.OutOrStdout()).RenderAccount(summary)
		},
	}
}
