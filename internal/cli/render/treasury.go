package render

import (
	"fmt"
	"io"
	"sort"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/dao-cli/internal/usecase"
)

// TreasuryRenderer renders treasury ledger output
type TreasuryRenderer struct {
	out io.Writer
}

// NewTreasuryRenderer creates a new treasury renderer. Amounts are raw base units.
func NewTreasuryRenderer(out io.Writer) *TreasuryRenderer {
	return &TreasuryRenderer{out: out}
}

// RenderInit renders a freshly created chain
func (r *TreasuryRenderer) RenderInit(result *usecase.InitTreasuryResult) error {
	g := result.Genesis
	verb := "Initialized"
	if result.Replaced {
		verb = "Re-initialized"
	}
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("%s treasury at %s", verb, g.Treasury.Address.Hex())))
	fmt.Fprintf(r.out, "  Token:         %s (%s) at %s\n", g.Token.Name, g.Token.Symbol, g.Token.Address.Hex())
	fmt.Fprintf(r.out, "  Voting period: %s\n", g.Treasury.VotingPeriod)
	fmt.Fprintf(r.out, "  Min quorum:    %s\n", g.Treasury.MinQuorum.Dec())
	fmt.Fprintf(r.out, "  Admin:         %s\n", g.Admin.Hex())
	for _, c := range g.Chairmen {
		fmt.Fprintf(r.out, "  Chairman:      %s\n", c.Hex())
	}

	holders := make([]common.Address, 0, len(g.Token.Balances))
	for holder := range g.Token.Balances {
		holders = append(holders, holder)
	}
	sort.Slice(holders, func(i, j int) bool { return holders[i].Cmp(holders[j]) < 0 })
	for _, holder := range holders {
		fmt.Fprintf(r.out, "  Minted:        %s to %s\n", FormatUnits(g.Token.Balances[holder], 0, g.Token.Symbol), holder.Hex())
	}

	fmt.Fprintf(r.out, "📁 state saved to: %s\n", getRelativePath(result.StatePath))
	return nil
}

// RenderDeposit renders a completed deposit
func (r *TreasuryRenderer) RenderDeposit(result *usecase.BalanceResult) error {
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Deposited %s", r.amount(result))))
	return r.renderBalances(result)
}

// RenderWithdraw renders a completed withdrawal
func (r *TreasuryRenderer) RenderWithdraw(result *usecase.BalanceResult) error {
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Withdrew %s", r.amount(result))))
	return r.renderBalances(result)
}

// RenderAccount renders everything known about an account
func (r *TreasuryRenderer) RenderAccount(summary *usecase.AccountSummary) error {
	headerStyle.Fprintf(r.out, "Account %s\n", summary.Account.Hex())
	fmt.Fprintf(r.out, "  Deposited: %s\n", amountStyle.Sprint(FormatUnits(summary.Deposited, 0, summary.Symbol)))
	fmt.Fprintf(r.out, "  Wallet:    %s\n", FormatUnits(summary.Wallet, 0, summary.Symbol))
	fmt.Fprintf(r.out, "  Allowance: %s\n", FormatUnits(summary.Allowance, 0, summary.Symbol))
	if summary.Chairman {
		fmt.Fprintln(r.out, "  Role:      chairman")
	}
	if summary.Locked {
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("Withdrawals locked until %s", FormatTime(summary.LockedUntil))))
	}
	return nil
}

func (r *TreasuryRenderer) renderBalances(result *usecase.BalanceResult) error {
	fmt.Fprintf(r.out, "  Deposited: %s\n", FormatUnits(result.Balance, 0, result.Symbol))
	fmt.Fprintf(r.out, "  Wallet:    %s\n", FormatUnits(result.Wallet, 0, result.Symbol))
	return nil
}

func (r *TreasuryRenderer) amount(result *usecase.BalanceResult) string {
	return amountStyle.Sprint(FormatUnits(result.Amount, 0, result.Symbol))
}
