package render

import (
	"fmt"
	"io"
	"sort"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/dao-cli/internal/usecase"
)

// TokenRenderer renders token and role output
type TokenRenderer struct {
	out io.Writer
}

// NewTokenRenderer creates a new token renderer
func NewTokenRenderer(out io.Writer) *TokenRenderer {
	return &TokenRenderer{out: out}
}

// RenderInfo renders the token's metadata
func (r *TokenRenderer) RenderInfo(info *usecase.TokenInfo) error {
	headerStyle.Fprintf(r.out, "%s (%s)\n", info.Name, info.Symbol)
	fmt.Fprintf(r.out, "  Address:      %s\n", info.Address.Hex())
	fmt.Fprintf(r.out, "  Decimals:     %d\n", info.Decimals)
	fmt.Fprintf(r.out, "  Total supply: %s (%s)\n", info.TotalSupply.Dec(), FormatUnits(info.TotalSupply, info.Decimals, info.Symbol))
	fmt.Fprintf(r.out, "  In treasury:  %s\n", info.Custody.Dec())
	for _, m := range info.Minters {
		fmt.Fprintf(r.out, "  Minter:       %s\n", m.Hex())
	}
	return nil
}

// RenderTransfer renders a mint, transfer or approval
func (r *TokenRenderer) RenderTransfer(verb string, result *usecase.TokenTransferResult) error {
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("%s %s to %s", verb, FormatUnits(result.Amount, 0, result.Symbol), result.To.Hex())))
	fmt.Fprintf(r.out, "  Sender balance: %s\n", FormatUnits(result.Balance, 0, result.Symbol))
	return nil
}

// RenderRole renders a single role assignment
func (r *TokenRenderer) RenderRole(verb string, result *usecase.RoleResult) error {
	state := "does not hold"
	if result.Member {
		state = "holds"
	}
	if verb != "" {
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("%s %s for %s on %s", verb, result.Role, result.Account.Hex(), result.Scope)))
	}
	fmt.Fprintf(r.out, "  %s %s %s on %s\n", result.Account.Hex(), state, result.Role, result.Scope)
	return nil
}

// RenderRoles renders every role with its members
func (r *TokenRenderer) RenderRoles(listing *usecase.RoleListing) error {
	if len(listing.Roles) == 0 {
		fmt.Fprintf(r.out, "No roles assigned on %s\n", listing.Scope)
		return nil
	}

	names := make([]string, 0, len(listing.Roles))
	for name := range listing.Roles {
		names = append(names, name)
	}
	sort.Strings(names)

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.AppendHeader(table.Row{"ROLE", "MEMBER"})
	for _, name := range names {
		for i, member := range listing.Roles[name] {
			label := name
			if i > 0 {
				label = ""
			}
			t.AppendRow(table.Row{label, addressHex(member)})
		}
	}
	headerStyle.Fprintf(r.out, "Roles on %s\n", listing.Scope)
	fmt.Fprintln(r.out, t.Render())
	return nil
}

func addressHex(a common.Address) string {
	return addressStyle.Sprint(a.Hex())
}
