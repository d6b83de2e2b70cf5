package config

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Defaults used by dao init when dao.toml leaves a value out
var (
	DefaultTreasuryAddress = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	DefaultTokenAddress    = common.HexToAddress("0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512")
	DefaultVotingPeriod    = 24 * time.Hour
	DefaultMinQuorum       = uint64(10000)
	DefaultTokenName       = "Crypton"
	DefaultTokenSymbol     = "CRT"
	DefaultTokenDecimals   = uint8(18)
)

// Genesis is the fully resolved initial state described by dao.toml
type Genesis struct {
	Treasury TreasuryConfig
	Admin    common.Address
	Chairmen []common.Address
	Token    TokenGenesis
}

// TokenGenesis describes the governed token at creation
type TokenGenesis struct {
	Address  common.Address
	Name     string
	Symbol   string
	Decimals uint8
	Balances map[common.Address]*uint256.Int
}

// AmountParser turns a configured amount string into a value
type AmountParser func(string) (*uint256.Int, error)

// Resolve validates the file configuration and fills in defaults. admin is
// used when the file names none.
func (c *DaoFileConfig) Resolve(admin common.Address, parseAmount AmountParser) (*Genesis, error) {
	g := &Genesis{
		Treasury: TreasuryConfig{
			Address:      DefaultTreasuryAddress,
			Token:        DefaultTokenAddress,
			VotingPeriod: DefaultVotingPeriod,
			MinQuorum:    uint256.NewInt(DefaultMinQuorum),
		},
		Admin: admin,
		Token: TokenGenesis{
			Address:  DefaultTokenAddress,
			Name:     DefaultTokenName,
			Symbol:   DefaultTokenSymbol,
			Decimals: DefaultTokenDecimals,
			Balances: make(map[common.Address]*uint256.Int),
		},
	}
	if c == nil {
		g.Chairmen = []common.Address{admin}
		return g, nil
	}

	t := c.Treasury
	var err error
	if t.Address != "" {
		if g.Treasury.Address, err = parseAddress("treasury.address", t.Address); err != nil {
			return nil, err
		}
	}
	if t.Admin != "" {
		if g.Admin, err = parseAddress("treasury.admin", t.Admin); err != nil {
			return nil, err
		}
	}

	switch {
	case t.VotingPeriod != "" && t.VotingPeriodDays != 0:
		return nil, fmt.Errorf("treasury: set either voting_period or voting_period_days, not both")
	case t.VotingPeriod != "":
		d, err := time.ParseDuration(t.VotingPeriod)
		if err != nil {
			return nil, fmt.Errorf("treasury.voting_period: %w", err)
		}
		g.Treasury.VotingPeriod = d
	case t.VotingPeriodDays != 0:
		g.Treasury.VotingPeriod = time.Duration(t.VotingPeriodDays) * 24 * time.Hour
	}
	if g.Treasury.VotingPeriod <= 0 {
		return nil, fmt.Errorf("treasury.voting_period must be positive")
	}

	if t.MinQuorum != "" {
		if g.Treasury.MinQuorum, err = parseAmount(t.MinQuorum); err != nil {
			return nil, fmt.Errorf("treasury.min_quorum: %w", err)
		}
	}

	g.Chairmen = []common.Address{g.Admin}
	if len(t.Chairmen) > 0 {
		g.Chairmen = make([]common.Address, 0, len(t.Chairmen))
		for i, s := range t.Chairmen {
			addr, err := parseAddress(fmt.Sprintf("treasury.chairmen[%d]", i), s)
			if err != nil {
				return nil, err
			}
			g.Chairmen = append(g.Chairmen, addr)
		}
	}

	tk := c.Token
	if tk.Address != "" {
		if g.Token.Address, err = parseAddress("token.address", tk.Address); err != nil {
			return nil, err
		}
	}
	g.Treasury.Token = g.Token.Address
	if g.Token.Address == g.Treasury.Address {
		return nil, fmt.Errorf("token and treasury must have different addresses")
	}
	if tk.Name != "" {
		g.Token.Name = tk.Name
	}
	if tk.Symbol != "" {
		g.Token.Symbol = tk.Symbol
	}
	if tk.Decimals != 0 {
		g.Token.Decimals = tk.Decimals
	}
	for holder, amount := range tk.Balances {
		addr, err := parseAddress("token.balances", holder)
		if err != nil {
			return nil, err
		}
		v, err := parseAmount(amount)
		if err != nil {
			return nil, fmt.Errorf("token.balances.%s: %w", holder, err)
		}
		g.Token.Balances[addr] = v
	}

	return g, nil
}

func parseAddress(field, s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%s: invalid address %q", field, s)
	}
	return common.HexToAddress(s), nil
}
