package config

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// TreasuryConfig is fixed when the treasury is created
type TreasuryConfig struct {
	// Address is the treasury's own custody address on the token
	Address common.Address `json:"address"`
	// Token is the governed token whose deposits confer voting weight
	Token common.Address `json:"token"`
	// VotingPeriod is how long after creation a proposal accepts votes
	VotingPeriod time.Duration `json:"votingPeriod"`
	// MinQuorum is the absolute weighted vote total required to validate a proposal
	MinQuorum *uint256.Int `json:"minQuorum"`
}

// DaoFileConfig is the on-disk shape of dao.toml
type DaoFileConfig struct {
	Treasury TreasuryFileConfig `toml:"treasury"`
	Token    TokenFileConfig    `toml:"token"`
}

// TreasuryFileConfig is the [treasury] table of dao.toml
type TreasuryFileConfig struct {
	Address          string   `toml:"address"`
	VotingPeriod     string   `toml:"voting_period"`
	VotingPeriodDays uint64   `toml:"voting_period_days"`
	MinQuorum        string   `toml:"min_quorum"`
	Admin            string   `toml:"admin"`
	Chairmen         []string `toml:"chairmen"`
}

// TokenFileConfig is the [token] table of dao.toml
type TokenFileConfig struct {
	Address  string            `toml:"address"`
	Name     string            `toml:"name"`
	Symbol   string            `toml:"symbol"`
	Decimals uint8             `toml:"decimals"`
	Balances map[string]string `toml:"balances"`
}
