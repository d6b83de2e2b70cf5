package config

import (
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var deployer = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")

func TestResolve_Defaults(t *testing.T) {
	var cfg *DaoFileConfig

	g, err := cfg.Resolve(deployer, uint256.FromDecimal)
	require.NoError(t, err)

	assert.Equal(t, DefaultTreasuryAddress, g.Treasury.Address)
	assert.Equal(t, DefaultTokenAddress, g.Treasury.Token)
	assert.Equal(t, 24*time.Hour, g.Treasury.VotingPeriod)
	assert.Equal(t, uint64(10000), g.Treasury.MinQuorum.Uint64())
	assert.Equal(t, deployer, g.Admin)
	assert.Equal(t, []common.Address{deployer}, g.Chairmen)
	assert.Equal(t, "CRT", g.Token.Symbol)
}

func TestResolve_File(t *testing.T) {
	addr1 := "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"

	t.Run("full config", func(t *testing.T) {
		cfg := &DaoFileConfig{
			Treasury: TreasuryFileConfig{
				VotingPeriodDays: 3,
				MinQuorum:        "500",
				Chairmen:         []string{addr1},
			},
			Token: TokenFileConfig{
				Name:     "Governance",
				Symbol:   "GOV",
				Balances: map[string]string{addr1: "6000"},
			},
		}

		g, err := cfg.Resolve(deployer, uint256.FromDecimal)
		require.NoError(t, err)
		assert.Equal(t, 72*time.Hour, g.Treasury.VotingPeriod)
		assert.Equal(t, uint64(500), g.Treasury.MinQuorum.Uint64())
		assert.Equal(t, []common.Address{common.HexToAddress(addr1)}, g.Chairmen)
		assert.Equal(t, "Governance", g.Token.Name)
		assert.Equal(t, uint64(6000), g.Token.Balances[common.HexToAddress(addr1)].Uint64())
	})

	t.Run("duration string", func(t *testing.T) {
		cfg := &DaoFileConfig{Treasury: TreasuryFileConfig{VotingPeriod: "90m"}}

		g, err := cfg.Resolve(deployer, uint256.FromDecimal)
		require.NoError(t, err)
		assert.Equal(t, 90*time.Minute, g.Treasury.VotingPeriod)
	})

	t.Run("both period forms", func(t *testing.T) {
		cfg := &DaoFileConfig{Treasury: TreasuryFileConfig{VotingPeriod: "1h", VotingPeriodDays: 1}}

		_, err := cfg.Resolve(deployer, uint256.FromDecimal)
		assert.ErrorContains(t, err, "not both")
	})

	t.Run("negative period", func(t *testing.T) {
		cfg := &DaoFileConfig{Treasury: TreasuryFileConfig{VotingPeriod: "-1h"}}

		_, err := cfg.Resolve(deployer, uint256.FromDecimal)
		assert.ErrorContains(t, err, "must be positive")
	})

	t.Run("bad chairman", func(t *testing.T) {
		cfg := &DaoFileConfig{Treasury: TreasuryFileConfig{Chairmen: []string{"bob"}}}

		_, err := cfg.Resolve(deployer, uint256.FromDecimal)
		assert.ErrorContains(t, err, `treasury.chairmen[0]: invalid address "bob"`)
	})

	t.Run("token at the treasury address", func(t *testing.T) {
		cfg := &DaoFileConfig{Token: TokenFileConfig{Address: DefaultTreasuryAddress.Hex()}}

		_, err := cfg.Resolve(deployer, uint256.FromDecimal)
		assert.ErrorContains(t, err, "different addresses")
	})
}
