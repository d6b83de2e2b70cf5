package chain

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/dao-cli/internal/adapters/abi"
	"github.com/trebuchet-org/dao-cli/internal/adapters/token"
	"github.com/trebuchet-org/dao-cli/internal/domain"
	"github.com/trebuchet-org/dao-cli/internal/domain/config"
	"github.com/trebuchet-org/dao-cli/internal/domain/models"
)

var (
	treasuryAddr = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	tokenAddr    = common.HexToAddress("0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512")
	admin        = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	voter        = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
)

func newState() *models.ChainState {
	return &models.ChainState{
		Treasury: models.NewTreasuryState(config.TreasuryConfig{
			Address:      treasuryAddr,
			Token:        tokenAddr,
			VotingPeriod: time.Hour,
			MinQuorum:    uint256.NewInt(1),
		}),
		Token: &models.TokenState{Address: tokenAddr, Name: "Crypton", Symbol: "CRT", Decimals: 18},
	}
}

func TestNewChain(t *testing.T) {
	ctx := context.Background()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	state := newState()
	c := NewFactory(abi.NewEventParser(), log).NewChain(state)

	c.Roles.Setup(domain.ChairmanRole, admin)
	c.TokenRoles.Setup(domain.DefaultAdminRole, treasuryAddr)
	c.TokenRoles.Setup(domain.MinterRole, admin)

	require.NoError(t, c.Token.Mint(ctx, admin, voter, uint256.NewInt(10)))
	require.NoError(t, c.Token.Approve(ctx, voter, treasuryAddr, uint256.NewInt(10)))
	require.NoError(t, c.Treasury.Deposit(ctx, voter, uint256.NewInt(10)))

	// Deposits land in the treasury's custody on the shared token state
	assert.Equal(t, uint256.NewInt(10), state.Token.Balances[treasuryAddr])
	assert.Equal(t, uint256.NewInt(10), state.Treasury.Balances[voter])

	// The proposal call reaches the token through the router
	data, err := token.EncodeCall("grantMinter", []string{voter.Hex()})
	require.NoError(t, err)
	id, err := c.Treasury.AddProposal(ctx, admin, tokenAddr, data, "grant")
	require.NoError(t, err)
	require.NoError(t, c.Treasury.Vote(ctx, voter, id, models.DecisionFor))

	c.Clock.Warp(2 * time.Hour)
	assert.Equal(t, 2*time.Hour, state.TimeOffset)

	result, err := c.Treasury.Finish(ctx, id)
	require.NoError(t, err)
	assert.True(t, result.CallSuccess)
	assert.True(t, c.TokenRoles.HasRole(domain.MinterRole, voter))

	// Deposit, proposal, vote and finish were journaled
	require.Len(t, state.Logs, 4)
	for _, entry := range state.Logs {
		assert.Equal(t, treasuryAddr, entry.Address)
	}
}
