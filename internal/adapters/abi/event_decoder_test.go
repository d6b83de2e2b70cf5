package abi

import (
	"context"
	"log/slog"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/dao-cli/internal/domain"
	"github.com/trebuchet-org/dao-cli/internal/domain/models"
)

var (
	treasuryAddr = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	tokenAddr    = common.HexToAddress("0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512")
	owner        = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func TestEventParser_RoundTrip(t *testing.T) {
	parser := NewEventParser()

	tests := []struct {
		name  string
		event domain.Event
	}{
		{"deposited", &domain.DepositedEvent{Account: owner, Amount: uint256.NewInt(100)}},
		{"withdrawn", &domain.WithdrawnEvent{Account: owner, Amount: new(uint256.Int).SetAllOne()}},
		{"new proposal", &domain.NewProposalEvent{ID: 1, Creator: owner, Description: "grant minter", Target: tokenAddr}},
		{"voted", &domain.VotedEvent{ID: 3, Voter: owner, Decision: 1}},
		{"finished", &domain.ProposalFinishedEvent{
			ID: 2, Passed: true, QuorumReached: true,
			VotesFor: uint256.NewInt(200), VotesAgainst: uint256.NewInt(0),
			Executed: true, CallSuccess: false,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := parser.EncodeEvent(tt.event, treasuryAddr)
			require.NoError(t, err)
			assert.Equal(t, treasuryAddr, log.Address)
			assert.Equal(t, parser.ABI().Events[tt.event.ContractEventName()].ID, log.Topics[0])

			decoded, err := parser.ParseEvent(log)
			require.NoError(t, err)
			assert.Equal(t, tt.event, decoded)
		})
	}
}

func TestEventParser_Topics(t *testing.T) {
	parser := NewEventParser()

	log, err := parser.EncodeEvent(&domain.VotedEvent{ID: 7, Voter: owner, Decision: 0}, treasuryAddr)
	require.NoError(t, err)

	require.Len(t, log.Topics, 3)
	assert.Equal(t, crypto.Keccak256Hash([]byte("Voted(uint256,address,uint8)")), log.Topics[0])
	assert.Equal(t, common.BigToHash(big.NewInt(7)), log.Topics[1])
	assert.Equal(t, common.BytesToHash(owner.Bytes()), log.Topics[2])
}

func TestEventParser_UnknownSignature(t *testing.T) {
	parser := NewEventParser()
	decoder := NewEventDecoder(parser, slog.Default())

	_, err := decoder.DecodeLog(&models.EventLog{Topics: []common.Hash{crypto.Keccak256Hash([]byte("Nope()"))}})
	assert.ErrorContains(t, err, "unknown event signature")

	_, err = decoder.DecodeLog(&models.EventLog{Index: 4})
	assert.ErrorContains(t, err, "log 4: log has no topics")
}

func TestJournal(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	state := &models.ChainState{}
	parser := NewEventParser()
	journal := NewJournal(state, parser, treasuryAddr, fixedClock{now}, slog.Default())

	journal.Emit(ctx, &domain.DepositedEvent{Account: owner, Amount: uint256.NewInt(100)})
	journal.Emit(ctx, &domain.NewProposalEvent{ID: 1, Creator: owner, Description: "d", Target: tokenAddr})

	require.Len(t, state.Logs, 2)
	assert.Equal(t, uint64(0), state.Logs[0].Index)
	assert.Equal(t, uint64(1), state.Logs[1].Index)
	assert.Equal(t, now, state.Logs[1].Timestamp)

	// a corrupt entry in the middle is skipped
	state.Logs = []*models.EventLog{state.Logs[0], {Index: 9}, state.Logs[1]}

	decoded := NewEventDecoder(parser, slog.Default()).DecodeLogs(state.Logs)
	require.Len(t, decoded, 2)
	assert.Equal(t, "Deposited", decoded[0].Name)
	assert.Equal(t, "NewProposal", decoded[1].Name)
	assert.Equal(t, &domain.NewProposalEvent{ID: 1, Creator: owner, Description: "d", Target: tokenAddr}, decoded[1].Event)
}
