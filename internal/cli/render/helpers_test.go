package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/dao-cli/internal/domain/models"
	"github.com/trebuchet-org/dao-cli/internal/usecase"
)

func init() {
	color.NoColor = true
}

func TestFormatUnits(t *testing.T) {
	tests := []struct {
		amount   string
		decimals uint8
		symbol   string
		want     string
	}{
		{"0", 18, "CRT", "0 CRT"},
		{"1000000000000000000", 18, "CRT", "1 CRT"},
		{"1500000000000000000", 18, "CRT", "1.5 CRT"},
		{"1", 18, "", "0.000000000000000001"},
		{"12345", 0, "CRT", "12345 CRT"},
		{"120", 2, "X", "1.2 X"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			amount, err := uint256.FromDecimal(tt.amount)
			require.NoError(t, err)
			assert.Equal(t, tt.want, FormatUnits(amount, tt.decimals, tt.symbol))
		})
	}
	assert.Equal(t, "0 CRT", FormatUnits(nil, 18, "CRT"))
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Active", StatusLabel(models.ProposalStatusActive))
	assert.Equal(t, "Awaiting Finish", StatusLabel(models.ProposalStatusAwaitingFinish))
	assert.Equal(t, "No Quorum", StatusLabel(models.ProposalStatusNoQuorum))
}

func TestFormatRemaining(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "in 1h0m0s", FormatRemaining(now.Add(time.Hour), now))
	assert.Equal(t, "30m0s ago", FormatRemaining(now.Add(-30*time.Minute), now))
}

func TestFormatError(t *testing.T) {
	assert.Equal(t, "❌ Voting in progress", FormatError("withdraw: voting in progress"))
}

func TestProposalsRenderer_RenderList(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	view := &usecase.ProposalView{
		Proposal: &models.Proposal{
			ID:           1,
			Creator:      common.HexToAddress("0x01"),
			Description:  "grant minter",
			CreatedAt:    now,
			VotesFor:     uint256.NewInt(100),
			VotesAgainst: uint256.NewInt(5),
		},
		Status:   models.ProposalStatusActive,
		Deadline: now.Add(time.Hour),
	}

	var buf bytes.Buffer
	r := NewProposalsRenderer(&buf)
	require.NoError(t, r.RenderList(&usecase.ProposalListResult{
		Proposals: []*usecase.ProposalView{view},
		Now:       now,
		Summary:   usecase.ProposalSummary{Total: 2},
	}))

	out := buf.String()
	assert.Contains(t, out, "grant minter")
	assert.Contains(t, out, "Active")
	assert.Contains(t, out, "100")
	assert.Contains(t, out, "in 1h0m0s")
	assert.Contains(t, out, "2 proposal(s), 1 shown")

	buf.Reset()
	require.NoError(t, r.RenderList(&usecase.ProposalListResult{}))
	assert.Equal(t, "No proposals found\n", buf.String())
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, map[string]int{"a": 1}))
	assert.Equal(t, "{\n  \"a\": 1\n}\n", buf.String())
}
