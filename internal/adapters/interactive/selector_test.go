package interactive

import (
	"context"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/dao-cli/internal/domain/config"
	"github.com/trebuchet-org/dao-cli/internal/domain/models"
)

func TestSelectProposal_NoPrompt(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	proposals := []*models.Proposal{{ID: 1, Description: "grant minter", CreatedAt: now}}

	t.Run("non-interactive", func(t *testing.T) {
		s := NewSelectorAdapter(&config.RuntimeConfig{NonInteractive: true})
		_, err := s.SelectProposal(ctx, proposals, time.Hour, now, "Pick")
		assert.ErrorContains(t, err, "non-interactive")
	})

	t.Run("empty", func(t *testing.T) {
		s := NewSelectorAdapter(&config.RuntimeConfig{})
		_, err := s.SelectProposal(ctx, nil, time.Hour, now, "Pick")
		assert.ErrorContains(t, err, "no proposals")
	})

	t.Run("single proposal is returned directly", func(t *testing.T) {
		s := NewSelectorAdapter(&config.RuntimeConfig{})
		p, err := s.SelectProposal(ctx, proposals, time.Hour, now, "Pick")
		require.NoError(t, err)
		assert.Equal(t, uint64(1), p.ID)
	})
}

func TestFuzzySearch(t *testing.T) {
	color.NoColor = true
	now := time.Now()
	options := formatProposalOptions([]*models.Proposal{
		{ID: 1, Description: "grant minter", CreatedAt: now},
		{ID: 2, Description: "fund marketing", CreatedAt: now.Add(-2 * time.Hour), Finished: false},
	}, time.Hour, now)

	assert.Equal(t, "#1 grant minter [active]", options[0])
	assert.Equal(t, "#2 fund marketing [awaiting-finish]", options[1])

	search := createFuzzySearchFunc(options)
	assert.True(t, search("", 0))
	assert.True(t, search("minter", 0))
	assert.False(t, search("minter", 1))
	assert.True(t, search("fndmkt", 1))
	assert.True(t, search("awaiting", 1))
}
