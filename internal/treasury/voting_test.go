package treasury

import (
	"context"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/dao-cli/internal/domain"
	"github.com/trebuchet-org/dao-cli/internal/domain/models"
)

func TestVote(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) *fixture {
		t.Helper()
		f := newFixture(10000)
		f.propose()
		f.propose()
		require.NoError(t, f.deposit(owner, 100))
		require.NoError(t, f.deposit(addr1, 100))
		return f
	}

	t.Run("decision 0 counts against", func(t *testing.T) {
		f := setup(t)

		require.NoError(t, f.treasury.Vote(ctx, owner, 1, models.DecisionAgainst))

		p, err := f.treasury.GetProposal(1)
		require.NoError(t, err)
		assert.Equal(t, uint64(100), p.VotesAgainst.Uint64())
		assert.True(t, p.VotesFor.IsZero())
		assert.True(t, f.treasury.HasVoted(1, owner))
		assert.Equal(t, &domain.VotedEvent{ID: 1, Voter: owner, Decision: 0}, f.sink.last())
	})

	t.Run("decision 1 counts for, on several proposals", func(t *testing.T) {
		f := setup(t)

		require.NoError(t, f.treasury.Vote(ctx, owner, 1, models.DecisionFor))
		f.clock.Advance(day / 2)
		require.NoError(t, f.treasury.Vote(ctx, owner, 2, models.DecisionFor))

		for _, id := range []uint64{1, 2} {
			p, err := f.treasury.GetProposal(id)
			require.NoError(t, err)
			assert.Equal(t, uint64(100), p.VotesFor.Uint64())
		}
		assert.Equal(t, &domain.VotedEvent{ID: 2, Voter: owner, Decision: 1}, f.sink.last())
	})

	t.Run("decision outside 0 and 1 fails", func(t *testing.T) {
		f := setup(t)

		for _, d := range []models.Decision{2, 3, 255} {
			err := f.treasury.Vote(ctx, owner, 1, d)
			assert.ErrorIs(t, err, domain.ErrInvalidDecision)
		}
		assert.False(t, f.treasury.HasVoted(1, owner))
	})

	t.Run("without deposit fails", func(t *testing.T) {
		f := setup(t)
		require.NoError(t, f.treasury.Withdraw(ctx, owner, uint256.NewInt(100)))

		err := f.treasury.Vote(ctx, owner, 1, models.DecisionAgainst)
		assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
		assert.False(t, f.treasury.HasVoted(1, owner))
	})

	t.Run("after the deadline fails even if never finished", func(t *testing.T) {
		f := setup(t)
		f.clock.Advance(2 * day)

		err := f.treasury.Vote(ctx, owner, 1, models.DecisionFor)
		assert.ErrorIs(t, err, domain.ErrVotingClosed)
		assert.Equal(t, "proposal 1: the voting is over", err.Error())
	})

	t.Run("exactly at the deadline is still open", func(t *testing.T) {
		f := setup(t)
		f.clock.Advance(day)

		require.NoError(t, f.treasury.Vote(ctx, owner, 1, models.DecisionFor))
	})

	t.Run("second vote fails regardless of decision", func(t *testing.T) {
		f := setup(t)
		require.NoError(t, f.treasury.Vote(ctx, owner, 1, models.DecisionFor))

		for _, d := range []models.Decision{models.DecisionFor, models.DecisionAgainst} {
			err := f.treasury.Vote(ctx, owner, 1, d)
			assert.ErrorIs(t, err, domain.ErrAlreadyVoted)
		}

		p, err := f.treasury.GetProposal(1)
		require.NoError(t, err)
		assert.Equal(t, uint64(100), p.VotesFor.Uint64())
		assert.True(t, p.VotesAgainst.IsZero())
	})

	t.Run("unknown proposal", func(t *testing.T) {
		f := setup(t)

		err := f.treasury.Vote(ctx, owner, 42, models.DecisionFor)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("weight is the balance at cast time", func(t *testing.T) {
		f := setup(t)
		require.NoError(t, f.treasury.Vote(ctx, owner, 1, models.DecisionFor))
		require.NoError(t, f.deposit(owner, 400))
		require.NoError(t, f.treasury.Vote(ctx, owner, 2, models.DecisionFor))

		p1, err := f.treasury.GetProposal(1)
		require.NoError(t, err)
		p2, err := f.treasury.GetProposal(2)
		require.NoError(t, err)
		assert.Equal(t, uint64(100), p1.VotesFor.Uint64())
		assert.Equal(t, uint64(500), p2.VotesFor.Uint64())
	})

	t.Run("tally overflow fails loudly", func(t *testing.T) {
		f := setup(t)
		f.state.Balances[addr2] = new(uint256.Int).SetAllOne()
		require.NoError(t, f.treasury.Vote(ctx, addr2, 1, models.DecisionFor))

		err := f.treasury.Vote(ctx, owner, 1, models.DecisionFor)
		assert.ErrorIs(t, err, domain.ErrOverflow)
		assert.False(t, f.treasury.HasVoted(1, owner))

		p, err := f.treasury.GetProposal(1)
		require.NoError(t, err)
		assert.True(t, p.VotesFor.Eq(new(uint256.Int).SetAllOne()))
	})
}
