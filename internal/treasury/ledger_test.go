package treasury

import (
	"context"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/dao-cli/internal/domain"
)

func TestDeposit(t *testing.T) {
	ctx := context.Background()

	t.Run("credits ledger and moves tokens into custody", func(t *testing.T) {
		f := newFixture(10000)

		require.NoError(t, f.deposit(owner, 50))

		assert.Equal(t, uint64(50), f.treasury.BalanceOf(owner).Uint64())
		assert.Equal(t, uint64(5950), f.token.BalanceOf(owner).Uint64())
		assert.Equal(t, uint64(50), f.token.BalanceOf(treasuryAddr).Uint64())

		event, ok := f.sink.last().(*domain.DepositedEvent)
		require.True(t, ok)
		assert.Equal(t, owner, event.Account)
		assert.Equal(t, uint64(50), event.Amount.Uint64())
	})

	t.Run("zero amount fails", func(t *testing.T) {
		f := newFixture(10000)
		f.token.approve(owner, uint256.NewInt(50))

		err := f.treasury.Deposit(ctx, owner, new(uint256.Int))
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
		assert.Equal(t, "must be at least 1 wei", err.Error())
		assert.True(t, f.treasury.BalanceOf(owner).IsZero())
		assert.Empty(t, f.sink.events)
	})

	t.Run("token failure leaves ledger untouched", func(t *testing.T) {
		f := newFixture(10000)

		err := f.treasury.Deposit(ctx, owner, uint256.NewInt(50))
		assert.ErrorIs(t, err, domain.ErrInsufficientAllowance)
		assert.True(t, f.treasury.BalanceOf(owner).IsZero())
		assert.Equal(t, uint64(6000), f.token.BalanceOf(owner).Uint64())
		assert.Empty(t, f.sink.events)
	})

	t.Run("overflowing balance fails loudly", func(t *testing.T) {
		f := newFixture(10000)
		max := new(uint256.Int).SetAllOne()
		f.state.Balances[owner] = max.Clone()
		f.token.approve(owner, uint256.NewInt(1))

		err := f.treasury.Deposit(ctx, owner, uint256.NewInt(1))
		assert.ErrorIs(t, err, domain.ErrOverflow)
		assert.True(t, f.treasury.BalanceOf(owner).Eq(max))
		assert.Equal(t, uint64(6000), f.token.BalanceOf(owner).Uint64())
	})
}

func TestWithdraw(t *testing.T) {
	ctx := context.Background()

	t.Run("withdraws full deposit", func(t *testing.T) {
		f := newFixture(10000)
		require.NoError(t, f.deposit(owner, 50))

		require.NoError(t, f.treasury.Withdraw(ctx, owner, uint256.NewInt(50)))
		assert.True(t, f.treasury.BalanceOf(owner).IsZero())
		assert.Equal(t, uint64(6000), f.token.BalanceOf(owner).Uint64())

		event, ok := f.sink.last().(*domain.WithdrawnEvent)
		require.True(t, ok)
		assert.Equal(t, uint64(50), event.Amount.Uint64())
	})

	t.Run("more than balance fails", func(t *testing.T) {
		f := newFixture(10000)
		require.NoError(t, f.deposit(owner, 50))

		err := f.treasury.Withdraw(ctx, owner, uint256.NewInt(51))
		assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
		assert.Equal(t, uint64(50), f.treasury.BalanceOf(owner).Uint64())

		require.NoError(t, f.deposit(owner, 50))
		require.NoError(t, f.treasury.Withdraw(ctx, owner, uint256.NewInt(50)))
		assert.Equal(t, uint64(50), f.treasury.BalanceOf(owner).Uint64())
	})

	t.Run("balance tracks deposits minus withdrawals", func(t *testing.T) {
		f := newFixture(10000)
		steps := []struct {
			deposit  uint64
			withdraw uint64
		}{
			{deposit: 100},
			{withdraw: 30},
			{deposit: 7},
			{withdraw: 77},
			{deposit: 1},
		}

		var expected uint64
		for _, step := range steps {
			if step.deposit > 0 {
				require.NoError(t, f.deposit(addr1, step.deposit))
				expected += step.deposit
			}
			if step.withdraw > 0 {
				require.NoError(t, f.treasury.Withdraw(ctx, addr1, uint256.NewInt(step.withdraw)))
				expected -= step.withdraw
			}
			assert.Equal(t, expected, f.treasury.BalanceOf(addr1).Uint64())
		}
		assert.Equal(t, 6000-expected, f.token.BalanceOf(addr1).Uint64())
	})

	t.Run("locked while a voted proposal is open", func(t *testing.T) {
		f := newFixture(10000)
		require.NoError(t, f.deposit(owner, 50))
		id := f.propose()
		require.NoError(t, f.treasury.Vote(ctx, owner, id, 0))

		err := f.treasury.Withdraw(ctx, owner, uint256.NewInt(50))
		assert.ErrorIs(t, err, domain.ErrVotingInProgress)
		assert.Equal(t, uint64(50), f.treasury.BalanceOf(owner).Uint64())

		until, locked := f.treasury.LockedUntil(owner)
		assert.True(t, locked)
		assert.Equal(t, f.clock.now.Add(day), until)

		// Any amount is blocked, not just the voted weight
		err = f.treasury.Withdraw(ctx, owner, uint256.NewInt(1))
		assert.ErrorIs(t, err, domain.ErrVotingInProgress)

		f.clock.Advance(day + 1)
		_, err = f.treasury.Finish(ctx, id)
		require.NoError(t, err)

		_, locked = f.treasury.LockedUntil(owner)
		assert.False(t, locked)
		require.NoError(t, f.treasury.Withdraw(ctx, owner, uint256.NewInt(50)))
		assert.Empty(t, f.state.OpenVotes)
	})

	t.Run("lock follows the latest open deadline", func(t *testing.T) {
		f := newFixture(10000)
		require.NoError(t, f.deposit(owner, 100))
		first := f.propose()
		require.NoError(t, f.treasury.Vote(ctx, owner, first, 1))

		f.clock.Advance(day / 2)
		second := f.propose()
		require.NoError(t, f.treasury.Vote(ctx, owner, second, 1))

		f.clock.Advance(day/2 + 1)
		_, err := f.treasury.Finish(ctx, first)
		require.NoError(t, err)

		err = f.treasury.Withdraw(ctx, owner, uint256.NewInt(100))
		assert.ErrorIs(t, err, domain.ErrVotingInProgress)
	})

	t.Run("non-voters are never locked", func(t *testing.T) {
		f := newFixture(10000)
		require.NoError(t, f.deposit(owner, 50))
		require.NoError(t, f.deposit(addr1, 50))
		id := f.propose()
		require.NoError(t, f.treasury.Vote(ctx, owner, id, 1))

		require.NoError(t, f.treasury.Withdraw(ctx, addr1, uint256.NewInt(50)))
	})
}

func TestBalanceOfUnknownAccount(t *testing.T) {
	f := newFixture(10000)
	assert.True(t, f.treasury.BalanceOf(addr2).IsZero())
}
