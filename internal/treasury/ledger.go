package treasury

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/trebuchet-org/dao-cli/internal/domain"
)

// Deposit locks amount of the governed token in the treasury and credits the
// account's voting weight. The account must have approved the treasury first.
func (t *Treasury) Deposit(ctx context.Context, account common.Address, amount *uint256.Int) error {
	if amount == nil || amount.IsZero() {
		return domain.ErrInvalidAmount
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	next, overflow := new(uint256.Int).AddOverflow(t.balance(account), amount)
	if overflow {
		return fmt.Errorf("deposit of %s: %w", amount.Dec(), domain.ErrOverflow)
	}

	custody := t.state.Config.Address
	if err := t.token.TransferFrom(ctx, custody, account, custody, amount); err != nil {
		return fmt.Errorf("failed to transfer tokens to treasury: %w", err)
	}
	t.state.Balances[account] = next

	t.log.Info("deposit", "account", account.Hex(), "amount", amount.Dec(), "balance", next.Dec())
	t.emit(ctx, &domain.DepositedEvent{Account: account, Amount: amount.Clone()})
	return nil
}

// Withdraw releases amount of the account's deposit back to it. It fails while
// any proposal the account voted on is still open.
func (t *Treasury) Withdraw(ctx context.Context, account common.Address, amount *uint256.Int) error {
	if amount == nil {
		return domain.ErrInvalidAmount
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock.Now()
	balance := t.balance(account)
	if balance.Lt(amount) {
		return fmt.Errorf("%w: balance %s, requested %s", domain.ErrInsufficientBalance, balance.Dec(), amount.Dec())
	}
	if until, locked := t.lockedUntil(account, now); locked {
		return fmt.Errorf("%w: deposit locked until %s", domain.ErrVotingInProgress, until.UTC().Format(time.RFC3339))
	}

	if err := t.token.Transfer(ctx, t.state.Config.Address, account, amount); err != nil {
		return fmt.Errorf("failed to transfer tokens from treasury: %w", err)
	}
	remaining := new(uint256.Int).Sub(balance, amount)
	if remaining.IsZero() {
		delete(t.state.Balances, account)
	} else {
		t.state.Balances[account] = remaining
	}

	t.log.Info("withdraw", "account", account.Hex(), "amount", amount.Dec(), "balance", remaining.Dec())
	t.emit(ctx, &domain.WithdrawnEvent{Account: account, Amount: amount.Clone()})
	return nil
}

// BalanceOf returns the account's deposited voting weight
func (t *Treasury) BalanceOf(account common.Address) *uint256.Int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.balance(account).Clone()
}

// LockedUntil returns the latest deadline among open proposals the account voted on.
// The second value is false when the account can withdraw freely.
func (t *Treasury) LockedUntil(account common.Address) (time.Time, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lockedUntil(account, t.clock.Now())
}

// balance never returns nil. Caller must hold t.mu.
func (t *Treasury) balance(account common.Address) *uint256.Int {
	if b, ok := t.state.Balances[account]; ok && b != nil {
		return b
	}
	return new(uint256.Int)
}

// Caller must hold t.mu.
func (t *Treasury) lockedUntil(account common.Address, now time.Time) (time.Time, bool) {
	var (
		until  time.Time
		locked bool
	)
	period := t.state.Config.VotingPeriod
	for _, id := range t.state.OpenVotes[account] {
		p, err := t.proposal(id)
		if err != nil || !p.VotingOpen(now, period) {
			continue
		}
		if deadline := p.Deadline(period); !locked || deadline.After(until) {
			until = deadline
		}
		locked = true
	}
	return until, locked
}
