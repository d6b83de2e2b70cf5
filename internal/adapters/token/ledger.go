// Package token implements the in-process ERC20 governed by the treasury.
// It holds balances, allowances and its own AccessControl roles, and can be
// driven through ABI-encoded calls so that passed proposals can operate on it.
package token

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/trebuchet-org/dao-cli/internal/adapters/roles"
	"github.com/trebuchet-org/dao-cli/internal/domain"
	"github.com/trebuchet-org/dao-cli/internal/domain/models"
)

// Ledger is the governed token
type Ledger struct {
	mu    sync.Mutex
	state *models.TokenState
	roles *roles.Registry
	log   *slog.Logger
}

// NewLedger wraps an existing token state
func NewLedger(state *models.TokenState, log *slog.Logger) *Ledger {
	state.Normalize()
	if log == nil {
		log = slog.Default()
	}
	return &Ledger{
		state: state,
		roles: roles.NewRegistry(state.Roles),
		log:   log.With("component", "Token", "address", state.Address.Hex()),
	}
}

// Address of the token contract
func (l *Ledger) Address() common.Address { return l.state.Address }

func (l *Ledger) Name() string    { return l.state.Name }
func (l *Ledger) Symbol() string  { return l.state.Symbol }
func (l *Ledger) Decimals() uint8 { return l.state.Decimals }

// Roles exposes the token's own role registry
func (l *Ledger) Roles() *roles.Registry { return l.roles }

func (l *Ledger) TotalSupply() *uint256.Int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state.TotalSupply.Clone()
}

// BalanceOf returns a copy of account's balance
func (l *Ledger) BalanceOf(account common.Address) *uint256.Int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balance(account).Clone()
}

// Allowance returns how much spender may move on behalf of owner
func (l *Ledger) Allowance(owner, spender common.Address) *uint256.Int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.allowance(owner, spender).Clone()
}

// Approve sets spender's allowance over owner's tokens
func (l *Ledger) Approve(_ context.Context, owner, spender common.Address, amount *uint256.Int) error {
	if amount == nil {
		return domain.ErrInvalidAmount
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state.Allowances[owner] == nil {
		l.state.Allowances[owner] = make(map[common.Address]*uint256.Int)
	}
	l.state.Allowances[owner][spender] = amount.Clone()
	l.log.Debug("approval", "owner", owner.Hex(), "spender", spender.Hex(), "amount", amount.Dec())
	return nil
}

// Transfer moves amount out of from's balance
func (l *Ledger) Transfer(_ context.Context, from, to common.Address, amount *uint256.Int) error {
	if amount == nil {
		return domain.ErrInvalidAmount
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.move(from, to, amount)
}

// TransferFrom moves amount from one account to another, spending spender's allowance
func (l *Ledger) TransferFrom(_ context.Context, spender, from, to common.Address, amount *uint256.Int) error {
	if amount == nil {
		return domain.ErrInvalidAmount
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	allowed := l.allowance(from, spender)
	if allowed.Lt(amount) {
		return fmt.Errorf("%w: %s allows %s to spend %s, need %s",
			domain.ErrInsufficientAllowance, from.Hex(), spender.Hex(), allowed.Dec(), amount.Dec())
	}
	if l.balance(from).Lt(amount) {
		return fmt.Errorf("%w: transfer amount exceeds balance", domain.ErrInsufficientBalance)
	}

	// infinite approvals are never spent
	if !allowed.Eq(maxUint256) && !amount.IsZero() {
		if l.state.Allowances[from] == nil {
			l.state.Allowances[from] = make(map[common.Address]*uint256.Int)
		}
		l.state.Allowances[from][spender] = new(uint256.Int).Sub(allowed, amount)
	}
	return l.move(from, to, amount)
}

// Mint creates amount tokens for to. The caller must hold MinterRole.
func (l *Ledger) Mint(_ context.Context, caller, to common.Address, amount *uint256.Int) error {
	if amount == nil {
		return domain.ErrInvalidAmount
	}
	if !l.roles.HasRole(domain.MinterRole, caller) {
		return domain.MissingRoleErr{Account: caller, Role: domain.MinterRole}
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	supply, overflow := new(uint256.Int).AddOverflow(l.state.TotalSupply, amount)
	if overflow {
		return fmt.Errorf("%w: total supply", domain.ErrOverflow)
	}
	// balances never exceed the supply, so this cannot overflow
	l.state.Balances[to] = new(uint256.Int).Add(l.balance(to), amount)
	l.state.TotalSupply = supply
	l.log.Debug("mint", "to", to.Hex(), "amount", amount.Dec())
	return nil
}

// Burn destroys amount tokens held by from. The caller must hold BurnerRole.
func (l *Ledger) Burn(_ context.Context, caller, from common.Address, amount *uint256.Int) error {
	if amount == nil {
		return domain.ErrInvalidAmount
	}
	if !l.roles.HasRole(domain.BurnerRole, caller) {
		return domain.MissingRoleErr{Account: caller, Role: domain.BurnerRole}
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	balance := l.balance(from)
	if balance.Lt(amount) {
		return fmt.Errorf("%w: burn amount exceeds balance", domain.ErrInsufficientBalance)
	}
	l.setBalance(from, new(uint256.Int).Sub(balance, amount))
	l.state.TotalSupply = new(uint256.Int).Sub(l.state.TotalSupply, amount)
	l.log.Debug("burn", "from", from.Hex(), "amount", amount.Dec())
	return nil
}

// GrantMinter gives account MinterRole. The caller must be a token admin.
func (l *Ledger) GrantMinter(_ context.Context, caller, account common.Address) error {
	if err := l.roles.Grant(caller, domain.MinterRole, account); err != nil {
		return err
	}
	l.log.Debug("minter granted", "account", account.Hex(), "by", caller.Hex())
	return nil
}

var maxUint256 = new(uint256.Int).SetAllOne()

// Caller must hold l.mu.
func (l *Ledger) move(from, to common.Address, amount *uint256.Int) error {
	balance := l.balance(from)
	if balance.Lt(amount) {
		return fmt.Errorf("%w: transfer amount exceeds balance", domain.ErrInsufficientBalance)
	}
	if from == to {
		return nil
	}
	l.setBalance(from, new(uint256.Int).Sub(balance, amount))
	l.setBalance(to, new(uint256.Int).Add(l.balance(to), amount))
	l.log.Debug("transfer", "from", from.Hex(), "to", to.Hex(), "amount", amount.Dec())
	return nil
}

func (l *Ledger) balance(account common.Address) *uint256.Int {
	if b, ok := l.state.Balances[account]; ok && b != nil {
		return b
	}
	return new(uint256.Int)
}

func (l *Ledger) setBalance(account common.Address, amount *uint256.Int) {
	if amount.IsZero() {
		delete(l.state.Balances, account)
		return
	}
	l.state.Balances[account] = amount
}

func (l *Ledger) allowance(owner, spender common.Address) *uint256.Int {
	if a, ok := l.state.Allowances[owner][spender]; ok && a != nil {
		return a
	}
	return new(uint256.Int)
}
