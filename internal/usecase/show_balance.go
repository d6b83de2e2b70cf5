package usecase

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/trebuchet-org/dao-cli/internal/domain"
	"github.com/trebuchet-org/dao-cli/internal/domain/config"
)

// AccountSummary is everything the treasury knows about an account
type AccountSummary struct {
	Account     common.Address `json:"account"`
	Deposited   *uint256.Int   `json:"deposited"`
	Wallet      *uint256.Int   `json:"wallet"`
	Allowance   *uint256.Int   `json:"allowance"`
	Symbol      string         `json:"symbol"`
	Decimals    uint8          `json:"decimals"`
	Locked      bool           `json:"locked"`
	LockedUntil time.Time      `json:"lockedUntil,omitempty"`
	Chairman    bool           `json:"chairman"`
}

// ShowBalance is a use case for inspecting an account
type ShowBalance struct {
	config  *config.RuntimeConfig
	session *ChainSession
}

// NewShowBalance creates a new ShowBalance use case
func NewShowBalance(cfg *config.RuntimeConfig, session *ChainSession) *ShowBalance {
	return &ShowBalance{config: cfg, session: session}
}

// Run shows the account, defaulting to the configured sender
func (uc *ShowBalance) Run(ctx context.Context, account *common.Address) (*AccountSummary, error) {
	if account == nil {
		from, err := requireSender(uc.config)
		if err != nil {
			return nil, err
		}
		account = &from
	}

	chain, err := uc.session.View(ctx)
	if err != nil {
		return nil, err
	}

	until, locked := chain.Treasury.LockedUntil(*account)
	return &AccountSummary{
		Account:     *account,
		Deposited:   chain.Treasury.BalanceOf(*account),
		Wallet:      chain.Token.BalanceOf(*account),
		Allowance:   chain.Token.Allowance(*account, chain.Treasury.Config().Address),
		Symbol:      chain.Token.Symbol(),
		Decimals:    chain.Token.Decimals(),
		Locked:      locked,
		LockedUntil: until,
		Chairman:    chain.Roles.HasRole(domain.ChairmanRole, *account),
	}, nil
}
