package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/trebuchet-org/dao-cli/internal/domain/config"
)

// DepositTokensParams contains parameters for a deposit
type DepositTokensParams struct {
	Amount *uint256.Int
	// Approve grants the treasury the allowance before depositing
	Approve bool
}

// BalanceResult describes an account's position after a ledger operation
type BalanceResult struct {
	Account common.Address `json:"account"`
	Amount  *uint256.Int   `json:"amount,omitempty"`
	Balance *uint256.Int   `json:"balance"`
	Wallet  *uint256.Int   `json:"wallet"`
	Symbol  string         `json:"symbol"`
}

// DepositTokens locks tokens in the treasury for voting weight
type DepositTokens struct {
	config  *config.RuntimeConfig
	session *ChainSession
}

// NewDepositTokens creates a new DepositTokens use case
func NewDepositTokens(cfg *config.RuntimeConfig, session *ChainSession) *DepositTokens {
	return &DepositTokens{config: cfg, session: session}
}

// Run executes the deposit
func (uc *DepositTokens) Run(ctx context.Context, params DepositTokensParams) (*BalanceResult, error) {
	from, err := requireSender(uc.config)
	if err != nil {
		return nil, err
	}

	var result *BalanceResult
	err = uc.session.Update(ctx, func(chain *Chain) error {
		custody := chain.Treasury.Config().Address
		if params.Approve && params.Amount != nil {
			if err := chain.Token.Approve(ctx, from, custody, params.Amount); err != nil {
				return fmt.Errorf("failed to approve treasury: %w", err)
			}
		}
		if err := chain.Treasury.Deposit(ctx, from, params.Amount); err != nil {
			return err
		}
		result = &BalanceResult{
			Account: from,
			Amount:  params.Amount,
			Balance: chain.Treasury.BalanceOf(from),
			Wallet:  chain.Token.BalanceOf(from),
			Symbol:  chain.Token.Symbol(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
