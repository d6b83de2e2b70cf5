package usecase

import (
	"context"

	"github.com/holiman/uint256"
	"github.com/trebuchet-org/dao-cli/internal/domain/config"
)

// WithdrawTokensParams contains parameters for a withdrawal
type WithdrawTokensParams struct {
	Amount *uint256.Int
	// All withdraws the whole deposited balance
	All bool
}

// WithdrawTokens releases deposited tokens back to their owner
type WithdrawTokens struct {
	config  *config.RuntimeConfig
	session *ChainSession
}

// NewWithdrawTokens creates a new WithdrawTokens use case
func NewWithdrawTokens(cfg *config.RuntimeConfig, session *ChainSession) *WithdrawTokens {
	return &WithdrawTokens{config: cfg, session: session}
}

// Run executes the withdrawal
func (uc *WithdrawTokens) Run(ctx context.Context, params WithdrawTokensParams) (*BalanceResult, error) {
	from, err := requireSender(uc.config)
	if err != nil {
		return nil, err
	}

	var result *BalanceResult
	err = uc.session.Update(ctx, func(chain *Chain) error {
		amount := params.Amount
		if params.All {
			amount = chain.Treasury.BalanceOf(from)
		}
		if err := chain.Treasury.Withdraw(ctx, from, amount); err != nil {
			return err
		}
		result = &BalanceResult{
			Account: from,
			Amount:  amount,
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
