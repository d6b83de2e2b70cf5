package usecase

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/trebuchet-org/dao-cli/internal/domain"
	"github.com/trebuchet-org/dao-cli/internal/domain/config"
)

// TokenInfo describes the governed token
type TokenInfo struct {
	Address     common.Address   `json:"address"`
	Name        string           `json:"name"`
	Symbol      string           `json:"symbol"`
	Decimals    uint8            `json:"decimals"`
	TotalSupply *uint256.Int     `json:"totalSupply"`
	Custody     *uint256.Int     `json:"custody"`
	Minters     []common.Address `json:"minters"`
}

// TokenTransferResult describes a token operation by the sender
type TokenTransferResult struct {
	From    common.Address `json:"from"`
	To      common.Address `json:"to"`
	Amount  *uint256.Int   `json:"amount"`
	Balance *uint256.Int   `json:"balance"`
	Symbol  string         `json:"symbol"`
}

// ManageToken operates the governed token as the configured sender
type ManageToken struct {
	config  *config.RuntimeConfig
	session *ChainSession
}

// NewManageToken creates a new ManageToken use case
func NewManageToken(cfg *config.RuntimeConfig, session *ChainSession) *ManageToken {
	return &ManageToken{config: cfg, session: session}
}

// Info describes the token
func (uc *ManageToken) Info(ctx context.Context) (*TokenInfo, error) {
	chain, err := uc.session.View(ctx)
	if err != nil {
		return nil, err
	}
	return &TokenInfo{
		Address:     chain.Token.Address(),
		Name:        chain.Token.Name(),
		Symbol:      chain.Token.Symbol(),
		Decimals:    chain.Token.Decimals(),
		TotalSupply: chain.Token.TotalSupply(),
		Custody:     chain.Token.BalanceOf(chain.Treasury.Config().Address),
		Minters:     chain.TokenRoles.Members(domain.MinterRole),
	}, nil
}

// Mint creates tokens for to. The sender must be a minter.
func (uc *ManageToken) Mint(ctx context.Context, to common.Address, amount *uint256.Int) (*TokenTransferResult, error) {
	return uc.update(ctx, to, amount, func(chain *Chain, from common.Address) error {
		return chain.Token.Mint(ctx, from, to, amount)
	})
}

// Transfer sends tokens from the sender to another account
func (uc *ManageToken) Transfer(ctx context.Context, to common.Address, amount *uint256.Int) (*TokenTransferResult, error) {
	return uc.update(ctx, to, amount, func(chain *Chain, from common.Address) error {
		return chain.Token.Transfer(ctx, from, to, amount)
	})
}

// Approve lets spender move the sender's tokens. A nil spender approves the treasury.
func (uc *ManageToken) Approve(ctx context.Context, spender *common.Address, amount *uint256.Int) (*TokenTransferResult, error) {
	var target common.Address
	result, err := uc.update(ctx, target, amount, func(chain *Chain, from common.Address) error {
		target = chain.Treasury.Config().Address
		if spender != nil {
			target = *spender
		}
		return chain.Token.Approve(ctx, from, target, amount)
	})
	if err != nil {
		return nil, err
	}
	result.To = target
	return result, nil
}

func (uc *ManageToken) update(ctx context.Context, to common.Address, amount *uint256.Int, fn func(chain *Chain, from common.Address) error) (*TokenTransferResult, error) {
	from, err := requireSender(uc.config)
	if err != nil {
		return nil, err
	}

	result := &TokenTransferResult{From: from, To: to, Amount: amount}
	err = uc.session.Update(ctx, func(chain *Chain) error {
		if err := fn(chain, from); err != nil {
			return err
		}
		result.Balance = chain.Token.BalanceOf(from)
		result.Symbol = chain.Token.Symbol()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
