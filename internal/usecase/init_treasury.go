package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/dao-cli/internal/domain"
	"github.com/trebuchet-org/dao-cli/internal/domain/config"
	"github.com/trebuchet-org/dao-cli/internal/domain/models"
)

// InitTreasuryParams contains parameters for initializing a treasury
type InitTreasuryParams struct {
	Force bool
}

// InitTreasuryResult contains the result of initializing a treasury
type InitTreasuryResult struct {
	StatePath string
	Genesis   *config.Genesis
	Replaced  bool
}

// InitTreasury creates the local chain from dao.toml
type InitTreasury struct {
	config  *config.RuntimeConfig
	store   ChainStateStore
	factory ChainFactory
}

// NewInitTreasury creates a new InitTreasury use case
func NewInitTreasury(cfg *config.RuntimeConfig, store ChainStateStore, factory ChainFactory) *InitTreasury {
	return &InitTreasury{config: cfg, store: store, factory: factory}
}

// Run executes the init use case
func (uc *InitTreasury) Run(ctx context.Context, params InitTreasuryParams) (*InitTreasuryResult, error) {
	exists := uc.store.Exists()
	if exists && !params.Force {
		return nil, fmt.Errorf("treasury already initialized at %s (use --force to replace it)", uc.store.GetPath())
	}

	admin := uc.config.From
	genesis, err := uc.config.DaoConfig.Resolve(admin, domain.ParseAmount)
	if err != nil {
		return nil, fmt.Errorf("invalid dao.toml: %w", err)
	}
	if genesis.Admin == (common.Address{}) {
		return nil, fmt.Errorf("%w: set treasury.admin in dao.toml or pass --from", domain.ErrInvalidAddress)
	}

	state := &models.ChainState{
		Treasury: models.NewTreasuryState(genesis.Treasury),
		Token: &models.TokenState{
			Address:  genesis.Token.Address,
			Name:     genesis.Token.Name,
			Symbol:   genesis.Token.Symbol,
			Decimals: genesis.Token.Decimals,
		},
		Roles: models.NewRoleState(),
	}
	state.Normalize()

	chain := uc.factory.NewChain(state)

	// The treasury administers itself and the token, so passed proposals can
	// manage roles on both.
	treasuryAddr := genesis.Treasury.Address
	chain.Roles.Setup(domain.DefaultAdminRole, genesis.Admin)
	chain.Roles.Setup(domain.DefaultAdminRole, treasuryAddr)
	for _, chairman := range genesis.Chairmen {
		chain.Roles.Setup(domain.ChairmanRole, chairman)
	}
	chain.TokenRoles.Setup(domain.DefaultAdminRole, genesis.Admin)
	chain.TokenRoles.Setup(domain.DefaultAdminRole, treasuryAddr)
	chain.TokenRoles.Setup(domain.MinterRole, genesis.Admin)

	for holder, amount := range genesis.Token.Balances {
		if err := chain.Token.Mint(ctx, genesis.Admin, holder, amount); err != nil {
			return nil, fmt.Errorf("failed to mint genesis balance for %s: %w", holder.Hex(), err)
		}
	}

	if err := uc.store.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save state: %w", err)
	}

	return &InitTreasuryResult{
		StatePath: uc.store.GetPath(),
		Genesis:   genesis,
		Replaced:  exists,
	}, nil
}
