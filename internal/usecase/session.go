package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/dao-cli/internal/domain"
	"github.com/trebuchet-org/dao-cli/internal/domain/config"
)

// ChainSession loads the chain for one command and persists it only when the
// command succeeds, so a failed command leaves the state file untouched.
type ChainSession struct {
	store   ChainStateStore
	factory ChainFactory
}

// NewChainSession creates a new chain session
func NewChainSession(store ChainStateStore, factory ChainFactory) *ChainSession {
	return &ChainSession{store: store, factory: factory}
}

// View loads the chain for read-only use
func (s *ChainSession) View(ctx context.Context) (*Chain, error) {
	state, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return s.factory.NewChain(state), nil
}

// Update runs fn against the chain and saves the result if fn succeeds
func (s *ChainSession) Update(ctx context.Context, fn func(chain *Chain) error) error {
	chain, err := s.View(ctx)
	if err != nil {
		return err
	}
	if err := fn(chain); err != nil {
		return err
	}
	if err := s.store.Save(ctx, chain.State); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}

// requireSender returns the configured sender, failing if none is set
func requireSender(cfg *config.RuntimeConfig) (common.Address, error) {
	if cfg.From == (common.Address{}) {
		return common.Address{}, fmt.Errorf("%w: no sender configured (use --from, DAO_FROM or 'dao config set from')", domain.ErrInvalidAddress)
	}
	return cfg.From, nil
}
