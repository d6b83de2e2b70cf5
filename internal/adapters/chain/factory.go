// Package chain assembles the in-process chain: the treasury, the token it
// governs, the role registries, the call router, the clock and the journal.
package chain

import (
	"log/slog"

	"github.com/trebuchet-org/dao-cli/internal/adapters/abi"
	"github.com/trebuchet-org/dao-cli/internal/adapters/clock"
	"github.com/trebuchet-org/dao-cli/internal/adapters/roles"
	"github.com/trebuchet-org/dao-cli/internal/adapters/targets"
	"github.com/trebuchet-org/dao-cli/internal/adapters/token"
	"github.com/trebuchet-org/dao-cli/internal/domain/models"
	"github.com/trebuchet-org/dao-cli/internal/treasury"
	"github.com/trebuchet-org/dao-cli/internal/usecase"
)

// Factory builds chains over loaded states
type Factory struct {
	parser *abi.EventParser
	log    *slog.Logger
}

// NewFactory creates a new chain factory
func NewFactory(parser *abi.EventParser, log *slog.Logger) *Factory {
	return &Factory{parser: parser, log: log}
}

// NewChain wires every component around state. Components mutate state in
// place, so saving state after an operation persists its effects.
func (f *Factory) NewChain(state *models.ChainState) *usecase.Chain {
	state.Normalize()

	clk := clock.NewOffsetClock(state)
	tok := token.NewLedger(state.Token, f.log)
	registry := roles.NewRegistry(state.Roles)

	router := targets.NewRouter(f.log)
	router.Register(tok.Address(), tok)

	journal := abi.NewJournal(state, f.parser, state.Treasury.Config.Address, clk, f.log)

	return &usecase.Chain{
		State:      state,
		Treasury:   treasury.New(state.Treasury, tok, registry, router, clk, journal, f.log),
		Roles:      registry,
		Token:      tok,
		TokenRoles: tok.Roles(),
		Clock:      clk,
	}
}

var _ usecase.ChainFactory = (*Factory)(nil)
