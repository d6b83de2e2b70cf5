// Package treasury implements the token-weighted governance treasury: the
// balance ledger, the proposal store, the voting engine and the execution
// engine. Every operation runs serialized and either commits all of its
// changes or none of them.
package treasury

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/trebuchet-org/dao-cli/internal/domain"
	"github.com/trebuchet-org/dao-cli/internal/domain/config"
	"github.com/trebuchet-org/dao-cli/internal/domain/models"
)

// TokenService is the governed token. Both transfers must either fully apply or fail.
type TokenService interface {
	// TransferFrom moves amount from one account to another using spender's allowance
	TransferFrom(ctx context.Context, spender, from, to common.Address, amount *uint256.Int) error
	// Transfer moves amount out of from's own balance
	Transfer(ctx context.Context, from, to common.Address, amount *uint256.Int) error
	BalanceOf(account common.Address) *uint256.Int
}

// AccessGate answers role membership questions
type AccessGate interface {
	HasRole(role common.Hash, account common.Address) bool
}

// Caller forwards an opaque payload to a target contract on behalf of from.
// Failures are reported through ok, never returned as errors.
type Caller interface {
	Call(ctx context.Context, from, target common.Address, data []byte) (ok bool, ret []byte)
}

// Clock provides the current time
type Clock interface {
	Now() time.Time
}

// EventSink receives every event emitted by a committed operation
type EventSink interface {
	Emit(ctx context.Context, event domain.Event)
}

// SystemClock reads the wall clock
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// NopEventSink drops all events
type NopEventSink struct{}

func (NopEventSink) Emit(context.Context, domain.Event) {}

// Treasury owns a TreasuryState and is the only way to mutate it
type Treasury struct {
	mu     sync.Mutex
	state  *models.TreasuryState
	token  TokenService
	gate   AccessGate
	caller Caller
	clock  Clock
	events EventSink
	log    *slog.Logger
}

// New creates a treasury around an existing state. The state must not be
// mutated by anything else while the treasury is in use.
func New(
	state *models.TreasuryState,
	token TokenService,
	gate AccessGate,
	caller Caller,
	clock Clock,
	events EventSink,
	log *slog.Logger,
) *Treasury {
	state.Normalize()
	if clock == nil {
		clock = SystemClock{}
	}
	if events == nil {
		events = NopEventSink{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Treasury{
		state:  state,
		token:  token,
		gate:   gate,
		caller: caller,
		clock:  clock,
		events: events,
		log:    log.With("component", "Treasury"),
	}
}

// Config returns the immutable treasury configuration
func (t *Treasury) Config() config.TreasuryConfig {
	cfg := t.state.Config
	cfg.MinQuorum = cfg.MinQuorum.Clone()
	return cfg
}

func (t *Treasury) emit(ctx context.Context, event domain.Event) {
	t.log.Debug("event", "event", event.String())
	t.events.Emit(ctx, event)
}
