package abi

import (
	"context"
	"log/slog"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/dao-cli/internal/domain"
	"github.com/trebuchet-org/dao-cli/internal/domain/models"
)

// Clock provides the timestamp recorded with each log
type Clock interface {
	Now() time.Time
}

// Journal is an event sink that appends every treasury event, ABI-encoded,
// to the chain state's log.
type Journal struct {
	state   *models.ChainState
	parser  *EventParser
	emitter common.Address
	clock   Clock
	log     *slog.Logger
}

// NewJournal creates a journal recording events emitted by emitter
func NewJournal(state *models.ChainState, parser *EventParser, emitter common.Address, clock Clock, log *slog.Logger) *Journal {
	return &Journal{
		state:   state,
		parser:  parser,
		emitter: emitter,
		clock:   clock,
		log:     log.With("component", "Journal"),
	}
}

// Emit records event. Events that cannot be encoded are dropped with a warning.
func (j *Journal) Emit(_ context.Context, event domain.Event) {
	entry, err := j.parser.EncodeEvent(event, j.emitter)
	if err != nil {
		j.log.Warn("Dropping event", "event", event.ContractEventName(), "error", err)
		return
	}

	j.state.Logs = append(j.state.Logs, &models.EventLog{
		Index:     uint64(len(j.state.Logs)),
		Address:   entry.Address,
		Topics:    entry.Topics,
		Data:      entry.Data,
		Timestamp: j.clock.Now().UTC(),
	})
	j.log.Debug("Recorded event", "event", event.String())
}
