package usecase

import (
	"context"
	"strings"

	"github.com/samber/lo"
	"github.com/trebuchet-org/dao-cli/internal/domain"
)

// ListEventsParams contains parameters for listing events
type ListEventsParams struct {
	// Name keeps only events with this name (case-insensitive)
	Name string
	// Limit keeps only the most recent events when positive
	Limit int
}

// ListEvents is a use case for reading the event journal
type ListEvents struct {
	session *ChainSession
	decoder EventDecoder
}

// NewListEvents creates a new ListEvents use case
func NewListEvents(session *ChainSession, decoder EventDecoder) *ListEvents {
	return &ListEvents{session: session, decoder: decoder}
}

// Run executes the use case
func (uc *ListEvents) Run(ctx context.Context, params ListEventsParams) ([]*domain.RecordedEvent, error) {
	chain, err := uc.session.View(ctx)
	if err != nil {
		return nil, err
	}

	events := uc.decoder.DecodeLogs(chain.State.Logs)
	if params.Name != "" {
		events = lo.Filter(events, func(e *domain.RecordedEvent, _ int) bool {
			return strings.EqualFold(e.Name, params.Name)
		})
	}
	if params.Limit > 0 && len(events) > params.Limit {
		events = events[len(events)-params.Limit:]
	}
	return events, nil
}
