package abi

import (
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/trebuchet-org/dao-cli/internal/domain"
	"github.com/trebuchet-org/dao-cli/internal/domain/models"
)

// EventDecoder decodes persisted event logs
type EventDecoder struct {
	parser *EventParser
	log    *slog.Logger
}

// NewEventDecoder creates a new event decoder
func NewEventDecoder(parser *EventParser, log *slog.Logger) *EventDecoder {
	return &EventDecoder{
		parser: parser,
		log:    log.With("component", "EventDecoder"),
	}
}

// DecodeLog decodes a single stored log
func (d *EventDecoder) DecodeLog(entry *models.EventLog) (*domain.RecordedEvent, error) {
	event, err := d.parser.ParseEvent(&types.Log{
		Address: entry.Address,
		Topics:  entry.Topics,
		Data:    entry.Data,
		Index:   uint(entry.Index),
	})
	if err != nil {
		return nil, fmt.Errorf("log %d: %w", entry.Index, err)
	}
	return &domain.RecordedEvent{
		Index:     entry.Index,
		Timestamp: entry.Timestamp,
		Name:      event.ContractEventName(),
		Event:     event,
	}, nil
}

// DecodeLogs decodes every log it understands. Logs that fail to decode are
// skipped with a warning.
func (d *EventDecoder) DecodeLogs(entries []*models.EventLog) []*domain.RecordedEvent {
	decoded := make([]*domain.RecordedEvent, 0, len(entries))
	for _, entry := range entries {
		event, err := d.DecodeLog(entry)
		if err != nil {
			d.log.Warn("Skipping undecodable log", "index", entry.Index, "error", err)
			continue
		}
		decoded = append(decoded, event)
	}
	return decoded
}
