package abi

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"
	"github.com/trebuchet-org/dao-cli/internal/domain"
)

// treasuryEventsJSON declares the events emitted by the treasury
const treasuryEventsJSON = `[
  {"type":"event","name":"Deposited","anonymous":false,"inputs":[
    {"name":"account","type":"address","indexed":true},
    {"name":"amount","type":"uint256","indexed":false}]},
  {"type":"event","name":"Withdrawn","anonymous":false,"inputs":[
    {"name":"account","type":"address","indexed":true},
    {"name":"amount","type":"uint256","indexed":false}]},
  {"type":"event","name":"NewProposal","anonymous":false,"inputs":[
    {"name":"id","type":"uint256","indexed":true},
    {"name":"creator","type":"address","indexed":true},
    {"name":"description","type":"string","indexed":false},
    {"name":"target","type":"address","indexed":false}]},
  {"type":"event","name":"Voted","anonymous":false,"inputs":[
    {"name":"id","type":"uint256","indexed":true},
    {"name":"voter","type":"address","indexed":true},
    {"name":"decision","type":"uint8","indexed":false}]},
  {"type":"event","name":"ProposalFinished","anonymous":false,"inputs":[
    {"name":"id","type":"uint256","indexed":true},
    {"name":"passed","type":"bool","indexed":false},
    {"name":"quorumReached","type":"bool","indexed":false},
    {"name":"votesFor","type":"uint256","indexed":false},
    {"name":"votesAgainst","type":"uint256","indexed":false},
    {"name":"executed","type":"bool","indexed":false},
    {"name":"callSuccess","type":"bool","indexed":false}]}
]`

// EventParser converts treasury events to and from their log representation
type EventParser struct {
	contract abi.ABI
}

// NewEventParser creates a new event parser for the treasury events
func NewEventParser() *EventParser {
	parsed, err := abi.JSON(strings.NewReader(treasuryEventsJSON))
	if err != nil {
		panic(fmt.Sprintf("invalid treasury events ABI: %v", err))
	}
	return &EventParser{contract: parsed}
}

// ABI returns the treasury events interface
func (p *EventParser) ABI() *abi.ABI {
	return &p.contract
}

// EncodeEvent builds the log an emitter would produce for event
func (p *EventParser) EncodeEvent(event domain.Event, emitter common.Address) (*types.Log, error) {
	var indexed, data []any

	switch e := event.(type) {
	case *domain.DepositedEvent:
		indexed = []any{e.Account}
		data = []any{e.Amount.ToBig()}
	case *domain.WithdrawnEvent:
		indexed = []any{e.Account}
		data = []any{e.Amount.ToBig()}
	case *domain.NewProposalEvent:
		indexed = []any{new(big.Int).SetUint64(e.ID), e.Creator}
		data = []any{e.Description, e.Target}
	case *domain.VotedEvent:
		indexed = []any{new(big.Int).SetUint64(e.ID), e.Voter}
		data = []any{e.Decision}
	case *domain.ProposalFinishedEvent:
		indexed = []any{new(big.Int).SetUint64(e.ID)}
		data = []any{e.Passed, e.QuorumReached, e.VotesFor.ToBig(), e.VotesAgainst.ToBig(), e.Executed, e.CallSuccess}
	default:
		return nil, fmt.Errorf("unsupported event type %T", event)
	}

	ev, ok := p.contract.Events[event.ContractEventName()]
	if !ok {
		return nil, fmt.Errorf("unknown event %s", event.ContractEventName())
	}

	query := make([][]any, len(indexed))
	for i, v := range indexed {
		query[i] = []any{v}
	}
	topicSets, err := abi.MakeTopics(query...)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s topics: %w", ev.Name, err)
	}
	topics := []common.Hash{ev.ID}
	for _, set := range topicSets {
		topics = append(topics, set[0])
	}

	packed, err := nonIndexed(ev.Inputs).Pack(data...)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s data: %w", ev.Name, err)
	}

	return &types.Log{
		Address: emitter,
		Topics:  topics,
		Data:    packed,
	}, nil
}

// ParseEvent decodes a treasury log back into its domain event
func (p *EventParser) ParseEvent(log *types.Log) (domain.Event, error) {
	if len(log.Topics) == 0 {
		return nil, fmt.Errorf("log has no topics")
	}

	ev, err := p.contract.EventByID(log.Topics[0])
	if err != nil {
		return nil, fmt.Errorf("unknown event signature %s", log.Topics[0].Hex())
	}

	values := make(map[string]any)
	if err := abi.ParseTopicsIntoMap(values, indexed(ev.Inputs), log.Topics[1:]); err != nil {
		return nil, fmt.Errorf("failed to parse topics: %w", err)
	}
	if len(log.Data) > 0 {
		if err := nonIndexed(ev.Inputs).UnpackIntoMap(values, log.Data); err != nil {
			return nil, fmt.Errorf("failed to unpack event data: %w", err)
		}
	}

	switch domain.EventType(ev.Name) {
	case domain.EventTypeDeposited:
		return &domain.DepositedEvent{
			Account: values["account"].(common.Address),
			Amount:  amount(values["amount"]),
		}, nil
	case domain.EventTypeWithdrawn:
		return &domain.WithdrawnEvent{
			Account: values["account"].(common.Address),
			Amount:  amount(values["amount"]),
		}, nil
	case domain.EventTypeNewProposal:
		return &domain.NewProposalEvent{
			ID:          proposalID(values["id"]),
			Creator:     values["creator"].(common.Address),
			Description: values["description"].(string),
			Target:      values["target"].(common.Address),
		}, nil
	case domain.EventTypeVoted:
		return &domain.VotedEvent{
			ID:       proposalID(values["id"]),
			Voter:    values["voter"].(common.Address),
			Decision: values["decision"].(uint8),
		}, nil
	case domain.EventTypeProposalFinished:
		return &domain.ProposalFinishedEvent{
			ID:            proposalID(values["id"]),
			Passed:        values["passed"].(bool),
			QuorumReached: values["quorumReached"].(bool),
			VotesFor:      amount(values["votesFor"]),
			VotesAgainst:  amount(values["votesAgainst"]),
			Executed:      values["executed"].(bool),
			CallSuccess:   values["callSuccess"].(bool),
		}, nil
	}
	return nil, fmt.Errorf("unknown event signature %s", log.Topics[0].Hex())
}

func indexed(args abi.Arguments) abi.Arguments {
	var out abi.Arguments
	for _, arg := range args {
		if arg.Indexed {
			out = append(out, arg)
		}
	}
	return out
}

func nonIndexed(args abi.Arguments) abi.Arguments {
	var out abi.Arguments
	for _, arg := range args {
		if !arg.Indexed {
			out = append(out, arg)
		}
	}
	return out
}

func amount(v any) *uint256.Int {
	return uint256.MustFromBig(v.(*big.Int))
}

func proposalID(v any) uint64 {
	return v.(*big.Int).Uint64()
}
