package domain

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

type EventType string

const (
	EventTypeDeposited        EventType = "Deposited"
	EventTypeWithdrawn        EventType = "Withdrawn"
	EventTypeNewProposal      EventType = "NewProposal"
	EventTypeVoted            EventType = "Voted"
	EventTypeProposalFinished EventType = "ProposalFinished"
)

// Event is the interface for all notifications emitted by the treasury
type Event interface {
	ContractEventName() string
	String() string
}

// DepositedEvent is emitted when an account locks tokens in the treasury
type DepositedEvent struct {
	Account common.Address
	Amount  *uint256.Int
}

func (DepositedEvent) ContractEventName() string {
	return string(EventTypeDeposited)
}

func (e *DepositedEvent) String() string {
	return fmt.Sprintf("%s: account=%s, amount=%s", e.ContractEventName(), e.Account.Hex(), e.Amount.Dec())
}

// WithdrawnEvent is emitted when an account releases tokens from the treasury
type WithdrawnEvent struct {
	Account common.Address
	Amount  *uint256.Int
}

func (WithdrawnEvent) ContractEventName() string {
	return string(EventTypeWithdrawn)
}

func (e *WithdrawnEvent) String() string {
	return fmt.Sprintf("%s: account=%s, amount=%s", e.ContractEventName(), e.Account.Hex(), e.Amount.Dec())
}

// NewProposalEvent is emitted when a chairman opens a proposal
type NewProposalEvent struct {
	ID          uint64
	Creator     common.Address
	Description string
	Target      common.Address
}

func (NewProposalEvent) ContractEventName() string {
	return string(EventTypeNewProposal)
}

func (e *NewProposalEvent) String() string {
	return fmt.Sprintf("%s: id=%d, creator=%s, target=%s, description=%q",
		e.ContractEventName(), e.ID, e.Creator.Hex(), e.Target.Hex(), e.Description)
}

// VotedEvent is emitted for every accepted vote
type VotedEvent struct {
	ID       uint64
	Voter    common.Address
	Decision uint8
}

func (VotedEvent) ContractEventName() string {
	return string(EventTypeVoted)
}

func (e *VotedEvent) String() string {
	return fmt.Sprintf("%s: id=%d, voter=%s, decision=%d", e.ContractEventName(), e.ID, e.Voter.Hex(), e.Decision)
}

// ProposalFinishedEvent is emitted once per proposal when it reaches its terminal state
type ProposalFinishedEvent struct {
	ID            uint64
	Passed        bool
	QuorumReached bool
	VotesFor      *uint256.Int
	VotesAgainst  *uint256.Int
	Executed      bool
	CallSuccess   bool
}

func (ProposalFinishedEvent) ContractEventName() string {
	return string(EventTypeProposalFinished)
}

func (e *ProposalFinishedEvent) String() string {
	return fmt.Sprintf("%s: id=%d, passed=%t, for=%s, against=%s, executed=%t, callSuccess=%t",
		e.ContractEventName(), e.ID, e.Passed, e.VotesFor.Dec(), e.VotesAgainst.Dec(), e.Executed, e.CallSuccess)
}

// RecordedEvent is an event read back from the journal
type RecordedEvent struct {
	Index     uint64    `json:"index"`
	Timestamp time.Time `json:"timestamp"`
	Name      string    `json:"name"`
	Event     Event     `json:"event"`
}
