package models

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

// FirstProposalID is the id of the first proposal; id 0 is never allocated
const FirstProposalID uint64 = 1

// Decision is a single vote value
type Decision uint8

const (
	DecisionAgainst Decision = 0
	DecisionFor     Decision = 1
)

func (d Decision) Valid() bool {
	return d == DecisionAgainst || d == DecisionFor
}

func (d Decision) String() string {
	switch d {
	case DecisionAgainst:
		return "against"
	case DecisionFor:
		return "for"
	default:
		return "invalid"
	}
}

// ProposalStatus represents the derived status of a proposal at a point in time
type ProposalStatus string

const (
	ProposalStatusActive         ProposalStatus = "active"
	ProposalStatusAwaitingFinish ProposalStatus = "awaiting-finish"
	ProposalStatusPassed         ProposalStatus = "passed"
	ProposalStatusRejected       ProposalStatus = "rejected"
	ProposalStatusNoQuorum       ProposalStatus = "no-quorum"
)

// Proposal is a governance proposal record for persistence
type Proposal struct {
	// Identification
	ID      uint64         `json:"id"`
	Creator common.Address `json:"creator"`

	// Call forwarded to Target when the proposal passes
	Target   common.Address `json:"target"`
	CallData hexutil.Bytes  `json:"callData"`

	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`

	// Tallies
	Finished     bool         `json:"finished"`
	VotesFor     *uint256.Int `json:"votesFor"`
	VotesAgainst *uint256.Int `json:"votesAgainst"`

	// Set once by finish
	Result *ProposalResult `json:"result,omitempty"`
}

// ProposalResult records how a finished proposal was resolved
type ProposalResult struct {
	Passed        bool          `json:"passed"`
	QuorumReached bool          `json:"quorumReached"`
	Executed      bool          `json:"executed"`
	CallSuccess   bool          `json:"callSuccess"`
	ReturnData    hexutil.Bytes `json:"returnData,omitempty"`
	FinishedAt    time.Time     `json:"finishedAt"`
}

// Deadline is the last instant at which votes are accepted
func (p *Proposal) Deadline(votingPeriod time.Duration) time.Time {
	return p.CreatedAt.Add(votingPeriod)
}

// VotingOpen reports whether votes are still accepted at now
func (p *Proposal) VotingOpen(now time.Time, votingPeriod time.Duration) bool {
	return !p.Finished && !now.After(p.Deadline(votingPeriod))
}

// TotalVotes returns for + against. The second value is false if the sum overflowed 256 bits.
func (p *Proposal) TotalVotes() (*uint256.Int, bool) {
	total, overflow := new(uint256.Int).AddOverflow(p.VotesFor, p.VotesAgainst)
	return total, !overflow
}

// Status derives the display status of the proposal
func (p *Proposal) Status(now time.Time, votingPeriod time.Duration) ProposalStatus {
	if p.Finished && p.Result != nil {
		switch {
		case p.Result.Passed:
			return ProposalStatusPassed
		case !p.Result.QuorumReached:
			return ProposalStatusNoQuorum
		default:
			return ProposalStatusRejected
		}
	}
	if p.VotingOpen(now, votingPeriod) {
		return ProposalStatusActive
	}
	return ProposalStatusAwaitingFinish
}

// Clone returns a deep copy so callers can't mutate stored state
func (p *Proposal) Clone() *Proposal {
	c := *p
	c.CallData = append(hexutil.Bytes(nil), p.CallData...)
	c.VotesFor = p.VotesFor.Clone()
	c.VotesAgainst = p.VotesAgainst.Clone()
	if p.Result != nil {
		r := *p.Result
		r.ReturnData = append(hexutil.Bytes(nil), p.Result.ReturnData...)
		c.Result = &r
	}
	return &c
}
