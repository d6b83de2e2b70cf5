package models

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
	"github.com/trebuchet-org/dao-cli/internal/domain/config"
)

// TreasuryState is the aggregate owned by a treasury: its configuration, the
// balance ledger and the proposal store.
type TreasuryState struct {
	Config config.TreasuryConfig `json:"config"`

	// Balance ledger
	Balances map[common.Address]*uint256.Int `json:"balances"`

	// Proposal store, ordered by id starting at FirstProposalID
	Proposals []*Proposal `json:"proposals"`

	// Ballots holds the has-voted marker per proposal and participant
	Ballots map[uint64]map[common.Address]bool `json:"ballots"`

	// OpenVotes indexes the proposals each participant voted on and that may
	// still lock their withdrawal
	OpenVotes map[common.Address][]uint64 `json:"openVotes"`
}

// NewTreasuryState creates an empty treasury state for the given configuration
func NewTreasuryState(cfg config.TreasuryConfig) *TreasuryState {
	if cfg.MinQuorum == nil {
		cfg.MinQuorum = new(uint256.Int)
	}
	return &TreasuryState{
		Config:    cfg,
		Balances:  make(map[common.Address]*uint256.Int),
		Proposals: make([]*Proposal, 0),
		Ballots:   make(map[uint64]map[common.Address]bool),
		OpenVotes: make(map[common.Address][]uint64),
	}
}

// Normalize fills in nil maps and amounts after decoding
func (s *TreasuryState) Normalize() {
	if s.Config.MinQuorum == nil {
		s.Config.MinQuorum = new(uint256.Int)
	}
	if s.Balances == nil {
		s.Balances = make(map[common.Address]*uint256.Int)
	}
	if s.Proposals == nil {
		s.Proposals = make([]*Proposal, 0)
	}
	if s.Ballots == nil {
		s.Ballots = make(map[uint64]map[common.Address]bool)
	}
	if s.OpenVotes == nil {
		s.OpenVotes = make(map[common.Address][]uint64)
	}
	for _, p := range s.Proposals {
		if p.VotesFor == nil {
			p.VotesFor = new(uint256.Int)
		}
		if p.VotesAgainst == nil {
			p.VotesAgainst = new(uint256.Int)
		}
	}
}

// TokenState is the ledger of the in-process governed token
type TokenState struct {
	Address     common.Address                                     `json:"address"`
	Name        string                                             `json:"name"`
	Symbol      string                                             `json:"symbol"`
	Decimals    uint8                                              `json:"decimals"`
	TotalSupply *uint256.Int                                       `json:"totalSupply"`
	Balances    map[common.Address]*uint256.Int                    `json:"balances"`
	Allowances  map[common.Address]map[common.Address]*uint256.Int `json:"allowances"`
	Roles       *RoleState                                         `json:"roles"`
}

// Normalize fills in nil maps and amounts after decoding
func (s *TokenState) Normalize() {
	if s.TotalSupply == nil {
		s.TotalSupply = new(uint256.Int)
	}
	if s.Balances == nil {
		s.Balances = make(map[common.Address]*uint256.Int)
	}
	if s.Allowances == nil {
		s.Allowances = make(map[common.Address]map[common.Address]*uint256.Int)
	}
	if s.Roles == nil {
		s.Roles = NewRoleState()
	}
	s.Roles.Normalize()
}

// RoleState holds AccessControl role membership
type RoleState struct {
	Members map[common.Hash]map[common.Address]bool `json:"members"`
}

// NewRoleState creates an empty role registry state
func NewRoleState() *RoleState {
	return &RoleState{Members: make(map[common.Hash]map[common.Address]bool)}
}

// Normalize fills in nil maps after decoding
func (s *RoleState) Normalize() {
	if s.Members == nil {
		s.Members = make(map[common.Hash]map[common.Address]bool)
	}
}

// EventLog is a persisted, ABI-encoded event
type EventLog struct {
	Index     uint64         `json:"index"`
	Address   common.Address `json:"address"`
	Topics    []common.Hash  `json:"topics"`
	Data      hexutil.Bytes  `json:"data"`
	Timestamp time.Time      `json:"timestamp"`
}

// ChainState is everything the CLI persists between invocations: the treasury,
// the token it governs, the treasury's role registry, the event journal and
// the local clock offset.
type ChainState struct {
	Treasury   *TreasuryState `json:"treasury"`
	Token      *TokenState    `json:"token"`
	Roles      *RoleState     `json:"roles"`
	Logs       []*EventLog    `json:"logs"`
	TimeOffset time.Duration  `json:"timeOffset"`
}

// Normalize fills in nil members after decoding
func (s *ChainState) Normalize() {
	if s.Treasury != nil {
		s.Treasury.Normalize()
	}
	if s.Token != nil {
		s.Token.Normalize()
	}
	if s.Roles == nil {
		s.Roles = NewRoleState()
	}
	s.Roles.Normalize()
	if s.Logs == nil {
		s.Logs = make([]*EventLog, 0)
	}
}
