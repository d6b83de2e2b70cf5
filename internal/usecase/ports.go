package usecase

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/trebuchet-org/dao-cli/internal/domain"
	"github.com/trebuchet-org/dao-cli/internal/domain/config"
	"github.com/trebuchet-org/dao-cli/internal/domain/models"
	"github.com/trebuchet-org/dao-cli/internal/treasury"
)

// ChainStateStore persists the local chain between invocations
type ChainStateStore interface {
	Exists() bool
	Load(ctx context.Context) (*models.ChainState, error)
	Save(ctx context.Context, state *models.ChainState) error
	Delete(ctx context.Context) error
	GetPath() string
}

// LocalConfigRepository handles local config persistence
type LocalConfigRepository interface {
	Exists() bool
	Load(ctx context.Context) (*config.LocalConfig, error)
	Save(ctx context.Context, config *config.LocalConfig) error
	GetPath() string
}

// RoleRegistry is an AccessControl role registry
type RoleRegistry interface {
	HasRole(role common.Hash, account common.Address) bool
	Setup(role common.Hash, account common.Address)
	Grant(caller common.Address, role common.Hash, account common.Address) error
	Revoke(caller common.Address, role common.Hash, account common.Address) error
	Members(role common.Hash) []common.Address
	Roles() []common.Hash
}

// TokenLedger is the governed token
type TokenLedger interface {
	Address() common.Address
	Name() string
	Symbol() string
	Decimals() uint8
	TotalSupply() *uint256.Int
	BalanceOf(account common.Address) *uint256.Int
	Allowance(owner, spender common.Address) *uint256.Int
	Approve(ctx context.Context, owner, spender common.Address, amount *uint256.Int) error
	Transfer(ctx context.Context, from, to common.Address, amount *uint256.Int) error
	Mint(ctx context.Context, caller, to common.Address, amount *uint256.Int) error
}

// ChainClock is the chain's time source, which can be moved forward
type ChainClock interface {
	Now() time.Time
	Warp(d time.Duration) time.Time
}

// Chain is the live view over a loaded chain state
type Chain struct {
	State      *models.ChainState
	Treasury   *treasury.Treasury
	Roles      RoleRegistry // treasury roles
	Token      TokenLedger
	TokenRoles RoleRegistry
	Clock      ChainClock
}

// ChainFactory assembles a Chain around a state
type ChainFactory interface {
	NewChain(state *models.ChainState) *Chain
}

// EventDecoder reads back the event journal
type EventDecoder interface {
	DecodeLogs(entries []*models.EventLog) []*domain.RecordedEvent
}

// CalldataCodec encodes and describes calls to the governed token
type CalldataCodec interface {
	EncodeCall(method string, args []string) ([]byte, error)
	DescribeCall(data []byte) (string, bool)
	Methods() []string
}

// ProposalFileReader reads batch proposal definitions
type ProposalFileReader interface {
	ReadProposals(ctx context.Context, path string) ([]AddProposalParams, error)
}

// ProposalSelector handles interactive proposal selection
type ProposalSelector interface {
	SelectProposal(ctx context.Context, proposals []*models.Proposal, votingPeriod time.Duration, now time.Time, prompt string) (*models.Proposal, error)
}
