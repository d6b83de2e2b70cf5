package usecase

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/dao-cli/internal/domain/config"
)

// ShowProposalParams contains parameters for showing a proposal
type ShowProposalParams struct {
	// ProposalID is picked interactively when nil
	ProposalID *uint64
}

// ProposalDetails is a proposal with the sender's participation
type ProposalDetails struct {
	*ProposalView
	VotingPeriod string         `json:"votingPeriod"`
	MinQuorum    string         `json:"minQuorum"`
	Viewer       common.Address `json:"viewer,omitempty"`
	HasVoted     bool           `json:"hasVoted"`
	Now          time.Time      `json:"now"`
}

// ShowProposal is a use case for showing a single proposal
type ShowProposal struct {
	config   *config.RuntimeConfig
	session  *ChainSession
	selector ProposalSelector
	codec    CalldataCodec
}

// NewShowProposal creates a new ShowProposal use case
func NewShowProposal(cfg *config.RuntimeConfig, session *ChainSession, selector ProposalSelector, codec CalldataCodec) *ShowProposal {
	return &ShowProposal{config: cfg, session: session, selector: selector, codec: codec}
}

// Run executes the use case
func (uc *ShowProposal) Run(ctx context.Context, params ShowProposalParams) (*ProposalDetails, error) {
	chain, err := uc.session.View(ctx)
	if err != nil {
		return nil, err
	}

	id, err := resolveProposalID(ctx, chain, uc.selector, params.ProposalID, "Select proposal", nil)
	if err != nil {
		return nil, err
	}
	p, err := chain.Treasury.GetProposal(id)
	if err != nil {
		return nil, err
	}

	cfg := chain.Treasury.Config()
	details := &ProposalDetails{
		ProposalView: newProposalView(p, chain, uc.codec),
		VotingPeriod: cfg.VotingPeriod.String(),
		MinQuorum:    cfg.MinQuorum.Dec(),
		Viewer:       uc.config.From,
		Now:          chain.Clock.Now(),
	}
	if uc.config.From != (common.Address{}) {
		details.HasVoted = chain.Treasury.HasVoted(id, uc.config.From)
	}
	return details, nil
}
