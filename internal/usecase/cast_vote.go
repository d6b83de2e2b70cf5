package usecase

import (
	"context"

	"github.com/holiman/uint256"
	"github.com/trebuchet-org/dao-cli/internal/domain/config"
	"github.com/trebuchet-org/dao-cli/internal/domain/models"
)

// CastVoteParams contains parameters for voting
type CastVoteParams struct {
	// ProposalID is picked interactively when nil
	ProposalID *uint64
	Decision   models.Decision
}

// CastVoteResult contains the proposal after the vote
type CastVoteResult struct {
	Proposal *ProposalView `json:"proposal"`
	Decision string        `json:"decision"`
	Weight   *uint256.Int  `json:"weight"`
}

// CastVote votes on a proposal as the configured sender
type CastVote struct {
	config   *config.RuntimeConfig
	session  *ChainSession
	selector ProposalSelector
	codec    CalldataCodec
}

// NewCastVote creates a new CastVote use case
func NewCastVote(cfg *config.RuntimeConfig, session *ChainSession, selector ProposalSelector, codec CalldataCodec) *CastVote {
	return &CastVote{config: cfg, session: session, selector: selector, codec: codec}
}

// Run executes the vote
func (uc *CastVote) Run(ctx context.Context, params CastVoteParams) (*CastVoteResult, error) {
	from, err := requireSender(uc.config)
	if err != nil {
		return nil, err
	}

	var result *CastVoteResult
	err = uc.session.Update(ctx, func(chain *Chain) error {
		now := chain.Clock.Now()
		period := chain.Treasury.Config().VotingPeriod
		id, err := resolveProposalID(ctx, chain, uc.selector, params.ProposalID, "Select proposal to vote on",
			func(p *models.Proposal) bool {
				return p.VotingOpen(now, period) && !chain.Treasury.HasVoted(p.ID, from)
			})
		if err != nil {
			return err
		}

		weight := chain.Treasury.BalanceOf(from)
		if err := chain.Treasury.Vote(ctx, from, id, params.Decision); err != nil {
			return err
		}
		p, err := chain.Treasury.GetProposal(id)
		if err != nil {
			return err
		}
		result = &CastVoteResult{
			Proposal: newProposalView(p, chain, uc.codec),
			Decision: params.Decision.String(),
			Weight:   weight,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
