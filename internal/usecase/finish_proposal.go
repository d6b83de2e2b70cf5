package usecase

import (
	"context"

	"github.com/trebuchet-org/dao-cli/internal/domain/config"
	"github.com/trebuchet-org/dao-cli/internal/domain/models"
)

// FinishProposalParams contains parameters for finishing a proposal
type FinishProposalParams struct {
	// ProposalID is picked interactively when nil
	ProposalID *uint64
}

// FinishProposalResult contains the resolved proposal
type FinishProposalResult struct {
	Proposal *ProposalView         `json:"proposal"`
	Result   *models.ProposalResult `json:"result"`
}

// FinishProposal resolves a proposal whose voting period is over. Anyone
// may finish a proposal, so no sender is required.
type FinishProposal struct {
	config   *config.RuntimeConfig
	session  *ChainSession
	selector ProposalSelector
	codec    CalldataCodec
}

// NewFinishProposal creates a new FinishProposal use case
func NewFinishProposal(cfg *config.RuntimeConfig, session *ChainSession, selector ProposalSelector, codec CalldataCodec) *FinishProposal {
	return &FinishProposal{config: cfg, session: session, selector: selector, codec: codec}
}

// Run executes the finish
func (uc *FinishProposal) Run(ctx context.Context, params FinishProposalParams) (*FinishProposalResult, error) {
	var result *FinishProposalResult
	err := uc.session.Update(ctx, func(chain *Chain) error {
		now := chain.Clock.Now()
		period := chain.Treasury.Config().VotingPeriod
		id, err := resolveProposalID(ctx, chain, uc.selector, params.ProposalID, "Select proposal to finish",
			func(p *models.Proposal) bool {
				return p.Status(now, period) == models.ProposalStatusAwaitingFinish
			})
		if err != nil {
			return err
		}

		res, err := chain.Treasury.Finish(ctx, id)
		if err != nil {
			return err
		}
		p, err := chain.Treasury.GetProposal(id)
		if err != nil {
			return err
		}
		result = &FinishProposalResult{
			Proposal: newProposalView(p, chain, uc.codec),
			Result:   res,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
