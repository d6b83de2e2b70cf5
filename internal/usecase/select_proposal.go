package usecase

import (
	"context"

	"github.com/samber/lo"
	"github.com/trebuchet-org/dao-cli/internal/domain/models"
)

// resolveProposalID returns id, or asks the selector to pick among the
// proposals matching filter when id is nil.
func resolveProposalID(ctx context.Context, chain *Chain, selector ProposalSelector, id *uint64, prompt string, filter func(p *models.Proposal) bool) (uint64, error) {
	if id != nil {
		return *id, nil
	}

	now := chain.Clock.Now()
	period := chain.Treasury.Config().VotingPeriod
	candidates := lo.Filter(chain.Treasury.Proposals(), func(p *models.Proposal, _ int) bool {
		return filter == nil || filter(p)
	})

	p, err := selector.SelectProposal(ctx, candidates, period, now, prompt)
	if err != nil {
		return 0, err
	}
	return p.ID, nil
}
