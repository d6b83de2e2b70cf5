package usecase

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/trebuchet-org/dao-cli/internal/domain/models"
)

// ListProposalsParams contains parameters for listing proposals
type ListProposalsParams struct {
	// Status keeps only proposals in this status when set
	Status models.ProposalStatus
}

// ProposalListResult contains the listed proposals
type ProposalListResult struct {
	Proposals []*ProposalView `json:"proposals"`
	Now       time.Time       `json:"now"`
	Summary   ProposalSummary `json:"summary"`
}

// ProposalSummary counts proposals per status
type ProposalSummary struct {
	Total    int                           `json:"total"`
	ByStatus map[models.ProposalStatus]int `json:"byStatus"`
}

// ListProposals is a use case for listing proposals
type ListProposals struct {
	session *ChainSession
	codec   CalldataCodec
}

// NewListProposals creates a new ListProposals use case
func NewListProposals(session *ChainSession, codec CalldataCodec) *ListProposals {
	return &ListProposals{session: session, codec: codec}
}

// Run executes the use case
func (uc *ListProposals) Run(ctx context.Context, params ListProposalsParams) (*ProposalListResult, error) {
	chain, err := uc.session.View(ctx)
	if err != nil {
		return nil, err
	}

	views := lo.Map(chain.Treasury.Proposals(), func(p *models.Proposal, _ int) *ProposalView {
		return newProposalView(p, chain, uc.codec)
	})

	summary := ProposalSummary{
		Total:    len(views),
		ByStatus: lo.CountValuesBy(views, func(v *ProposalView) models.ProposalStatus { return v.Status }),
	}

	if params.Status != "" {
		views = lo.Filter(views, func(v *ProposalView, _ int) bool { return v.Status == params.Status })
	}

	return &ProposalListResult{
		Proposals: views,
		Now:       chain.Clock.Now(),
		Summary:   summary,
	}, nil
}
