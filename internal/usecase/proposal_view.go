package usecase

import (
	"time"

	"github.com/trebuchet-org/dao-cli/internal/domain/models"
)

// ProposalView is a proposal together with its derived, time-dependent fields
type ProposalView struct {
	*models.Proposal
	Status   models.ProposalStatus `json:"status"`
	Deadline time.Time             `json:"deadline"`
	Call     string                `json:"call,omitempty"`
}

func newProposalView(p *models.Proposal, chain *Chain, codec CalldataCodec) *ProposalView {
	period := chain.Treasury.Config().VotingPeriod
	view := &ProposalView{
		Proposal: p,
		Status:   p.Status(chain.Clock.Now(), period),
		Deadline: p.Deadline(period),
	}
	// Only calls aimed at the governed token can be described
	if codec != nil && p.Target == chain.Token.Address() {
		if desc, ok := codec.DescribeCall(p.CallData); ok {
			view.Call = desc
		}
	}
	return view
}
