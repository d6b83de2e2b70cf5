package treasury

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/samber/lo"
	"github.com/trebuchet-org/dao-cli/internal/domain"
	"github.com/trebuchet-org/dao-cli/internal/domain/models"
)

// AddProposal opens a new proposal. Only chairmen may call it. The target and
// call data are stored as given and only interpreted if the proposal passes.
func (t *Treasury) AddProposal(
	ctx context.Context,
	creator common.Address,
	target common.Address,
	callData []byte,
	description string,
) (uint64, error) {
	if !t.gate.HasRole(domain.ChairmanRole, creator) {
		return 0, domain.MissingRoleErr{Account: creator, Role: domain.ChairmanRole}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	id := models.FirstProposalID + uint64(len(t.state.Proposals))
	proposal := &models.Proposal{
		ID:           id,
		Creator:      creator,
		Target:       target,
		CallData:     append([]byte(nil), callData...),
		Description:  description,
		CreatedAt:    t.clock.Now(),
		VotesFor:     new(uint256.Int),
		VotesAgainst: new(uint256.Int),
	}
	t.state.Proposals = append(t.state.Proposals, proposal)

	t.log.Info("proposal created", "id", id, "creator", creator.Hex(), "target", target.Hex())
	t.emit(ctx, &domain.NewProposalEvent{
		ID:          id,
		Creator:     creator,
		Description: description,
		Target:      target,
	})
	return id, nil
}

// GetProposal returns a copy of the proposal with the given id
func (t *Treasury) GetProposal(id uint64) (*models.Proposal, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, err := t.proposal(id)
	if err != nil {
		return nil, err
	}
	return p.Clone(), nil
}

// Proposals returns copies of all proposals in id order
func (t *Treasury) Proposals() []*models.Proposal {
	t.mu.Lock()
	defer t.mu.Unlock()

	return lo.Map(t.state.Proposals, func(p *models.Proposal, _ int) *models.Proposal {
		return p.Clone()
	})
}

// ProposalCount returns the number of proposals ever created
func (t *Treasury) ProposalCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.state.Proposals)
}

// HasVoted reports whether account has voted on proposal id
func (t *Treasury) HasVoted(id uint64, account common.Address) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.Ballots[id][account]
}

// proposal looks up the stored record. Caller must hold t.mu.
func (t *Treasury) proposal(id uint64) (*models.Proposal, error) {
	if id < models.FirstProposalID || id-models.FirstProposalID >= uint64(len(t.state.Proposals)) {
		return nil, fmt.Errorf("proposal %d: %w", id, domain.ErrNotFound)
	}
	return t.state.Proposals[id-models.FirstProposalID], nil
}
