package treasury

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"
	"github.com/trebuchet-org/dao-cli/internal/domain"
	"github.com/trebuchet-org/dao-cli/internal/domain/models"
)

// Finish resolves proposal id once its voting period is over. A proposal that
// reached quorum with more votes for than against forwards its call data to
// its target. The outcome of that call is recorded but never fails Finish:
// the proposal is terminal before the target runs.
func (t *Treasury) Finish(ctx context.Context, id uint64) (*models.ProposalResult, error) {
	t.mu.Lock()

	now := t.clock.Now()
	p, err := t.proposal(id)
	if err != nil {
		t.mu.Unlock()
		return nil, err
	}
	if p.Finished {
		t.mu.Unlock()
		return nil, fmt.Errorf("proposal %d: %w", id, domain.ErrAlreadyFinished)
	}
	if !now.After(p.Deadline(t.state.Config.VotingPeriod)) {
		t.mu.Unlock()
		return nil, fmt.Errorf("proposal %d: %w", id, domain.ErrVotingNotOver)
	}

	// An overflowing total is certainly above any quorum
	total, ok := p.TotalVotes()
	quorumReached := !ok || !total.Lt(t.state.Config.MinQuorum)
	passed := quorumReached && p.VotesFor.Gt(p.VotesAgainst)

	result := &models.ProposalResult{
		Passed:        passed,
		QuorumReached: quorumReached,
		FinishedAt:    now,
	}
	p.Finished = true
	p.Result = result
	t.releaseVotes(id)

	from := t.state.Config.Address
	target := p.Target
	data := append([]byte(nil), p.CallData...)
	event := &domain.ProposalFinishedEvent{
		ID:            id,
		Passed:        passed,
		QuorumReached: quorumReached,
		VotesFor:      p.VotesFor.Clone(),
		VotesAgainst:  p.VotesAgainst.Clone(),
	}
	t.mu.Unlock()

	if passed {
		success, ret := t.execute(ctx, from, target, data)

		t.mu.Lock()
		result.Executed = true
		result.CallSuccess = success
		result.ReturnData = ret
		t.mu.Unlock()

		event.Executed = true
		event.CallSuccess = success
		if !success {
			t.log.Warn("proposal call failed", "id", id, "target", target.Hex())
		}
	}

	t.log.Info("proposal finished", "id", id, "passed", passed, "quorum", quorumReached,
		"for", event.VotesFor.Dec(), "against", event.VotesAgainst.Dec())
	t.emit(ctx, event)

	t.mu.Lock()
	defer t.mu.Unlock()
	return p.Clone().Result, nil
}

// execute performs the downstream call. A panicking target counts as a failed call.
func (t *Treasury) execute(ctx context.Context, from, target common.Address, data []byte) (ok bool, ret []byte) {
	defer func() {
		if r := recover(); r != nil {
			t.log.Warn("proposal call panicked", "target", target.Hex(), "panic", r)
			ok, ret = false, nil
		}
	}()
	return t.caller.Call(ctx, from, target, data)
}

// releaseVotes drops proposal id from every voter's lock index. Caller must hold t.mu.
func (t *Treasury) releaseVotes(id uint64) {
	for voter := range t.state.Ballots[id] {
		remaining := lo.Without(t.state.OpenVotes[voter], id)
		if len(remaining) == 0 {
			delete(t.state.OpenVotes, voter)
		} else {
			t.state.OpenVotes[voter] = remaining
		}
	}
}
