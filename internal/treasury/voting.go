package treasury

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/trebuchet-org/dao-cli/internal/domain"
	"github.com/trebuchet-org/dao-cli/internal/domain/models"
)

// Vote casts voter's full current deposit for (1) or against (0) proposal id.
// Weight is read at cast time; later deposits or withdrawals don't change it.
func (t *Treasury) Vote(ctx context.Context, voter common.Address, id uint64, decision models.Decision) error {
	if !decision.Valid() {
		return fmt.Errorf("%w: got %d", domain.ErrInvalidDecision, decision)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock.Now()
	p, err := t.proposal(id)
	if err != nil {
		return err
	}
	if !p.VotingOpen(now, t.state.Config.VotingPeriod) {
		return fmt.Errorf("proposal %d: %w", id, domain.ErrVotingClosed)
	}
	if t.state.Ballots[id][voter] {
		return fmt.Errorf("proposal %d: %w", id, domain.ErrAlreadyVoted)
	}
	weight := t.balance(voter)
	if weight.IsZero() {
		return fmt.Errorf("cannot vote without a deposit: %w", domain.ErrInsufficientBalance)
	}

	tally := p.VotesAgainst
	if decision == models.DecisionFor {
		tally = p.VotesFor
	}
	sum, overflow := new(uint256.Int).AddOverflow(tally, weight)
	if overflow {
		return fmt.Errorf("proposal %d tally: %w", id, domain.ErrOverflow)
	}

	// All checks passed, commit
	tally.Set(sum)
	if t.state.Ballots[id] == nil {
		t.state.Ballots[id] = make(map[common.Address]bool)
	}
	t.state.Ballots[id][voter] = true
	t.state.OpenVotes[voter] = append(t.state.OpenVotes[voter], id)

	t.log.Info("vote", "id", id, "voter", voter.Hex(), "decision", decision.String(), "weight", weight.Dec())
	t.emit(ctx, &domain.VotedEvent{ID: id, Voter: voter, Decision: uint8(decision)})
	return nil
}
