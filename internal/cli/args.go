package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/trebuchet-org/dao-cli/internal/domain"
	"github.com/trebuchet-org/dao-cli/internal/domain/models"
)

func parseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%w: %q", domain.ErrInvalidAddress, s)
	}
	return common.HexToAddress(s), nil
}

func parseAmount(s string) (*uint256.Int, error) {
	amount, err := domain.ParseAmount(s)
	if err != nil {
		return nil, fmt.Errorf("amount %q: %w", s, err)
	}
	return amount, nil
}

// parseProposalID returns nil when no id was given so the use case can prompt
func parseProposalID(args []string) (*uint64, error) {
	if len(args) == 0 {
		return nil, nil
	}
	id, err := strconv.ParseUint(strings.TrimPrefix(args[0], "#"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid proposal id %q", args[0])
	}
	return &id, nil
}

// parseDecision accepts for/against, yes/no or the raw vote value. Numbers
// other than 0 and 1 are passed through and rejected by the treasury.
func parseDecision(s string) (models.Decision, error) {
	switch strings.ToLower(s) {
	case "for", "yes", "y":
		return models.DecisionFor, nil
	case "against", "no", "n":
		return models.DecisionAgainst, nil
	}
	n, err := strconv.ParseUint(s, 10, 8)
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: got %s", domain.ErrInvalidDecision, s)
	}
	if err != nil {
		return 0, fmt.Errorf("invalid decision %q (use for, against, 1 or 0)", s)
	}
	return models.Decision(n), nil
}
