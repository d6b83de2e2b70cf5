package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Sentinel errors for treasury operations
var (
	// ErrInvalidAmount is returned for zero-value deposits and withdrawals
	ErrInvalidAmount = errors.New("must be at least 1 wei")

	// ErrInsufficientBalance is returned when a withdraw or vote is not covered by the ledger balance
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrVotingInProgress is returned when withdrawing while a cast vote is still open
	ErrVotingInProgress = errors.New("voting is not over")

	// ErrUnauthorized is returned when the caller lacks the role required for an operation
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound is returned when a requested resource doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidDecision is returned for vote values outside {0, 1}
	ErrInvalidDecision = errors.New("only 0 or 1 is allowed")

	// ErrVotingClosed is returned when voting after the deadline or on a finished proposal
	ErrVotingClosed = errors.New("the voting is over")

	// ErrAlreadyVoted is returned for a second vote by the same participant
	ErrAlreadyVoted = errors.New("you can vote only once")

	// ErrVotingNotOver is returned when finishing a proposal before its deadline
	ErrVotingNotOver = errors.New("voting period has not ended")

	// ErrAlreadyFinished is returned when finishing a proposal twice
	ErrAlreadyFinished = errors.New("proposal already finished")

	// ErrOverflow is returned when a 256-bit addition would wrap
	ErrOverflow = errors.New("arithmetic overflow")

	// ErrInsufficientAllowance is returned by the token when transferFrom exceeds the approval
	ErrInsufficientAllowance = errors.New("insufficient allowance")

	// ErrInvalidAddress is returned when an Ethereum address is invalid
	ErrInvalidAddress = errors.New("invalid address")

	// ErrNotInitialized is returned when no treasury state exists yet
	ErrNotInitialized = errors.New("treasury not initialized")
)

// MissingRoleErr mirrors the AccessControl revert reason. It matches ErrUnauthorized.
type MissingRoleErr struct {
	Account common.Address
	Role    common.Hash
}

func (e MissingRoleErr) Error() string {
	return fmt.Sprintf("AccessControl: account %s is missing role %s",
		strings.ToLower(e.Account.Hex()), e.Role.Hex())
}

func (e MissingRoleErr) Is(target error) bool {
	return target == ErrUnauthorized
}
