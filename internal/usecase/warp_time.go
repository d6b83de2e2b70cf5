package usecase

import (
	"context"
	"fmt"
	"time"
)

// WarpTimeResult contains the chain time after a warp
type WarpTimeResult struct {
	Before time.Time     `json:"before"`
	After  time.Time     `json:"after"`
	Offset time.Duration `json:"offset"`
}

// WarpTime moves the local chain's clock forward
type WarpTime struct {
	session *ChainSession
}

// NewWarpTime creates a new WarpTime use case
func NewWarpTime(session *ChainSession) *WarpTime {
	return &WarpTime{session: session}
}

// Run executes the warp
func (uc *WarpTime) Run(ctx context.Context, d time.Duration) (*WarpTimeResult, error) {
	if d <= 0 {
		return nil, fmt.Errorf("warp duration must be positive, got %s", d)
	}

	var result *WarpTimeResult
	err := uc.session.Update(ctx, func(chain *Chain) error {
		before := chain.Clock.Now()
		after := chain.Clock.Warp(d)
		result = &WarpTimeResult{Before: before, After: after, Offset: chain.State.TimeOffset}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
