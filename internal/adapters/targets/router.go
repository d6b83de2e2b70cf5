// Package targets routes proposal calls to the contracts known to the local chain.
package targets

import (
	"context"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/dao-cli/internal/treasury"
)

// Contract is anything that can receive a call
type Contract interface {
	Call(ctx context.Context, from common.Address, data []byte) (ok bool, ret []byte)
}

// Router dispatches calls by target address. Addresses without a registered
// contract behave like accounts without code: the call succeeds and returns
// nothing.
type Router struct {
	contracts map[common.Address]Contract
	log       *slog.Logger
}

// NewRouter creates an empty router
func NewRouter(log *slog.Logger) *Router {
	return &Router{
		contracts: make(map[common.Address]Contract),
		log:       log.With("component", "Router"),
	}
}

// Register makes contract reachable at address
func (r *Router) Register(address common.Address, contract Contract) {
	r.contracts[address] = contract
}

// Call forwards data to target on behalf of from
func (r *Router) Call(ctx context.Context, from, target common.Address, data []byte) (bool, []byte) {
	contract, ok := r.contracts[target]
	if !ok {
		r.log.Debug("Call to address without code", "target", target.Hex(), "bytes", len(data))
		return true, nil
	}
	ok, ret := contract.Call(ctx, from, data)
	r.log.Debug("Call forwarded", "target", target.Hex(), "from", from.Hex(), "success", ok)
	return ok, ret
}

var _ treasury.Caller = (*Router)(nil)
