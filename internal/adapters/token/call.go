package token

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Call executes ABI-encoded call data against the token as if sent by from.
// It reports failure through ok; ret holds the ABI-encoded return values on
// success and is empty otherwise.
func (l *Ledger) Call(ctx context.Context, from common.Address, data []byte) (ok bool, ret []byte) {
	ret, err := l.dispatch(ctx, from, data)
	if err != nil {
		l.log.Debug("call reverted", "from", from.Hex(), "error", err)
		return false, nil
	}
	return true, ret
}

func (l *Ledger) dispatch(ctx context.Context, from common.Address, data []byte) ([]byte, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("call data too short: %d bytes", len(data))
	}
	method, err := tokenABI.MethodById(data[:4])
	if err != nil {
		return nil, err
	}
	args, err := method.Inputs.Unpack(data[4:])
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s arguments: %w", method.Name, err)
	}

	var out []any
	switch method.Name {
	case "name":
		out = []any{l.Name()}
	case "symbol":
		out = []any{l.Symbol()}
	case "decimals":
		out = []any{l.Decimals()}
	case "totalSupply":
		out = []any{l.TotalSupply().ToBig()}
	case "balanceOf":
		out = []any{l.BalanceOf(args[0].(common.Address)).ToBig()}
	case "allowance":
		out = []any{l.Allowance(args[0].(common.Address), args[1].(common.Address)).ToBig()}
	case "hasRole":
		role := common.Hash(args[0].([32]byte))
		out = []any{l.roles.HasRole(role, args[1].(common.Address))}
	case "transfer":
		if err := l.Transfer(ctx, from, args[0].(common.Address), amountArg(args[1])); err != nil {
			return nil, err
		}
		out = []any{true}
	case "approve":
		if err := l.Approve(ctx, from, args[0].(common.Address), amountArg(args[1])); err != nil {
			return nil, err
		}
		out = []any{true}
	case "transferFrom":
		if err := l.TransferFrom(ctx, from, args[0].(common.Address), args[1].(common.Address), amountArg(args[2])); err != nil {
			return nil, err
		}
		out = []any{true}
	case "mint":
		if err := l.Mint(ctx, from, args[0].(common.Address), amountArg(args[1])); err != nil {
			return nil, err
		}
	case "burn":
		if err := l.Burn(ctx, from, args[0].(common.Address), amountArg(args[1])); err != nil {
			return nil, err
		}
	case "grantMinter":
		if err := l.GrantMinter(ctx, from, args[0].(common.Address)); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("method %s not implemented", method.Name)
	}

	return method.Outputs.Pack(out...)
}

// uint256 arguments decode to *big.Int and always fit
func amountArg(v any) *uint256.Int {
	return uint256.MustFromBig(v.(*big.Int))
}
