package token

import (
	"fmt"
	"math/big"
	"sort"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/trebuchet-org/dao-cli/internal/domain"
)

// tokenABIJSON is the interface of the governed token
const tokenABIJSON = `[
  {"type":"function","name":"name","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
  {"type":"function","name":"symbol","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
  {"type":"function","name":"decimals","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint8"}]},
  {"type":"function","name":"totalSupply","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"allowance","stateMutability":"view","inputs":[{"name":"owner","type":"address"},{"name":"spender","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"hasRole","stateMutability":"view","inputs":[{"name":"role","type":"bytes32"},{"name":"account","type":"address"}],"outputs":[{"name":"","type":"bool"}]},
  {"type":"function","name":"transfer","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
  {"type":"function","name":"approve","stateMutability":"nonpayable","inputs":[{"name":"spender","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
  {"type":"function","name":"transferFrom","stateMutability":"nonpayable","inputs":[{"name":"from","type":"address"},{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
  {"type":"function","name":"mint","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"burn","stateMutability":"nonpayable","inputs":[{"name":"from","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"grantMinter","stateMutability":"nonpayable","inputs":[{"name":"account","type":"address"}],"outputs":[]}
]`

var tokenABI = mustParseABI(tokenABIJSON)

func mustParseABI(s string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(s))
	if err != nil {
		panic(fmt.Sprintf("invalid token ABI: %v", err))
	}
	return parsed
}

// ABI returns the token interface
func ABI() abi.ABI {
	return tokenABI
}

// Methods lists the callable token functions by signature
func Methods() []string {
	sigs := make([]string, 0, len(tokenABI.Methods))
	for _, m := range tokenABI.Methods {
		sigs = append(sigs, m.Sig)
	}
	return sigs
}

// EncodeCall ABI-encodes a call to method with string arguments parsed
// according to the method's input types.
func EncodeCall(method string, args []string) ([]byte, error) {
	m, ok := tokenABI.Methods[method]
	if !ok {
		return nil, fmt.Errorf("unknown token method: %s", method)
	}
	if len(args) != len(m.Inputs) {
		return nil, fmt.Errorf("%s expects %d arguments, got %d", m.Sig, len(m.Inputs), len(args))
	}

	values := make([]any, len(args))
	for i, input := range m.Inputs {
		v, err := parseArg(input.Type, args[i])
		if err != nil {
			return nil, fmt.Errorf("argument %d (%s %s): %w", i, input.Type.String(), input.Name, err)
		}
		values[i] = v
	}

	return tokenABI.Pack(method, values...)
}

// DescribeCall decodes call data against the token ABI for display.
// Returns false if the data doesn't match any token method.
func DescribeCall(data []byte) (string, bool) {
	if len(data) < 4 {
		return "", false
	}
	m, err := tokenABI.MethodById(data[:4])
	if err != nil {
		return "", false
	}
	values, err := m.Inputs.Unpack(data[4:])
	if err != nil {
		return "", false
	}
	parts := make([]string, len(values))
	for i, v := range values {
		switch x := v.(type) {
		case common.Address:
			parts[i] = x.Hex()
		case [32]byte:
			parts[i] = domain.RoleName(common.Hash(x))
		default:
			parts[i] = fmt.Sprint(x)
		}
	}
	return fmt.Sprintf("%s(%s)", m.Name, strings.Join(parts, ", ")), true
}

func parseArg(t abi.Type, s string) (any, error) {
	switch t.T {
	case abi.AddressTy:
		if !common.IsHexAddress(s) {
			return nil, domain.ErrInvalidAddress
		}
		return common.HexToAddress(s), nil
	case abi.UintTy:
		n, ok := new(big.Int).SetString(s, 0)
		if !ok || n.Sign() < 0 {
			return nil, fmt.Errorf("invalid unsigned integer %q", s)
		}
		if n.BitLen() > t.Size {
			return nil, fmt.Errorf("value %s out of range for %s", s, t.String())
		}
		if t.Size == 8 {
			return uint8(n.Uint64()), nil
		}
		return n, nil
	case abi.BoolTy:
		return strconv.ParseBool(s)
	case abi.StringTy:
		return s, nil
	case abi.FixedBytesTy:
		if role, ok := domain.ParseRole(s); ok && t.Size == 32 {
			return [32]byte(role), nil
		}
		return nil, fmt.Errorf("invalid bytes32 %q", s)
	case abi.BytesTy:
		return hexutil.Decode(s)
	default:
		return nil, fmt.Errorf("unsupported type %s", t.String())
	}
}

// CallCodec exposes the token calldata helpers to the use cases
type CallCodec struct{}

// NewCallCodec creates a new calldata codec
func NewCallCodec() *CallCodec {
	return &CallCodec{}
}

func (CallCodec) EncodeCall(method string, args []string) ([]byte, error) {
	return EncodeCall(method, args)
}

func (CallCodec) DescribeCall(data []byte) (string, bool) {
	return DescribeCall(data)
}

func (CallCodec) Methods() []string {
	sigs := Methods()
	sort.Strings(sigs)
	return sigs
}
