package token

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/dao-cli/internal/domain"
	"github.com/trebuchet-org/dao-cli/internal/domain/models"
)

var (
	tokenAddr    = common.HexToAddress("0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512")
	treasuryAddr = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	owner        = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	addr1        = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	addr2        = common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")
)

// newTestLedger creates a token where owner is minter and the treasury is admin
func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	l := NewLedger(&models.TokenState{
		Address:  tokenAddr,
		Name:     "Crypton",
		Symbol:   "CRT",
		Decimals: 18,
	}, nil)
	l.Roles().Setup(domain.DefaultAdminRole, treasuryAddr)
	l.Roles().Setup(domain.MinterRole, owner)
	return l
}

func TestRoleIdentifiers(t *testing.T) {
	assert.Equal(t, "0x9f2df0fed2c77648de5860a4cc508cd0818c85b8b8a1ab4ceeef8d981c8956a6", domain.MinterRole.Hex())
	assert.Equal(t, "0x3c11d16cbaffd01df69ce1c404f6340ee057498f5f00246190ea54220576a848", domain.BurnerRole.Hex())
	assert.Equal(t, "0xdc1958ce1178d6eb32ccc146dcea8933f1978155832913ec88fa509962e1b413", domain.ChairmanRole.Hex())
}

func TestLedger_MintAndTransfer(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t)

	require.NoError(t, l.Mint(ctx, owner, addr1, uint256.NewInt(6000)))
	assert.Equal(t, uint64(6000), l.TotalSupply().Uint64())

	err := l.Mint(ctx, addr1, addr1, uint256.NewInt(1))
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	require.NoError(t, l.Transfer(ctx, addr1, addr2, uint256.NewInt(1000)))
	assert.Equal(t, uint64(5000), l.BalanceOf(addr1).Uint64())
	assert.Equal(t, uint64(1000), l.BalanceOf(addr2).Uint64())

	err = l.Transfer(ctx, addr2, addr1, uint256.NewInt(1001))
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	assert.Equal(t, uint64(1000), l.BalanceOf(addr2).Uint64())
}

func TestLedger_MintOverflow(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t)

	require.NoError(t, l.Mint(ctx, owner, addr1, new(uint256.Int).SetAllOne()))
	err := l.Mint(ctx, owner, addr2, uint256.NewInt(1))
	assert.ErrorIs(t, err, domain.ErrOverflow)
	assert.True(t, l.BalanceOf(addr2).IsZero())
}

func TestLedger_TransferFrom(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t)
	require.NoError(t, l.Mint(ctx, owner, addr1, uint256.NewInt(6000)))

	t.Run("without allowance fails", func(t *testing.T) {
		err := l.TransferFrom(ctx, treasuryAddr, addr1, treasuryAddr, uint256.NewInt(100))
		assert.ErrorIs(t, err, domain.ErrInsufficientAllowance)
	})

	t.Run("spends the allowance", func(t *testing.T) {
		require.NoError(t, l.Approve(ctx, addr1, treasuryAddr, uint256.NewInt(150)))
		require.NoError(t, l.TransferFrom(ctx, treasuryAddr, addr1, treasuryAddr, uint256.NewInt(100)))

		assert.Equal(t, uint64(50), l.Allowance(addr1, treasuryAddr).Uint64())
		assert.Equal(t, uint64(100), l.BalanceOf(treasuryAddr).Uint64())
		assert.Equal(t, uint64(5900), l.BalanceOf(addr1).Uint64())
	})

	t.Run("infinite allowance is not spent", func(t *testing.T) {
		require.NoError(t, l.Approve(ctx, addr1, treasuryAddr, new(uint256.Int).SetAllOne()))
		require.NoError(t, l.TransferFrom(ctx, treasuryAddr, addr1, treasuryAddr, uint256.NewInt(100)))

		assert.True(t, l.Allowance(addr1, treasuryAddr).Eq(new(uint256.Int).SetAllOne()))
	})

	t.Run("zero amount without any approvals", func(t *testing.T) {
		require.NotPanics(t, func() {
			require.NoError(t, l.TransferFrom(ctx, treasuryAddr, addr2, addr1, uint256.NewInt(0)))
		})
		assert.True(t, l.Allowance(addr2, treasuryAddr).IsZero())
		assert.True(t, l.BalanceOf(addr2).IsZero())
	})

	t.Run("exceeding the balance fails and keeps the allowance", func(t *testing.T) {
		require.NoError(t, l.Approve(ctx, addr1, treasuryAddr, uint256.NewInt(10000)))
		err := l.TransferFrom(ctx, treasuryAddr, addr1, treasuryAddr, uint256.NewInt(9000))
		assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
		assert.Equal(t, uint64(10000), l.Allowance(addr1, treasuryAddr).Uint64())
	})
}

func TestLedger_Burn(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t)
	require.NoError(t, l.Mint(ctx, owner, addr1, uint256.NewInt(100)))

	err := l.Burn(ctx, owner, addr1, uint256.NewInt(10))
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	l.Roles().Setup(domain.BurnerRole, owner)
	require.NoError(t, l.Burn(ctx, owner, addr1, uint256.NewInt(10)))
	assert.Equal(t, uint64(90), l.BalanceOf(addr1).Uint64())
	assert.Equal(t, uint64(90), l.TotalSupply().Uint64())
}

func TestLedger_Call(t *testing.T) {
	ctx := context.Background()

	t.Run("grantMinter from the admin", func(t *testing.T) {
		l := newTestLedger(t)
		data, err := EncodeCall("grantMinter", []string{addr2.Hex()})
		require.NoError(t, err)

		ok, _ := l.Call(ctx, treasuryAddr, data)
		require.True(t, ok)
		assert.True(t, l.Roles().HasRole(domain.MinterRole, addr2))

		// the new minter can mint
		require.NoError(t, l.Mint(ctx, addr2, addr2, uint256.NewInt(5)))
	})

	t.Run("grantMinter from a non-admin fails", func(t *testing.T) {
		l := newTestLedger(t)
		data, err := EncodeCall("grantMinter", []string{addr2.Hex()})
		require.NoError(t, err)

		ok, ret := l.Call(ctx, addr1, data)
		assert.False(t, ok)
		assert.Empty(t, ret)
		assert.False(t, l.Roles().HasRole(domain.MinterRole, addr2))
	})

	t.Run("balanceOf returns encoded output", func(t *testing.T) {
		l := newTestLedger(t)
		require.NoError(t, l.Mint(ctx, owner, addr1, uint256.NewInt(6000)))
		data, err := EncodeCall("balanceOf", []string{addr1.Hex()})
		require.NoError(t, err)

		ok, ret := l.Call(ctx, addr2, data)
		require.True(t, ok)
		out, err := ABI().Unpack("balanceOf", ret)
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, big.NewInt(6000), out[0].(*big.Int))
	})

	t.Run("transfer moves the caller's tokens", func(t *testing.T) {
		l := newTestLedger(t)
		require.NoError(t, l.Mint(ctx, owner, treasuryAddr, uint256.NewInt(500)))
		data, err := EncodeCall("transfer", []string{addr1.Hex(), "200"})
		require.NoError(t, err)

		ok, _ := l.Call(ctx, treasuryAddr, data)
		require.True(t, ok)
		assert.Equal(t, uint64(300), l.BalanceOf(treasuryAddr).Uint64())
		assert.Equal(t, uint64(200), l.BalanceOf(addr1).Uint64())
	})

	t.Run("zero transferFrom succeeds", func(t *testing.T) {
		l := newTestLedger(t)
		data, err := EncodeCall("transferFrom", []string{addr1.Hex(), addr2.Hex(), "0"})
		require.NoError(t, err)

		var ok bool
		require.NotPanics(t, func() { ok, _ = l.Call(ctx, treasuryAddr, data) })
		assert.True(t, ok)
	})

	t.Run("garbage call data fails", func(t *testing.T) {
		l := newTestLedger(t)

		for _, data := range [][]byte{nil, {0x01}, {0xde, 0xad, 0xbe, 0xef}} {
			ok, ret := l.Call(ctx, owner, data)
			assert.False(t, ok)
			assert.Empty(t, ret)
		}
	})
}

func TestEncodeCall(t *testing.T) {
	t.Run("unknown method", func(t *testing.T) {
		_, err := EncodeCall("selfdestruct", nil)
		assert.ErrorContains(t, err, "unknown token method")
	})

	t.Run("wrong argument count", func(t *testing.T) {
		_, err := EncodeCall("mint", []string{addr1.Hex()})
		assert.ErrorContains(t, err, "expects 2 arguments")
	})

	t.Run("invalid address", func(t *testing.T) {
		_, err := EncodeCall("grantMinter", []string{"0x1234"})
		assert.ErrorIs(t, err, domain.ErrInvalidAddress)
	})

	t.Run("hex and decimal amounts", func(t *testing.T) {
		dec, err := EncodeCall("mint", []string{addr1.Hex(), "255"})
		require.NoError(t, err)
		hex, err := EncodeCall("mint", []string{addr1.Hex(), "0xff"})
		require.NoError(t, err)
		assert.Equal(t, dec, hex)
	})

	t.Run("amount too large", func(t *testing.T) {
		_, err := EncodeCall("mint", []string{addr1.Hex(), math.MaxBig256.String() + "0"})
		assert.Error(t, err)
	})

	t.Run("role by name", func(t *testing.T) {
		data, err := EncodeCall("hasRole", []string{"MINTER_ROLE", owner.Hex()})
		require.NoError(t, err)

		desc, ok := DescribeCall(data)
		require.True(t, ok)
		assert.Equal(t, "hasRole(MINTER_ROLE, "+owner.Hex()+")", desc)
	})
}

func TestDescribeCall(t *testing.T) {
	data, err := EncodeCall("grantMinter", []string{addr2.Hex()})
	require.NoError(t, err)

	desc, ok := DescribeCall(data)
	require.True(t, ok)
	assert.Equal(t, "grantMinter("+addr2.Hex()+")", desc)

	_, ok = DescribeCall([]byte{0xde, 0xad})
	assert.False(t, ok)
}
