package treasury

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/trebuchet-org/dao-cli/internal/domain"
	"github.com/trebuchet-org/dao-cli/internal/domain/config"
	"github.com/trebuchet-org/dao-cli/internal/domain/models"
)

var (
	treasuryAddr = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	tokenAddr    = common.HexToAddress("0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512")
	owner        = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	addr1        = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	addr2        = common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")
)

const day = 24 * time.Hour

// fakeToken is a minimal ERC20 ledger with a single global allowance check
type fakeToken struct {
	balances   map[common.Address]*uint256.Int
	allowances map[common.Address]*uint256.Int // owner -> allowance for the treasury
}

func newFakeToken() *fakeToken {
	return &fakeToken{
		balances:   make(map[common.Address]*uint256.Int),
		allowances: make(map[common.Address]*uint256.Int),
	}
}

func (f *fakeToken) mint(to common.Address, amount uint64) {
	f.balances[to] = new(uint256.Int).Add(f.BalanceOf(to), uint256.NewInt(amount))
}

func (f *fakeToken) approve(from common.Address, amount *uint256.Int) {
	f.allowances[from] = amount.Clone()
}

func (f *fakeToken) TransferFrom(_ context.Context, _, from, to common.Address, amount *uint256.Int) error {
	allowance := f.allowances[from]
	if allowance == nil || allowance.Lt(amount) {
		return domain.ErrInsufficientAllowance
	}
	if err := f.move(from, to, amount); err != nil {
		return err
	}
	f.allowances[from] = new(uint256.Int).Sub(allowance, amount)
	return nil
}

func (f *fakeToken) Transfer(_ context.Context, from, to common.Address, amount *uint256.Int) error {
	return f.move(from, to, amount)
}

func (f *fakeToken) move(from, to common.Address, amount *uint256.Int) error {
	if f.BalanceOf(from).Lt(amount) {
		return fmt.Errorf("token: %w", domain.ErrInsufficientBalance)
	}
	f.balances[from] = new(uint256.Int).Sub(f.BalanceOf(from), amount)
	f.balances[to] = new(uint256.Int).Add(f.BalanceOf(to), amount)
	return nil
}

func (f *fakeToken) BalanceOf(account common.Address) *uint256.Int {
	if b, ok := f.balances[account]; ok {
		return b
	}
	return new(uint256.Int)
}

type fakeGate map[common.Address]bool

func (g fakeGate) HasRole(role common.Hash, account common.Address) bool {
	return role == domain.ChairmanRole && g[account]
}

type call struct {
	from, target common.Address
	data         []byte
}

type fakeCaller struct {
	calls  []call
	ok     bool
	ret    []byte
	panics bool
}

func (c *fakeCaller) Call(_ context.Context, from, target common.Address, data []byte) (bool, []byte) {
	c.calls = append(c.calls, call{from: from, target: target, data: data})
	if c.panics {
		panic("target exploded")
	}
	return c.ok, c.ret
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type recordingSink struct {
	events []domain.Event
}

func (s *recordingSink) Emit(_ context.Context, e domain.Event) {
	s.events = append(s.events, e)
}

func (s *recordingSink) last() domain.Event {
	if len(s.events) == 0 {
		return nil
	}
	return s.events[len(s.events)-1]
}

type fixture struct {
	treasury *Treasury
	token    *fakeToken
	caller   *fakeCaller
	clock    *fakeClock
	sink     *recordingSink
	state    *models.TreasuryState
}

func newFixture(minQuorum uint64) *fixture {
	state := models.NewTreasuryState(config.TreasuryConfig{
		Address:      treasuryAddr,
		Token:        tokenAddr,
		VotingPeriod: day,
		MinQuorum:    uint256.NewInt(minQuorum),
	})
	f := &fixture{
		token:  newFakeToken(),
		caller: &fakeCaller{ok: true},
		clock:  &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)},
		sink:   &recordingSink{},
		state:  state,
	}
	for _, a := range []common.Address{owner, addr1, addr2} {
		f.token.mint(a, 6000)
	}
	f.treasury = New(state, f.token, fakeGate{owner: true}, f.caller, f.clock, f.sink, nil)
	return f
}

// deposit approves and deposits in one step
func (f *fixture) deposit(account common.Address, amount uint64) error {
	f.token.approve(account, uint256.NewInt(amount))
	return f.treasury.Deposit(context.Background(), account, uint256.NewInt(amount))
}

func (f *fixture) propose() uint64 {
	id, err := f.treasury.AddProposal(context.Background(), owner, tokenAddr, []byte{0xde, 0xad}, "description")
	if err != nil {
		panic(err)
	}
	return id
}
