package adapters

import (
	"github.com/google/wire"
	"github.com/trebuchet-org/dao-cli/internal/adapters/abi"
	"github.com/trebuchet-org/dao-cli/internal/adapters/chain"
	"github.com/trebuchet-org/dao-cli/internal/adapters/fs"
	"github.com/trebuchet-org/dao-cli/internal/adapters/interactive"
	"github.com/trebuchet-org/dao-cli/internal/adapters/token"
	"github.com/trebuchet-org/dao-cli/internal/usecase"
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewChainStateStoreAdapter,
	wire.Bind(new(usecase.ChainStateStore), new(*fs.ChainStateStoreAdapter)),

	fs.NewLocalConfigStoreAdapter,
	wire.Bind(new(usecase.LocalConfigRepository), new(*fs.LocalConfigStoreAdapter)),

	fs.NewProposalFileAdapter,
	wire.Bind(new(usecase.ProposalFileReader), new(*fs.ProposalFileAdapter)),
)

// ABISet provides event encoding and decoding
var ABISet = wire.NewSet(
	abi.NewEventParser,
	abi.NewEventDecoder,
	wire.Bind(new(usecase.EventDecoder), new(*abi.EventDecoder)),
)

// TokenSet provides token calldata helpers
var TokenSet = wire.NewSet(
	token.NewCallCodec,
	wire.Bind(new(usecase.CalldataCodec), new(*token.CallCodec)),
)

// ChainSet assembles the in-process chain
var ChainSet = wire.NewSet(
	chain.NewFactory,
	wire.Bind(new(usecase.ChainFactory), new(*chain.Factory)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.ProposalSelector), new(*interactive.SelectorAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	FSSet,
	ABISet,
	TokenSet,
	ChainSet,
	InteractiveSet,
)
