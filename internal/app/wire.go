//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/dao-cli/internal/adapters"
	"github.com/trebuchet-org/dao-cli/internal/config"
	"github.com/trebuchet-org/dao-cli/internal/logging"
	"github.com/trebuchet-org/dao-cli/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewChainSession,
		usecase.NewInitTreasury,
		usecase.NewDepositTokens,
		usecase.NewWithdrawTokens,
		usecase.NewShowBalance,
		usecase.NewAddProposal,
		usecase.NewCastVote,
		usecase.NewFinishProposal,
		usecase.NewShowProposal,
		usecase.NewListProposals,
		usecase.NewEncodeCalldata,
		usecase.NewManageToken,
		usecase.NewManageRoles,
		usecase.NewListEvents,
		usecase.NewWarpTime,
		usecase.NewShowConfig,
		usecase.NewSetConfig,
		usecase.NewRemoveConfig,

		// App
		NewApp,
	)
	return nil, nil
}
