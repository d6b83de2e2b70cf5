package app

import (
	"log/slog"

	"github.com/trebuchet-org/dao-cli/internal/domain/config"
	"github.com/trebuchet-org/dao-cli/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Treasury
	InitTreasury   *usecase.InitTreasury
	DepositTokens  *usecase.DepositTokens
	WithdrawTokens *usecase.WithdrawTokens
	ShowBalance    *usecase.ShowBalance

	// Governance
	AddProposal    *usecase.AddProposal
	CastVote       *usecase.CastVote
	FinishProposal *usecase.FinishProposal
	ShowProposal   *usecase.ShowProposal
	ListProposals  *usecase.ListProposals
	EncodeCalldata *usecase.EncodeCalldata

	// Management
	ManageToken  *usecase.ManageToken
	ManageRoles  *usecase.ManageRoles
	ListEvents   *usecase.ListEvents
	WarpTime     *usecase.WarpTime
	ShowConfig   *usecase.ShowConfig
	SetConfig    *usecase.SetConfig
	RemoveConfig *usecase.RemoveConfig
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	initTreasury *usecase.InitTreasury,
	depositTokens *usecase.DepositTokens,
	withdrawTokens *usecase.WithdrawTokens,
	showBalance *usecase.ShowBalance,
	addProposal *usecase.AddProposal,
	castVote *usecase.CastVote,
	finishProposal *usecase.FinishProposal,
	showProposal *usecase.ShowProposal,
	listProposals *usecase.ListProposals,
	encodeCalldata *usecase.EncodeCalldata,
	manageToken *usecase.ManageToken,
	manageRoles *usecase.ManageRoles,
	listEvents *usecase.ListEvents,
	warpTime *usecase.WarpTime,
	showConfig *usecase.ShowConfig,
	setConfig *usecase.SetConfig,
	removeConfig *usecase.RemoveConfig,
) (*App, error) {
	return &App{
		Config:         cfg,
		Log:            log,
		InitTreasury:   initTreasury,
		DepositTokens:  depositTokens,
		WithdrawTokens: withdrawTokens,
		ShowBalance:    showBalance,
		AddProposal:    addProposal,
		CastVote:       castVote,
		FinishProposal: finishProposal,
		ShowProposal:   showProposal,
		ListProposals:  listProposals,
		EncodeCalldata: encodeCalldata,
		ManageToken:    manageToken,
		ManageRoles:    manageRoles,
		ListEvents:     listEvents,
		WarpTime:       warpTime,
		ShowConfig:     showConfig,
		SetConfig:      setConfig,
		RemoveConfig:   removeConfig,
	}, nil
}
