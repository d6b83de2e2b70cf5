package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/dao-cli/internal/cli/render"
	"github.com/trebuchet-org/dao-cli/internal/usecase"
)

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [proposal-id]",
		Short: "Show a proposal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			id, err := parseProposalID(args)
			if err != nil {
				return err
			}

			details, err := app.ShowProposal.Run(cmd.Context(), usecase.ShowProposalParams{ProposalID: id})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.JSON(cmd.OutOrStdout(), details)
			}
			return render.NewProposalsRenderer(cmd.OutOrStdout()).RenderDetails(details, details.Now)
		},
	}
}
