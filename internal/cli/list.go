package cli

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/dao-cli/internal/cli/render"
	"github.com/trebuchet-org/dao-cli/internal/domain/models"
	"github.com/trebuchet-org/dao-cli/internal/usecase"
)

var proposalStatuses = []models.ProposalStatus{
	models.ProposalStatusActive,
	models.ProposalStatusAwaitingFinish,
	models.ProposalStatusPassed,
	models.ProposalStatusRejected,
	models.ProposalStatusNoQuorum,
}

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List proposals",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ListProposalsParams{Status: models.ProposalStatus(status)}
			if status != "" && !lo.Contains(proposalStatuses, params.Status) {
				names := lo.Map(proposalStatuses, func(s models.ProposalStatus, _ int) string { return string(s) })
				return fmt.Errorf("unknown status %q (expected one of %s)", status, strings.Join(names, ", "))
			}

			result, err := app.ListProposals.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.JSON(cmd.OutOrStdout(), result)
			}
			return render.NewProposalsRenderer(cmd.OutOrStdout()).RenderList(result)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Only list proposals in this status")

	return cmd
}
