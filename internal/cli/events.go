package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/dao-cli/internal/cli/render"
	"github.com/trebuchet-org/dao-cli/internal/usecase"
)

// NewEventsCmd creates the events command
func NewEventsCmd() *cobra.Command {
	var params usecase.ListEventsParams

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Show the treasury's event log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			events, err := app.ListEvents.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.JSON(cmd.OutOrStdout(), events)
			}
			return render.NewEventsRenderer(cmd.OutOrStdout()).Render(events)
		},
	}

	cmd.Flags().StringVar(&params.Name, "name", "", "Only show events with this name (e.g. Voted)")
	cmd.Flags().IntVarP(&params.Limit, "limit", "l", 0, "Only show the most recent events")

	return cmd
}
