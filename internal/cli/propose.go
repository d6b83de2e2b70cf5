package cli

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/dao-cli/internal/cli/render"
	"github.com/trebuchet-org/dao-cli/internal/usecase"
)

// NewProposeCmd creates the propose command
func NewProposeCmd() *cobra.Command {
	var (
		file        string
		target      string
		calldata    string
		method      string
		description string
	)

	cmd := &cobra.Command{
		Use:     "propose",
		Aliases: []string{"addproposal"},
		Short:   "Open a proposal (chairmen only)",
		Long: `Open a proposal that calls target with calldata if it passes.

Call data is given raw with --calldata, or built from a token method with
--method and trailing arguments. A batch of proposals can be read from a
YAML file with --file, which also takes a glob such as "proposals/**/*.yaml".
Either all of them are opened or none is.

Examples:
  dao propose --target 0xe7f1...0512 --method grantMinter 0x3C44...93BC --description "grant minter"
  dao propose --target 0xe7f1...0512 --calldata 0x4c3f...
  dao propose --file proposals.yaml
  dao propose --file "proposals/*.yaml"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			var result *usecase.AddProposalResult
			if file != "" {
				if target != "" || calldata != "" || method != "" {
					return fmt.Errorf("--file cannot be combined with --target, --calldata or --method")
				}
				result, err = app.AddProposal.RunFile(cmd.Context(), file)
			} else {
				var params usecase.AddProposalParams
				if params, err = proposalParams(app.EncodeCalldata, target, calldata, method, args); err != nil {
					return err
				}
				params.Description = description
				result, err = app.AddProposal.Run(cmd.Context(), params)
			}
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.JSON(cmd.OutOrStdout(), result.Proposals)
			}
			return render.NewProposalsRenderer(cmd.OutOrStdout()).RenderAdded(result)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file or glob with a batch of proposals")
	cmd.Flags().StringVarP(&target, "target", "t", "", "Address called if the proposal passes")
	cmd.Flags().StringVar(&calldata, "calldata", "", "Raw hex call data")
	cmd.Flags().StringVarP(&method, "method", "m", "", "Token method to encode, with its arguments after the flags")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Proposal description")

	return cmd
}

func proposalParams(encoder *usecase.EncodeCalldata, target, calldata, method string, args []string) (usecase.AddProposalParams, error) {
	var params usecase.AddProposalParams
	if target == "" {
		return params, fmt.Errorf("--target is required")
	}
	addr, err := parseAddress(target)
	if err != nil {
		return params, err
	}
	params.Target = addr

	switch {
	case calldata != "" && method != "":
		return params, fmt.Errorf("pass either --calldata or --method, not both")
	case method != "":
		encoded, err := encoder.Run(method, args)
		if err != nil {
			return params, err
		}
		params.CallData = encoded.CallData
	case len(args) > 0:
		return params, fmt.Errorf("unexpected arguments %v (did you mean --method?)", args)
	case calldata != "":
		if params.CallData, err = hexutil.Decode(calldata); err != nil {
			return params, fmt.Errorf("invalid calldata: %w", err)
		}
	}
	return params, nil
}

// NewVoteCmd creates the vote command
func NewVoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vote <for|against> [proposal-id]",
		Short: "Vote on a proposal with your whole deposit",
		Long: `Vote for (1) or against (0) a proposal. Your full current deposit is
the vote's weight, and it stays locked until voting ends.

Without a proposal id, an interactive picker lists the open proposals you
have not voted on.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			decision, err := parseDecision(args[0])
			if err != nil {
				return err
			}
			id, err := parseProposalID(args[1:])
			if err != nil {
				return err
			}

			result, err := app.CastVote.Run(cmd.Context(), usecase.CastVoteParams{ProposalID: id, Decision: decision})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.JSON(cmd.OutOrStdout(), result)
			}
			return render.NewProposalsRenderer(cmd.OutOrStdout()).RenderVote(result)
		},
	}
}

// NewFinishCmd creates the finish command
func NewFinishCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "finish [proposal-id]",
		Short: "Resolve a proposal whose voting period is over",
		Long: `Finish a proposal once its voting period is over. Anyone may finish.

A proposal passes when the votes cast reach the minimum quorum and more
weight voted for than against. A passed proposal calls its target; a
failing call is recorded but does not undo the finish.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			id, err := parseProposalID(args)
			if err != nil {
				return err
			}

			result, err := app.FinishProposal.Run(cmd.Context(), usecase.FinishProposalParams{ProposalID: id})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.JSON(cmd.OutOrStdout(), result)
			}
			return render.NewProposalsRenderer(cmd.OutOrStdout()).RenderFinish(result)
		},
	}
}
