package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/trebuchet-org/dao-cli/internal/domain/models"
	"github.com/trebuchet-org/dao-cli/internal/usecase"
)

// maxDescriptionWidth truncates descriptions in the proposal table
const maxDescriptionWidth = 40

// ProposalsRenderer renders proposals
type ProposalsRenderer struct {
	out io.Writer
}

// NewProposalsRenderer creates a new proposals renderer
func NewProposalsRenderer(out io.Writer) *ProposalsRenderer {
	return &ProposalsRenderer{out: out}
}

// RenderList renders proposals as a table
func (r *ProposalsRenderer) RenderList(result *usecase.ProposalListResult) error {
	if len(result.Proposals) == 0 {
		fmt.Fprintln(r.out, "No proposals found")
		return nil
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateRows = false
	t.Style().Box = table.BoxStyle{
		PaddingRight:     "   ",
		MiddleHorizontal: "─",
	}
	t.AppendHeader(table.Row{"ID", "STATUS", "DESCRIPTION", "FOR", "AGAINST", "DEADLINE"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, WidthMax: maxDescriptionWidth, WidthMaxEnforcer: text.Trim},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})

	for _, p := range result.Proposals {
		t.AppendRow(table.Row{
			p.ID,
			StatusLabel(p.Status),
			p.Description,
			p.VotesFor.Dec(),
			p.VotesAgainst.Dec(),
			timestampStyle.Sprint(FormatRemaining(p.Deadline, result.Now)),
		})
	}
	fmt.Fprintln(r.out, t.Render())

	fmt.Fprintf(r.out, "\n%d proposal(s)", result.Summary.Total)
	if len(result.Proposals) != result.Summary.Total {
		fmt.Fprintf(r.out, ", %d shown", len(result.Proposals))
	}
	fmt.Fprintln(r.out)
	return nil
}

// RenderDetails renders a single proposal
func (r *ProposalsRenderer) RenderDetails(details *usecase.ProposalDetails, now time.Time) error {
	p := details.ProposalView
	headerStyle.Fprintf(r.out, "Proposal #%d\n", p.ID)
	fmt.Fprintln(r.out, strings.Repeat("=", 60))

	r.field("Status", StatusLabel(p.Status))
	r.field("Description", p.Description)
	r.field("Creator", addressStyle.Sprint(p.Creator.Hex()))
	r.field("Created", FormatTime(p.CreatedAt))
	r.field("Deadline", fmt.Sprintf("%s (%s)", FormatTime(p.Deadline), FormatRemaining(p.Deadline, now)))
	r.field("Voting period", details.VotingPeriod)

	fmt.Fprintln(r.out, "\nCall:")
	r.field("Target", addressStyle.Sprint(p.Target.Hex()))
	if p.Call != "" {
		r.field("Decoded", color.New(color.FgMagenta).Sprint(p.Call))
	}
	if len(p.CallData) > 0 {
		r.field("Data", p.CallData.String())
	} else {
		r.field("Data", labelStyle.Sprint("(empty)"))
	}

	fmt.Fprintln(r.out, "\nVotes:")
	r.field("For", amountStyle.Sprint(p.VotesFor.Dec()))
	r.field("Against", amountStyle.Sprint(p.VotesAgainst.Dec()))
	r.field("Min quorum", details.MinQuorum)
	if details.Viewer != (common.Address{}) {
		voted := "no"
		if details.HasVoted {
			voted = "yes"
		}
		r.field("You voted", voted)
	}

	if p.Result != nil {
		r.renderResult(p.Result)
	}
	return nil
}

// RenderAdded renders newly opened proposals
func (r *ProposalsRenderer) RenderAdded(result *usecase.AddProposalResult) error {
	for _, p := range result.Proposals {
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Opened proposal #%d: %s", p.ID, p.Description)))
		r.field("Target", addressStyle.Sprint(p.Target.Hex()))
		if p.Call != "" {
			r.field("Call", p.Call)
		}
		r.field("Voting ends", FormatTime(p.Deadline))
	}
	return nil
}

// RenderVote renders a cast vote
func (r *ProposalsRenderer) RenderVote(result *usecase.CastVoteResult) error {
	p := result.Proposal
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Voted %s on proposal #%d with weight %s", result.Decision, p.ID, result.Weight.Dec())))
	r.field("Tally", fmt.Sprintf("%s for / %s against", p.VotesFor.Dec(), p.VotesAgainst.Dec()))
	r.field("Voting ends", FormatTime(p.Deadline))
	fmt.Fprintln(r.out, FormatWarning("Your deposit stays locked until voting ends"))
	return nil
}

// RenderFinish renders a finished proposal
func (r *ProposalsRenderer) RenderFinish(result *usecase.FinishProposalResult) error {
	p := result.Proposal
	fmt.Fprintf(r.out, "Proposal #%d finished: %s\n", p.ID, StatusLabel(p.Status))
	r.field("Tally", fmt.Sprintf("%s for / %s against", p.VotesFor.Dec(), p.VotesAgainst.Dec()))
	r.renderResult(result.Result)
	return nil
}

func (r *ProposalsRenderer) renderResult(res *models.ProposalResult) {
	fmt.Fprintln(r.out, "\nResult:")
	r.field("Quorum reached", fmt.Sprint(res.QuorumReached))
	r.field("Passed", fmt.Sprint(res.Passed))
	r.field("Finished", FormatTime(res.FinishedAt))
	switch {
	case !res.Executed:
		r.field("Call", labelStyle.Sprint("not executed"))
	case res.CallSuccess:
		r.field("Call", color.New(color.FgGreen).Sprint("succeeded"))
	default:
		r.field("Call", color.New(color.FgRed).Sprint("failed"))
	}
}

func (r *ProposalsRenderer) field(label, value string) {
	fmt.Fprintf(r.out, "  %s %s\n", labelStyle.Sprintf("%-15s", label+":"), value)
}
