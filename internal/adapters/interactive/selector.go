package interactive

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
	"github.com/trebuchet-org/dao-cli/internal/domain/config"
	"github.com/trebuchet-org/dao-cli/internal/domain/models"
	"github.com/trebuchet-org/dao-cli/internal/usecase"
)

// SelectorAdapter handles interactive selection
type SelectorAdapter struct {
	config *config.RuntimeConfig
}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter(cfg *config.RuntimeConfig) *SelectorAdapter {
	return &SelectorAdapter{config: cfg}
}

// SelectProposal lets the user pick one of proposals
func (s *SelectorAdapter) SelectProposal(ctx context.Context, proposals []*models.Proposal, votingPeriod time.Duration, now time.Time, prompt string) (*models.Proposal, error) {
	if s.config.NonInteractive {
		return nil, fmt.Errorf("interactive selection not available in non-interactive mode")
	}

	if len(proposals) == 0 {
		return nil, fmt.Errorf("no proposals to choose from")
	}

	if len(proposals) == 1 {
		return proposals[0], nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	options := formatProposalOptions(proposals, votingPeriod, now)
	// Search runs on the uncolored labels so escape codes never match
	labels := make([]string, len(proposals))
	for i, p := range proposals {
		labels[i] = proposalLabel(p, votingPeriod, now)
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, Enter to select"),
	}

	promptSelect := promptui.Select{
		Label:             prompt,
		Items:             options,
		Templates:         templates,
		Size:              10,
		StartInSearchMode: true,
		Searcher:          createFuzzySearchFunc(labels),
	}

	index, _, err := promptSelect.Run()
	if err != nil {
		return nil, fmt.Errorf("selection cancelled: %w", err)
	}

	return proposals[index], nil
}

// proposalLabel is the plain form of an option, "#3 grant minter [active]"
func proposalLabel(p *models.Proposal, votingPeriod time.Duration, now time.Time) string {
	return fmt.Sprintf("#%d %s [%s]", p.ID, p.Description, p.Status(now, votingPeriod))
}

// formatProposalOptions creates the colored display strings
func formatProposalOptions(proposals []*models.Proposal, votingPeriod time.Duration, now time.Time) []string {
	options := make([]string, len(proposals))
	for i, p := range proposals {
		id := color.New(color.FgWhite, color.Bold).Sprintf("#%d", p.ID)
		status := color.New(color.FgYellow).Sprintf("[%s]", p.Status(now, votingPeriod))
		description := p.Description
		if description == "" {
			description = color.New(color.Faint).Sprint("(no description)")
		}
		options[i] = fmt.Sprintf("%s %s %s", id, description, status)
	}
	return options
}

// createFuzzySearchFunc creates a fuzzy search function for promptui
func createFuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		if input == "" {
			return true
		}

		input = strings.ToLower(input)
		item := strings.ToLower(items[index])

		if strings.Contains(item, input) {
			return true
		}

		return len(fuzzy.Find(input, []string{item})) > 0
	}
}

// Ensure the adapter implements the interface
var _ usecase.ProposalSelector = (*SelectorAdapter)(nil)
