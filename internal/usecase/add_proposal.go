package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/dao-cli/internal/domain/config"
)

// AddProposalParams describes one proposal to open
type AddProposalParams struct {
	Target      common.Address
	CallData    []byte
	Description string
}

// AddProposalResult contains the opened proposals, in id order
type AddProposalResult struct {
	Proposals []*ProposalView
}

// AddProposal opens proposals as the configured sender
type AddProposal struct {
	config  *config.RuntimeConfig
	session *ChainSession
	files   ProposalFileReader
	codec   CalldataCodec
}

// NewAddProposal creates a new AddProposal use case
func NewAddProposal(cfg *config.RuntimeConfig, session *ChainSession, files ProposalFileReader, codec CalldataCodec) *AddProposal {
	return &AddProposal{config: cfg, session: session, files: files, codec: codec}
}

// Run opens a single proposal
func (uc *AddProposal) Run(ctx context.Context, params AddProposalParams) (*AddProposalResult, error) {
	return uc.run(ctx, []AddProposalParams{params})
}

// RunFile opens every proposal in a batch file. Either all of them are
// opened or none is.
func (uc *AddProposal) RunFile(ctx context.Context, path string) (*AddProposalResult, error) {
	batch, err := uc.files.ReadProposals(ctx, path)
	if err != nil {
		return nil, err
	}
	if len(batch) == 0 {
		return nil, fmt.Errorf("no proposals in %s", path)
	}
	return uc.run(ctx, batch)
}

func (uc *AddProposal) run(ctx context.Context, batch []AddProposalParams) (*AddProposalResult, error) {
	from, err := requireSender(uc.config)
	if err != nil {
		return nil, err
	}

	result := &AddProposalResult{}
	err = uc.session.Update(ctx, func(chain *Chain) error {
		for i, params := range batch {
			id, err := chain.Treasury.AddProposal(ctx, from, params.Target, params.CallData, params.Description)
			if err != nil {
				if len(batch) > 1 {
					return fmt.Errorf("proposal %d of %d: %w", i+1, len(batch), err)
				}
				return err
			}
			p, err := chain.Treasury.GetProposal(id)
			if err != nil {
				return err
			}
			result.Proposals = append(result.Proposals, newProposalView(p, chain, uc.codec))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
