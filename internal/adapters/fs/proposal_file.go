package fs

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/trebuchet-org/dao-cli/internal/usecase"
	"gopkg.in/yaml.v3"
)

// proposalFile is the YAML layout of a batch proposal file:
//
//	proposals:
//	  - target: "0xe7f1..."
//	    calldata: "0x..."            # raw call data, or
//	    call: { method: grantMinter, args: ["0x3C44..."] }
//	    description: "grant minter to addr2"
type proposalFile struct {
	Proposals []proposalEntry `yaml:"proposals"`
}

type proposalEntry struct {
	Target      string     `yaml:"target"`
	CallData    string     `yaml:"calldata"`
	Call        *callEntry `yaml:"call"`
	Description string     `yaml:"description"`
}

type callEntry struct {
	Method string   `yaml:"method"`
	Args   []string `yaml:"args"`
}

// ProposalFileAdapter reads batch proposal files
type ProposalFileAdapter struct {
	codec usecase.CalldataCodec
}

// NewProposalFileAdapter creates a new ProposalFileAdapter
func NewProposalFileAdapter(codec usecase.CalldataCodec) *ProposalFileAdapter {
	return &ProposalFileAdapter{codec: codec}
}

// ReadProposals parses and validates every entry of the file at pattern.
// Patterns with glob meta characters (including **) read every matching file
// in lexical order, so a batch can be split across files.
func (a *ProposalFileAdapter) ReadProposals(ctx context.Context, pattern string) ([]usecase.AddProposalParams, error) {
	paths, err := expandProposalPattern(pattern)
	if err != nil {
		return nil, err
	}

	var params []usecase.AddProposalParams
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		batch, err := a.readFile(path)
		if err != nil {
			if len(paths) > 1 {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			return nil, err
		}
		params = append(params, batch...)
	}
	return params, nil
}

func expandProposalPattern(pattern string) ([]string, error) {
	if !strings.ContainsAny(pattern, "*?[{") {
		return []string{pattern}, nil
	}
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("invalid proposal file pattern %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no proposal files match %q", pattern)
	}
	sort.Strings(matches)
	return matches, nil
}

func (a *ProposalFileAdapter) readFile(path string) ([]usecase.AddProposalParams, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read proposal file: %w", err)
	}

	var file proposalFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse proposal file: %w", err)
	}

	params := make([]usecase.AddProposalParams, 0, len(file.Proposals))
	for i, entry := range file.Proposals {
		p, err := a.parseEntry(entry)
		if err != nil {
			return nil, fmt.Errorf("proposal %d: %w", i+1, err)
		}
		params = append(params, p)
	}
	return params, nil
}

func (a *ProposalFileAdapter) parseEntry(entry proposalEntry) (usecase.AddProposalParams, error) {
	var p usecase.AddProposalParams

	if !common.IsHexAddress(entry.Target) {
		return p, fmt.Errorf("invalid target %q", entry.Target)
	}
	p.Target = common.HexToAddress(entry.Target)
	p.Description = entry.Description

	switch {
	case entry.CallData != "" && entry.Call != nil:
		return p, fmt.Errorf("set either calldata or call, not both")
	case entry.Call != nil:
		data, err := a.codec.EncodeCall(entry.Call.Method, entry.Call.Args)
		if err != nil {
			return p, err
		}
		p.CallData = data
	case entry.CallData != "":
		data, err := hexutil.Decode(entry.CallData)
		if err != nil {
			return p, fmt.Errorf("invalid calldata: %w", err)
		}
		p.CallData = data
	}
	return p, nil
}

var _ usecase.ProposalFileReader = (*ProposalFileAdapter)(nil)
