package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/trebuchet-org/dao-cli/internal/domain"
	"github.com/trebuchet-org/dao-cli/internal/domain/config"
	"github.com/trebuchet-org/dao-cli/internal/domain/models"
	"github.com/trebuchet-org/dao-cli/internal/usecase"
)

// ChainStateStoreAdapter implements ChainStateStore using a JSON file
type ChainStateStoreAdapter struct {
	statePath string
}

// NewChainStateStoreAdapter creates a new ChainStateStoreAdapter
func NewChainStateStoreAdapter(cfg *config.RuntimeConfig) *ChainStateStoreAdapter {
	return &ChainStateStoreAdapter{
		statePath: filepath.Join(cfg.DataDir, "state.json"),
	}
}

// Exists reports whether a state file has been written
func (s *ChainStateStoreAdapter) Exists() bool {
	_, err := os.Stat(s.statePath)
	return err == nil
}

// Load reads the chain state from disk. Returns domain.ErrNotInitialized if the file does not exist.
func (s *ChainStateStoreAdapter) Load(_ context.Context) (*models.ChainState, error) {
	data, err := os.ReadFile(s.statePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: run 'dao init' first", domain.ErrNotInitialized)
		}
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	var state models.ChainState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse state file: %w", err)
	}
	if state.Treasury == nil || state.Token == nil {
		return nil, fmt.Errorf("failed to parse state file: missing treasury or token section")
	}
	state.Normalize()

	return &state, nil
}

// Save writes the chain state to disk atomically, creating the directory if needed.
func (s *ChainStateStoreAdapter) Save(_ context.Context, state *models.ChainState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}
	return writeFileAtomic(s.statePath, data)
}

// writeFileAtomic replaces path with data through a temp file in the same directory
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// Delete removes the state file from disk.
func (s *ChainStateStoreAdapter) Delete(_ context.Context) error {
	err := os.Remove(s.statePath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete state file: %w", err)
	}
	return nil
}

// GetPath returns the path to the state file
func (s *ChainStateStoreAdapter) GetPath() string {
	return s.statePath
}

// Ensure ChainStateStoreAdapter implements ChainStateStore
var _ usecase.ChainStateStore = (*ChainStateStoreAdapter)(nil)
