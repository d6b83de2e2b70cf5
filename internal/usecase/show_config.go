package usecase

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/dao-cli/internal/domain/config"
)

// ConfigEntry is one local config key with its stored and effective values
type ConfigEntry struct {
	Key         config.ConfigKey `json:"key"`
	Description string           `json:"description"`
	Stored      string           `json:"stored,omitempty"`
	// Effective is the value in use after env and flag overrides
	Effective string `json:"effective,omitempty"`
}

// Overridden reports whether env or flags replaced the stored value
func (e ConfigEntry) Overridden() bool {
	return e.Stored != "" && e.Effective != e.Stored
}

// ShowConfigResult contains the result of showing configuration
type ShowConfigResult struct {
	Config     *config.LocalConfig `json:"config"`
	ConfigPath string              `json:"configPath"`
	Exists     bool                `json:"exists"`
	Entries    []ConfigEntry       `json:"entries"`
}

// ShowConfig shows the local config file next to the runtime values
type ShowConfig struct {
	config *config.RuntimeConfig
	store  LocalConfigRepository
}

// NewShowConfig creates a new ShowConfig use case
func NewShowConfig(cfg *config.RuntimeConfig, store LocalConfigRepository) *ShowConfig {
	return &ShowConfig{config: cfg, store: store}
}

// Run executes the show config use case
func (uc *ShowConfig) Run(ctx context.Context) (*ShowConfigResult, error) {
	local, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	result := &ShowConfigResult{
		Config:     local,
		ConfigPath: uc.store.GetPath(),
		Exists:     uc.store.Exists(),
	}
	for _, key := range config.ValidConfigKeys() {
		result.Entries = append(result.Entries, ConfigEntry{
			Key:         key,
			Description: key.Describe(),
			Stored:      local.Get(key),
			Effective:   uc.effective(key),
		})
	}
	return result, nil
}

func (uc *ShowConfig) effective(key config.ConfigKey) string {
	switch key {
	case config.ConfigKeyFrom:
		if uc.config.From != (common.Address{}) {
			return uc.config.From.Hex()
		}
	case config.ConfigKeyTimeout:
		if uc.config.Timeout > 0 {
			return uc.config.Timeout.String()
		}
	}
	return ""
}
