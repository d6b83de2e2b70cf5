package config

import (
	"fmt"
	"sort"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// LocalConfig holds per-checkout defaults stored in .dao/config.local.json.
// Keys match the viper keys they feed, so the file doubles as a viper source.
type LocalConfig struct {
	From    string `json:"from,omitempty"`
	Timeout string `json:"timeout,omitempty"`
}

// ConfigKey names a local config value
type ConfigKey string

const (
	ConfigKeyFrom    ConfigKey = "from"
	ConfigKeyTimeout ConfigKey = "timeout"
)

type localKey struct {
	describe  string
	normalize func(string) (string, error)
	field     func(*LocalConfig) *string
}

var localKeys = map[ConfigKey]localKey{
	ConfigKeyFrom: {
		describe: "default sender address",
		normalize: func(v string) (string, error) {
			if !common.IsHexAddress(v) {
				return "", fmt.Errorf("invalid address %q", v)
			}
			return common.HexToAddress(v).Hex(), nil
		},
		field: func(c *LocalConfig) *string { return &c.From },
	},
	ConfigKeyTimeout: {
		describe: "command timeout, e.g. 30s or 2m",
		normalize: func(v string) (string, error) {
			d, err := time.ParseDuration(v)
			if err != nil || d <= 0 {
				return "", fmt.Errorf("invalid timeout %q", v)
			}
			return d.String(), nil
		},
		field: func(c *LocalConfig) *string { return &c.Timeout },
	},
}

// DefaultLocalConfig returns the default local configuration
func DefaultLocalConfig() *LocalConfig {
	return &LocalConfig{}
}

// ValidConfigKeys returns all valid configuration keys, sorted
func ValidConfigKeys() []ConfigKey {
	keys := make([]ConfigKey, 0, len(localKeys))
	for k := range localKeys {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// IsValidConfigKey checks if a key is valid
func IsValidConfigKey(key string) bool {
	_, ok := localKeys[ConfigKey(key)]
	return ok
}

// Describe returns the help text for key
func (k ConfigKey) Describe() string {
	return localKeys[k].describe
}

// Get returns the stored value of key, empty when unset
func (c *LocalConfig) Get(key ConfigKey) string {
	k, ok := localKeys[key]
	if !ok {
		return ""
	}
	return *k.field(c)
}

// Set validates and stores value under key, returning the normalized value
func (c *LocalConfig) Set(key ConfigKey, value string) (string, error) {
	k, ok := localKeys[key]
	if !ok {
		return "", fmt.Errorf("unknown config key: %s", key)
	}
	normalized, err := k.normalize(value)
	if err != nil {
		return "", err
	}
	*k.field(c) = normalized
	return normalized, nil
}

// Unset clears key and returns the value it held
func (c *LocalConfig) Unset(key ConfigKey) string {
	k, ok := localKeys[key]
	if !ok {
		return ""
	}
	field := k.field(c)
	old := *field
	*field = ""
	return old
}
