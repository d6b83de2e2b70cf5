package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/trebuchet-org/dao-cli/internal/domain/config"
)

// DaoFileName is the project configuration file
const DaoFileName = "dao.toml"

// loadDaoConfig loads and parses dao.toml if it exists.
// Returns (nil, nil) when dao.toml does not exist.
func loadDaoConfig(projectRoot string) (*config.DaoFileConfig, error) {
	path := filepath.Join(projectRoot, DaoFileName)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	var cfg config.DaoFileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", DaoFileName, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown keys in %s: %v", DaoFileName, undecoded)
	}

	// Addresses may reference environment variables
	cfg.Treasury.Address = os.ExpandEnv(cfg.Treasury.Address)
	cfg.Treasury.Admin = os.ExpandEnv(cfg.Treasury.Admin)
	for i, c := range cfg.Treasury.Chairmen {
		cfg.Treasury.Chairmen[i] = os.ExpandEnv(c)
	}
	cfg.Token.Address = os.ExpandEnv(cfg.Token.Address)

	return &cfg, nil
}

// loadEnvFiles loads .env and .env.local from the project root. Variables
// already set in the environment are kept.
func loadEnvFiles(projectRoot string) {
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				// Log warning but don't fail
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}
}
