package data

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"netdiskbot/internal/biz/domain"
	"netdiskbot/internal/biz/repo"
	"netdiskbot/pkg/json"
)

// configFileRepo implements the Config repository on a JSON file.
type configFileRepo struct {
	path string
}

// NewConfigRepo creates a config repository backed by the file at path.
func NewConfigRepo(path string) repo.ConfigRepo {
	return &configFileRepo{path: path}
}

// Load reads the config file. On first run the defaults are written back;
// a malformed file falls back to defaults without failing the caller.
func (r *configFileRepo) Load() (*domain.Config, error) {
	raw, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		cfg := domain.DefaultConfig()
		if err := r.Save(cfg); err != nil {
			log.Printf("[WARN] failed to write default config: %v", err)
		}
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := domain.DefaultConfig()
	if err := json.Unmarshal(raw, cfg); err != nil {
		log.Printf("[WARN] malformed config file %s, using defaults: %v", r.path, err)
		return domain.DefaultConfig(), nil
	}
	return cfg, nil
}

// Save overwrites the config file, creating its directory if needed.
func (r *configFileRepo) Save(cfg *domain.Config) error {
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	raw, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(r.path, raw, 0600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
