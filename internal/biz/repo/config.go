package repo

import (
	"netdiskbot/internal/biz/domain"
)

// ConfigRepo is the bot configuration repository interface.
// Responsible for the JSON config file on disk.
type ConfigRepo interface {
	// Load reads the config file. A missing file yields defaults, which
	// are written back; a malformed file yields defaults without erroring.
	Load() (*domain.Config, error)

	// Save overwrites the config file.
	Save(cfg *domain.Config) error
}
