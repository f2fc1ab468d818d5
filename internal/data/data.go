package data

import (
	"netdiskbot/internal/biz/repo"
)

// Repositories contains all repositories.
type Repositories struct {
	Config repo.ConfigRepo
	Search repo.SearchRepo
	Stats  repo.StatsRepo
}

// NewRepositories creates all repositories.
func NewRepositories(configPath, statsDBPath, searchAPIURL string) (*Repositories, error) {
	statsRepo, err := NewStatsRepo(statsDBPath)
	if err != nil {
		return nil, err
	}

	return &Repositories{
		Config: NewConfigRepo(configPath),
		Search: NewSearchRepo(searchAPIURL),
		Stats:  statsRepo,
	}, nil
}
