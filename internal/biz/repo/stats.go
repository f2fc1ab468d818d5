package repo

import "context"

// StatsRepo is the usage statistics repository interface (SQLite).
type StatsRepo interface {
	// IncrSearch records one successful search.
	IncrSearch(ctx context.Context) error

	// TotalSearches returns the lifetime successful search count.
	TotalSearches(ctx context.Context) (int64, error)

	// Close closes the underlying database.
	Close() error
}
