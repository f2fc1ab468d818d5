package repo

import (
	"context"

	"netdiskbot/internal/biz/domain"
)

// SearchRepo is the remote search API interface.
type SearchRepo interface {
	// Search issues one search call and adapts the response onto the
	// canonical shape. Any HTTP status other than 200, a timeout, or a
	// transport failure comes back as an error; no retries.
	Search(ctx context.Context, params *domain.SearchParams, token string) (*domain.SearchResponse, error)
}
