package data

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"netdiskbot/internal/biz/repo"

	_ "modernc.org/sqlite"
)

// statsRepo implements the Stats repository on SQLite. Counts are kept
// per day; queries themselves are never stored.
type statsRepo struct {
	db *sql.DB
}

// NewStatsRepo creates a stats repository backed by the database at dbPath.
func NewStatsRepo(dbPath string) (repo.StatsRepo, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS search_stats (
			day      TEXT PRIMARY KEY,
			searches INTEGER NOT NULL DEFAULT 0
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create stats table: %w", err)
	}

	return &statsRepo{db: db}, nil
}

// IncrSearch records one successful search under today's date.
func (r *statsRepo) IncrSearch(ctx context.Context) error {
	day := time.Now().Format("2006-01-02")
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO search_stats (day, searches) VALUES (?, 1)
		ON CONFLICT(day) DO UPDATE SET searches = searches + 1
	`, day)
	if err != nil {
		return fmt.Errorf("increment search count: %w", err)
	}
	return nil
}

// TotalSearches returns the lifetime search count.
func (r *statsRepo) TotalSearches(ctx context.Context) (int64, error) {
	row := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(searches), 0) FROM search_stats`)
	var total int64
	if err := row.Scan(&total); err != nil {
		return 0, fmt.Errorf("query search total: %w", err)
	}
	return total, nil
}

// Close closes the database connection.
func (r *statsRepo) Close() error {
	return r.db.Close()
}
