package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"netdiskbot/internal/biz/domain"
)

func TestConfigRepo_FirstRunWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "config.json")
	r := NewConfigRepo(path)

	cfg, err := r.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)

	// defaults were persisted
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"max_results"`)
}

func TestConfigRepo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	r := NewConfigRepo(path)

	cfg := &domain.Config{
		Token:           "tok",
		MaxResults:      25,
		RequestInterval: 5,
		EnabledGroups:   []string{"g1", "g2"},
		AdminUsers:      []string{"u1"},
	}
	require.NoError(t, r.Save(cfg))

	got, err := r.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestConfigRepo_MalformedFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	cfg, err := NewConfigRepo(path).Load()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestConfigRepo_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"token":"tok"}`), 0600))

	cfg, err := NewConfigRepo(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "tok", cfg.Token)
	assert.Equal(t, 10, cfg.MaxResults)
	assert.Equal(t, 3, cfg.RequestInterval)
}
