package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"netdiskbot/internal/biz/domain"
)

// mockConfigRepo keeps the config in memory and records saves.
type mockConfigRepo struct {
	cfg     *domain.Config
	saved   int
	saveErr error
}

func (m *mockConfigRepo) Load() (*domain.Config, error) {
	if m.cfg == nil {
		m.cfg = domain.DefaultConfig()
	}
	return m.cfg.Clone(), nil
}

func (m *mockConfigRepo) Save(cfg *domain.Config) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.cfg = cfg.Clone()
	m.saved++
	return nil
}

func newTestConfigUC(t *testing.T, cfg *domain.Config) (*ConfigUsecase, *mockConfigRepo) {
	t.Helper()
	repo := &mockConfigRepo{cfg: cfg}
	uc, err := NewConfigUsecase(repo)
	require.NoError(t, err)
	return uc, repo
}

func TestConfigUsecase_Summary(t *testing.T) {
	uc, _ := newTestConfigUC(t, nil)

	ok, msg := uc.HandleCommand("")
	assert.True(t, ok)
	assert.Contains(t, msg, "未配置")
	assert.Contains(t, msg, "最大结果数: 10")
	assert.Contains(t, msg, "请求间隔: 3秒")
}

func TestConfigUsecase_SetToken(t *testing.T) {
	uc, repo := newTestConfigUC(t, nil)

	ok, msg := uc.HandleCommand("token secret-123")
	assert.True(t, ok)
	assert.Contains(t, msg, "✅")
	assert.Equal(t, "secret-123", uc.Token())
	assert.Equal(t, 1, repo.saved)
	assert.Equal(t, "secret-123", repo.cfg.Token)
}

func TestConfigUsecase_MaxResultsRange(t *testing.T) {
	uc, repo := newTestConfigUC(t, nil)

	ok, _ := uc.HandleCommand("max_results 100")
	assert.False(t, ok)
	assert.Equal(t, 0, repo.saved)
	assert.Equal(t, 10, uc.Snapshot().MaxResults)

	ok, _ = uc.HandleCommand("max_results 25")
	assert.True(t, ok)
	assert.Equal(t, 25, uc.Snapshot().MaxResults)
	assert.Equal(t, 25, repo.cfg.MaxResults)

	ok, msg := uc.HandleCommand("max_results abc")
	assert.False(t, ok)
	assert.Contains(t, msg, "有效的数字")
}

func TestConfigUsecase_IntervalRange(t *testing.T) {
	uc, _ := newTestConfigUC(t, nil)

	ok, _ := uc.HandleCommand("interval 0")
	assert.False(t, ok)

	ok, _ = uc.HandleCommand("interval 61")
	assert.False(t, ok)

	ok, _ = uc.HandleCommand("interval 5")
	assert.True(t, ok)
	assert.Equal(t, 5, uc.Snapshot().RequestInterval)
}

func TestConfigUsecase_AddGroupAndAdmin(t *testing.T) {
	uc, repo := newTestConfigUC(t, nil)

	ok, _ := uc.HandleCommand("add_group g1")
	assert.True(t, ok)
	ok, msg := uc.HandleCommand("add_group g1")
	assert.False(t, ok)
	assert.Contains(t, msg, "已存在")
	assert.Equal(t, []string{"g1"}, uc.Snapshot().EnabledGroups)
	assert.Equal(t, 1, repo.saved)

	ok, _ = uc.HandleCommand("add_admin u1")
	assert.True(t, ok)
	ok, _ = uc.HandleCommand("add_admin u1")
	assert.False(t, ok)
	assert.Equal(t, []string{"u1"}, uc.Snapshot().AdminUsers)
}

func TestConfigUsecase_BadInput(t *testing.T) {
	uc, _ := newTestConfigUC(t, nil)

	ok, _ := uc.HandleCommand("token")
	assert.False(t, ok)

	ok, msg := uc.HandleCommand("bogus value")
	assert.False(t, ok)
	assert.Contains(t, msg, "未知配置项")
}

func TestConfigUsecase_SnapshotIsolated(t *testing.T) {
	uc, _ := newTestConfigUC(t, nil)

	snap := uc.Snapshot()
	snap.Token = "mutated"
	snap.EnabledGroups = append(snap.EnabledGroups, "g")

	assert.Empty(t, uc.Token())
	assert.Empty(t, uc.Snapshot().EnabledGroups)
}
