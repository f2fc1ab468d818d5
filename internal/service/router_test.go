package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"netdiskbot/internal/biz/domain"
	"netdiskbot/internal/biz/usecase"
)

// Mock implementations

type mockConfigRepo struct {
	cfg *domain.Config
}

func (m *mockConfigRepo) Load() (*domain.Config, error) {
	if m.cfg == nil {
		m.cfg = domain.DefaultConfig()
	}
	return m.cfg.Clone(), nil
}

func (m *mockConfigRepo) Save(cfg *domain.Config) error {
	m.cfg = cfg.Clone()
	return nil
}

type mockSearchRepo struct {
	resp   *domain.SearchResponse
	calls  int
	panics bool
}

func (m *mockSearchRepo) Search(ctx context.Context, params *domain.SearchParams, token string) (*domain.SearchResponse, error) {
	if m.panics {
		panic("search exploded")
	}
	m.calls++
	return m.resp, nil
}

type mockStatsRepo struct {
	searches int64
}

func (m *mockStatsRepo) IncrSearch(ctx context.Context) error {
	m.searches++
	return nil
}

func (m *mockStatsRepo) TotalSearches(ctx context.Context) (int64, error) {
	return m.searches, nil
}

func (m *mockStatsRepo) Close() error { return nil }

type fakeEvent struct {
	text   string
	sender string
	group  string
}

func (e fakeEvent) MessageText() string { return e.text }
func (e fakeEvent) SenderID() string    { return e.sender }
func (e fakeEvent) GroupID() string     { return e.group }

func newTestRouter(t *testing.T, cfg *domain.Config, search *mockSearchRepo) (*Router, *mockStatsRepo) {
	t.Helper()
	configUC, err := usecase.NewConfigUsecase(&mockConfigRepo{cfg: cfg})
	require.NoError(t, err)
	stats := &mockStatsRepo{}
	router := NewRouter(
		configUC,
		usecase.NewGuard(configUC),
		usecase.NewRateLimiter(),
		usecase.NewSearchUsecase(search, stats),
		stats,
	)
	return router, stats
}

func configuredBot() *domain.Config {
	cfg := domain.DefaultConfig()
	cfg.Token = "tok"
	cfg.AdminUsers = []string{"admin-1"}
	return cfg
}

func TestRouter_IgnoresUnrelatedMessages(t *testing.T) {
	router, _ := newTestRouter(t, configuredBot(), &mockSearchRepo{})

	for _, text := range []string{"hello", "search foo", "/其他命令", ""} {
		res := router.Handle(context.Background(), fakeEvent{text: text, sender: "u1"})
		assert.False(t, res.Handled, "text %q should not be handled", text)
		assert.Empty(t, res.Message)
	}
}

func TestRouter_ConfigRequiresAdmin(t *testing.T) {
	router, _ := newTestRouter(t, configuredBot(), &mockSearchRepo{})

	res := router.Handle(context.Background(), fakeEvent{text: "/网盘配置", sender: "u1"})
	assert.True(t, res.Handled)
	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "仅管理员")

	res = router.Handle(context.Background(), fakeEvent{text: "/netconfig", sender: "admin-1"})
	assert.True(t, res.Handled)
	assert.True(t, res.Success)
	assert.Contains(t, res.Message, "网盘搜索配置")
	assert.Equal(t, domain.PluginID, res.PluginID)
}

func TestRouter_ConfigWorksWithoutToken(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.AdminUsers = []string{"admin-1"}
	router, _ := newTestRouter(t, cfg, &mockSearchRepo{})

	res := router.Handle(context.Background(), fakeEvent{text: "/网盘配置 token tok", sender: "admin-1"})
	assert.True(t, res.Success)

	// and the token is live for subsequent searches
	res = router.Handle(context.Background(), fakeEvent{text: "/网盘帮助", sender: "admin-1"})
	assert.True(t, res.Success)
}

func TestRouter_SearchNeedsToken(t *testing.T) {
	router, _ := newTestRouter(t, nil, &mockSearchRepo{}) // defaults: no token

	res := router.Handle(context.Background(), fakeEvent{text: "/搜索 foo", sender: "u1"})
	assert.True(t, res.Handled)
	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "Token")
}

func TestRouter_PermissionDenied(t *testing.T) {
	cfg := configuredBot()
	cfg.EnabledGroups = []string{"g1"}
	router, _ := newTestRouter(t, cfg, &mockSearchRepo{})

	res := router.Handle(context.Background(), fakeEvent{text: "/搜索 foo", sender: "u1", group: "g2"})
	assert.True(t, res.Handled)
	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "权限")
}

func TestRouter_RateLimited(t *testing.T) {
	search := &mockSearchRepo{resp: &domain.SearchResponse{OK: true}}
	router, _ := newTestRouter(t, configuredBot(), search)

	res := router.Handle(context.Background(), fakeEvent{text: "/搜索 foo", sender: "u1"})
	assert.True(t, res.Success)

	res = router.Handle(context.Background(), fakeEvent{text: "/搜索 foo", sender: "u1"})
	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "频繁")
	assert.Equal(t, 1, search.calls)

	// other users are unaffected
	res = router.Handle(context.Background(), fakeEvent{text: "/搜索 foo", sender: "u2"})
	assert.True(t, res.Success)
}

func TestRouter_Help(t *testing.T) {
	router, stats := newTestRouter(t, configuredBot(), &mockSearchRepo{})
	stats.searches = 7

	res := router.Handle(context.Background(), fakeEvent{text: "/nethelp", sender: "u1"})
	assert.True(t, res.Handled)
	assert.True(t, res.Success)
	assert.Contains(t, res.Message, "网盘搜索帮助")
	assert.Contains(t, res.Message, "总搜索次数：7")
}

func TestRouter_SearchFlow(t *testing.T) {
	search := &mockSearchRepo{resp: &domain.SearchResponse{
		OK:    true,
		Total: 1,
		Items: []domain.SearchItem{{Title: "文件", Size: "1GB", Source: "BDY"}},
	}}
	router, stats := newTestRouter(t, configuredBot(), search)

	res := router.Handle(context.Background(), fakeEvent{text: "/搜索 foo", sender: "u1"})
	assert.True(t, res.Handled)
	assert.True(t, res.Success)
	assert.Contains(t, res.Message, "文件")
	assert.Equal(t, int64(1), stats.searches)
}

func TestRouter_PanicRecovered(t *testing.T) {
	router, _ := newTestRouter(t, configuredBot(), &mockSearchRepo{panics: true})

	res := router.Handle(context.Background(), fakeEvent{text: "/搜索 foo", sender: "u1"})
	assert.True(t, res.Handled)
	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "出错")
}
