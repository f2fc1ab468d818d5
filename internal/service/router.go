package service

import (
	"context"
	"log"
	"strings"
	"time"

	"netdiskbot/internal/biz/domain"
	"netdiskbot/internal/biz/repo"
	"netdiskbot/internal/biz/usecase"
)

// Command prefixes, both languages.
var (
	searchPrefixes = []string{"/搜索", "/search"}
	helpPrefixes   = []string{"/网盘帮助", "/nethelp"}
	configPrefixes = []string{"/网盘配置", "/netconfig"}
)

const (
	msgAdminOnly    = "❌ 仅管理员可以使用配置功能"
	msgTokenMissing = "❌ 未配置API Token，请联系管理员配置"
	msgNoPermission = "❌ 您没有权限使用此功能"
	msgRateLimited  = "⏰ 请求过于频繁，请稍后再试"
	msgInternal     = "❌ 机器人运行出错，请稍后再试"
)

// Router dispatches inbound events to the config, help and search
// handlers. It is the bot's single entry point: every failure along the
// way becomes a user-facing message, nothing propagates to the host.
type Router struct {
	configUC  *usecase.ConfigUsecase
	guard     *usecase.Guard
	limiter   *usecase.RateLimiter
	searchUC  *usecase.SearchUsecase
	statsRepo repo.StatsRepo
}

// NewRouter creates a new command router.
func NewRouter(
	configUC *usecase.ConfigUsecase,
	guard *usecase.Guard,
	limiter *usecase.RateLimiter,
	searchUC *usecase.SearchUsecase,
	statsRepo repo.StatsRepo,
) *Router {
	return &Router{
		configUC:  configUC,
		guard:     guard,
		limiter:   limiter,
		searchUC:  searchUC,
		statsRepo: statsRepo,
	}
}

// Descriptor returns the bot metadata.
func (r *Router) Descriptor() domain.Descriptor {
	return domain.Descriptor{
		Name:        domain.PluginID,
		Author:      "netdiskbot",
		Version:     "1.0.0",
		Description: "网盘资源搜索机器人，支持多平台网盘资源搜索",
		Usage:       "/搜索 关键词 [页码] [参数] | /网盘帮助 | /网盘配置",
	}
}

// Handle processes one inbound event. Events without a recognized command
// prefix are not handled and produce no reply.
func (r *Router) Handle(ctx context.Context, ev domain.Event) (res domain.Result) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("[ERROR] panic while handling command: %v", rec)
			res = domain.HandledResult(false, msgInternal)
		}
	}()

	text := strings.TrimSpace(ev.MessageText())

	switch {
	case hasAnyPrefix(text, configPrefixes):
		return r.handleConfig(ev, text)
	case hasAnyPrefix(text, helpPrefixes) || hasAnyPrefix(text, searchPrefixes):
		return r.handleCommand(ctx, ev, text)
	default:
		return domain.NotHandled()
	}
}

// handleConfig runs the admin-gated config commands. The config commands
// stay available with an unset token, that is how the token gets set.
func (r *Router) handleConfig(ev domain.Event, text string) domain.Result {
	if !r.guard.IsAdmin(ev) {
		return domain.HandledResult(false, msgAdminOnly)
	}
	ok, msg := r.configUC.HandleCommand(stripPrefixes(text, configPrefixes))
	return domain.HandledResult(ok, msg)
}

// handleCommand runs the help and search commands behind the token,
// permission and rate-limit gates, in that order.
func (r *Router) handleCommand(ctx context.Context, ev domain.Event, text string) domain.Result {
	cfg := r.configUC.Snapshot()

	if cfg.Token == "" {
		return domain.HandledResult(false, msgTokenMissing)
	}
	if !r.guard.CheckPermission(ev) {
		return domain.HandledResult(false, msgNoPermission)
	}
	interval := time.Duration(cfg.RequestInterval) * time.Second
	if !r.limiter.Allow(ev.SenderID(), interval) {
		return domain.HandledResult(false, msgRateLimited)
	}

	if hasAnyPrefix(text, helpPrefixes) {
		total, err := r.statsRepo.TotalSearches(ctx)
		if err != nil {
			log.Printf("[WARN] failed to read search stats: %v", err)
		}
		return domain.HandledResult(true, usecase.HelpText(total))
	}

	msg, ok := r.searchUC.Execute(ctx, text, cfg)
	return domain.HandledResult(ok, msg)
}

func hasAnyPrefix(text string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(text, p) {
			return true
		}
	}
	return false
}

func stripPrefixes(text string, prefixes []string) string {
	for _, p := range prefixes {
		text = strings.ReplaceAll(text, p, "")
	}
	return strings.TrimSpace(text)
}
