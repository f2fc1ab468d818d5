package usecase

import (
	"context"
	"log"

	"netdiskbot/internal/biz/domain"
	"netdiskbot/internal/biz/repo"
)

const (
	msgBadSearchFormat = "❌ 搜索格式错误！\n请使用：/搜索 关键词 [页码] [参数]\n发送 /网盘帮助 查看详细用法"
	msgSearchFailed    = "❌ 搜索失败，请检查网络或稍后重试"
)

// SearchUsecase runs one search command end to end: parse, call the API,
// format the reply, record the stats.
type SearchUsecase struct {
	searchRepo repo.SearchRepo
	statsRepo  repo.StatsRepo
}

// NewSearchUsecase creates a new search usecase.
func NewSearchUsecase(searchRepo repo.SearchRepo, statsRepo repo.StatsRepo) *SearchUsecase {
	return &SearchUsecase{searchRepo: searchRepo, statsRepo: statsRepo}
}

// Execute handles one search command. text is the full command including
// the prefix. Every failure mode comes back as a user-facing message; the
// flag reports whether the search reached the API and got a response.
func (uc *SearchUsecase) Execute(ctx context.Context, text string, cfg *domain.Config) (string, bool) {
	params := domain.ParseSearchCommand(text, cfg.MaxResults)
	if params == nil {
		return msgBadSearchFormat, false
	}

	resp, err := uc.searchRepo.Search(ctx, params, cfg.Token)
	if err != nil {
		// Timeout, non-200 and transport failures all end up here; the
		// user sees one generic message.
		log.Printf("[WARN] search %q failed: %v", params.Query, err)
		return msgSearchFailed, false
	}

	if err := uc.statsRepo.IncrSearch(ctx); err != nil {
		log.Printf("[WARN] failed to record search stats: %v", err)
	}

	return FormatResults(resp, params, cfg.MaxResults), true
}
