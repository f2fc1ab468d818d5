package usecase

import (
	"fmt"
	"strings"

	"netdiskbot/internal/biz/domain"
)

// Human-readable filter descriptions for the result header.
var timeDescriptions = map[string]string{
	"week":        "一周内",
	"month":       "一个月内",
	"three_month": "三个月内",
	"year":        "一年内",
}

var typeDescriptions = map[string]string{
	"BDY":    "百度网盘",
	"ALY":    "阿里云盘",
	"QUARK":  "夸克网盘",
	"XUNLEI": "迅雷云盘",
}

const (
	msgRequestFailed = "❌ 搜索请求失败"
	msgNotFound      = "📭 未找到相关资源，请尝试其他关键词"
)

// FormatResults renders one canonical search response as the reply text.
// A failed response and an empty result set produce distinct messages.
func FormatResults(resp *domain.SearchResponse, params *domain.SearchParams, maxResults int) string {
	if resp == nil || !resp.OK {
		return msgRequestFailed
	}
	if len(resp.Items) == 0 {
		return msgNotFound
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🔍 搜索「%s」\n", params.Query)
	fmt.Fprintf(&b, "📊 共找到 %d 个结果，显示第 %d 页\n", resp.Total, params.Page)

	if params.Time != "" {
		desc := timeDescriptions[params.Time]
		if desc == "" {
			desc = params.Time
		}
		fmt.Fprintf(&b, "📅 时间范围：%s\n", desc)
	}
	if params.Type != "" {
		desc := typeDescriptions[params.Type]
		if desc == "" {
			desc = params.Type
		}
		fmt.Fprintf(&b, "💾 资源类型：%s\n", desc)
	}

	b.WriteString("\n" + strings.Repeat("=", 30) + "\n\n")

	items := resp.Items
	if len(items) > maxResults {
		items = items[:maxResults]
	}
	for i, item := range items {
		fmt.Fprintf(&b, "📄 %d. %s\n", i+1, orDefault(item.Title, "未知文件"))
		fmt.Fprintf(&b, "💾 大小：%s\n", orDefault(item.Size, "未知大小"))
		fmt.Fprintf(&b, "🔗 来源：%s\n", orDefault(item.Source, "未知来源"))
		if item.UpdateTime != "" {
			fmt.Fprintf(&b, "⏰ 更新：%s\n", item.UpdateTime)
		}
		if item.Link != "" {
			fmt.Fprintf(&b, "🌐 链接：%s\n", item.Link)
		}
		b.WriteString("\n")
	}

	if resp.Total > params.Page*params.Size {
		fmt.Fprintf(&b, "📄 查看下一页：%s", params.NextPageCommand())
	}

	return b.String()
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
