package domain

import (
	"strconv"
	"strings"
)

// MaxPage caps the page argument of a search command.
const MaxPage = 50

// Search command prefixes, both languages.
var searchPrefixes = []string{"/搜索", "/search"}

// timeTags maps accepted time-range tokens to their canonical tag.
var timeTags = map[string]string{
	"week":        "week",
	"month":       "month",
	"three_month": "three_month",
	"year":        "year",
	"一周":          "week",
	"一月":          "month",
	"三月":          "three_month",
	"一年":          "year",
}

// typeTags maps accepted resource-type tokens to their canonical tag.
// English tokens are matched after uppercasing.
var typeTags = map[string]string{
	"BDY":    "BDY",
	"ALY":    "ALY",
	"QUARK":  "QUARK",
	"XUNLEI": "XUNLEI",
	"百度":     "BDY",
	"阿里":     "ALY",
	"夸克":     "QUARK",
	"迅雷":     "XUNLEI",
}

// exactTags are the tokens that turn on exact matching.
var exactTags = map[string]struct{}{
	"exact": {},
	"精确":    {},
	"准确":    {},
}

// SearchParams is one parsed search request. Built per command, never
// persisted.
type SearchParams struct {
	Query string
	Page  int
	Size  int
	Time  string
	Type  string
	Exact bool
}

// ParseSearchCommand parses a raw search command into SearchParams.
// The first token after the prefix is the query; the remaining tokens are
// classified independently of order, last match wins per category, and
// unrecognized tokens are ignored. Returns nil when no query is present.
func ParseSearchCommand(text string, size int) *SearchParams {
	content := text
	for _, p := range searchPrefixes {
		content = strings.ReplaceAll(content, p, "")
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil
	}

	parts := strings.Fields(content)
	params := &SearchParams{
		Query: parts[0],
		Page:  1,
		Size:  size,
	}

	for _, tok := range parts[1:] {
		lower := strings.ToLower(tok)
		switch {
		case isDigits(lower):
			page, err := strconv.Atoi(lower)
			if err != nil {
				continue
			}
			if page > MaxPage {
				page = MaxPage
			}
			if page < 1 {
				page = 1
			}
			params.Page = page
		case timeTags[lower] != "":
			params.Time = timeTags[lower]
		case typeTags[strings.ToUpper(tok)] != "":
			params.Type = typeTags[strings.ToUpper(tok)]
		default:
			if _, ok := exactTags[lower]; ok {
				params.Exact = true
			}
		}
	}

	return params
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// NextPageCommand rebuilds a ready-to-send search command for the page
// after p, carrying the same filters.
func (p *SearchParams) NextPageCommand() string {
	var b strings.Builder
	b.WriteString("/搜索 ")
	b.WriteString(p.Query)
	b.WriteString(" ")
	b.WriteString(strconv.Itoa(p.Page + 1))
	if p.Time != "" {
		b.WriteString(" ")
		b.WriteString(p.Time)
	}
	if p.Type != "" {
		b.WriteString(" ")
		b.WriteString(p.Type)
	}
	if p.Exact {
		b.WriteString(" exact")
	}
	return b.String()
}
