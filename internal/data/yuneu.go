package data

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"netdiskbot/internal/biz/domain"
	"netdiskbot/internal/biz/repo"
	"netdiskbot/pkg/json"
)

// DefaultSearchURL is the network-disk aggregation search endpoint.
const DefaultSearchURL = "https://so.yuneu.com/open/search/disk"

// searchTimeout bounds every API call. There is no cancellation path
// beyond this and the caller's context; no retries.
const searchTimeout = 30 * time.Second

// searchAPIRepo implements the Search repository against the aggregation
// API over HTTP.
type searchAPIRepo struct {
	apiURL string
	client *http.Client
}

// NewSearchRepo creates a search repository for the given endpoint.
func NewSearchRepo(apiURL string) repo.SearchRepo {
	if apiURL == "" {
		apiURL = DefaultSearchURL
	}
	transport := &http.Transport{
		ForceAttemptHTTP2:   true,
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 5,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	}
	return &searchAPIRepo{
		apiURL: apiURL,
		client: &http.Client{Transport: transport, Timeout: searchTimeout},
	}
}

// searchRequest is the API request body.
type searchRequest struct {
	Q     string `json:"q"`
	Page  int    `json:"page"`
	Size  int    `json:"size"`
	Time  string `json:"time"`
	Type  string `json:"type"`
	Exact bool   `json:"exact"`
}

// wireResponse tolerates both response shapes the upstream is known to
// produce. Nothing outside this file sees these field names.
type wireResponse struct {
	Success *bool      `json:"success"`
	Status  string     `json:"status"`
	Total   *int       `json:"total"`
	Data    []wireItem `json:"data"`
	Results []wireItem `json:"results"`
}

// wireItem carries both alternate key names per field. Values are decoded
// as any because the upstream mixes strings and numbers.
type wireItem struct {
	Title      any `json:"title"`
	Name       any `json:"name"`
	Size       any `json:"size"`
	Filesize   any `json:"filesize"`
	Source     any `json:"source"`
	Platform   any `json:"platform"`
	Link       any `json:"link"`
	URL        any `json:"url"`
	UpdateTime any `json:"update_time"`
	CreatedAt  any `json:"created_at"`
}

// Search issues one POST to the aggregation API and adapts the response.
func (r *searchAPIRepo) Search(ctx context.Context, params *domain.SearchParams, token string) (*domain.SearchResponse, error) {
	body, err := json.Marshal(searchRequest{
		Q:     params.Query,
		Page:  params.Page,
		Size:  params.Size,
		Time:  params.Time,
		Type:  params.Type,
		Exact: params.Exact,
	})
	if err != nil {
		return nil, fmt.Errorf("encode search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read search response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search API status %d: %s", resp.StatusCode, truncate(string(raw), 200))
	}

	var wire wireResponse
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	return adaptResponse(&wire), nil
}

// adaptResponse maps either upstream shape onto the canonical response.
func adaptResponse(wire *wireResponse) *domain.SearchResponse {
	ok := wire.Status == "ok"
	if wire.Success != nil {
		ok = *wire.Success
	}

	items := wire.Data
	if items == nil {
		items = wire.Results
	}

	out := &domain.SearchResponse{OK: ok, Items: make([]domain.SearchItem, 0, len(items))}
	for _, it := range items {
		out.Items = append(out.Items, domain.SearchItem{
			Title:      pickString(it.Title, it.Name),
			Size:       pickString(it.Size, it.Filesize),
			Source:     pickString(it.Source, it.Platform),
			Link:       pickString(it.Link, it.URL),
			UpdateTime: pickString(it.UpdateTime, it.CreatedAt),
		})
	}

	if wire.Total != nil {
		out.Total = *wire.Total
	} else {
		out.Total = len(out.Items)
	}
	return out
}

// pickString returns the first non-empty value, rendered as text.
func pickString(vals ...any) string {
	for _, v := range vals {
		if s := asString(v); s != "" {
			return s
		}
	}
	return ""
}

func asString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
