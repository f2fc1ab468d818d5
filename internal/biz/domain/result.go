package domain

// SearchItem is one canonical search hit. The data layer adapts whatever
// field names the upstream API uses onto this record; empty fields mean
// the upstream did not provide the value.
type SearchItem struct {
	Title      string
	Size       string
	Source     string
	Link       string
	UpdateTime string
}

// SearchResponse is the canonical outcome of one API call. OK mirrors the
// upstream success flag; a response can be OK with zero items.
type SearchResponse struct {
	OK    bool
	Total int
	Items []SearchItem
}
