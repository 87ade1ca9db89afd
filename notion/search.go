package notion

import (
	"context"
	"encoding/json"
	"fmt"
)

// SearchRequest searches all pages and data sources shared with the
// integration. Query matches against titles; an empty query returns
// everything.
type SearchRequest struct {
	Query       string        `json:"query,omitempty"`
	Sort        *SearchSort   `json:"sort,omitempty"`
	Filter      *SearchFilter `json:"filter,omitempty"`
	StartCursor string        `json:"start_cursor,omitempty"`
	PageSize    int           `json:"page_size,omitempty"`
}

// SearchSort orders search results by a timestamp.
type SearchSort struct {
	Direction SortDirection `json:"direction"`
	Timestamp string        `json:"timestamp"`
}

// SearchFilter restricts search results to one object type: "page" or
// "data_source".
type SearchFilter struct {
	Value    string `json:"value"`
	Property string `json:"property"`
}

// SearchPages returns a filter restricting results to pages.
func SearchPages() *SearchFilter {
	return &SearchFilter{Value: "page", Property: "object"}
}

// SearchDataSources returns a filter restricting results to data sources.
func SearchDataSources() *SearchFilter {
	return &SearchFilter{Value: "data_source", Property: "object"}
}

// SearchResult is one search hit: a page or a data source, depending on
// Object.
type SearchResult struct {
	Object     string
	Page       *Page
	DataSource *DataSource
}

// UnmarshalJSON dispatches on the object discriminator.
func (r *SearchResult) UnmarshalJSON(data []byte) error {
	var probe struct {
		Object string `json:"object"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	r.Object = probe.Object

	switch probe.Object {
	case "page":
		r.Page = &Page{}
		return json.Unmarshal(data, r.Page)
	case "data_source", "database":
		r.DataSource = &DataSource{}
		return json.Unmarshal(data, r.DataSource)
	default:
		// Unknown object types are kept as bare hits for forward
		// compatibility.
		return nil
	}
}

// MarshalJSON writes the hit back out in its wire shape.
func (r SearchResult) MarshalJSON() ([]byte, error) {
	switch {
	case r.Page != nil:
		return json.Marshal(r.Page)
	case r.DataSource != nil:
		return json.Marshal(r.DataSource)
	default:
		return json.Marshal(struct {
			Object string `json:"object"`
		}{Object: r.Object})
	}
}

// Title returns the hit's title regardless of variant.
func (r *SearchResult) Title() string {
	switch {
	case r.Page != nil:
		return r.Page.Title()
	case r.DataSource != nil:
		return r.DataSource.TitleText()
	default:
		return ""
	}
}

// Search retrieves one page of search results.
func (c *Client) Search(ctx context.Context, req *SearchRequest) (*List[SearchResult], error) {
	if req == nil {
		req = &SearchRequest{}
	}
	if req.PageSize > MaxPageSize {
		req.PageSize = MaxPageSize
	}

	var results List[SearchResult]
	if err := c.post(ctx, "/search", req, &results); err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}
	return &results, nil
}

// SearchAll walks the full search result set for a query.
func (c *Client) SearchAll(ctx context.Context, req *SearchRequest) ([]SearchResult, error) {
	return CollectAll(ctx, func(ctx context.Context, cursor string) (*List[SearchResult], error) {
		page := SearchRequest{}
		if req != nil {
			page = *req
		}
		page.StartCursor = cursor
		page.PageSize = MaxPageSize
		return c.Search(ctx, &page)
	})
}
