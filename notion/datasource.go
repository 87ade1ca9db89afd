package notion

import (
	"context"
	"fmt"
	"time"
)

// DataSource represents one tabular data source of a database, carrying the
// property schema its pages are written against.
type DataSource struct {
	Object         string                    `json:"object"`
	ID             string                    `json:"id"`
	CreatedTime    time.Time                 `json:"created_time"`
	LastEditedTime time.Time                 `json:"last_edited_time"`
	Title          []RichText                `json:"title,omitempty"`
	Description    []RichText                `json:"description,omitempty"`
	Icon           *Icon                     `json:"icon,omitempty"`
	Parent         Parent                    `json:"parent"`
	Properties     map[string]PropertySchema `json:"properties"`
	Archived       bool                      `json:"archived"`
	InTrash        bool                      `json:"in_trash"`
	URL            string                    `json:"url,omitempty"`
}

// TitleText returns the data source title as plain text.
func (d *DataSource) TitleText() string {
	return PlainText(d.Title)
}

// CreateDataSourceRequest adds a data source to an existing database.
type CreateDataSourceRequest struct {
	Parent     Parent                    `json:"parent"`
	Title      []RichText                `json:"title,omitempty"`
	Properties map[string]PropertySchema `json:"properties"`
}

// UpdateDataSourceRequest patches a data source's title or schema. Setting a
// property to an empty schema removes the column; renaming keeps the ID.
type UpdateDataSourceRequest struct {
	Title      []RichText                `json:"title,omitempty"`
	Properties map[string]PropertySchema `json:"properties,omitempty"`
	Archived   *bool                     `json:"archived,omitempty"`
	InTrash    *bool                     `json:"in_trash,omitempty"`
}

// QueryRequest queries a data source. Filter and Sorts are optional; cursor
// fields page through large result sets.
type QueryRequest struct {
	Filter           *Filter  `json:"filter,omitempty"`
	Sorts            []Sort   `json:"sorts,omitempty"`
	StartCursor      string   `json:"start_cursor,omitempty"`
	PageSize         int      `json:"page_size,omitempty"`
	FilterProperties []string `json:"filter_properties,omitempty"`
	Archived         *bool    `json:"archived,omitempty"`
	InTrash          *bool    `json:"in_trash,omitempty"`
}

// GetDataSource retrieves a data source by ID.
func (c *Client) GetDataSource(ctx context.Context, dataSourceID string) (*DataSource, error) {
	var ds DataSource
	if err := c.get(ctx, "/data_sources/"+NormalizeID(dataSourceID), nil, &ds); err != nil {
		return nil, fmt.Errorf("failed to get data source: %w", err)
	}
	return &ds, nil
}

// CreateDataSource adds a data source to a database. The schema is validated
// locally before any round trip.
func (c *Client) CreateDataSource(ctx context.Context, req *CreateDataSourceRequest) (*DataSource, error) {
	if err := validateSchema(req.Properties); err != nil {
		return nil, err
	}

	var ds DataSource
	if err := c.post(ctx, "/data_sources", req, &ds); err != nil {
		return nil, fmt.Errorf("failed to create data source: %w", err)
	}
	return &ds, nil
}

// UpdateDataSource patches a data source's title or schema.
func (c *Client) UpdateDataSource(ctx context.Context, dataSourceID string, req *UpdateDataSourceRequest) (*DataSource, error) {
	if err := validateSchema(req.Properties); err != nil {
		return nil, err
	}

	var ds DataSource
	if err := c.patch(ctx, "/data_sources/"+NormalizeID(dataSourceID), req, &ds); err != nil {
		return nil, fmt.Errorf("failed to update data source: %w", err)
	}
	return &ds, nil
}

// QueryDataSource retrieves one page of pages matching the query.
func (c *Client) QueryDataSource(ctx context.Context, dataSourceID string, req *QueryRequest) (*List[Page], error) {
	if req == nil {
		req = &QueryRequest{}
	}
	if req.PageSize > MaxPageSize {
		req.PageSize = MaxPageSize
	}

	var pages List[Page]
	if err := c.post(ctx, "/data_sources/"+NormalizeID(dataSourceID)+"/query", req, &pages); err != nil {
		return nil, fmt.Errorf("failed to query data source: %w", err)
	}
	return &pages, nil
}

// QueryAll walks the full query result set. The filter and sorts apply to
// every page fetch; cursor fields in req are ignored.
func (c *Client) QueryAll(ctx context.Context, dataSourceID string, req *QueryRequest) ([]Page, error) {
	return CollectAll(ctx, func(ctx context.Context, cursor string) (*List[Page], error) {
		page := QueryRequest{}
		if req != nil {
			page = *req
		}
		page.StartCursor = cursor
		page.PageSize = MaxPageSize
		return c.QueryDataSource(ctx, dataSourceID, &page)
	})
}
