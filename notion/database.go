package notion

import (
	"context"
	"fmt"
	"time"
)

// Database represents a Notion database: a titled container of one or more
// data sources.
type Database struct {
	Object         string          `json:"object"`
	ID             string          `json:"id"`
	CreatedTime    time.Time       `json:"created_time"`
	LastEditedTime time.Time       `json:"last_edited_time"`
	Title          []RichText      `json:"title"`
	Description    []RichText      `json:"description,omitempty"`
	Icon           *Icon           `json:"icon,omitempty"`
	Cover          *File           `json:"cover,omitempty"`
	Parent         Parent          `json:"parent"`
	DataSources    []DataSourceRef `json:"data_sources,omitempty"`
	URL            string          `json:"url,omitempty"`
	Archived       bool            `json:"archived"`
	InTrash        bool            `json:"in_trash"`
	IsInline       bool            `json:"is_inline,omitempty"`
}

// DataSourceRef identifies a data source belonging to a database.
type DataSourceRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// TitleText returns the database title as plain text.
func (d *Database) TitleText() string {
	return PlainText(d.Title)
}

// PrimaryDataSourceID returns the first data source ID, which is the only
// one for databases that predate multi-source support.
func (d *Database) PrimaryDataSourceID() string {
	if len(d.DataSources) == 0 {
		return ""
	}
	return d.DataSources[0].ID
}

// CreateDatabaseRequest creates a database with an initial data source
// schema.
type CreateDatabaseRequest struct {
	Parent            Parent                   `json:"parent"`
	Title             []RichText               `json:"title,omitempty"`
	Icon              *Icon                    `json:"icon,omitempty"`
	Cover             *File                    `json:"cover,omitempty"`
	InitialDataSource *InitialDataSource       `json:"initial_data_source,omitempty"`
}

// InitialDataSource is the schema of the data source created with a new
// database.
type InitialDataSource struct {
	Properties map[string]PropertySchema `json:"properties,omitempty"`
}

// UpdateDatabaseRequest patches database-level attributes. Schema changes go
// through UpdateDataSource.
type UpdateDatabaseRequest struct {
	Title    []RichText `json:"title,omitempty"`
	Icon     *Icon      `json:"icon,omitempty"`
	Cover    *File      `json:"cover,omitempty"`
	Archived *bool      `json:"archived,omitempty"`
	InTrash  *bool      `json:"in_trash,omitempty"`
}

// GetDatabase retrieves a database by ID.
func (c *Client) GetDatabase(ctx context.Context, databaseID string) (*Database, error) {
	var db Database
	if err := c.get(ctx, "/databases/"+NormalizeID(databaseID), nil, &db); err != nil {
		return nil, fmt.Errorf("failed to get database: %w", err)
	}
	return &db, nil
}

// CreateDatabase creates a database. The initial schema is validated locally
// before any round trip.
func (c *Client) CreateDatabase(ctx context.Context, req *CreateDatabaseRequest) (*Database, error) {
	if req.InitialDataSource != nil {
		if err := validateSchema(req.InitialDataSource.Properties); err != nil {
			return nil, err
		}
	}

	var db Database
	if err := c.post(ctx, "/databases", req, &db); err != nil {
		return nil, fmt.Errorf("failed to create database: %w", err)
	}
	return &db, nil
}

// UpdateDatabase patches a database's title, icon, cover, or archived state.
func (c *Client) UpdateDatabase(ctx context.Context, databaseID string, req *UpdateDatabaseRequest) (*Database, error) {
	var db Database
	if err := c.patch(ctx, "/databases/"+NormalizeID(databaseID), req, &db); err != nil {
		return nil, fmt.Errorf("failed to update database: %w", err)
	}
	return &db, nil
}
