package notion

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

// Page represents a Notion page: a read-only snapshot of server state.
// Properties is keyed by property name; whether each value's type matches
// the owning data source's schema is enforced only by the remote API.
type Page struct {
	Object         string                   `json:"object"`
	ID             string                   `json:"id"`
	CreatedTime    time.Time                `json:"created_time"`
	LastEditedTime time.Time                `json:"last_edited_time"`
	CreatedBy      *User                    `json:"created_by,omitempty"`
	LastEditedBy   *User                    `json:"last_edited_by,omitempty"`
	Cover          *File                    `json:"cover,omitempty"`
	Icon           *Icon                    `json:"icon,omitempty"`
	Parent         Parent                   `json:"parent"`
	Archived       bool                     `json:"archived"`
	InTrash        bool                     `json:"in_trash"`
	Properties     map[string]PropertyValue `json:"properties"`
	URL            string                   `json:"url"`
	PublicURL      *string                  `json:"public_url,omitempty"`
}

// Title extracts the page title from its title property.
func (p *Page) Title() string {
	for _, prop := range p.Properties {
		if prop.Type == PropertyTypeTitle {
			return PlainText(prop.Title)
		}
	}
	return ""
}

// GetPageOptions contains options for GetPage.
type GetPageOptions struct {
	// FilterProperties limits the returned properties to the given property
	// IDs.
	FilterProperties []string
}

// CreatePageRequest creates a page under a page, database, or data source
// parent. Children seed the page content; Properties must match the parent
// schema for data source parents.
type CreatePageRequest struct {
	Parent     Parent                   `json:"parent"`
	Properties map[string]PropertyValue `json:"properties"`
	Children   []BlockRequest           `json:"children,omitempty"`
	Icon       *Icon                    `json:"icon,omitempty"`
	Cover      *File                    `json:"cover,omitempty"`
}

// UpdatePageRequest patches a page. Only set fields are sent; archiving and
// restoring go through the Archived pointer.
type UpdatePageRequest struct {
	Properties map[string]PropertyValue `json:"properties,omitempty"`
	Icon       *Icon                    `json:"icon,omitempty"`
	Cover      *File                    `json:"cover,omitempty"`
	Archived   *bool                    `json:"archived,omitempty"`
	InTrash    *bool                    `json:"in_trash,omitempty"`
}

// GetPage retrieves a page by ID.
func (c *Client) GetPage(ctx context.Context, pageID string, opts *GetPageOptions) (*Page, error) {
	var query url.Values
	if opts != nil && len(opts.FilterProperties) > 0 {
		query = url.Values{"filter_properties": opts.FilterProperties}
	}

	var page Page
	if err := c.get(ctx, "/pages/"+NormalizeID(pageID), query, &page); err != nil {
		return nil, fmt.Errorf("failed to get page: %w", err)
	}
	return &page, nil
}

// CreatePage creates a page. The request is validated locally before any
// round trip.
func (c *Client) CreatePage(ctx context.Context, req *CreatePageRequest) (*Page, error) {
	if err := validateProperties(req.Properties); err != nil {
		return nil, err
	}
	if err := validateAppend(req.Children); err != nil {
		return nil, err
	}

	var page Page
	if err := c.post(ctx, "/pages", req, &page); err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}
	return &page, nil
}

// UpdatePage patches a page's properties, icon, cover, or archived state.
func (c *Client) UpdatePage(ctx context.Context, pageID string, req *UpdatePageRequest) (*Page, error) {
	if err := validateProperties(req.Properties); err != nil {
		return nil, err
	}

	var page Page
	if err := c.patch(ctx, "/pages/"+NormalizeID(pageID), req, &page); err != nil {
		return nil, fmt.Errorf("failed to update page: %w", err)
	}
	return &page, nil
}

// ArchivePage moves a page to the trash.
func (c *Client) ArchivePage(ctx context.Context, pageID string) (*Page, error) {
	archived := true
	return c.UpdatePage(ctx, pageID, &UpdatePageRequest{Archived: &archived})
}

// RestorePage restores a page from the trash.
func (c *Client) RestorePage(ctx context.Context, pageID string) (*Page, error) {
	archived := false
	return c.UpdatePage(ctx, pageID, &UpdatePageRequest{Archived: &archived})
}

// PropertyItem is one element of a paginated page property. Rollups and
// relations with many entries page through this shape.
type PropertyItem struct {
	Object string `json:"object"`
	PropertyValue
}

// GetPageProperty retrieves a single page property by property ID. Simple
// values return a one-element list; paginated properties follow the cursor.
func (c *Client) GetPageProperty(ctx context.Context, pageID, propertyID string, opts *ListOptions) (*List[PropertyItem], error) {
	path := "/pages/" + NormalizeID(pageID) + "/properties/" + propertyID
	var items List[PropertyItem]
	if err := c.get(ctx, path, listQuery(opts), &items); err != nil {
		return nil, fmt.Errorf("failed to get page property: %w", err)
	}
	return &items, nil
}
