package notion

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

// Comment represents a comment on a page or inline discussion.
type Comment struct {
	Object         string              `json:"object"`
	ID             string              `json:"id"`
	Parent         Parent              `json:"parent"`
	DiscussionID   string              `json:"discussion_id"`
	CreatedTime    time.Time           `json:"created_time"`
	LastEditedTime time.Time           `json:"last_edited_time"`
	CreatedBy      *User               `json:"created_by,omitempty"`
	RichText       []RichText          `json:"rich_text"`
	Attachments    []CommentAttachment `json:"attachments,omitempty"`
	DisplayName    *CommentDisplayName `json:"display_name,omitempty"`
}

// PlainText returns the comment body as plain text.
func (c *Comment) PlainText() string {
	return PlainText(c.RichText)
}

// CommentAttachment references an uploaded file attached to a comment.
type CommentAttachment struct {
	Category     string `json:"category,omitempty"`
	FileUploadID string `json:"file_upload_id,omitempty"`
}

// CommentDisplayName controls how the commenting integration is named.
type CommentDisplayName struct {
	Type     string  `json:"type"`
	Resolved *string `json:"resolved_name,omitempty"`
}

// CreateCommentRequest creates a comment. Exactly one of Parent or
// DiscussionID must be set: a parent starts a new discussion, a discussion
// ID replies to an existing one.
type CreateCommentRequest struct {
	Parent       *Parent             `json:"parent,omitempty"`
	DiscussionID string              `json:"discussion_id,omitempty"`
	RichText     []RichText          `json:"rich_text"`
	Attachments  []CommentAttachment `json:"attachments,omitempty"`
}

// CreateComment creates a comment. Attachment count and rich text runs are
// validated locally before any round trip.
func (c *Client) CreateComment(ctx context.Context, req *CreateCommentRequest) (*Comment, error) {
	if err := validateRichText(req.RichText); err != nil {
		return nil, err
	}
	if err := validateAttachments(req.Attachments); err != nil {
		return nil, err
	}

	var comment Comment
	if err := c.post(ctx, "/comments", req, &comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return &comment, nil
}

// ListComments retrieves one page of open comments on a page or block.
func (c *Client) ListComments(ctx context.Context, blockID string, opts *ListOptions) (*List[Comment], error) {
	query := listQuery(opts)
	if query == nil {
		query = url.Values{}
	}
	query.Set("block_id", NormalizeID(blockID))

	var comments List[Comment]
	if err := c.get(ctx, "/comments", query, &comments); err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return &comments, nil
}

// ListAllComments walks the full comment list of a page or block.
func (c *Client) ListAllComments(ctx context.Context, blockID string) ([]Comment, error) {
	return CollectAll(ctx, func(ctx context.Context, cursor string) (*List[Comment], error) {
		return c.ListComments(ctx, blockID, &ListOptions{StartCursor: cursor, PageSize: MaxPageSize})
	})
}
