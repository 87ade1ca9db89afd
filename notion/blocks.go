package notion

import (
	"context"
	"fmt"
)

// AppendBlockChildrenRequest appends blocks to a parent page or block. After
// positions the new blocks below an existing child instead of at the end.
type AppendBlockChildrenRequest struct {
	Children []BlockRequest `json:"children"`
	After    string         `json:"after,omitempty"`
}

// GetBlock retrieves a single block by ID.
func (c *Client) GetBlock(ctx context.Context, blockID string) (*Block, error) {
	var block Block
	if err := c.get(ctx, "/blocks/"+NormalizeID(blockID), nil, &block); err != nil {
		return nil, fmt.Errorf("failed to get block: %w", err)
	}
	return &block, nil
}

// GetBlockChildren retrieves one page of a block's direct children. Nested
// children require further calls on blocks with HasChildren set.
func (c *Client) GetBlockChildren(ctx context.Context, blockID string, opts *ListOptions) (*List[Block], error) {
	var blocks List[Block]
	if err := c.get(ctx, "/blocks/"+NormalizeID(blockID)+"/children", listQuery(opts), &blocks); err != nil {
		return nil, fmt.Errorf("failed to get block children: %w", err)
	}
	return &blocks, nil
}

// GetAllBlockChildren walks the full child list of a block.
func (c *Client) GetAllBlockChildren(ctx context.Context, blockID string) ([]Block, error) {
	return CollectAll(ctx, func(ctx context.Context, cursor string) (*List[Block], error) {
		return c.GetBlockChildren(ctx, blockID, &ListOptions{StartCursor: cursor, PageSize: MaxPageSize})
	})
}

// AppendBlockChildren appends up to 100 blocks to a parent. The request is
// validated locally before any round trip; the response carries the created
// blocks in request order.
func (c *Client) AppendBlockChildren(ctx context.Context, blockID string, req *AppendBlockChildrenRequest) (*List[Block], error) {
	if err := validateAppend(req.Children); err != nil {
		return nil, err
	}

	var blocks List[Block]
	if err := c.patch(ctx, "/blocks/"+NormalizeID(blockID)+"/children", req, &blocks); err != nil {
		return nil, fmt.Errorf("failed to append block children: %w", err)
	}
	return &blocks, nil
}

// UpdateBlock overwrites the variant payload of an existing block. The
// request's Type selects which payload is applied; children cannot be
// updated through this call.
func (c *Client) UpdateBlock(ctx context.Context, blockID string, req *BlockRequest) (*Block, error) {
	if err := validateBlock(req); err != nil {
		return nil, err
	}

	var block Block
	if err := c.patch(ctx, "/blocks/"+NormalizeID(blockID), req, &block); err != nil {
		return nil, fmt.Errorf("failed to update block: %w", err)
	}
	return &block, nil
}

// DeleteBlock moves a block to the trash and returns its final snapshot.
func (c *Client) DeleteBlock(ctx context.Context, blockID string) (*Block, error) {
	var block Block
	if err := c.delete(ctx, "/blocks/"+NormalizeID(blockID), &block); err != nil {
		return nil, fmt.Errorf("failed to delete block: %w", err)
	}
	return &block, nil
}
