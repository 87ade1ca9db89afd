package notion

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// UserType discriminates person and bot users.
type UserType string

const (
	UserTypePerson UserType = "person"
	UserTypeBot    UserType = "bot"
)

// User represents a Notion user: a person or an integration bot.
type User struct {
	Object    string   `json:"object,omitempty"`
	ID        string   `json:"id"`
	Type      UserType `json:"type,omitempty"`
	Name      string   `json:"name,omitempty"`
	AvatarURL *string  `json:"avatar_url,omitempty"`
	Person    *Person  `json:"person,omitempty"`
	Bot       *Bot     `json:"bot,omitempty"`
}

// Person holds person-specific fields.
type Person struct {
	Email string `json:"email,omitempty"`
}

// Bot holds bot-specific fields.
type Bot struct {
	Owner         *BotOwner `json:"owner,omitempty"`
	WorkspaceName string    `json:"workspace_name,omitempty"`
}

// BotOwner identifies who owns an integration bot.
type BotOwner struct {
	Type      string `json:"type"`
	Workspace bool   `json:"workspace,omitempty"`
	User      *User  `json:"user,omitempty"`
}

// GetUser retrieves a user by ID.
func (c *Client) GetUser(ctx context.Context, userID string) (*User, error) {
	var user User
	if err := c.get(ctx, "/users/"+NormalizeID(userID), nil, &user); err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// Me retrieves the bot user the token belongs to.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.get(ctx, "/users/me", nil, &user); err != nil {
		return nil, fmt.Errorf("failed to get bot user: %w", err)
	}
	return &user, nil
}

// ListUsers retrieves one page of workspace users.
func (c *Client) ListUsers(ctx context.Context, opts *ListOptions) (*List[User], error) {
	var users List[User]
	if err := c.get(ctx, "/users", listQuery(opts), &users); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return &users, nil
}

// ListAllUsers walks the full user list.
func (c *Client) ListAllUsers(ctx context.Context) ([]User, error) {
	return CollectAll(ctx, func(ctx context.Context, cursor string) (*List[User], error) {
		return c.ListUsers(ctx, &ListOptions{StartCursor: cursor, PageSize: MaxPageSize})
	})
}

func listQuery(opts *ListOptions) url.Values {
	if opts == nil {
		return nil
	}
	query := url.Values{}
	if cursor := opts.cursor(); cursor != "" {
		query.Set("start_cursor", cursor)
	}
	if size := opts.pageSize(); size > 0 {
		query.Set("page_size", strconv.Itoa(size))
	}
	return query
}
