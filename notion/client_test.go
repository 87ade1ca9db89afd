package notion

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fastRetry keeps retry tests quick without changing the retry shape.
func fastRetry(maxRetries int) RetryConfig {
	return RetryConfig{
		MaxRetries:        maxRetries,
		BaseDelay:         time.Millisecond,
		MaxDelay:          5 * time.Millisecond,
		RespectRetryAfter: false,
	}
}

func TestClientSendsAuthHeaders(t *testing.T) {
	var gotAuth, gotVersion, gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotVersion = r.Header.Get("Notion-Version")
		gotContentType = r.Header.Get("Content-Type")
		json.NewEncoder(w).Encode(map[string]any{"object": "user", "id": "u1"})
	}))
	defer server.Close()

	client := NewClient("secret-token", WithBaseURL(server.URL))
	_, err := client.Me(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.Equal(t, DefaultNotionVersion, gotVersion)
	assert.Empty(t, gotContentType)
}

func TestClientNotionVersionOverride(t *testing.T) {
	var gotVersion string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotVersion = r.Header.Get("Notion-Version")
		json.NewEncoder(w).Encode(map[string]any{"object": "user"})
	}))
	defer server.Close()

	client := NewClient("t", WithBaseURL(server.URL), WithNotionVersion("2022-06-28"))
	_, err := client.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2022-06-28", gotVersion)
}

func TestClientRetriesRateLimited(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls <= 2 {
			w.WriteHeader(http.StatusTooManyRequests)
			json.NewEncoder(w).Encode(map[string]any{"object": "error", "code": "rate_limited"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"object": "user", "id": "u1"})
	}))
	defer server.Close()

	client := NewClient("t", WithBaseURL(server.URL), WithRetry(fastRetry(3)))
	user, err := client.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, 3, calls)
}

func TestClientRetryBudgetExhausted(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{"object": "error", "code": "rate_limited", "message": "slow down"})
	}))
	defer server.Close()

	client := NewClient("t", WithBaseURL(server.URL), WithRetry(fastRetry(1)))
	_, err := client.Me(context.Background())
	require.Error(t, err)
	assert.True(t, IsRateLimited(err))
	// One initial attempt plus one retry.
	assert.Equal(t, 2, calls)
}

func TestClientRetryResendsBody(t *testing.T) {
	var bodies []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req SearchRequest
		json.NewDecoder(r.Body).Decode(&req)
		bodies = append(bodies, req.Query)
		if len(bodies) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		json.NewEncoder(w).Encode(List[SearchResult]{Object: "list"})
	}))
	defer server.Close()

	client := NewClient("t", WithBaseURL(server.URL), WithRetry(fastRetry(2)))
	_, err := client.Search(context.Background(), &SearchRequest{Query: "notes"})
	require.NoError(t, err)
	assert.Equal(t, []string{"notes", "notes"}, bodies)
}

func TestClientAppendAfterReachesWire(t *testing.T) {
	var body map[string]json.RawMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&body)
		json.NewEncoder(w).Encode(List[Block]{Object: "list"})
	}))
	defer server.Close()

	client := NewClient("t", WithBaseURL(server.URL))
	_, err := client.AppendBlockChildren(context.Background(), "a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4",
		&AppendBlockChildrenRequest{
			Children: NewBlocks().Paragraph("hello").Build(),
			After:    "00000000-0000-0000-0000-000000000001",
		})
	require.NoError(t, err)

	require.Contains(t, body, "after")
	assert.Equal(t, `"00000000-0000-0000-0000-000000000001"`, string(body["after"]))
	require.Contains(t, body, "children")
}

func TestClientOnlyRateLimitedIsRetried(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{"object": "error", "code": "internal_server_error"})
	}))
	defer server.Close()

	client := NewClient("t", WithBaseURL(server.URL), WithRetry(fastRetry(3)))
	_, err := client.Me(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, calls)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
}

func TestClientAuthenticationError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{
			"object": "error", "code": "unauthorized", "message": "API token is invalid.",
		})
	}))
	defer server.Close()

	client := NewClient("bad-token", WithBaseURL(server.URL))
	_, err := client.Me(context.Background())
	require.Error(t, err)

	var authErr *AuthenticationError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "unauthorized", authErr.Code)
	assert.Contains(t, err.Error(), "authentication failed")
}

func TestClientNotFoundError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{
			"object": "error", "code": "object_not_found", "message": "Could not find page.",
		})
	}))
	defer server.Close()

	client := NewClient("t", WithBaseURL(server.URL))
	_, err := client.GetPage(context.Background(), "a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4", nil)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsRateLimited(err))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "object_not_found", apiErr.Code)
}

func TestClientNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	client := NewClient("t", WithBaseURL(server.URL))
	_, err := client.Me(context.Background())
	require.Error(t, err)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.NotNil(t, netErr.Unwrap())

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestClientContextCancellation(t *testing.T) {
	started := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer server.Close()

	client := NewClient("t", WithBaseURL(server.URL))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := client.Me(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClientTracksRateLimitState(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RateLimit-Limit", "2700")
		w.Header().Set("X-RateLimit-Remaining", "2693")
		w.Header().Set("X-RateLimit-Reset", "1767225600")
		json.NewEncoder(w).Encode(map[string]any{"object": "user"})
	}))
	defer server.Close()

	client := NewClient("t", WithBaseURL(server.URL))
	_, err := client.Me(context.Background())
	require.NoError(t, err)

	state := client.RateLimit()
	assert.Equal(t, 2700, state.Limit)
	assert.Equal(t, 2693, state.Remaining)
	assert.Equal(t, time.Unix(1767225600, 0), state.Reset)
}

func TestClientValidationShortCircuits(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	client := NewClient("t", WithBaseURL(server.URL))

	blocks := make([]BlockRequest, MaxBlocksPerAppend+1)
	for i := range blocks {
		blocks[i] = NewBlocks().Paragraph("x").Build()[0]
	}
	_, err := client.AppendBlockChildren(context.Background(), "a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4",
		&AppendBlockChildrenRequest{Children: blocks})

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, 0, calls, "validation failures must not reach the network")
}
