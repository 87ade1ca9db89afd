package notion

import (
	"context"
	"iter"
)

// MaxPageSize is the largest page size the API accepts on list endpoints.
const MaxPageSize = 100

// ListOptions parameterizes one page of a list-style call.
type ListOptions struct {
	StartCursor string
	PageSize    int
}

func (o *ListOptions) cursor() string {
	if o == nil {
		return ""
	}
	return o.StartCursor
}

func (o *ListOptions) pageSize() int {
	if o == nil || o.PageSize <= 0 {
		return 0
	}
	if o.PageSize > MaxPageSize {
		return MaxPageSize
	}
	return o.PageSize
}

// List is one page of results from a list-style endpoint.
type List[T any] struct {
	Object     string `json:"object"`
	Results    []T    `json:"results"`
	NextCursor string `json:"next_cursor"`
	HasMore    bool   `json:"has_more"`
}

// PageFetcher fetches one page of results at the given cursor. An empty
// cursor means the first page.
type PageFetcher[T any] func(ctx context.Context, cursor string) (*List[T], error)

// CollectAll walks the cursor chain to exhaustion and returns every result
// in server order. The first fetch error aborts the walk and discards the
// partial accumulation.
func CollectAll[T any](ctx context.Context, fetch PageFetcher[T]) ([]T, error) {
	var all []T
	cursor := ""
	for {
		page, err := fetch(ctx, cursor)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Results...)
		if !page.HasMore || page.NextCursor == "" {
			return all, nil
		}
		cursor = page.NextCursor
	}
}

// Iterate lazily walks the cursor chain, yielding each result in server
// order. A fetch error is yielded once with a zero value and ends the walk.
// The sequence is finite and not restartable; re-ranging starts a fresh
// cursor walk.
func Iterate[T any](ctx context.Context, fetch PageFetcher[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		cursor := ""
		for {
			page, err := fetch(ctx, cursor)
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			for _, result := range page.Results {
				if !yield(result, nil) {
					return
				}
			}
			if !page.HasMore || page.NextCursor == "" {
				return
			}
			cursor = page.NextCursor
		}
	}
}
