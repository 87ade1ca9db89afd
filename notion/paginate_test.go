package notion

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pagedFetcher serves fixed pages keyed by cursor and counts fetches.
func pagedFetcher(pages map[string]*List[int]) (PageFetcher[int], *int) {
	calls := 0
	return func(ctx context.Context, cursor string) (*List[int], error) {
		calls++
		page, ok := pages[cursor]
		if !ok {
			return nil, errors.New("unknown cursor " + cursor)
		}
		return page, nil
	}, &calls
}

func threePages() map[string]*List[int] {
	return map[string]*List[int]{
		"":   {Results: []int{1, 2}, NextCursor: "c1", HasMore: true},
		"c1": {Results: []int{3, 4}, NextCursor: "c2", HasMore: true},
		"c2": {Results: []int{5}, HasMore: false},
	}
}

func TestCollectAllWalksEveryPage(t *testing.T) {
	fetch, calls := pagedFetcher(threePages())

	all, err := CollectAll(context.Background(), fetch)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, all)
	assert.Equal(t, 3, *calls)
}

func TestCollectAllSinglePage(t *testing.T) {
	fetch, calls := pagedFetcher(map[string]*List[int]{
		"": {Results: []int{7}, HasMore: false},
	})

	all, err := CollectAll(context.Background(), fetch)
	require.NoError(t, err)
	assert.Equal(t, []int{7}, all)
	assert.Equal(t, 1, *calls)
}

func TestCollectAllEmptyResultSet(t *testing.T) {
	fetch, _ := pagedFetcher(map[string]*List[int]{
		"": {HasMore: false},
	})

	all, err := CollectAll(context.Background(), fetch)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCollectAllPropagatesFetchError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	fetch := func(ctx context.Context, cursor string) (*List[int], error) {
		calls++
		if cursor == "c1" {
			return nil, boom
		}
		return &List[int]{Results: []int{1}, NextCursor: "c1", HasMore: true}, nil
	}

	all, err := CollectAll(context.Background(), fetch)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, all)
	assert.Equal(t, 2, calls)
}

func TestIterateYieldsInServerOrder(t *testing.T) {
	fetch, calls := pagedFetcher(threePages())

	var got []int
	for v, err := range Iterate(context.Background(), fetch) {
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, got)
	assert.Equal(t, 3, *calls)
}

func TestIterateIsLazy(t *testing.T) {
	fetch, calls := pagedFetcher(threePages())

	for v, err := range Iterate(context.Background(), fetch) {
		require.NoError(t, err)
		if v == 2 {
			break
		}
	}

	// Breaking inside the first page never touches the second.
	assert.Equal(t, 1, *calls)
}

func TestIterateYieldsFetchError(t *testing.T) {
	boom := errors.New("boom")
	fetch := func(ctx context.Context, cursor string) (*List[int], error) {
		if cursor == "c1" {
			return nil, boom
		}
		return &List[int]{Results: []int{1, 2}, NextCursor: "c1", HasMore: true}, nil
	}

	var got []int
	var gotErr error
	for v, err := range Iterate(context.Background(), fetch) {
		if err != nil {
			gotErr = err
			break
		}
		got = append(got, v)
	}

	assert.Equal(t, []int{1, 2}, got)
	assert.ErrorIs(t, gotErr, boom)
}

func TestListOptionsClamping(t *testing.T) {
	var nilOpts *ListOptions
	assert.Equal(t, "", nilOpts.cursor())
	assert.Equal(t, 0, nilOpts.pageSize())

	over := &ListOptions{PageSize: 500}
	assert.Equal(t, MaxPageSize, over.pageSize())

	normal := &ListOptions{StartCursor: "c", PageSize: 25}
	assert.Equal(t, "c", normal.cursor())
	assert.Equal(t, 25, normal.pageSize())
}
