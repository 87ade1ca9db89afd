package notion

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchResultDispatch(t *testing.T) {
	var list List[SearchResult]
	require.NoError(t, json.Unmarshal([]byte(`{
		"object": "list",
		"results": [
			{"object": "page", "id": "p1", "parent": {"type": "workspace", "workspace": true},
			 "properties": {"title": {"type": "title", "title": [{"type": "text", "plain_text": "A page"}]}},
			 "url": "https://notion.so/p1"},
			{"object": "data_source", "id": "d1", "parent": {"type": "workspace", "workspace": true},
			 "title": [{"type": "text", "plain_text": "A source"}], "properties": {}},
			{"object": "widget", "id": "w1"}
		],
		"next_cursor": "",
		"has_more": false
	}`), &list))

	require.Len(t, list.Results, 3)

	page := list.Results[0]
	require.NotNil(t, page.Page)
	assert.Nil(t, page.DataSource)
	assert.Equal(t, "p1", page.Page.ID)
	assert.Equal(t, "A page", page.Title())

	source := list.Results[1]
	require.NotNil(t, source.DataSource)
	assert.Equal(t, "d1", source.DataSource.ID)
	assert.Equal(t, "A source", source.Title())

	// Unknown object types survive as bare hits.
	unknown := list.Results[2]
	assert.Equal(t, "widget", unknown.Object)
	assert.Nil(t, unknown.Page)
	assert.Nil(t, unknown.DataSource)
	assert.Equal(t, "", unknown.Title())
}

func TestSearchFilterConstructors(t *testing.T) {
	pages := SearchPages()
	assert.Equal(t, "page", pages.Value)
	assert.Equal(t, "object", pages.Property)

	sources := SearchDataSources()
	assert.Equal(t, "data_source", sources.Value)
}
