package notion

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockDecodeUnknownType(t *testing.T) {
	var block Block
	require.NoError(t, json.Unmarshal([]byte(`{
		"object": "block",
		"id": "b1",
		"type": "brand_new_widget",
		"brand_new_widget": {"setting": true},
		"has_children": false
	}`), &block))

	assert.Equal(t, BlockTypeUnsupported, block.Type)
	assert.Equal(t, "b1", block.ID)
	assert.Equal(t, "", block.PlainText())
}

func TestBlockDecodeKnownTypeUntouched(t *testing.T) {
	var block Block
	require.NoError(t, json.Unmarshal([]byte(`{
		"object": "block",
		"id": "b2",
		"type": "paragraph",
		"paragraph": {"rich_text": [{"type": "text", "text": {"content": "hi"}, "plain_text": "hi"}]}
	}`), &block))

	assert.Equal(t, BlockTypeParagraph, block.Type)
	require.NotNil(t, block.Paragraph)
	assert.Equal(t, "hi", block.PlainText())
}

func TestBlockDecodeUnknownTypeInList(t *testing.T) {
	var list List[Block]
	require.NoError(t, json.Unmarshal([]byte(`{
		"object": "list",
		"results": [
			{"object": "block", "id": "b1", "type": "divider", "divider": {}},
			{"object": "block", "id": "b2", "type": "hologram", "hologram": {}}
		],
		"next_cursor": "",
		"has_more": false
	}`), &list))

	require.Len(t, list.Results, 2)
	assert.Equal(t, BlockTypeDivider, list.Results[0].Type)
	assert.Equal(t, BlockTypeUnsupported, list.Results[1].Type)
}
