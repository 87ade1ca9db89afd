package notion

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockBuilderAppendsOnePerCall(t *testing.T) {
	blocks := NewBlocks().
		Heading1("Title").
		Paragraph("intro").
		Bulleted("first").
		Bulleted("second").
		Divider().
		Build()

	require.Len(t, blocks, 5)
	assert.Equal(t, BlockTypeHeading1, blocks[0].Type)
	assert.Equal(t, BlockTypeParagraph, blocks[1].Type)
	assert.Equal(t, BlockTypeBulletedListItem, blocks[2].Type)
	assert.Equal(t, BlockTypeBulletedListItem, blocks[3].Type)
	assert.Equal(t, BlockTypeDivider, blocks[4].Type)
}

func TestBlockBuilderPreservesTextOrder(t *testing.T) {
	blocks := NewBlocks().
		Paragraph("one").
		Paragraph("two").
		Paragraph("three").
		Build()

	var texts []string
	for _, block := range blocks {
		texts = append(texts, PlainText(block.Paragraph.RichText))
	}
	assert.Equal(t, []string{"one", "two", "three"}, texts)
}

func TestBlockBuilderNesting(t *testing.T) {
	blocks := NewBlocks().
		Toggle("outer", func(b *BlockBuilder) {
			b.Paragraph("inner one")
			b.Bulleted("inner two", func(b *BlockBuilder) {
				b.Paragraph("deepest")
			})
		}).
		Build()

	require.Len(t, blocks, 1)
	children := blocks[0].Toggle.Children
	require.Len(t, children, 2)
	assert.Equal(t, BlockTypeParagraph, children[0].Type)
	assert.Equal(t, BlockTypeBulletedListItem, children[1].Type)

	grandchildren := children[1].BulletedListItem.Children
	require.Len(t, grandchildren, 1)
	assert.Equal(t, "deepest", PlainText(grandchildren[0].Paragraph.RichText))
}

func TestBlockBuilderChildrenStayOutOfParentSequence(t *testing.T) {
	blocks := NewBlocks().
		Paragraph("parent", func(b *BlockBuilder) {
			b.Paragraph("child a")
			b.Paragraph("child b")
		}).
		Paragraph("sibling").
		Build()

	// Children live under the parent, not at the top level.
	require.Len(t, blocks, 2)
	assert.Len(t, blocks[0].Paragraph.Children, 2)
}

func TestBlockBuilderToDo(t *testing.T) {
	blocks := NewBlocks().
		ToDo("done", true).
		ToDo("open", false).
		Build()

	require.Len(t, blocks, 2)
	assert.True(t, blocks[0].ToDo.Checked)
	assert.False(t, blocks[1].ToDo.Checked)
}

func TestBlockBuilderCode(t *testing.T) {
	blocks := NewBlocks().Code("fmt.Println()", "go").Build()

	require.Len(t, blocks, 1)
	assert.Equal(t, "go", blocks[0].Code.Language)
	assert.Equal(t, "fmt.Println()", PlainText(blocks[0].Code.RichText))
}

func TestBlockBuilderCallout(t *testing.T) {
	blocks := NewBlocks().Callout("heads up", "⚠️").Build()

	require.Len(t, blocks, 1)
	require.NotNil(t, blocks[0].Callout.Icon)
	assert.Equal(t, IconTypeEmoji, blocks[0].Callout.Icon.Type)
	assert.Equal(t, "⚠️", blocks[0].Callout.Icon.Emoji)
}

func TestBlockBuilderTable(t *testing.T) {
	blocks := NewBlocks().
		Table(2, true, false, func(b *BlockBuilder) {
			b.Row("Name", "Value")
			b.Row("limit", "100")
		}).
		Build()

	require.Len(t, blocks, 1)
	table := blocks[0].Table
	assert.Equal(t, 2, table.TableWidth)
	assert.True(t, table.HasColumnHeader)
	require.Len(t, table.Children, 2)

	row := table.Children[0].TableRow
	require.Len(t, row.Cells, 2)
	assert.Equal(t, "Name", PlainText(row.Cells[0]))
	assert.Equal(t, "Value", PlainText(row.Cells[1]))
}

func TestBlockBuilderColumns(t *testing.T) {
	blocks := NewBlocks().
		Columns(
			func(b *BlockBuilder) { b.Paragraph("left") },
			func(b *BlockBuilder) { b.Paragraph("right") },
		).
		Build()

	require.Len(t, blocks, 1)
	columns := blocks[0].ColumnList.Children
	require.Len(t, columns, 2)
	assert.Equal(t, BlockTypeColumn, columns[0].Type)
	assert.Equal(t, "left", PlainText(columns[0].Column.Children[0].Paragraph.RichText))
	assert.Equal(t, "right", PlainText(columns[1].Column.Children[0].Paragraph.RichText))
}

func TestBlockBuilderSynced(t *testing.T) {
	blocks := NewBlocks().
		Synced(func(b *BlockBuilder) { b.Paragraph("original") }).
		SyncedRef("abc123").
		Build()

	require.Len(t, blocks, 2)
	assert.Nil(t, blocks[0].SyncedBlock.SyncedFrom)
	require.NotNil(t, blocks[1].SyncedBlock.SyncedFrom)
	assert.Equal(t, "abc123", blocks[1].SyncedBlock.SyncedFrom.BlockID)
	assert.Empty(t, blocks[1].SyncedBlock.Children)
}

func TestBlockBuilderBuildIsRepeatable(t *testing.T) {
	b := NewBlocks().Heading2("twice").Paragraph("body")

	first := b.Build()
	second := b.Build()
	assert.Equal(t, first, second)
}

func TestBlockRequestJSONShape(t *testing.T) {
	blocks := NewBlocks().Paragraph("hello").Build()

	data, err := json.Marshal(blocks[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "paragraph",
		"paragraph": {
			"rich_text": [
				{"type": "text", "text": {"content": "hello"}, "plain_text": "hello"}
			]
		}
	}`, string(data))
}

func TestBlockRequestRoundTrip(t *testing.T) {
	blocks := NewBlocks().
		Heading2("Section").
		Paragraph("body", func(b *BlockBuilder) {
			b.Quote("nested")
		}).
		Build()

	data, err := json.Marshal(blocks)
	require.NoError(t, err)

	var decoded []BlockRequest
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, blocks, decoded)
}
