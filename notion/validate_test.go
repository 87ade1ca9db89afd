package notion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRichTextRunAtLimit(t *testing.T) {
	runs := []RichText{Text(strings.Repeat("a", MaxRichTextLength))}
	assert.NoError(t, validateRichText(runs))
}

func TestValidateRichTextRunOverLimit(t *testing.T) {
	runs := []RichText{Text(strings.Repeat("a", MaxRichTextLength+1))}

	err := validateRichText(runs)
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Contains(t, valErr.Error(), "2000")
	assert.Contains(t, valErr.Error(), "2001")
}

func TestValidateRichTextCountsRunesNotBytes(t *testing.T) {
	// 2000 multi-byte runes are within the limit even though the byte count
	// is far above it.
	runs := []RichText{Text(strings.Repeat("あ", MaxRichTextLength))}
	assert.NoError(t, validateRichText(runs))
}

func TestValidateRichTextLimitIsPerRun(t *testing.T) {
	half := strings.Repeat("a", 1500)
	runs := NewRichText().Text(half).Bold(half).Build()
	assert.NoError(t, validateRichText(runs))
}

func TestValidateAppendBlockCount(t *testing.T) {
	block := NewBlocks().Paragraph("x").Build()[0]

	atLimit := make([]BlockRequest, MaxBlocksPerAppend)
	for i := range atLimit {
		atLimit[i] = block
	}
	assert.NoError(t, validateAppend(atLimit))

	over := append(atLimit, block)
	err := validateAppend(over)
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Contains(t, valErr.Error(), "100")
	assert.Contains(t, valErr.Error(), "101")
}

func TestValidateAppendWalksNestedChildren(t *testing.T) {
	blocks := NewBlocks().
		Toggle("ok", func(b *BlockBuilder) {
			b.Paragraph(strings.Repeat("a", MaxRichTextLength+1))
		}).
		Build()

	err := validateAppend(blocks)
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
}

func TestValidateAppendChecksTableCells(t *testing.T) {
	blocks := NewBlocks().
		Table(1, false, false, func(b *BlockBuilder) {
			b.Row(strings.Repeat("a", MaxRichTextLength+1))
		}).
		Build()

	err := validateAppend(blocks)
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
}

func TestValidatePropertiesChecksRuns(t *testing.T) {
	props := NewProperties().
		Title("Name", strings.Repeat("a", MaxRichTextLength+1)).
		Build()

	err := validateProperties(props)
	require.Error(t, err)
	var valErr *ValidationError
	assert.ErrorAs(t, err, &valErr)
	assert.Contains(t, err.Error(), "Name")
}

func TestValidateSchemaOptionCount(t *testing.T) {
	options := make([]SelectOption, MaxSelectOptions)
	for i := range options {
		options[i] = NewSelectOption("opt")
	}
	schema := map[string]PropertySchema{
		"Tags": {Type: PropertyTypeMultiSelect, MultiSelect: &SelectConfig{Options: options}},
	}
	assert.NoError(t, validateSchema(schema))

	schema["Tags"].MultiSelect.Options = append(options, NewSelectOption("one too many"))
	err := validateSchema(schema)
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Contains(t, valErr.Error(), "100")
	assert.Contains(t, valErr.Error(), "Tags")
}

func TestValidateAttachments(t *testing.T) {
	attach := func(n int) []CommentAttachment {
		out := make([]CommentAttachment, n)
		for i := range out {
			out[i] = CommentAttachment{FileUploadID: "f"}
		}
		return out
	}

	assert.NoError(t, validateAttachments(nil))
	assert.NoError(t, validateAttachments(attach(MaxCommentAttachments)))

	err := validateAttachments(attach(MaxCommentAttachments + 1))
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Contains(t, valErr.Error(), "3")
}
