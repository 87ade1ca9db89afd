package notion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	dashedID  = "59833787-2cf9-4fdf-8782-e53db20768a5"
	compactID = "598337872cf94fdf8782e53db20768a5"
)

func TestNormalizeID(t *testing.T) {
	assert.Equal(t, compactID, NormalizeID(dashedID))
	assert.Equal(t, compactID, NormalizeID(compactID))
}

func TestFormatID(t *testing.T) {
	assert.Equal(t, dashedID, FormatID(compactID))
	assert.Equal(t, dashedID, FormatID(dashedID))
	assert.Equal(t, "not-an-id", FormatID("not-an-id"))
}

func TestIsValidID(t *testing.T) {
	assert.True(t, IsValidID(dashedID))
	assert.True(t, IsValidID(compactID))
	assert.False(t, IsValidID("xyz"))
	assert.False(t, IsValidID(""))
}

func TestExtractID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare compact", compactID, compactID},
		{"bare dashed", dashedID, compactID},
		{
			"share link with slug",
			"https://www.notion.so/workspace/My-Page-" + compactID,
			compactID,
		},
		{
			"share link with query",
			"https://www.notion.so/My-Page-" + compactID + "?pvs=4",
			compactID,
		},
		{
			// The page ID is the last hex run in the path, not the first.
			"nested path",
			"https://www.notion.so/" + "00000000000000000000000000000000" + "/sub-" + compactID,
			compactID,
		},
		{
			"uppercase hex lowered",
			"https://www.notion.so/Page-598337872CF94FDF8782E53DB20768A5",
			compactID,
		},
		{"no id present", "https://www.notion.so/workspace", "https://www.notion.so/workspace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractID(tt.input))
		})
	}
}
