package notion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRichTextBuilderOrder(t *testing.T) {
	runs := NewRichText().
		Text("plain ").
		Bold("bold").
		Text(" tail").
		Build()

	require.Len(t, runs, 3)
	assert.Equal(t, "plain ", runs[0].Text.Content)
	assert.Equal(t, "bold", runs[1].Text.Content)
	assert.Equal(t, " tail", runs[2].Text.Content)
	assert.Equal(t, "plain bold tail", PlainText(runs))
}

func TestRichTextBuilderAnnotations(t *testing.T) {
	runs := NewRichText().
		Bold("b").
		Italic("i").
		Strikethrough("s").
		Underline("u").
		Code("c").
		Colored("r", ColorRed).
		Build()

	require.Len(t, runs, 6)
	assert.True(t, runs[0].Annotations.Bold)
	assert.True(t, runs[1].Annotations.Italic)
	assert.True(t, runs[2].Annotations.Strikethrough)
	assert.True(t, runs[3].Annotations.Underline)
	assert.True(t, runs[4].Annotations.Code)
	assert.Equal(t, ColorRed, runs[5].Annotations.Color)

	// Each style method sets exactly its own flag.
	assert.False(t, runs[0].Annotations.Italic)
	assert.Equal(t, ColorDefault, runs[0].Annotations.Color)
}

func TestRichTextBuilderPlainRunHasNoAnnotations(t *testing.T) {
	runs := NewRichText().Text("plain").Build()

	require.Len(t, runs, 1)
	assert.Nil(t, runs[0].Annotations)
}

func TestRichTextBuilderLink(t *testing.T) {
	runs := NewRichText().
		Link("https://example.com", "Example").
		Link("https://example.org").
		Build()

	require.Len(t, runs, 2)
	assert.Equal(t, "Example", runs[0].Text.Content)
	assert.Equal(t, "https://example.com", runs[0].Text.Link.URL)
	require.NotNil(t, runs[0].Href)
	assert.Equal(t, "https://example.com", *runs[0].Href)

	// Display text defaults to the URL.
	assert.Equal(t, "https://example.org", runs[1].Text.Content)
}

func TestRichTextBuilderEquation(t *testing.T) {
	runs := NewRichText().Equation("E = mc^2").Build()

	require.Len(t, runs, 1)
	assert.Equal(t, RichTextTypeEquation, runs[0].Type)
	assert.Equal(t, "E = mc^2", runs[0].Equation.Expression)
	assert.Nil(t, runs[0].Text)
}

func TestRichTextBuilderMentions(t *testing.T) {
	runs := NewRichText().
		MentionUser("user-1").
		MentionPage("page-1").
		MentionDate(NewDate(time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC))).
		Build()

	require.Len(t, runs, 3)
	assert.Equal(t, MentionTypeUser, runs[0].Mention.Type)
	assert.Equal(t, "user-1", runs[0].Mention.User.ID)
	assert.Equal(t, MentionTypePage, runs[1].Mention.Type)
	assert.Equal(t, "page-1", runs[1].Mention.Page.ID)
	assert.Equal(t, MentionTypeDate, runs[2].Mention.Type)
	assert.Equal(t, "2026-08-26", runs[2].Mention.Date.Start)
}

func TestRichTextBuilderBuildIsRepeatable(t *testing.T) {
	b := NewRichText().Text("a").Bold("b")

	first := b.Build()
	second := b.Build()
	assert.Equal(t, first, second)
}
