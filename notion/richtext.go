package notion

import (
	"strings"
)

// Color is the color applied to text annotations and blocks. Background
// variants tint the whole run or block rather than the glyphs.
type Color string

const (
	ColorDefault Color = "default"
	ColorGray    Color = "gray"
	ColorBrown   Color = "brown"
	ColorOrange  Color = "orange"
	ColorYellow  Color = "yellow"
	ColorGreen   Color = "green"
	ColorBlue    Color = "blue"
	ColorPurple  Color = "purple"
	ColorPink    Color = "pink"
	ColorRed     Color = "red"

	ColorGrayBackground   Color = "gray_background"
	ColorBrownBackground  Color = "brown_background"
	ColorOrangeBackground Color = "orange_background"
	ColorYellowBackground Color = "yellow_background"
	ColorGreenBackground  Color = "green_background"
	ColorBlueBackground   Color = "blue_background"
	ColorPurpleBackground Color = "purple_background"
	ColorPinkBackground   Color = "pink_background"
	ColorRedBackground    Color = "red_background"
)

// RichTextType discriminates the rich text run variants.
type RichTextType string

const (
	RichTextTypeText     RichTextType = "text"
	RichTextTypeMention  RichTextType = "mention"
	RichTextTypeEquation RichTextType = "equation"
)

// RichText represents a single styled run of inline content.
type RichText struct {
	Type        RichTextType `json:"type,omitempty"`
	Text        *TextContent `json:"text,omitempty"`
	Mention     *Mention     `json:"mention,omitempty"`
	Equation    *Equation    `json:"equation,omitempty"`
	Annotations *Annotations `json:"annotations,omitempty"`
	PlainText   string       `json:"plain_text,omitempty"`
	Href        *string      `json:"href,omitempty"`
}

// TextContent represents the content of a text run.
type TextContent struct {
	Content string `json:"content"`
	Link    *Link  `json:"link,omitempty"`
}

// Link represents an inline link target.
type Link struct {
	URL string `json:"url"`
}

// Equation represents an inline LaTeX equation.
type Equation struct {
	Expression string `json:"expression"`
}

// MentionType discriminates the mention variants.
type MentionType string

const (
	MentionTypeUser            MentionType = "user"
	MentionTypePage            MentionType = "page"
	MentionTypeDatabase        MentionType = "database"
	MentionTypeDate            MentionType = "date"
	MentionTypeLinkPreview     MentionType = "link_preview"
	MentionTypeTemplateMention MentionType = "template_mention"
)

// Mention represents an inline mention of a user, page, database, or date.
type Mention struct {
	Type            MentionType      `json:"type"`
	User            *User            `json:"user,omitempty"`
	Page            *ObjectReference `json:"page,omitempty"`
	Database        *ObjectReference `json:"database,omitempty"`
	Date            *Date            `json:"date,omitempty"`
	LinkPreview     *LinkPreview     `json:"link_preview,omitempty"`
	TemplateMention *TemplateMention `json:"template_mention,omitempty"`
}

// ObjectReference is an id-only reference to another object.
type ObjectReference struct {
	ID string `json:"id"`
}

// LinkPreview represents a link preview mention.
type LinkPreview struct {
	URL string `json:"url"`
}

// TemplateMention represents a template placeholder mention.
type TemplateMention struct {
	Type                string `json:"type"`
	TemplateMentionDate string `json:"template_mention_date,omitempty"`
	TemplateMentionUser string `json:"template_mention_user,omitempty"`
}

// Annotations represents the style flags applied to a rich text run.
type Annotations struct {
	Bold          bool  `json:"bold"`
	Italic        bool  `json:"italic"`
	Strikethrough bool  `json:"strikethrough"`
	Underline     bool  `json:"underline"`
	Code          bool  `json:"code"`
	Color         Color `json:"color"`
}

// Text returns a plain text run.
func Text(content string) RichText {
	return RichText{
		Type:      RichTextTypeText,
		Text:      &TextContent{Content: content},
		PlainText: content,
	}
}

// PlainText concatenates the plain text of a run sequence.
func PlainText(runs []RichText) string {
	var sb strings.Builder
	for _, run := range runs {
		sb.WriteString(run.PlainText)
	}
	return sb.String()
}

// RichTextBuilder composes an ordered sequence of rich text runs. Each method
// appends exactly one run and returns the builder, so calls chain in output
// order.
type RichTextBuilder struct {
	runs []RichText
}

// NewRichText creates an empty rich text builder.
func NewRichText() *RichTextBuilder {
	return &RichTextBuilder{}
}

// Text appends a plain text run.
func (b *RichTextBuilder) Text(content string) *RichTextBuilder {
	return b.Append(Text(content))
}

// Bold appends a bold text run.
func (b *RichTextBuilder) Bold(content string) *RichTextBuilder {
	return b.styled(content, func(a *Annotations) { a.Bold = true })
}

// Italic appends an italic text run.
func (b *RichTextBuilder) Italic(content string) *RichTextBuilder {
	return b.styled(content, func(a *Annotations) { a.Italic = true })
}

// Strikethrough appends a struck-through text run.
func (b *RichTextBuilder) Strikethrough(content string) *RichTextBuilder {
	return b.styled(content, func(a *Annotations) { a.Strikethrough = true })
}

// Underline appends an underlined text run.
func (b *RichTextBuilder) Underline(content string) *RichTextBuilder {
	return b.styled(content, func(a *Annotations) { a.Underline = true })
}

// Code appends an inline code run.
func (b *RichTextBuilder) Code(content string) *RichTextBuilder {
	return b.styled(content, func(a *Annotations) { a.Code = true })
}

// Colored appends a text run in the given color.
func (b *RichTextBuilder) Colored(content string, color Color) *RichTextBuilder {
	return b.styled(content, func(a *Annotations) { a.Color = color })
}

// Link appends a linked text run. The optional display text defaults to the
// URL itself.
func (b *RichTextBuilder) Link(url string, display ...string) *RichTextBuilder {
	content := url
	if len(display) > 0 {
		content = display[0]
	}
	run := Text(content)
	run.Text.Link = &Link{URL: url}
	run.Href = &url
	return b.Append(run)
}

// Equation appends an inline equation run.
func (b *RichTextBuilder) Equation(expression string) *RichTextBuilder {
	return b.Append(RichText{
		Type:      RichTextTypeEquation,
		Equation:  &Equation{Expression: expression},
		PlainText: expression,
	})
}

// MentionUser appends a user mention run. The plain text is resolved by the
// server from the referenced user, not settable here.
func (b *RichTextBuilder) MentionUser(userID string) *RichTextBuilder {
	return b.Append(RichText{
		Type: RichTextTypeMention,
		Mention: &Mention{
			Type: MentionTypeUser,
			User: &User{Object: "user", ID: userID},
		},
	})
}

// MentionPage appends a page mention run.
func (b *RichTextBuilder) MentionPage(pageID string) *RichTextBuilder {
	return b.Append(RichText{
		Type: RichTextTypeMention,
		Mention: &Mention{
			Type: MentionTypePage,
			Page: &ObjectReference{ID: pageID},
		},
	})
}

// MentionDatabase appends a database mention run.
func (b *RichTextBuilder) MentionDatabase(databaseID string) *RichTextBuilder {
	return b.Append(RichText{
		Type: RichTextTypeMention,
		Mention: &Mention{
			Type:     MentionTypeDatabase,
			Database: &ObjectReference{ID: databaseID},
		},
	})
}

// MentionDate appends a date mention run.
func (b *RichTextBuilder) MentionDate(date Date) *RichTextBuilder {
	return b.Append(RichText{
		Type: RichTextTypeMention,
		Mention: &Mention{
			Type: MentionTypeDate,
			Date: &date,
		},
		PlainText: date.String(),
	})
}

// Append appends an already constructed run.
func (b *RichTextBuilder) Append(run RichText) *RichTextBuilder {
	b.runs = append(b.runs, run)
	return b
}

// Build returns the accumulated run sequence.
func (b *RichTextBuilder) Build() []RichText {
	return b.runs
}

func (b *RichTextBuilder) styled(content string, apply func(*Annotations)) *RichTextBuilder {
	run := Text(content)
	run.Annotations = &Annotations{Color: ColorDefault}
	apply(run.Annotations)
	return b.Append(run)
}
