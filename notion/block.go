package notion

import (
	"encoding/json"
	"time"
)

// BlockType discriminates the block variants. The set is closed by the API;
// unknown types decode as BlockTypeUnsupported.
type BlockType string

const (
	BlockTypeParagraph        BlockType = "paragraph"
	BlockTypeHeading1         BlockType = "heading_1"
	BlockTypeHeading2         BlockType = "heading_2"
	BlockTypeHeading3         BlockType = "heading_3"
	BlockTypeBulletedListItem BlockType = "bulleted_list_item"
	BlockTypeNumberedListItem BlockType = "numbered_list_item"
	BlockTypeToDo             BlockType = "to_do"
	BlockTypeToggle           BlockType = "toggle"
	BlockTypeCode             BlockType = "code"
	BlockTypeQuote            BlockType = "quote"
	BlockTypeCallout          BlockType = "callout"
	BlockTypeDivider          BlockType = "divider"
	BlockTypeTable            BlockType = "table"
	BlockTypeTableRow         BlockType = "table_row"
	BlockTypeColumnList       BlockType = "column_list"
	BlockTypeColumn           BlockType = "column"
	BlockTypeSyncedBlock      BlockType = "synced_block"
	BlockTypeBookmark         BlockType = "bookmark"
	BlockTypeEmbed            BlockType = "embed"
	BlockTypeEquation         BlockType = "equation"
	BlockTypeBreadcrumb       BlockType = "breadcrumb"
	BlockTypeTableOfContents  BlockType = "table_of_contents"
	BlockTypeChildPage        BlockType = "child_page"
	BlockTypeChildDatabase    BlockType = "child_database"
	BlockTypeFile             BlockType = "file"
	BlockTypeImage            BlockType = "image"
	BlockTypePDF              BlockType = "pdf"
	BlockTypeVideo            BlockType = "video"
	BlockTypeAudio            BlockType = "audio"
	BlockTypeLinkPreview      BlockType = "link_preview"
	BlockTypeUnsupported      BlockType = "unsupported"
)

// known reports whether the type is one of the modeled variants.
func (t BlockType) known() bool {
	switch t {
	case BlockTypeParagraph, BlockTypeHeading1, BlockTypeHeading2, BlockTypeHeading3,
		BlockTypeBulletedListItem, BlockTypeNumberedListItem, BlockTypeToDo,
		BlockTypeToggle, BlockTypeCode, BlockTypeQuote, BlockTypeCallout,
		BlockTypeDivider, BlockTypeTable, BlockTypeTableRow, BlockTypeColumnList,
		BlockTypeColumn, BlockTypeSyncedBlock, BlockTypeBookmark, BlockTypeEmbed,
		BlockTypeEquation, BlockTypeBreadcrumb, BlockTypeTableOfContents,
		BlockTypeChildPage, BlockTypeChildDatabase, BlockTypeFile, BlockTypeImage,
		BlockTypePDF, BlockTypeVideo, BlockTypeAudio, BlockTypeLinkPreview,
		BlockTypeUnsupported:
		return true
	default:
		return false
	}
}

// SupportsChildren reports whether the variant may carry nested children.
// Leaf variants like divider and breadcrumb never do.
func (t BlockType) SupportsChildren() bool {
	switch t {
	case BlockTypeParagraph, BlockTypeHeading1, BlockTypeHeading2, BlockTypeHeading3,
		BlockTypeBulletedListItem, BlockTypeNumberedListItem, BlockTypeToDo,
		BlockTypeToggle, BlockTypeQuote, BlockTypeCallout, BlockTypeTable,
		BlockTypeColumnList, BlockTypeColumn, BlockTypeSyncedBlock:
		return true
	default:
		return false
	}
}

// Block is a response-side content block: a read-only snapshot materialized
// from server JSON. Exactly one variant payload is populated, matching Type.
// Children are not inlined; HasChildren signals a GetBlockChildren call.
type Block struct {
	Object         string    `json:"object"`
	ID             string    `json:"id"`
	Type           BlockType `json:"type"`
	CreatedTime    time.Time `json:"created_time"`
	LastEditedTime time.Time `json:"last_edited_time"`
	CreatedBy      *User     `json:"created_by,omitempty"`
	LastEditedBy   *User     `json:"last_edited_by,omitempty"`
	Parent         *Parent   `json:"parent,omitempty"`
	HasChildren    bool      `json:"has_children"`
	Archived       bool      `json:"archived"`
	InTrash        bool      `json:"in_trash"`

	blockPayload
}

// UnmarshalJSON decodes a block, normalizing block types this client does not
// model to BlockTypeUnsupported so that new server-side variants never fail a
// decode.
func (b *Block) UnmarshalJSON(data []byte) error {
	type plain Block
	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*b = Block(decoded)
	if !b.Type.known() {
		b.Type = BlockTypeUnsupported
	}
	return nil
}

// BlockRequest is a request-side content block built client-side and consumed
// by a single append or update call. It omits all server-assigned fields.
type BlockRequest struct {
	Object string    `json:"object,omitempty"`
	Type   BlockType `json:"type"`

	blockPayload
}

// blockPayload holds the per-variant payloads shared by the request and
// response shapes; the two sides are structurally parallel on the wire.
type blockPayload struct {
	Paragraph        *TextBlock          `json:"paragraph,omitempty"`
	Heading1         *HeadingBlock       `json:"heading_1,omitempty"`
	Heading2         *HeadingBlock       `json:"heading_2,omitempty"`
	Heading3         *HeadingBlock       `json:"heading_3,omitempty"`
	BulletedListItem *TextBlock          `json:"bulleted_list_item,omitempty"`
	NumberedListItem *TextBlock          `json:"numbered_list_item,omitempty"`
	ToDo             *ToDoBlock          `json:"to_do,omitempty"`
	Toggle           *TextBlock          `json:"toggle,omitempty"`
	Code             *CodeBlock          `json:"code,omitempty"`
	Quote            *TextBlock          `json:"quote,omitempty"`
	Callout          *CalloutBlock       `json:"callout,omitempty"`
	Divider          *EmptyObject        `json:"divider,omitempty"`
	Table            *TableBlock         `json:"table,omitempty"`
	TableRow         *TableRowBlock      `json:"table_row,omitempty"`
	ColumnList       *ColumnListBlock    `json:"column_list,omitempty"`
	Column           *ColumnBlock        `json:"column,omitempty"`
	SyncedBlock      *SyncedBlock        `json:"synced_block,omitempty"`
	Bookmark         *BookmarkBlock      `json:"bookmark,omitempty"`
	Embed            *EmbedBlock         `json:"embed,omitempty"`
	Equation         *Equation           `json:"equation,omitempty"`
	Breadcrumb       *EmptyObject        `json:"breadcrumb,omitempty"`
	TableOfContents  *ColoredBlock       `json:"table_of_contents,omitempty"`
	ChildPage        *ChildTitleBlock    `json:"child_page,omitempty"`
	ChildDatabase    *ChildTitleBlock    `json:"child_database,omitempty"`
	File             *File               `json:"file,omitempty"`
	Image            *File               `json:"image,omitempty"`
	PDF              *File               `json:"pdf,omitempty"`
	Video            *File               `json:"video,omitempty"`
	Audio            *File               `json:"audio,omitempty"`
	LinkPreview      *LinkPreviewBlock   `json:"link_preview,omitempty"`
	Unsupported      *EmptyObject        `json:"unsupported,omitempty"`
}

// TextBlock is the payload of paragraph, quote, toggle, and list item blocks.
type TextBlock struct {
	RichText []RichText     `json:"rich_text"`
	Color    Color          `json:"color,omitempty"`
	Children []BlockRequest `json:"children,omitempty"`
}

// HeadingBlock is the payload of heading_1 through heading_3. Toggleable
// headings may carry children.
type HeadingBlock struct {
	RichText     []RichText     `json:"rich_text"`
	Color        Color          `json:"color,omitempty"`
	IsToggleable bool           `json:"is_toggleable,omitempty"`
	Children     []BlockRequest `json:"children,omitempty"`
}

// ToDoBlock is the payload of to_do blocks.
type ToDoBlock struct {
	RichText []RichText     `json:"rich_text"`
	Checked  bool           `json:"checked,omitempty"`
	Color    Color          `json:"color,omitempty"`
	Children []BlockRequest `json:"children,omitempty"`
}

// CodeBlock is the payload of code blocks.
type CodeBlock struct {
	RichText []RichText `json:"rich_text"`
	Caption  []RichText `json:"caption,omitempty"`
	Language string     `json:"language,omitempty"`
}

// CalloutBlock is the payload of callout blocks.
type CalloutBlock struct {
	RichText []RichText     `json:"rich_text"`
	Icon     *Icon          `json:"icon,omitempty"`
	Color    Color          `json:"color,omitempty"`
	Children []BlockRequest `json:"children,omitempty"`
}

// ColoredBlock is the payload of variants whose only setting is a color.
type ColoredBlock struct {
	Color Color `json:"color,omitempty"`
}

// TableBlock is the payload of table blocks. TableWidth is fixed at creation;
// children must be table_row blocks.
type TableBlock struct {
	TableWidth      int            `json:"table_width"`
	HasColumnHeader bool           `json:"has_column_header"`
	HasRowHeader    bool           `json:"has_row_header"`
	Children        []BlockRequest `json:"children,omitempty"`
}

// TableRowBlock is the payload of table_row blocks. Each cell is a rich text
// run sequence; the cell count must equal the parent table's width.
type TableRowBlock struct {
	Cells [][]RichText `json:"cells"`
}

// ColumnListBlock is the payload of column_list blocks; children must be
// column blocks.
type ColumnListBlock struct {
	Children []BlockRequest `json:"children,omitempty"`
}

// ColumnBlock is the payload of column blocks.
type ColumnBlock struct {
	WidthRatio *float64       `json:"width_ratio,omitempty"`
	Children   []BlockRequest `json:"children,omitempty"`
}

// SyncedBlock is the payload of synced_block blocks. An original carries
// children and a nil SyncedFrom; a duplicate references the original.
type SyncedBlock struct {
	SyncedFrom *SyncedFrom    `json:"synced_from"`
	Children   []BlockRequest `json:"children,omitempty"`
}

// SyncedFrom references the original of a duplicate synced block.
type SyncedFrom struct {
	Type    string `json:"type,omitempty"`
	BlockID string `json:"block_id"`
}

// BookmarkBlock is the payload of bookmark blocks.
type BookmarkBlock struct {
	URL     string     `json:"url"`
	Caption []RichText `json:"caption,omitempty"`
}

// EmbedBlock is the payload of embed blocks.
type EmbedBlock struct {
	URL     string     `json:"url"`
	Caption []RichText `json:"caption,omitempty"`
}

// ChildTitleBlock is the payload of child_page and child_database blocks.
type ChildTitleBlock struct {
	Title string `json:"title"`
}

// LinkPreviewBlock is the payload of link_preview blocks. These cannot be
// created via the API, only returned.
type LinkPreviewBlock struct {
	URL string `json:"url"`
}

// RichTextContent returns the rich text runs of the populated variant, or nil
// for variants that carry none.
func (p *blockPayload) RichTextContent() []RichText {
	switch {
	case p.Paragraph != nil:
		return p.Paragraph.RichText
	case p.Heading1 != nil:
		return p.Heading1.RichText
	case p.Heading2 != nil:
		return p.Heading2.RichText
	case p.Heading3 != nil:
		return p.Heading3.RichText
	case p.BulletedListItem != nil:
		return p.BulletedListItem.RichText
	case p.NumberedListItem != nil:
		return p.NumberedListItem.RichText
	case p.ToDo != nil:
		return p.ToDo.RichText
	case p.Toggle != nil:
		return p.Toggle.RichText
	case p.Code != nil:
		return p.Code.RichText
	case p.Quote != nil:
		return p.Quote.RichText
	case p.Callout != nil:
		return p.Callout.RichText
	default:
		return nil
	}
}

// PlainText returns the concatenated plain text of the block's rich text.
func (b *Block) PlainText() string {
	return PlainText(b.RichTextContent())
}
