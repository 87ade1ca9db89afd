package notion

// BlockBuilder composes an ordered block tree. Each method appends exactly
// one block to the enclosing sequence; container methods accept nested
// builder funcs that run against a fresh child scope whose accumulated
// sequence becomes the block's children. Structural limits are not enforced
// here — partially built trees stay inspectable and the validation layer
// rejects oversized requests before transport.
type BlockBuilder struct {
	blocks []BlockRequest
}

// NewBlocks creates an empty block builder.
func NewBlocks() *BlockBuilder {
	return &BlockBuilder{}
}

// Build returns the accumulated block sequence.
func (b *BlockBuilder) Build() []BlockRequest {
	return b.blocks
}

// Append appends an already constructed block.
func (b *BlockBuilder) Append(block BlockRequest) *BlockBuilder {
	b.blocks = append(b.blocks, block)
	return b
}

func (b *BlockBuilder) children(fns []func(*BlockBuilder)) []BlockRequest {
	if len(fns) == 0 {
		return nil
	}
	child := NewBlocks()
	for _, fn := range fns {
		fn(child)
	}
	return child.Build()
}

// Paragraph appends a paragraph of plain text.
func (b *BlockBuilder) Paragraph(text string, children ...func(*BlockBuilder)) *BlockBuilder {
	return b.ParagraphRich([]RichText{Text(text)}, children...)
}

// ParagraphRich appends a paragraph with explicit rich text runs.
func (b *BlockBuilder) ParagraphRich(runs []RichText, children ...func(*BlockBuilder)) *BlockBuilder {
	return b.Append(BlockRequest{
		Type: BlockTypeParagraph,
		blockPayload: blockPayload{
			Paragraph: &TextBlock{RichText: runs, Children: b.children(children)},
		},
	})
}

// Heading1 appends a level-1 heading.
func (b *BlockBuilder) Heading1(text string) *BlockBuilder {
	return b.heading(BlockTypeHeading1, text)
}

// Heading2 appends a level-2 heading.
func (b *BlockBuilder) Heading2(text string) *BlockBuilder {
	return b.heading(BlockTypeHeading2, text)
}

// Heading3 appends a level-3 heading.
func (b *BlockBuilder) Heading3(text string) *BlockBuilder {
	return b.heading(BlockTypeHeading3, text)
}

func (b *BlockBuilder) heading(typ BlockType, text string) *BlockBuilder {
	payload := &HeadingBlock{RichText: []RichText{Text(text)}}
	block := BlockRequest{Type: typ}
	switch typ {
	case BlockTypeHeading1:
		block.Heading1 = payload
	case BlockTypeHeading2:
		block.Heading2 = payload
	case BlockTypeHeading3:
		block.Heading3 = payload
	}
	return b.Append(block)
}

// ToggleHeading1 appends a toggleable level-1 heading with nested children.
func (b *BlockBuilder) ToggleHeading1(text string, children ...func(*BlockBuilder)) *BlockBuilder {
	return b.Append(BlockRequest{
		Type: BlockTypeHeading1,
		blockPayload: blockPayload{
			Heading1: &HeadingBlock{
				RichText:     []RichText{Text(text)},
				IsToggleable: true,
				Children:     b.children(children),
			},
		},
	})
}

// Bulleted appends a bulleted list item.
func (b *BlockBuilder) Bulleted(text string, children ...func(*BlockBuilder)) *BlockBuilder {
	return b.Append(BlockRequest{
		Type: BlockTypeBulletedListItem,
		blockPayload: blockPayload{
			BulletedListItem: &TextBlock{RichText: []RichText{Text(text)}, Children: b.children(children)},
		},
	})
}

// Numbered appends a numbered list item.
func (b *BlockBuilder) Numbered(text string, children ...func(*BlockBuilder)) *BlockBuilder {
	return b.Append(BlockRequest{
		Type: BlockTypeNumberedListItem,
		blockPayload: blockPayload{
			NumberedListItem: &TextBlock{RichText: []RichText{Text(text)}, Children: b.children(children)},
		},
	})
}

// ToDo appends a to-do item.
func (b *BlockBuilder) ToDo(text string, checked bool, children ...func(*BlockBuilder)) *BlockBuilder {
	return b.Append(BlockRequest{
		Type: BlockTypeToDo,
		blockPayload: blockPayload{
			ToDo: &ToDoBlock{RichText: []RichText{Text(text)}, Checked: checked, Children: b.children(children)},
		},
	})
}

// Toggle appends a toggle block.
func (b *BlockBuilder) Toggle(text string, children ...func(*BlockBuilder)) *BlockBuilder {
	return b.Append(BlockRequest{
		Type: BlockTypeToggle,
		blockPayload: blockPayload{
			Toggle: &TextBlock{RichText: []RichText{Text(text)}, Children: b.children(children)},
		},
	})
}

// Quote appends a quote block.
func (b *BlockBuilder) Quote(text string, children ...func(*BlockBuilder)) *BlockBuilder {
	return b.Append(BlockRequest{
		Type: BlockTypeQuote,
		blockPayload: blockPayload{
			Quote: &TextBlock{RichText: []RichText{Text(text)}, Children: b.children(children)},
		},
	})
}

// Code appends a code block.
func (b *BlockBuilder) Code(code, language string) *BlockBuilder {
	return b.Append(BlockRequest{
		Type: BlockTypeCode,
		blockPayload: blockPayload{
			Code: &CodeBlock{RichText: []RichText{Text(code)}, Language: language},
		},
	})
}

// Callout appends a callout block with an optional emoji icon.
func (b *BlockBuilder) Callout(text, emoji string, children ...func(*BlockBuilder)) *BlockBuilder {
	payload := &CalloutBlock{RichText: []RichText{Text(text)}, Children: b.children(children)}
	if emoji != "" {
		payload.Icon = EmojiIcon(emoji)
	}
	return b.Append(BlockRequest{
		Type:         BlockTypeCallout,
		blockPayload: blockPayload{Callout: payload},
	})
}

// Divider appends a divider.
func (b *BlockBuilder) Divider() *BlockBuilder {
	return b.Append(BlockRequest{
		Type:         BlockTypeDivider,
		blockPayload: blockPayload{Divider: &EmptyObject{}},
	})
}

// Breadcrumb appends a breadcrumb.
func (b *BlockBuilder) Breadcrumb() *BlockBuilder {
	return b.Append(BlockRequest{
		Type:         BlockTypeBreadcrumb,
		blockPayload: blockPayload{Breadcrumb: &EmptyObject{}},
	})
}

// TableOfContents appends a table of contents.
func (b *BlockBuilder) TableOfContents() *BlockBuilder {
	return b.Append(BlockRequest{
		Type:         BlockTypeTableOfContents,
		blockPayload: blockPayload{TableOfContents: &ColoredBlock{}},
	})
}

// Bookmark appends a bookmark block.
func (b *BlockBuilder) Bookmark(url string) *BlockBuilder {
	return b.Append(BlockRequest{
		Type:         BlockTypeBookmark,
		blockPayload: blockPayload{Bookmark: &BookmarkBlock{URL: url}},
	})
}

// Embed appends an embed block.
func (b *BlockBuilder) Embed(url string) *BlockBuilder {
	return b.Append(BlockRequest{
		Type:         BlockTypeEmbed,
		blockPayload: blockPayload{Embed: &EmbedBlock{URL: url}},
	})
}

// Equation appends a block-level equation.
func (b *BlockBuilder) Equation(expression string) *BlockBuilder {
	return b.Append(BlockRequest{
		Type:         BlockTypeEquation,
		blockPayload: blockPayload{Equation: &Equation{Expression: expression}},
	})
}

// Image appends an image block backed by an external URL.
func (b *BlockBuilder) Image(url string) *BlockBuilder {
	return b.Append(BlockRequest{
		Type:         BlockTypeImage,
		blockPayload: blockPayload{Image: ExternalFile(url)},
	})
}

// FileBlock appends a file block referencing an external URL.
func (b *BlockBuilder) FileBlock(url string) *BlockBuilder {
	return b.Append(BlockRequest{
		Type:         BlockTypeFile,
		blockPayload: blockPayload{File: ExternalFile(url)},
	})
}

// PDF appends a pdf block backed by an external URL.
func (b *BlockBuilder) PDF(url string) *BlockBuilder {
	return b.Append(BlockRequest{
		Type:         BlockTypePDF,
		blockPayload: blockPayload{PDF: ExternalFile(url)},
	})
}

// Table appends a table. Rows are added via Row calls inside the nested
// scope; every row must have exactly width cells.
func (b *BlockBuilder) Table(width int, hasColumnHeader, hasRowHeader bool, rows func(*BlockBuilder)) *BlockBuilder {
	payload := &TableBlock{
		TableWidth:      width,
		HasColumnHeader: hasColumnHeader,
		HasRowHeader:    hasRowHeader,
	}
	if rows != nil {
		payload.Children = b.children([]func(*BlockBuilder){rows})
	}
	return b.Append(BlockRequest{
		Type:         BlockTypeTable,
		blockPayload: blockPayload{Table: payload},
	})
}

// Row appends a table row of plain text cells. Only valid inside a Table
// scope.
func (b *BlockBuilder) Row(cells ...string) *BlockBuilder {
	rowCells := make([][]RichText, len(cells))
	for i, cell := range cells {
		rowCells[i] = []RichText{Text(cell)}
	}
	return b.Append(BlockRequest{
		Type:         BlockTypeTableRow,
		blockPayload: blockPayload{TableRow: &TableRowBlock{Cells: rowCells}},
	})
}

// Columns appends a column_list whose children are one column per func.
func (b *BlockBuilder) Columns(columns ...func(*BlockBuilder)) *BlockBuilder {
	list := &ColumnListBlock{}
	for _, column := range columns {
		child := NewBlocks()
		column(child)
		list.Children = append(list.Children, BlockRequest{
			Type:         BlockTypeColumn,
			blockPayload: blockPayload{Column: &ColumnBlock{Children: child.Build()}},
		})
	}
	return b.Append(BlockRequest{
		Type:         BlockTypeColumnList,
		blockPayload: blockPayload{ColumnList: list},
	})
}

// Synced appends an original synced block holding the given children.
func (b *BlockBuilder) Synced(children ...func(*BlockBuilder)) *BlockBuilder {
	return b.Append(BlockRequest{
		Type:         BlockTypeSyncedBlock,
		blockPayload: blockPayload{SyncedBlock: &SyncedBlock{Children: b.children(children)}},
	})
}

// SyncedRef appends a duplicate synced block referencing an original.
func (b *BlockBuilder) SyncedRef(blockID string) *BlockBuilder {
	return b.Append(BlockRequest{
		Type: BlockTypeSyncedBlock,
		blockPayload: blockPayload{
			SyncedBlock: &SyncedBlock{SyncedFrom: &SyncedFrom{Type: "block_id", BlockID: blockID}},
		},
	})
}
