package notion

import (
	"fmt"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Request limits enforced by the remote API. The pre-flight checks below
// turn a guaranteed-to-fail round trip into an immediate local error.
const (
	// MaxRichTextLength is the character limit per rich text run. The limit
	// is per segment, not per aggregate: a paragraph may exceed it across
	// runs as long as no single run does.
	MaxRichTextLength = 2000
	// MaxBlocksPerAppend is the block limit per append call, counted at the
	// top level of the request.
	MaxBlocksPerAppend = 100
	// MaxSelectOptions is the option limit per select-like property.
	MaxSelectOptions = 100
	// MaxCommentAttachments is the attachment limit per comment.
	MaxCommentAttachments = 3
)

// validateAppend checks an append request: block count at the top level plus
// every rich text run in the tree.
func validateAppend(blocks []BlockRequest) error {
	if err := validation.Validate(blocks, validation.Length(0, MaxBlocksPerAppend)); err != nil {
		return &ValidationError{
			Message: fmt.Sprintf("append of %d blocks: %v", len(blocks), err),
		}
	}
	return validateBlocks(blocks)
}

// validateBlocks walks a block tree checking every rich text run.
func validateBlocks(blocks []BlockRequest) error {
	for i := range blocks {
		if err := validateBlock(&blocks[i]); err != nil {
			return err
		}
	}
	return nil
}

func validateBlock(block *BlockRequest) error {
	if err := validateRichText(block.RichTextContent()); err != nil {
		return err
	}
	if block.TableRow != nil {
		for _, cell := range block.TableRow.Cells {
			if err := validateRichText(cell); err != nil {
				return err
			}
		}
	}
	if block.Code != nil {
		if err := validateRichText(block.Code.Caption); err != nil {
			return err
		}
	}
	return validateBlocks(blockChildren(block))
}

func blockChildren(block *BlockRequest) []BlockRequest {
	switch {
	case block.Paragraph != nil:
		return block.Paragraph.Children
	case block.Heading1 != nil:
		return block.Heading1.Children
	case block.Heading2 != nil:
		return block.Heading2.Children
	case block.Heading3 != nil:
		return block.Heading3.Children
	case block.BulletedListItem != nil:
		return block.BulletedListItem.Children
	case block.NumberedListItem != nil:
		return block.NumberedListItem.Children
	case block.ToDo != nil:
		return block.ToDo.Children
	case block.Toggle != nil:
		return block.Toggle.Children
	case block.Quote != nil:
		return block.Quote.Children
	case block.Callout != nil:
		return block.Callout.Children
	case block.Table != nil:
		return block.Table.Children
	case block.ColumnList != nil:
		return block.ColumnList.Children
	case block.Column != nil:
		return block.Column.Children
	case block.SyncedBlock != nil:
		return block.SyncedBlock.Children
	default:
		return nil
	}
}

// validateRichText checks each run against the per-run character limit.
func validateRichText(runs []RichText) error {
	for _, run := range runs {
		content := ""
		switch {
		case run.Text != nil:
			content = run.Text.Content
		case run.Equation != nil:
			content = run.Equation.Expression
		}
		if err := validation.Validate(content, validation.RuneLength(0, MaxRichTextLength)); err != nil {
			return &ValidationError{
				Message: fmt.Sprintf("rich text run of %d characters: %v", utf8.RuneCountInString(content), err),
			}
		}
	}
	return nil
}

// validateProperties checks rich text runs inside property values.
func validateProperties(props map[string]PropertyValue) error {
	for name, value := range props {
		if err := validateRichText(value.Title); err != nil {
			return fmt.Errorf("property %q: %w", name, err)
		}
		if err := validateRichText(value.RichText); err != nil {
			return fmt.Errorf("property %q: %w", name, err)
		}
	}
	return nil
}

// validateSchema checks the option count of select-like columns.
func validateSchema(props map[string]PropertySchema) error {
	for name, schema := range props {
		var options []SelectOption
		switch {
		case schema.Select != nil:
			options = schema.Select.Options
		case schema.MultiSelect != nil:
			options = schema.MultiSelect.Options
		case schema.Status != nil:
			options = schema.Status.Options
		default:
			continue
		}
		if err := validation.Validate(options, validation.Length(0, MaxSelectOptions)); err != nil {
			return &ValidationError{
				Message: fmt.Sprintf("property %q with %d options: %v", name, len(options), err),
			}
		}
	}
	return nil
}

// validateAttachments checks the comment attachment count.
func validateAttachments(attachments []CommentAttachment) error {
	if err := validation.Validate(attachments, validation.Length(0, MaxCommentAttachments)); err != nil {
		return &ValidationError{
			Message: fmt.Sprintf("comment with %d attachments: %v", len(attachments), err),
		}
	}
	return nil
}
