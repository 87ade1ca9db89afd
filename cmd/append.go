package cmd

import (
	"context"
	"fmt"

	"github.com/longkey1/notiongo/internal/cli/config"
	"github.com/longkey1/notiongo/notion"
	"github.com/spf13/cobra"
)

type appendOptions struct {
	heading  string
	texts    []string
	bullets  []string
	code     string
	language string
	divider  bool
	after    string
}

var appendOpts = &appendOptions{}

var appendCmd = &cobra.Command{
	Use:   "append <page_id>",
	Short: "Append blocks to a page",
	Long: `Append content blocks to a Notion page.

Flags compose in order: heading first, then paragraphs, bullets, code,
and a trailing divider.

  notiongo append <id> --heading "Standup" --text "Yesterday: shipped" --bullet "Review PRs"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAppend(cmd.Context(), args[0], appendOpts)
	},
}

func init() {
	appendCmd.Flags().StringVar(&appendOpts.heading, "heading", "", "Prepend a heading block")
	appendCmd.Flags().StringArrayVar(&appendOpts.texts, "text", nil, "Append a paragraph block (repeatable)")
	appendCmd.Flags().StringArrayVar(&appendOpts.bullets, "bullet", nil, "Append a bulleted list item (repeatable)")
	appendCmd.Flags().StringVar(&appendOpts.code, "code", "", "Append a code block")
	appendCmd.Flags().StringVar(&appendOpts.language, "language", "plain text", "Language for the code block")
	appendCmd.Flags().BoolVar(&appendOpts.divider, "divider", false, "Append a trailing divider")
	appendCmd.Flags().StringVar(&appendOpts.after, "after", "", "Insert after the block with this ID")

	rootCmd.AddCommand(appendCmd)
}

func runAppend(ctx context.Context, pageIDOrURL string, opts *appendOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	pageID := notion.ExtractID(pageIDOrURL)
	if pageID == "" {
		return fmt.Errorf("no page ID found in %q", pageIDOrURL)
	}

	builder := notion.NewBlocks()
	if opts.heading != "" {
		builder.Heading2(opts.heading)
	}
	for _, text := range opts.texts {
		builder.Paragraph(text)
	}
	for _, bullet := range opts.bullets {
		builder.Bulleted(bullet)
	}
	if opts.code != "" {
		builder.Code(opts.code, opts.language)
	}
	if opts.divider {
		builder.Divider()
	}

	blocks := builder.Build()
	if len(blocks) == 0 {
		return fmt.Errorf("nothing to append. Pass --heading, --text, --bullet, or --code")
	}

	client := cfg.NewClient()

	result, err := client.AppendBlockChildren(ctx, pageID, &notion.AppendBlockChildrenRequest{
		Children: blocks,
		After:    opts.after,
	})
	if err != nil {
		return fmt.Errorf("failed to append blocks: %w", err)
	}

	fmt.Printf("Appended %d block(s)\n", len(result.Results))
	return nil
}
