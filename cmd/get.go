package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/longkey1/notiongo/internal/cli/config"
	"github.com/longkey1/notiongo/internal/cli/format"
	"github.com/longkey1/notiongo/notion"
	"github.com/spf13/cobra"
)

type getOptions struct {
	format           string
	filterProperties string
	blocks           bool
}

var getOpts = &getOptions{}

var getCmd = &cobra.Command{
	Use:   "get <page_id>",
	Short: "Get a single Notion page",
	Long:  `Retrieve a Notion page by its ID or URL and display its properties.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGet(cmd.Context(), args[0], getOpts)
	},
}

func init() {
	getCmd.Flags().StringVarP(&getOpts.format, "format", "f", "text", "Output format: json, text, table")
	getCmd.Flags().StringVar(&getOpts.filterProperties, "filter-properties", "", "Filter properties to retrieve (comma-separated)")
	getCmd.Flags().BoolVar(&getOpts.blocks, "blocks", false, "Also print the page content as plain text")

	rootCmd.AddCommand(getCmd)
}

func runGet(ctx context.Context, pageIDOrURL string, opts *getOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	// Extract page ID from URL if needed
	pageID := notion.ExtractID(pageIDOrURL)
	if pageID == "" {
		return fmt.Errorf("no page ID found in %q", pageIDOrURL)
	}

	client := cfg.NewClient()

	var pageOpts *notion.GetPageOptions
	if opts.filterProperties != "" {
		filterProps := strings.Split(opts.filterProperties, ",")
		for i := range filterProps {
			filterProps[i] = strings.TrimSpace(filterProps[i])
		}
		pageOpts = &notion.GetPageOptions{
			FilterProperties: filterProps,
		}
	}

	page, err := client.GetPage(ctx, pageID, pageOpts)
	if err != nil {
		return fmt.Errorf("failed to get page: %w", err)
	}

	formatter := format.NewFormatter(format.OutputFormat(opts.format), os.Stdout)
	if err := formatter.FormatPage(page); err != nil {
		return err
	}

	if opts.blocks {
		blocks, err := client.GetAllBlockChildren(ctx, pageID)
		if err != nil {
			return fmt.Errorf("failed to get page content: %w", err)
		}
		fmt.Println()
		for _, block := range blocks {
			if text := block.PlainText(); text != "" {
				fmt.Println(text)
			}
		}
	}

	return nil
}
