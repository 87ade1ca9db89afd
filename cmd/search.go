package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/longkey1/notiongo/internal/cli/config"
	"github.com/longkey1/notiongo/internal/cli/format"
	"github.com/longkey1/notiongo/notion"
	"github.com/spf13/cobra"
)

type searchOptions struct {
	query    string
	pageSize int
	format   string
	sort     string
	cursor   string
	object   string
}

var searchOpts = &searchOptions{}

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search pages and data sources",
	Long:  `Search for pages and data sources shared with the integration and display the results.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSearch(cmd.Context(), searchOpts)
	},
}

func init() {
	searchCmd.Flags().StringVarP(&searchOpts.query, "query", "q", "", "Search keyword")
	searchCmd.Flags().IntVarP(&searchOpts.pageSize, "page-size", "n", 10, "Number of results to retrieve (max 100)")
	searchCmd.Flags().StringVarP(&searchOpts.format, "format", "f", "table", "Output format: json, text, table")
	searchCmd.Flags().StringVar(&searchOpts.sort, "sort", "descending", "Sort order: ascending, descending")
	searchCmd.Flags().StringVar(&searchOpts.cursor, "cursor", "", "Pagination cursor")
	searchCmd.Flags().StringVar(&searchOpts.object, "object", "", "Restrict results to an object type: page, data_source")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(ctx context.Context, opts *searchOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	client := cfg.NewClient()

	// Validate and clamp page size
	pageSize := opts.pageSize
	if pageSize < 1 {
		pageSize = 10
	}
	if pageSize > notion.MaxPageSize {
		pageSize = notion.MaxPageSize
	}

	req := &notion.SearchRequest{
		Query:       opts.query,
		PageSize:    pageSize,
		StartCursor: opts.cursor,
		Sort: &notion.SearchSort{
			Direction: notion.SortDirection(opts.sort),
			Timestamp: "last_edited_time",
		},
	}

	switch opts.object {
	case "":
	case "page":
		req.Filter = notion.SearchPages()
	case "data_source":
		req.Filter = notion.SearchDataSources()
	default:
		return fmt.Errorf("unknown object type %q (want page or data_source)", opts.object)
	}

	result, err := client.Search(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to search: %w", err)
	}

	formatter := format.NewFormatter(format.OutputFormat(opts.format), os.Stdout)
	return formatter.FormatSearchResults(result.Results, result.NextCursor, result.HasMore)
}
