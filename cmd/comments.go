package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/longkey1/notiongo/internal/cli/config"
	"github.com/longkey1/notiongo/notion"
	"github.com/spf13/cobra"
)

var commentsFormat string

var commentsCmd = &cobra.Command{
	Use:   "comments",
	Short: "Work with comments",
}

var commentsListCmd = &cobra.Command{
	Use:   "list <page_id>",
	Short: "List open comments on a page or block",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommentsList(cmd.Context(), args[0])
	},
}

func init() {
	commentsListCmd.Flags().StringVarP(&commentsFormat, "format", "f", "text", "Output format: json, text")

	commentsCmd.AddCommand(commentsListCmd)
	rootCmd.AddCommand(commentsCmd)
}

func runCommentsList(ctx context.Context, pageIDOrURL string) error {
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

	client := cfg.NewClient()

	comments, err := client.ListAllComments(ctx, pageID)
	if err != nil {
		return fmt.Errorf("failed to list comments: %w", err)
	}

	if commentsFormat == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(comments)
	}

	if len(comments) == 0 {
		fmt.Println("No comments found")
		return nil
	}

	for _, comment := range comments {
		author := ""
		if comment.CreatedBy != nil {
			author = comment.CreatedBy.Name
		}
		if author == "" {
			author = "(unknown)"
		}
		fmt.Printf("[%s] %s: %s\n",
			comment.CreatedTime.Format("2006-01-02 15:04"), author, comment.PlainText())
	}
	return nil
}
