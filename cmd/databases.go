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

var databasesFormat string

var databasesCmd = &cobra.Command{
	Use:   "databases",
	Short: "Work with Notion databases",
}

var databasesGetCmd = &cobra.Command{
	Use:   "get <database_id>",
	Short: "Get a single Notion database",
	Long:  `Retrieve a Notion database by its ID or URL and display its title and data sources.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDatabasesGet(cmd.Context(), args[0])
	},
}

func init() {
	databasesGetCmd.Flags().StringVarP(&databasesFormat, "format", "f", "text", "Output format: json, text")

	databasesCmd.AddCommand(databasesGetCmd)
	rootCmd.AddCommand(databasesCmd)
}

func runDatabasesGet(ctx context.Context, databaseIDOrURL string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	databaseID := notion.ExtractID(databaseIDOrURL)
	if databaseID == "" {
		return fmt.Errorf("no database ID found in %q", databaseIDOrURL)
	}

	client := cfg.NewClient()

	db, err := client.GetDatabase(ctx, databaseID)
	if err != nil {
		return fmt.Errorf("failed to get database: %w", err)
	}

	if databasesFormat == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(db)
	}

	title := db.TitleText()
	if title == "" {
		title = "(Untitled)"
	}
	fmt.Printf("Title: %s\n", title)
	fmt.Printf("ID:    %s\n", db.ID)
	if db.URL != "" {
		fmt.Printf("URL:   %s\n", db.URL)
	}
	for _, source := range db.DataSources {
		fmt.Printf("Data source: %s (%s)\n", source.Name, source.ID)
	}
	return nil
}
