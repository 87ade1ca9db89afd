package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/longkey1/notiongo/internal/cli/config"
	"github.com/longkey1/notiongo/internal/cli/format"
	"github.com/spf13/cobra"
)

var usersFormat string

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List workspace users",
	Long:  `List every user in the workspace visible to the integration.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUsers(cmd.Context())
	},
}

var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the integration's bot user",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMe(cmd.Context())
	},
}

func init() {
	usersCmd.Flags().StringVarP(&usersFormat, "format", "f", "table", "Output format: json, table")

	usersCmd.AddCommand(meCmd)
	rootCmd.AddCommand(usersCmd)
}

func runUsers(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	client := cfg.NewClient()

	users, err := client.ListAllUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	formatter := format.NewFormatter(format.OutputFormat(usersFormat), os.Stdout)
	return formatter.FormatUsers(users)
}

func runMe(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	client := cfg.NewClient()

	me, err := client.Me(ctx)
	if err != nil {
		return fmt.Errorf("failed to get bot user: %w", err)
	}

	fmt.Printf("Name: %s\n", me.Name)
	fmt.Printf("ID:   %s\n", me.ID)
	if me.Bot != nil && me.Bot.Owner != nil {
		fmt.Printf("Owner: %s\n", me.Bot.Owner.Type)
	}
	if me.Bot != nil && me.Bot.WorkspaceName != "" {
		fmt.Printf("Workspace: %s\n", me.Bot.WorkspaceName)
	}
	return nil
}
