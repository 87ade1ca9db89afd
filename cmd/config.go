package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/longkey1/notiongo/internal/cli/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Long: `Show current configuration settings.

Displays the effective configuration from environment variables
and the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfig()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	configDir, _ := config.GetConfigDir()

	fmt.Println("Current Configuration")
	fmt.Println("=====================")
	fmt.Println()

	// Token (masked)
	if cfg.Token != "" {
		fmt.Printf("Token:               %s\n", maskToken(cfg.Token))
	} else {
		fmt.Println("Token:               (not set)")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "(default)"
	}
	fmt.Printf("Base URL:            %s\n", baseURL)

	notionVersion := cfg.NotionVersion
	if notionVersion == "" {
		notionVersion = "(default)"
	}
	fmt.Printf("Notion version:      %s\n", notionVersion)

	fmt.Printf("Rate limiting:       %t (%s)\n", cfg.RateLimit, cfg.RateLimitStrategy)
	fmt.Printf("Max retries:         %d\n", cfg.MaxRetries)
	fmt.Printf("Base delay:          %dms\n", cfg.BaseDelayMs)
	fmt.Printf("Max delay:           %dms\n", cfg.MaxDelayMs)
	fmt.Printf("Jitter factor:       %.2f\n", cfg.JitterFactor)
	fmt.Printf("Respect Retry-After: %t\n", cfg.RespectRetryAfter)
	fmt.Printf("Log level:           %s\n", cfg.LogLevel)

	fmt.Println()
	fmt.Println("Sources")
	fmt.Println("-------")

	if os.Getenv("NOTIONGO_TOKEN") != "" {
		fmt.Println("NOTIONGO_TOKEN:  set")
	}
	if os.Getenv("NOTION_TOKEN") != "" {
		fmt.Println("NOTION_TOKEN:    set")
	}

	configPath := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("Config file:     %s\n", configPath)
	} else {
		fmt.Println("Config file:     (not found)")
	}

	return nil
}

func maskToken(token string) string {
	if len(token) <= 8 {
		return "****"
	}
	return token[:4] + "****" + token[len(token)-4:]
}
