package main

import (
	"fmt"

	"go-posting-cleaner/internal/config"

	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	var configPath string

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("error loading config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "🔧 Config loaded successfully!")
			fmt.Fprintf(out, "   Output Path: %s\n", cfg.OutputPath)
			fmt.Fprintf(out, "   Cache Path: %s\n", cfg.CachePath)
			fmt.Fprintf(out, "   Log Level: %s\n", cfg.LogLevel)
			fmt.Fprintf(out, "   Port: %d\n", cfg.Port)
			fmt.Fprintf(out, "   Telegram: %s\n", telegramStatus(cfg))
			return nil
		},
	}

	configCmd.Flags().StringVar(&configPath, "config", "configs/config.yaml", "path to the YAML config file")
	return configCmd
}

// telegramStatus never prints more than the first characters of the token
func telegramStatus(cfg *config.Config) string {
	if !cfg.TelegramEnabled() {
		return "disabled"
	}
	token := cfg.TelegramToken
	if len(token) > 6 {
		token = token[:6]
	}
	return fmt.Sprintf("enabled (token %s..., chat %d)", token, cfg.TelegramChatID)
}
