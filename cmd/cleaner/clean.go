package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go-posting-cleaner/internal/config"
	"go-posting-cleaner/internal/dedup"
	"go-posting-cleaner/internal/pipeline"
	"go-posting-cleaner/internal/reporter"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type cleanOptions struct {
	configPath string
	outputPath string
	asJSON     bool
	notify     bool
}

func newCleanCmd() *cobra.Command {
	opts := cleanOptions{}

	cleanCmd := &cobra.Command{
		Use:   "clean [file]",
		Short: "Extract the posting fields and write the clean posting",
		Long: `The clean command reads a raw job post from a file, from stdin when the file is "-",
or uses the bundled sample when no file is given. The clean posting is printed to stdout
and saved to the output path.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean(cmd, args, opts)
		},
	}

	cleanCmd.Flags().StringVar(&opts.configPath, "config", "configs/config.yaml", "path to the YAML config file")
	cleanCmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "where to save the clean posting (overrides config)")
	cleanCmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the extracted fields as JSON instead of the posting")
	cleanCmd.Flags().BoolVar(&opts.notify, "notify", false, "send the posting to Telegram when configured")
	return cleanCmd
}

func runClean(cmd *cobra.Command, args []string, opts cleanOptions) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if opts.outputPath != "" {
		cfg.OutputPath = opts.outputPath
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg.Level())

	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	driver := pipeline.New(pipeline.WithLogger(logger))
	res, runErr := driver.Run(text, cfg.OutputPath)

	if err := printResult(cmd.OutOrStdout(), res, opts.asJSON); err != nil {
		return err
	}
	if runErr != nil {
		if opts.notify && cfg.TelegramEnabled() {
			reportError(cfg, runErr, logger)
		}
		return runErr
	}

	if opts.notify {
		notify(cfg, res, logger)
	}
	return nil
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 {
		return samplePosting, nil
	}

	if args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read posting: %w", err)
	}
	return string(data), nil
}

func printResult(w io.Writer, res pipeline.Result, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res.Record)
	}
	_, err := fmt.Fprintln(w, res.Formatted)
	return err
}

// notify sends the posting to Telegram once, failures only get logged
func notify(cfg *config.Config, res pipeline.Result, logger zerolog.Logger) {
	if !cfg.TelegramEnabled() {
		logger.Warn().Msg("⚠️ --notify set but TELEGRAM_BOT_TOKEN / TELEGRAM_CHAT_ID are missing")
		return
	}

	cache := dedup.NewPostingCache(cfg.CachePath)
	fp := dedup.Fingerprint(res.Record)
	if cache.IsSeen(fp) {
		logger.Info().Str("company", res.Record.Company).Msg("🔍 Posting already announced, skipping Telegram")
		return
	}

	rep, err := reporter.NewTelegramReporter(cfg)
	if err != nil {
		logger.Warn().Err(err).Msg("⚠️ Failed to init Telegram reporter")
		return
	}
	if err := rep.SendPosting(res); err != nil {
		logger.Warn().Err(err).Msg("⚠️ Failed to send posting to Telegram")
		return
	}

	cache.Add(fp)
	logger.Info().Msg("🤖 Posting sent to Telegram")
}

func reportError(cfg *config.Config, runErr error, logger zerolog.Logger) {
	rep, err := reporter.NewTelegramReporter(cfg)
	if err != nil {
		logger.Warn().Err(err).Msg("⚠️ Failed to init Telegram reporter")
		return
	}
	if err := rep.SendError(runErr); err != nil {
		logger.Warn().Err(err).Msg("⚠️ Failed to send error to Telegram")
	}
}
