package main

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

//go:embed sample.txt
var samplePosting string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "cleaner",
		Short:        "Turn emoji-heavy job posts into a clean, standard job posting",
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	sampleCmd := &cobra.Command{
		Use:   "sample",
		Short: "Print the bundled sample job post",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), samplePosting)
		},
	}

	rootCmd.AddCommand(newCleanCmd())
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(newConfigCmd())
	return rootCmd
}

// newLogger writes human readable diagnostics, the CLI points it at stderr
func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
	}).Level(level).With().Timestamp().Logger()
}
