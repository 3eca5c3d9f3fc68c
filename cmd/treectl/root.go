package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joshuapare/treekit/internal/logger"
	"github.com/joshuapare/treekit/tree/printer"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose  bool
	quiet    bool
	jsonOut  bool
	noColor  bool
	treeFile string
)

var rootCmd = &cobra.Command{
	Use:   "treectl",
	Short: "Traverse and search small binary trees",
	Long: `treectl builds a binary tree (the built-in seven-node sample, or one
defined in a TOML file) and runs in-order, pre-order, post-order and
breadth-first traversals, binary-search lookups and parent lookups on it.`,
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(logger.Options{
			Enabled: verbose && !quiet,
			Output:  cmd.ErrOrStderr(),
			Level:   slog.LevelDebug,
			JSON:    jsonOut,
		})
	},
	SilenceUsage: true,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().
		StringVarP(&treeFile, "file", "f", "", "Tree definition file (TOML); default is the built-in sample")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Helper functions for output

// printerOptions returns printer options for the global output flags.
func printerOptions() printer.Options {
	opts := printer.DefaultOptions()
	if jsonOut {
		opts.Format = printer.FormatJSON
	}
	return opts
}

// outWriter returns the writer results go to; quiet mode discards them.
func outWriter(cmd *cobra.Command) io.Writer {
	if quiet {
		return io.Discard
	}
	return cmd.OutOrStdout()
}
