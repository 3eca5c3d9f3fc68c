package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newFindCmd())
}

func newFindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <value>",
		Short: "Look up a value by binary-search descent",
		Long: `The find command descends the tree from the root and reports whether
the value is present. A miss is a normal result, not an error.

Example:
  treectl find 6
  treectl find 77 --json
  treectl find cherry --file fruits.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(outWriter(cmd), args)
		},
	}
	return cmd
}

func runFind(w io.Writer, args []string) error {
	s, err := loadSession(treeFile)
	if err != nil {
		return fmt.Errorf("failed to load tree: %w", err)
	}
	return s.Find(w, printerOptions(), args[0])
}
