package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newParentCmd())
}

func newParentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parent <value>",
		Short: "Find the parent of the node holding a value",
		Long: `The parent command finds the node one level above the node holding the
value. The root has no parent; a value that is not in the tree is reported
as not found.

Example:
  treectl parent 1
  treectl parent 5
  treectl parent 99 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParent(outWriter(cmd), args)
		},
	}
	return cmd
}

func runParent(w io.Writer, args []string) error {
	s, err := loadSession(treeFile)
	if err != nil {
		return fmt.Errorf("failed to load tree: %w", err)
	}
	return s.Parent(w, printerOptions(), args[0])
}
