package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/joshuapare/treekit/tree/walker"
	"github.com/spf13/cobra"
)

var (
	traverseOrder   string
	traverseAll     bool
	traverseHeaders bool
)

func init() {
	cmd := newTraverseCmd()
	cmd.Flags().StringVarP(&traverseOrder, "order", "o", "in", "Comma-separated traversal order(s): in, pre, post, level")
	cmd.Flags().BoolVar(&traverseAll, "all", false, "Run every traversal order")
	cmd.Flags().BoolVar(&traverseHeaders, "headers", false, "Print the order name before each sequence")
	rootCmd.AddCommand(cmd)
}

func newTraverseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "traverse",
		Short: "Print the tree's values in one or more traversal orders",
		Long: `The traverse command prints one value per line for each requested order,
followed by a separator line.

Example:
  treectl traverse
  treectl traverse --order pre,post
  treectl traverse --all --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTraverse(outWriter(cmd))
		},
	}
	return cmd
}

func runTraverse(w io.Writer) error {
	orders := walker.Orders
	if !traverseAll {
		names := strings.Split(traverseOrder, ",")
		orders = make([]walker.Order, 0, len(names))
		for _, name := range names {
			order, err := walker.ParseOrder(name)
			if err != nil {
				return err
			}
			orders = append(orders, order)
		}
	}

	s, err := loadSession(treeFile)
	if err != nil {
		return fmt.Errorf("failed to load tree: %w", err)
	}

	opts := printerOptions()
	opts.ShowHeaders = traverseHeaders
	return s.Traverse(w, opts, orders...)
}
