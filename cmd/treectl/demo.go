package main

import (
	"fmt"
	"io"

	"github.com/joshuapare/treekit/tree/printer"
	"github.com/joshuapare/treekit/tree/walker"
	"github.com/spf13/cobra"
)

var (
	demoAll    bool
	demoFind   string
	demoParent string
)

func init() {
	cmd := newDemoCmd()
	cmd.Flags().BoolVar(&demoAll, "all", false, "Also run pre-order, post-order, breadth-first and parent lookup")
	cmd.Flags().StringVar(&demoFind, "find", "77", "Value to look up")
	cmd.Flags().StringVar(&demoParent, "parent", "1", "Value whose parent to look up (with --all)")
	rootCmd.AddCommand(cmd)
}

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the traversal and search demonstration",
		Long: `The demo command builds the tree and prints its in-order traversal and
the result of looking up a value, each section followed by a separator line.

Example:
  treectl demo
  treectl demo --all
  treectl demo --find 6 --file testdata/trees/sample.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(outWriter(cmd))
		},
	}
	return cmd
}

func runDemo(w io.Writer) error {
	s, err := loadSession(treeFile)
	if err != nil {
		return fmt.Errorf("failed to load tree: %w", err)
	}

	opts := printerOptions()

	orders := []walker.Order{walker.OrderIn}
	if demoAll {
		orders = walker.Orders
	}
	if err := s.Traverse(w, opts, orders...); err != nil {
		return err
	}

	if demoAll {
		if err := s.Parent(w, opts, demoParent); err != nil {
			return err
		}
		if err := printSeparator(w, opts); err != nil {
			return err
		}
	}

	if err := s.Find(w, opts, demoFind); err != nil {
		return err
	}
	return printSeparator(w, opts)
}

// printSeparator writes the section separator for opts.
func printSeparator(w io.Writer, opts printer.Options) error {
	return printer.New[any](w, opts).PrintSeparator()
}
