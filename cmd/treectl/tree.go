package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	treeDepth   int
	treeCompact bool
)

func init() {
	cmd := newTreeCmd()
	cmd.Flags().IntVar(&treeDepth, "depth", 0, "Maximum depth (0 = unlimited)")
	cmd.Flags().BoolVar(&treeCompact, "compact", false, "Compact output")
	rootCmd.AddCommand(cmd)
}

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Display tree structure",
		Long: `The tree command displays the shape of the tree, one node per line,
with children indented below their parent and marked L: or R:.

Example:
  treectl tree
  treectl tree --depth 2
  treectl tree --json --file shape.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(outWriter(cmd))
		},
	}
	return cmd
}

func runTree(w io.Writer) error {
	s, err := loadSession(treeFile)
	if err != nil {
		return fmt.Errorf("failed to load tree: %w", err)
	}

	opts := printerOptions()
	opts.MaxDepth = treeDepth
	if treeCompact {
		opts.IndentSize = 1
	}

	// JSON and plain output go straight through the printer.
	if jsonOut || noColor {
		return s.Draw(w, opts)
	}

	var buf bytes.Buffer
	if err := s.Draw(&buf, opts); err != nil {
		return err
	}

	title := titleStyle.Render(s.Name())
	status := statusStyle.Render(fmt.Sprintf("%d nodes", s.Len()))
	body := boxStyle.Render(strings.TrimRight(buf.String(), "\n"))

	_, err = fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, title, body, status))
	return err
}
