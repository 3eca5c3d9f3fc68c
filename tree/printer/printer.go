// Package printer writes traversal and lookup results as text or JSON.
//
// The traversal and search packages return values; this package is the only
// place that formats them for a console or a pipe.
package printer

import (
	"fmt"
	"io"
	"iter"

	"github.com/joshuapare/treekit/tree"
	"github.com/joshuapare/treekit/tree/walker"
)

const (
	DefaultIndentSize = 2
	DefaultMaxDepth   = 0
	DefaultSeparator  = "===================="
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs one human-readable line per item.
	FormatText Format = "text"

	// FormatJSON outputs one JSON document per call.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per tree level (text format only).
	// Default: 2
	IndentSize int

	// MaxDepth limits how many levels PrintTree descends (0 = unlimited).
	// Default: 0 (unlimited)
	MaxDepth int

	// Separator is the line PrintSeparator writes (text format only).
	// Default: "===================="
	Separator string

	// ShowHeaders prefixes each sequence with its order name (text format only).
	// Default: false
	ShowHeaders bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:      FormatText,
		IndentSize:  DefaultIndentSize,
		MaxDepth:    DefaultMaxDepth,
		Separator:   DefaultSeparator,
		ShowHeaders: false,
	}
}

// Printer handles formatted output of tree values.
type Printer[T any] struct {
	opts   Options
	writer io.Writer
}

// New creates a new Printer writing to w.
//
// Example:
//
//	p := printer.New[int](os.Stdout, printer.DefaultOptions())
//	p.PrintSequence(walker.OrderIn, walker.InOrder(t.Root))
//	p.PrintSeparator()
func New[T any](w io.Writer, opts Options) *Printer[T] {
	return &Printer[T]{
		writer: w,
		opts:   opts,
	}
}

// PrintSequence prints every value of seq. The order is only used for
// headers and the JSON "order" field.
func (p *Printer[T]) PrintSequence(order walker.Order, seq iter.Seq[T]) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printSequenceJSON(order, seq)
	case FormatText:
		return p.printSequenceText(order, seq)
	default:
		return p.printSequenceText(order, seq)
	}
}

// PrintSeparator writes the separator line between sections.
// JSON output has no separators.
func (p *Printer[T]) PrintSeparator() error {
	if p.opts.Format == FormatJSON {
		return nil
	}
	sep := p.opts.Separator
	if sep == "" {
		sep = DefaultSeparator
	}
	_, err := fmt.Fprintln(p.writer, sep)
	return err
}

// PrintFind prints the outcome of looking up query; n is the lookup result
// and may be nil.
//
// Example:
//
//	p.PrintFind(77, search.Find(t, 77)) // Node not found
func (p *Printer[T]) PrintFind(query T, n *tree.Node[T]) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printFindJSON(query, n)
	case FormatText:
		return p.printFindText(n)
	default:
		return p.printFindText(n)
	}
}

// PrintParent prints the outcome of a parent lookup for query. A nil parent
// with a nil error means query is the root.
func (p *Printer[T]) PrintParent(query T, parent *tree.Node[T], err error) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printParentJSON(query, parent, err)
	case FormatText:
		return p.printParentText(parent, err)
	default:
		return p.printParentText(parent, err)
	}
}

// PrintTree prints the shape of the subtree at root.
func (p *Printer[T]) PrintTree(root *tree.Node[T]) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printTreeJSON(root)
	case FormatText:
		return p.printTreeText(root, "", 0)
	default:
		return p.printTreeText(root, "", 0)
	}
}

// withinDepth reports whether a node at depth should be printed.
func (p *Printer[T]) withinDepth(depth int) bool {
	return p.opts.MaxDepth <= 0 || depth < p.opts.MaxDepth
}
