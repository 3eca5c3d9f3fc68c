package printer

import (
	"fmt"
	"iter"
	"strings"

	"github.com/joshuapare/treekit/tree"
	"github.com/joshuapare/treekit/tree/walker"
)

const (
	notFoundText  = "Node not found"
	rootNodeText  = "Specified node is root node."
	emptyTreeText = "(empty)"
)

// printSequenceText prints one value per line.
func (p *Printer[T]) printSequenceText(order walker.Order, seq iter.Seq[T]) error {
	if p.opts.ShowHeaders {
		if _, err := fmt.Fprintf(p.writer, "%s:\n", order); err != nil {
			return err
		}
	}

	for v := range seq {
		if _, err := fmt.Fprintln(p.writer, v); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer[T]) printFindText(n *tree.Node[T]) error {
	if n == nil {
		_, err := fmt.Fprintln(p.writer, notFoundText)
		return err
	}
	_, err := fmt.Fprintf(p.writer, "Found node with data %v\n", n.Data)
	return err
}

func (p *Printer[T]) printParentText(parent *tree.Node[T], lookupErr error) error {
	var err error
	switch {
	case lookupErr != nil:
		_, err = fmt.Fprintln(p.writer, lookupErr.Error())
	case parent == nil:
		_, err = fmt.Fprintln(p.writer, rootNodeText)
	default:
		_, err = fmt.Fprintf(p.writer, "Parent node = %v\n", parent.Data)
	}
	return err
}

// printTreeText prints n and its children, one node per line, children
// indented below their parent with an L:/R: marker.
func (p *Printer[T]) printTreeText(n *tree.Node[T], side string, depth int) error {
	if n == nil {
		if depth == 0 {
			_, err := fmt.Fprintln(p.writer, emptyTreeText)
			return err
		}
		return nil
	}

	// Check depth limit
	if !p.withinDepth(depth) {
		return nil
	}

	indent := strings.Repeat(" ", depth*p.opts.IndentSize)
	if _, err := fmt.Fprintf(p.writer, "%s%s%v\n", indent, side, n.Data); err != nil {
		return err
	}

	if err := p.printTreeText(n.Left, "L: ", depth+1); err != nil {
		return err
	}
	return p.printTreeText(n.Right, "R: ", depth+1)
}
