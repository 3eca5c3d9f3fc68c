package printer

import (
	"encoding/json"
	"fmt"
	"iter"

	"github.com/joshuapare/treekit/tree"
	"github.com/joshuapare/treekit/tree/walker"
)

// jsonSequence represents a traversal in JSON format.
type jsonSequence[T any] struct {
	Order  string `json:"order"`
	Values []T    `json:"values"`
}

// jsonFind represents a lookup result in JSON format.
type jsonFind[T any] struct {
	Query T    `json:"query"`
	Found bool `json:"found"`
	Data  *T   `json:"data,omitempty"`
}

// jsonParent represents a parent lookup result in JSON format.
type jsonParent[T any] struct {
	Query  T      `json:"query"`
	Found  bool   `json:"found"`
	IsRoot bool   `json:"is_root"`
	Parent *T     `json:"parent,omitempty"`
	Error  string `json:"error,omitempty"`
}

// jsonNode represents a tree node in JSON format.
type jsonNode[T any] struct {
	Data  T            `json:"data"`
	Left  *jsonNode[T] `json:"left,omitempty"`
	Right *jsonNode[T] `json:"right,omitempty"`
}

func (p *Printer[T]) printSequenceJSON(order walker.Order, seq iter.Seq[T]) error {
	out := jsonSequence[T]{Order: order.String(), Values: []T{}}
	for v := range seq {
		out.Values = append(out.Values, v)
	}
	return p.writeJSON(out)
}

func (p *Printer[T]) printFindJSON(query T, n *tree.Node[T]) error {
	out := jsonFind[T]{Query: query}
	if n != nil {
		out.Found = true
		out.Data = &n.Data
	}
	return p.writeJSON(out)
}

func (p *Printer[T]) printParentJSON(query T, parent *tree.Node[T], lookupErr error) error {
	out := jsonParent[T]{Query: query}
	switch {
	case lookupErr != nil:
		out.Error = lookupErr.Error()
	case parent == nil:
		out.Found = true
		out.IsRoot = true
	default:
		out.Found = true
		out.Parent = &parent.Data
	}
	return p.writeJSON(out)
}

func (p *Printer[T]) printTreeJSON(root *tree.Node[T]) error {
	return p.writeJSON(p.buildJSONTree(root, 0))
}

// buildJSONTree builds a JSON tree structure recursively.
func (p *Printer[T]) buildJSONTree(n *tree.Node[T], depth int) *jsonNode[T] {
	if n == nil || !p.withinDepth(depth) {
		return nil
	}
	return &jsonNode[T]{
		Data:  n.Data,
		Left:  p.buildJSONTree(n.Left, depth+1),
		Right: p.buildJSONTree(n.Right, depth+1),
	}
}

// writeJSON marshals v with indentation and writes it followed by a newline.
func (p *Printer[T]) writeJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(p.writer, "%s\n", data)
	return err
}
