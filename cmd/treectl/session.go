package main

import (
	"cmp"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/joshuapare/treekit/internal/logger"
	"github.com/joshuapare/treekit/tree"
	"github.com/joshuapare/treekit/tree/printer"
	"github.com/joshuapare/treekit/tree/search"
	"github.com/joshuapare/treekit/tree/treefile"
	"github.com/joshuapare/treekit/tree/walker"
)

// session runs commands against one loaded tree, whatever its value type.
type session interface {
	Name() string
	Len() int
	Traverse(w io.Writer, opts printer.Options, orders ...walker.Order) error
	Find(w io.Writer, opts printer.Options, query string) error
	Parent(w io.Writer, opts printer.Options, query string) error
	Draw(w io.Writer, opts printer.Options) error
}

// treeSession is a session over a tree of T ordered by compare.
type treeSession[T any] struct {
	name    string
	tree    *tree.Tree[T]
	compare func(a, b T) int
	parse   func(s string) (T, error)
}

// loadSession builds the session for path, or for the sample tree when path
// is empty.
func loadSession(path string) (session, error) {
	if path == "" {
		logger.Debug("using built-in sample tree")
		return &treeSession[int]{
			name:    "sample",
			tree:    tree.Sample(),
			compare: cmp.Compare[int],
			parse:   parseInt,
		}, nil
	}

	logger.Debug("loading tree definition", "path", path)
	def, err := treefile.Load(path)
	if err != nil {
		return nil, err
	}

	name := def.Name
	if name == "" {
		name = path
	}

	switch def.Kind {
	case treefile.KindString:
		t, compare, err := def.Strings()
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded string tree", "name", name, "nodes", t.Len(), "collation", def.Collation)
		return &treeSession[string]{name: name, tree: t, compare: compare, parse: parseString}, nil
	default:
		t, err := def.Ints()
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded int tree", "name", name, "nodes", t.Len(), "shaped", def.Shaped())
		return &treeSession[int]{name: name, tree: t, compare: cmp.Compare[int], parse: parseInt}, nil
	}
}

func (s *treeSession[T]) Name() string { return s.name }

func (s *treeSession[T]) Len() int { return s.tree.Len() }

// Traverse prints each order in turn. Text output puts a separator after
// every order.
func (s *treeSession[T]) Traverse(w io.Writer, opts printer.Options, orders ...walker.Order) error {
	p := printer.New[T](w, opts)
	for _, order := range orders {
		logger.Debug("traversing", "tree", s.name, "order", order.String())
		if err := p.PrintSequence(order, walker.Traverse(s.tree.Root, order)); err != nil {
			return err
		}
		if err := p.PrintSeparator(); err != nil {
			return err
		}
	}
	return nil
}

func (s *treeSession[T]) Find(w io.Writer, opts printer.Options, query string) error {
	v, err := s.parse(query)
	if err != nil {
		return err
	}

	n := search.FindFunc(s.tree, v, s.compare)
	logger.Debug("find", "tree", s.name, "query", v, "found", n != nil)
	return printer.New[T](w, opts).PrintFind(v, n)
}

// Parent prints the parent of the node holding query. A missing node is
// reported in the output rather than returned as a command failure.
func (s *treeSession[T]) Parent(w io.Writer, opts printer.Options, query string) error {
	v, err := s.parse(query)
	if err != nil {
		return err
	}

	parent, lookupErr := search.FindParentFunc(s.tree.Root, tree.NewNode(v), s.compare)
	if lookupErr != nil {
		logger.Warn("parent lookup failed", "tree", s.name, "query", v, "error", lookupErr)
	}
	return printer.New[T](w, opts).PrintParent(v, parent, lookupErr)
}

func (s *treeSession[T]) Draw(w io.Writer, opts printer.Options) error {
	return printer.New[T](w, opts).PrintTree(s.tree.Root)
}

func parseInt(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("value %q: %w: %w", s, tree.ErrInvalid, err)
	}
	return v, nil
}

func parseString(s string) (string, error) {
	return s, nil
}
