package treefile

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/joshuapare/treekit/tree"
)

// Ints builds the tree of an int definition.
func (d *Definition) Ints() (*tree.Tree[int], error) {
	if d.Kind != KindInt {
		return nil, d.errorf(tree.ErrInvalid, "tree holds %s values, not int", d.Kind)
	}
	return build(d, cmp.Compare[int])
}

// Strings builds the tree of a string definition and returns the comparator
// that orders it, which lookups on the tree must also use.
func (d *Definition) Strings() (*tree.Tree[string], func(a, b string) int, error) {
	if d.Kind != KindString {
		return nil, nil, d.errorf(tree.ErrInvalid, "tree holds %s values, not string", d.Kind)
	}

	compare, err := d.StringCompare()
	if err != nil {
		return nil, nil, err
	}

	t, err := build(d, compare)
	if err != nil {
		return nil, nil, err
	}
	return t, compare, nil
}

// StringCompare returns the comparator for a string definition: the
// collation of its language tag, or byte-wise order when none is set.
func (d *Definition) StringCompare() (func(a, b string) int, error) {
	if d.Collation == "" {
		return strings.Compare, nil
	}
	compare, err := tree.Collator(d.Collation)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d.source, err)
	}
	return compare, nil
}

func build[T any](d *Definition, compare func(a, b T) int) (*tree.Tree[T], error) {
	var t *tree.Tree[T]
	if d.Shaped() {
		var root shape[T]
		if err := d.md.PrimitiveDecode(d.Root, &root); err != nil {
			return nil, d.errorf(tree.ErrInvalid, "decode root: %v", err)
		}
		n, err := root.node("root")
		if err != nil {
			return nil, d.errorf(tree.ErrInvalid, "%v", err)
		}
		t = tree.New(n)
	} else {
		var values []T
		if err := d.md.PrimitiveDecode(d.Values, &values); err != nil {
			return nil, d.errorf(tree.ErrInvalid, "decode values: %v", err)
		}
		t = tree.New[T](nil)
		for _, v := range values {
			if !tree.InsertFunc(t, v, compare) {
				return nil, d.errorf(tree.ErrInvalid, "duplicate value %v", v)
			}
		}
	}

	if undecoded := d.md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, d.errorf(tree.ErrInvalid, "unknown keys: %s", strings.Join(keys, ", "))
	}
	return t, nil
}

// node converts a decoded shape into tree nodes. path names s in errors.
func (s *shape[T]) node(path string) (*tree.Node[T], error) {
	if s == nil {
		return nil, nil
	}
	if s.Value == nil {
		return nil, fmt.Errorf("node %s: missing value", path)
	}

	n := tree.NewNode(*s.Value)
	left, err := s.Left.node(path + ".left")
	if err != nil {
		return nil, err
	}
	right, err := s.Right.node(path + ".right")
	if err != nil {
		return nil, err
	}
	n.Left = left
	n.Right = right
	return n, nil
}
