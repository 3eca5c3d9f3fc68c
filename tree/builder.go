package tree

import "cmp"

// Insert adds v to t in binary-search-tree order using the natural ordering.
// It returns false when an equal value is already present; the tree is left
// unchanged in that case, keeping values unique.
func Insert[T cmp.Ordered](t *Tree[T], v T) bool {
	return InsertFunc(t, v, cmp.Compare[T])
}

// InsertFunc is like Insert but orders values with compare, which must return
// a negative number when a < b, zero when a == b and a positive number when a > b.
// Inserting into a nil tree does nothing and returns false.
func InsertFunc[T any](t *Tree[T], v T, compare func(a, b T) int) bool {
	if t == nil {
		return false
	}
	if t.Root == nil {
		t.Root = NewNode(v)
		return true
	}

	cur := t.Root
	for {
		c := compare(v, cur.Data)
		switch {
		case c == 0:
			return false
		case c < 0:
			if cur.Left == nil {
				cur.Left = NewNode(v)
				return true
			}
			cur = cur.Left
		default:
			if cur.Right == nil {
				cur.Right = NewNode(v)
				return true
			}
			cur = cur.Right
		}
	}
}

// FromValues builds a tree by inserting values in order. Duplicates are dropped.
func FromValues[T cmp.Ordered](values ...T) *Tree[T] {
	return FromValuesFunc(cmp.Compare[T], values...)
}

// FromValuesFunc builds a tree by inserting values in order with compare.
func FromValuesFunc[T any](compare func(a, b T) int, values ...T) *Tree[T] {
	t := New[T](nil)
	for _, v := range values {
		InsertFunc(t, v, compare)
	}
	return t
}
