// Package search looks up nodes in binary search trees.
//
// Both lookups descend from the root comparing the wanted value against each
// node: equal stops, less goes left, greater goes right. They trust the
// binary-search-tree property and never verify it; on a tree that violates
// it they return wrong or missing results rather than an error.
package search

import (
	"cmp"
	"fmt"

	"github.com/joshuapare/treekit/tree"
)

// Find returns the node of t holding v, or nil when v is not in the tree.
// A miss is a normal outcome, not an error.
func Find[T cmp.Ordered](t *tree.Tree[T], v T) *tree.Node[T] {
	return FindFunc(t, v, cmp.Compare[T])
}

// FindFunc is like Find but orders values with compare.
func FindFunc[T any](t *tree.Tree[T], v T, compare func(a, b T) int) *tree.Node[T] {
	if t == nil {
		return nil
	}

	cur := t.Root
	for cur != nil {
		c := compare(v, cur.Data)
		switch {
		case c == 0:
			return cur
		case c < 0:
			cur = cur.Left
		default:
			cur = cur.Right
		}
	}

	return nil
}

// Contains reports whether v is in t.
func Contains[T cmp.Ordered](t *tree.Tree[T], v T) bool {
	return Find(t, v) != nil
}

// FindParent returns the parent of target in the tree rooted at root.
//
// The descent compares target.Data against each node's data, so target only
// needs to carry the wanted value; it does not have to be the very node stored
// in the tree. Values must be unique for the answer to be meaningful.
//
// Returns (nil, nil) when target's value is held by root itself. Returns an
// error wrapping tree.ErrNotFound when root is nil or the value is not
// reachable in the tree.
func FindParent[T cmp.Ordered](root, target *tree.Node[T]) (*tree.Node[T], error) {
	return FindParentFunc(root, target, cmp.Compare[T])
}

// FindParentFunc is like FindParent but orders values with compare.
func FindParentFunc[T any](root, target *tree.Node[T], compare func(a, b T) int) (*tree.Node[T], error) {
	if target == nil {
		return nil, fmt.Errorf("find parent: nil target: %w", tree.ErrInvalid)
	}
	if root == nil {
		return nil, fmt.Errorf("find parent of %v: empty tree: %w", target.Data, tree.ErrNotFound)
	}

	var parent *tree.Node[T]
	cur := root
	for cur != nil {
		c := compare(target.Data, cur.Data)
		if c == 0 {
			return parent, nil
		}

		parent = cur
		if c < 0 {
			cur = cur.Left
		} else {
			cur = cur.Right
		}
	}

	return nil, fmt.Errorf("find parent of %v: %w", target.Data, tree.ErrNotFound)
}

// FindParentOf is a convenience wrapper for FindParent that takes the wanted
// value instead of a node.
func FindParentOf[T cmp.Ordered](root *tree.Node[T], v T) (*tree.Node[T], error) {
	return FindParent(root, tree.NewNode(v))
}
