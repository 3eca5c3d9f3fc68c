// Package tree provides a small generic binary tree and the helpers used to
// build one.
//
// # Overview
//
// A Tree is a thin holder of a root Node. Each Node owns its Left and Right
// children exclusively, so the structure is always a tree: no cycles and no
// shared subtrees. An empty tree has a nil Root and every traversal of it is
// a no-op.
//
// # Building Trees
//
// Nodes can be wired by hand:
//
//	root := tree.NewNode(5)
//	root.Left = tree.NewNode(3)
//	root.Right = tree.NewNode(7)
//	t := tree.New(root)
//
// or inserted in binary-search-tree order:
//
//	t := tree.FromValues(5, 3, 7, 1, 4, 6, 8)
//
// Sample returns the fixed seven-node tree used by the demo driver and tests:
//
//	     5
//	   /   \
//	  3     7
//	 / \   / \
//	1   4 6   8
//
// # Ordering
//
// The lookup helpers in tree/search and the Insert builders rely on the
// binary-search-tree property: every left descendant compares less than its
// ancestor and every right descendant compares greater. The property is a
// precondition supplied by whoever builds the tree. Nothing in this module
// verifies it; a tree that violates it simply produces wrong answers.
//
// Types satisfying cmp.Ordered use the natural ordering. Any other type (or a
// different ordering of an ordered type) goes through the *Func variants with
// a three-way comparator. Collator returns such a comparator for strings
// using locale-aware collation.
//
// # Errors
//
// Errors carry an ErrKind so callers can branch on intent rather than text:
//
//	if errors.Is(err, tree.ErrNotFound) {
//	    // the node is not in the tree
//	}
//
// # Thread Safety
//
// Trees are not synchronized. Concurrent reads are fine; do not mutate a tree
// while another goroutine traverses it.
//
// # Related Packages
//
//   - github.com/joshuapare/treekit/tree/walker: in/pre/post-order and level-order traversal
//   - github.com/joshuapare/treekit/tree/search: BST lookup and parent lookup
//   - github.com/joshuapare/treekit/tree/printer: text and JSON output
//   - github.com/joshuapare/treekit/tree/treefile: TOML tree definitions
package tree
