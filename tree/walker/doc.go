// Package walker provides the traversal orders for tree.Node values.
//
// # Overview
//
// Four orders are supported:
//
//   - InOrder: left subtree, node, right subtree (ascending under the BST property)
//   - PreOrder: node, left subtree, right subtree (root before its subtrees)
//   - PostOrder: left subtree, right subtree, node (descendants before ancestors)
//   - BreadthFirst: level by level, left to right within a level
//
// Each traversal is an iter.Seq, so callers pull values lazily and may stop
// at any time:
//
//	for v := range walker.InOrder(t.Root) {
//	    fmt.Println(v)
//	}
//
// A sequence is single-pass but restartable: ranging over it again starts a
// fresh walk from the root it was built with.
//
// # Iterative Depth-First Traversal
//
// The depth-first orders share one iterative walk over an explicit stack:
//
//	type stackEntry[T any] struct {
//	    node  *tree.Node[T]
//	    state uint8
//	}
//
// Processing states:
//   - stateInitial: nothing visited yet (pre-order emits here)
//   - stateLeftDone: left subtree finished (in-order emits here)
//   - stateRightDone: both subtrees finished (post-order emits here), pop
//
// Depth is bounded by memory rather than by the goroutine stack, so
// degenerate (list-shaped) trees are walked without recursion.
//
// # Empty Trees
//
// Every traversal of a nil node yields nothing, BreadthFirst included.
//
// # Callbacks
//
// Walk drives a traversal with a callback. Returning ErrStopWalk from the
// callback stops the walk early without an error; any other error is
// returned to the caller.
//
// # Thread Safety
//
// Sequences hold no shared state. Concurrent walks of the same unmodified
// tree are safe.
package walker
