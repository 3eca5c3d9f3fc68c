package walker

import (
	"errors"
	"iter"
	"slices"

	"github.com/joshuapare/treekit/tree"
)

const (
	// initialStackCapacity covers typical tree depths without reallocating.
	initialStackCapacity = 32

	// initialQueueCapacity is the starting capacity of the level-order queue.
	initialQueueCapacity = 16
)

// ErrStopWalk is a sentinel error that can be returned from walk callbacks
// to stop the walk early without triggering an error condition.
var ErrStopWalk = errors.New("stop walk")

// stackEntry is a position in the iterative depth-first walk.
type stackEntry[T any] struct {
	node  *tree.Node[T]
	state uint8 // 0=initial, 1=left done, 2=right done
}

// Processing states for stackEntry.
const (
	stateInitial = iota
	stateLeftDone
	stateRightDone
)

// InOrder visits the left subtree, then n, then the right subtree.
func InOrder[T any](n *tree.Node[T]) iter.Seq[T] {
	return depthFirst(n, OrderIn)
}

// PreOrder visits n, then the left subtree, then the right subtree.
func PreOrder[T any](n *tree.Node[T]) iter.Seq[T] {
	return depthFirst(n, OrderPre)
}

// PostOrder visits the left subtree, then the right subtree, then n.
func PostOrder[T any](n *tree.Node[T]) iter.Seq[T] {
	return depthFirst(n, OrderPost)
}

// BreadthFirst visits nodes level by level starting at n, left to right
// within each level. A nil n yields nothing.
func BreadthFirst[T any](n *tree.Node[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n == nil {
			return
		}

		queue := make([]*tree.Node[T], 0, initialQueueCapacity)
		queue = append(queue, n)

		for head := 0; head < len(queue); head++ {
			cur := queue[head]
			if cur.Left != nil {
				queue = append(queue, cur.Left)
			}
			if cur.Right != nil {
				queue = append(queue, cur.Right)
			}
			if !yield(cur.Data) {
				return
			}
		}
	}
}

// Traverse returns the sequence for the given order. Unknown orders yield
// nothing.
func Traverse[T any](n *tree.Node[T], order Order) iter.Seq[T] {
	switch order {
	case OrderIn, OrderPre, OrderPost:
		return depthFirst(n, order)
	case OrderLevel:
		return BreadthFirst(n)
	}
	return func(func(T) bool) {}
}

// Collect materializes a traversal into a slice.
func Collect[T any](n *tree.Node[T], order Order) []T {
	return slices.Collect(Traverse(n, order))
}

// Walk calls fn for each value in the given order.
// If fn returns ErrStopWalk, the walk stops early and nil is returned.
// Any other error from fn is returned to the caller.
func Walk[T any](n *tree.Node[T], order Order, fn func(v T) error) error {
	for v := range Traverse(n, order) {
		if err := fn(v); err != nil {
			if errors.Is(err, ErrStopWalk) {
				return nil // Normal early termination
			}
			return err
		}
	}
	return nil
}

// depthFirst walks the subtree at root with an explicit stack and emits
// each node when it reaches the state matching order.
func depthFirst[T any](root *tree.Node[T], order Order) iter.Seq[T] {
	return func(yield func(T) bool) {
		if root == nil {
			return
		}

		stack := make([]stackEntry[T], 0, initialStackCapacity)
		stack = append(stack, stackEntry[T]{node: root, state: stateInitial})

		for len(stack) > 0 {
			entry := &stack[len(stack)-1]
			n := entry.node

			switch entry.state {
			case stateInitial:
				entry.state = stateLeftDone
				if order == OrderPre && !yield(n.Data) {
					return
				}
				if n.Left != nil {
					stack = append(stack, stackEntry[T]{node: n.Left})
				}

			case stateLeftDone:
				entry.state = stateRightDone
				if order == OrderIn && !yield(n.Data) {
					return
				}
				if n.Right != nil {
					stack = append(stack, stackEntry[T]{node: n.Right})
				}

			case stateRightDone:
				stack = stack[:len(stack)-1]
				if order == OrderPost && !yield(n.Data) {
					return
				}
			}
		}
	}
}
