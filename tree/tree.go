package tree

// Node is a single binary-tree cell. A node exclusively owns its children.
type Node[T any] struct {
	Data  T
	Left  *Node[T]
	Right *Node[T]
}

// NewNode returns a leaf holding data. Children are assigned by the caller.
func NewNode[T any](data T) *Node[T] {
	return &Node[T]{Data: data}
}

// IsLeaf reports whether n has no children.
func (n *Node[T]) IsLeaf() bool {
	return n != nil && n.Left == nil && n.Right == nil
}

// Height returns the number of nodes on the longest root-to-leaf path.
// A nil node has height 0.
func (n *Node[T]) Height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.Left.Height(), n.Right.Height())
}

// Len returns the number of nodes in the subtree rooted at n.
func (n *Node[T]) Len() int {
	if n == nil {
		return 0
	}
	return 1 + n.Left.Len() + n.Right.Len()
}

// Tree holds a root reference. A nil Root is an empty tree.
type Tree[T any] struct {
	Root *Node[T]
}

// New returns a tree rooted at root, which may be nil.
func New[T any](root *Node[T]) *Tree[T] {
	return &Tree[T]{Root: root}
}

// Empty reports whether the tree has no root.
func (t *Tree[T]) Empty() bool {
	return t == nil || t.Root == nil
}

// Len returns the number of nodes in the tree.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.Root.Len()
}

// Height returns the height of the tree (0 when empty).
func (t *Tree[T]) Height() int {
	if t == nil {
		return 0
	}
	return t.Root.Height()
}

// Sample builds the fixed seven-node tree:
//
//	     5
//	   /   \
//	  3     7
//	 / \   / \
//	1   4 6   8
func Sample() *Tree[int] {
	root := NewNode(5)
	root.Left = NewNode(3)
	root.Right = NewNode(7)
	root.Left.Left = NewNode(1)
	root.Left.Right = NewNode(4)
	root.Right.Left = NewNode(6)
	root.Right.Right = NewNode(8)

	return New(root)
}
