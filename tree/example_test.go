package tree_test

import (
	"fmt"

	"github.com/joshuapare/treekit/tree"
)

// ExampleSample shows the fixed demo tree.
func ExampleSample() {
	t := tree.Sample()
	fmt.Println(t.Root.Data, t.Len(), t.Height())
	// Output: 5 7 3
}

// ExampleFromValues builds a search tree from an insertion order.
func ExampleFromValues() {
	t := tree.FromValues(8, 4, 12, 2)
	fmt.Println(t.Root.Left.Left.Data)
	// Output: 2
}
