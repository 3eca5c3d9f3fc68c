package walker

import (
	"fmt"
	"strings"

	"github.com/joshuapare/treekit/tree"
)

// Order selects a traversal order.
type Order uint8

const (
	OrderIn Order = iota
	OrderPre
	OrderPost
	OrderLevel
)

// Orders lists every traversal order in display order.
var Orders = []Order{OrderIn, OrderPre, OrderPost, OrderLevel}

func (o Order) String() string {
	switch o {
	case OrderIn:
		return "in-order"
	case OrderPre:
		return "pre-order"
	case OrderPost:
		return "post-order"
	case OrderLevel:
		return "breadth-first"
	default:
		return fmt.Sprintf("Order(%d)", uint8(o))
	}
}

// ParseOrder maps a user-supplied name to an Order. Matching is
// case-insensitive and accepts the common aliases ("in", "inorder",
// "level", "bfs", ...).
func ParseOrder(name string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "in", "inorder", "in-order":
		return OrderIn, nil
	case "pre", "preorder", "pre-order":
		return OrderPre, nil
	case "post", "postorder", "post-order":
		return OrderPost, nil
	case "level", "levelorder", "level-order", "bfs", "breadth-first", "breadthfirst":
		return OrderLevel, nil
	}
	return 0, fmt.Errorf("traversal order %q: %w", name, tree.ErrUnsupported)
}
