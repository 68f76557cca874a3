package pricing

import "errors"

// ErrUnsupportedOperation reports a child mutation attempted on a node that
// cannot hold children.
var ErrUnsupportedOperation = errors.New("unsupported operation")

// Component is a node in a price aggregation tree: either a single priced
// product or a named group of child components.
type Component interface {
	// Add appends a child. Leaves reject it with ErrUnsupportedOperation.
	Add(child Component) error
	// Remove drops the first child identical to the argument. Leaves reject
	// it with ErrUnsupportedOperation.
	Remove(child Component) error
	// TotalPrice aggregates prices over the subtree, recomputed on demand.
	TotalPrice() float64
	// Details renders a human-readable description of the subtree.
	Details() string
}
