package pricing

import (
	"fmt"

	"github.com/VLazorykOOP/lab3cp2025-Stas0008/internal/catalog"
)

// Leaf wraps exactly one product. It is a terminal node with no children.
type Leaf struct {
	product catalog.Product
}

func NewLeaf(p catalog.Product) *Leaf {
	return &Leaf{product: p}
}

func (l *Leaf) Add(Component) error {
	return fmt.Errorf("add to leaf: %w", ErrUnsupportedOperation)
}

func (l *Leaf) Remove(Component) error {
	return fmt.Errorf("remove from leaf: %w", ErrUnsupportedOperation)
}

func (l *Leaf) TotalPrice() float64 {
	return l.product.Price()
}

func (l *Leaf) Details() string {
	return "  - " + l.product.String()
}
