package pricing

import "strings"

// Group holds a named, ordered list of child components and aggregates their
// prices. Each child is owned by exactly one group; sharing a child between
// groups or building a cycle is not detected.
type Group struct {
	name     string
	children []Component
}

func NewGroup(name string) *Group {
	return &Group{name: name}
}

func (g *Group) Name() string {
	return g.name
}

func (g *Group) Add(child Component) error {
	g.children = append(g.children, child)
	return nil
}

// Remove drops the first occurrence of child, matched by identity. Removing a
// child that is not present is a no-op.
func (g *Group) Remove(child Component) error {
	for i, c := range g.children {
		if c == child {
			g.children = append(g.children[:i], g.children[i+1:]...)
			break
		}
	}
	return nil
}

// TotalPrice sums the children's totals in insertion order.
func (g *Group) TotalPrice() float64 {
	var total float64
	for _, c := range g.children {
		total += c.TotalPrice()
	}
	return total
}

func (g *Group) Details() string {
	var sb strings.Builder
	sb.WriteString(g.name + " contains:\n")
	for _, c := range g.children {
		sb.WriteString(c.Details())
		sb.WriteString("\n")
	}
	return sb.String()
}
