package catalog

import (
	"errors"
	"fmt"
)

// ErrCloneFailed reports that a product could not produce an independent copy.
var ErrCloneFailed = errors.New("product clone failed")

// Product is a priced catalog entry that can produce an independent copy of
// itself. Copies share no mutable state with the original: repricing a clone
// never changes the product it was cloned from.
type Product interface {
	Name() string
	Price() float64
	SetPrice(price float64)
	Clone() Product
	fmt.Stringer
}

// CloneAll copies every product in items, preserving order. It fails with
// ErrCloneFailed if any product yields no independent copy.
func CloneAll(items []Product) ([]Product, error) {
	out := make([]Product, 0, len(items))
	for _, p := range items {
		c := p.Clone()
		if c == nil {
			return nil, fmt.Errorf("clone %s: %w", p.Name(), ErrCloneFailed)
		}
		out = append(out, c)
	}
	return out, nil
}

// Smartphone is a product with a hardware model designation.
type Smartphone struct {
	name  string
	price float64
	model string
}

func NewSmartphone(name string, price float64, model string) *Smartphone {
	return &Smartphone{name: name, price: price, model: model}
}

func (s *Smartphone) Name() string       { return s.name }
func (s *Smartphone) Price() float64     { return s.price }
func (s *Smartphone) SetPrice(p float64) { s.price = p }
func (s *Smartphone) Model() string      { return s.model }

// Clone returns an independent copy. All fields are value types, so a field
// copy is a deep enough copy.
func (s *Smartphone) Clone() Product {
	c := *s
	return &c
}

func (s *Smartphone) String() string {
	return fmt.Sprintf("%s ($%v), Model: %s", s.name, s.price, s.model)
}

// Accessory is a plain product with no variant fields.
type Accessory struct {
	name  string
	price float64
}

func NewAccessory(name string, price float64) *Accessory {
	return &Accessory{name: name, price: price}
}

func (a *Accessory) Name() string       { return a.name }
func (a *Accessory) Price() float64     { return a.price }
func (a *Accessory) SetPrice(p float64) { a.price = p }

func (a *Accessory) Clone() Product {
	c := *a
	return &c
}

func (a *Accessory) String() string {
	return fmt.Sprintf("%s ($%v)", a.name, a.price)
}
