package workflow

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/VLazorykOOP/lab3cp2025-Stas0008/internal/order"
	"github.com/VLazorykOOP/lab3cp2025-Stas0008/internal/pricing"
)

// Processor runs an order through a fixed pipeline: validate, total, discount,
// finalize. The pipeline never varies; only the validation and discount steps
// come from the configured Policy. A Processor holds no per-order state and is
// safe to reuse across orders.
type Processor struct {
	policy Policy
	out    io.Writer
}

func NewProcessor(policy Policy, out io.Writer) *Processor {
	return &Processor{policy: policy, out: out}
}

// NewRetailProcessor returns a Processor for retail orders writing status
// lines to out.
func NewRetailProcessor(out io.Writer) *Processor {
	return NewProcessor(RetailPolicy{}, out)
}

// NewWholesaleProcessor returns a Processor for wholesale orders writing
// status lines to out.
func NewWholesaleProcessor(out io.Writer) *Processor {
	return NewProcessor(WholesalePolicy{}, out)
}

// ProcessOrder runs the pipeline over items. A validation failure aborts the
// order before any total is reported; no receipt is produced and nothing is
// written.
func (p *Processor) ProcessOrder(items []pricing.Component) (*order.Receipt, error) {
	if err := p.policy.Validate(p.out, items); err != nil {
		return nil, fmt.Errorf("validate order: %w", err)
	}
	total := p.computeTotal(items)
	p.policy.ApplyDiscount(p.out)
	return p.finalizeOrder(items, total), nil
}

func (p *Processor) computeTotal(items []pricing.Component) float64 {
	var total float64
	for _, it := range items {
		total += it.TotalPrice()
	}
	fmt.Fprintf(p.out, "Total price: $%v\n", total)
	return total
}

func (p *Processor) finalizeOrder(items []pricing.Component, total float64) *order.Receipt {
	r := &order.Receipt{
		OrderID:   uuid.NewString(),
		Total:     total,
		CreatedAt: time.Now(),
	}
	for _, it := range items {
		r.Lines = append(r.Lines, order.Line{
			Description: it.Details(),
			Price:       it.TotalPrice(),
		})
	}
	fmt.Fprintln(p.out, "Order finalized.")
	return r
}
