package workflow

import (
	"errors"
	"fmt"
	"io"

	"github.com/VLazorykOOP/lab3cp2025-Stas0008/internal/pricing"
)

// ErrInvalidOrder reports an order that failed a policy's validation.
var ErrInvalidOrder = errors.New("invalid order")

// Policy supplies the two variable steps of order processing. The surrounding
// pipeline is fixed by Processor.
type Policy interface {
	// Validate checks items against the policy's preconditions, reporting
	// progress on w. A failure wraps ErrInvalidOrder and produces no output.
	Validate(w io.Writer, items []pricing.Component) error
	// ApplyDiscount reports the policy's discount on w. The reported total
	// is not adjusted.
	ApplyDiscount(w io.Writer)
}

// RetailPolicy accepts any non-empty order and grants a 5% discount.
type RetailPolicy struct{}

func (RetailPolicy) Validate(w io.Writer, items []pricing.Component) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: order cannot be empty", ErrInvalidOrder)
	}
	fmt.Fprintln(w, "Validating retail order...")
	return nil
}

func (RetailPolicy) ApplyDiscount(w io.Writer) {
	fmt.Fprintln(w, "Applying 5% retail discount.")
}

// WholesalePolicy requires at least three items and grants a 15% discount.
type WholesalePolicy struct{}

func (WholesalePolicy) Validate(w io.Writer, items []pricing.Component) error {
	if len(items) < 3 {
		return fmt.Errorf("%w: wholesale order must contain at least 3 items", ErrInvalidOrder)
	}
	fmt.Fprintln(w, "Validating wholesale order...")
	return nil
}

func (WholesalePolicy) ApplyDiscount(w io.Writer) {
	fmt.Fprintln(w, "Applying 15% wholesale discount.")
}
