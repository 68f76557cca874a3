package order

import "sync"

// Store keeps receipts from processed orders, in insertion order.
type Store interface {
	Append(r *Receipt)
	List() []Receipt
}

type store struct {
	mu       sync.Mutex
	receipts []Receipt
}

// NewStore returns an in-memory Store.
func NewStore() Store {
	return &store{}
}

func (s *store) Append(r *Receipt) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.receipts = append(s.receipts, *r)
}

// List returns a copy; callers may mutate the result freely.
func (s *store) List() []Receipt {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Receipt, len(s.receipts))
	copy(out, s.receipts)
	return out
}
