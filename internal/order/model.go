package order

import "time"

// Line is one priced entry captured from a processed order.
type Line struct {
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// Receipt records the outcome of a successfully processed order.
type Receipt struct {
	OrderID   string    `json:"orderId"`
	Lines     []Line    `json:"lines"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"createdAt"`
}
