package domain

import "time"

// Payment records a settlement event for a single order. The order
// references are nullable: deleting an order orphans its payment rather
// than erasing the money trail.
type Payment struct {
	ID             int64     `json:"id"`
	Reference      string    `json:"reference"`
	PersonID       int64     `json:"person_id"`
	Amount         float64   `json:"amount"`
	Method         string    `json:"method"`
	PaymentDate    time.Time `json:"payment_date"`
	FoodOrderID    *int64    `json:"food_order_id,omitempty"`
	ServiceOrderID *int64    `json:"service_order_id,omitempty"`
}

// Billing is the per-person ledger entry written when a settlement runs.
type Billing struct {
	ID          int64         `json:"id"`
	PersonID    int64         `json:"person_id"`
	Amount      float64       `json:"amount"`
	Status      PaymentStatus `json:"status"`
	PaymentDate time.Time     `json:"payment_date"`
}
