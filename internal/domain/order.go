package domain

import "time"

type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

// FoodOrder total is stored as an integer, so fractional catalog prices
// truncate (kept from the legacy schema).
type FoodOrder struct {
	ID            int64         `json:"id"`
	FoodID        int64         `json:"food_id" validate:"required"`
	PersonID      int64         `json:"person_id" validate:"required"`
	Quantity      int           `json:"quantity" validate:"required,gt=0"`
	OrderDate     time.Time     `json:"order_date"`
	TotalPrice    int64         `json:"total_price"`
	PaymentStatus PaymentStatus `json:"payment_status"`

	Food *Food `json:"food,omitempty"`
}

type ServiceOrder struct {
	ID            int64         `json:"id"`
	ServiceID     int64         `json:"service_id" validate:"required"`
	PersonID      int64         `json:"person_id" validate:"required"`
	Quantity      int           `json:"quantity" validate:"required,gt=0"`
	OrderDate     time.Time     `json:"order_date"`
	TotalPrice    int64         `json:"total_price"`
	PaymentStatus PaymentStatus `json:"payment_status"`

	Service *Service `json:"service,omitempty"`
}
