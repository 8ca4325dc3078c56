package domain

import "time"

type InventoryItem struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" validate:"required"`
	Quantity  int       `json:"quantity" validate:"gte=0"`
	UpdatedAt time.Time `json:"updated_at"`
}
