package inventory

type CreateItemRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Quantity int    `json:"quantity" binding:"gte=0"`
}

// AdjustItemRequest sets an absolute quantity or applies a relative
// delta. Exactly one of the two fields must be present.
type AdjustItemRequest struct {
	Quantity *int `json:"quantity,omitempty"`
	Delta    *int `json:"delta,omitempty"`
}
