package order

import "errors"

var (
	ErrFoodNotFound    = errors.New("food item not found")
	ErrServiceNotFound = errors.New("service not found")
)
