package order

type CreateFoodOrderRequest struct {
	FoodID   int64 `json:"food_id" binding:"required"`
	Quantity int   `json:"quantity" binding:"required,gt=0"`
}

type CreateServiceOrderRequest struct {
	ServiceID int64 `json:"service_id" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,gt=0"`
}
