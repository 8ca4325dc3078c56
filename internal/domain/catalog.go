package domain

type FoodType string

const (
	FoodPizza  FoodType = "pizza"
	FoodBurger FoodType = "burger"
	FoodPasta  FoodType = "pasta"
)

type Food struct {
	ID          int64    `json:"id"`
	ItemNumber  string   `json:"item_number" validate:"required"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price" validate:"required,gte=0"`
	FoodType    FoodType `json:"food_type" validate:"required"`
}

type ServiceType string

const (
	ServiceKidsPlayingZone ServiceType = "kids_playing_zone"
	ServiceGym             ServiceType = "gym"
	ServiceSwimmingPool    ServiceType = "swimming_pool"
	ServiceGamingZone      ServiceType = "gaming_zone"
	ServiceBicycleRides    ServiceType = "bicycle_rides"
	ServiceTouristBus      ServiceType = "tourist_bus"
)

type Service struct {
	ID          int64       `json:"id"`
	ServiceID   string      `json:"service_id" validate:"required"`
	Description string      `json:"description,omitempty"`
	Price       float64     `json:"price" validate:"required,gte=0"`
	ServiceType ServiceType `json:"service_type" validate:"required"`
}
