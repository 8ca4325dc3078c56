package domain

import "time"

type RoomType string

const (
	RoomStandardSingle RoomType = "standard_single"
	RoomPremiumSingle  RoomType = "premium_single"
	RoomStandardDouble RoomType = "standard_double"
	RoomPremiumDouble  RoomType = "premium_double"
	RoomLuxuryFamily   RoomType = "luxury_family"
)

func ValidRoomTypes() []RoomType {
	return []RoomType{
		RoomStandardSingle,
		RoomPremiumSingle,
		RoomStandardDouble,
		RoomPremiumDouble,
		RoomLuxuryFamily,
	}
}

func (t RoomType) Valid() bool {
	for _, v := range ValidRoomTypes() {
		if t == v {
			return true
		}
	}
	return false
}

type Room struct {
	ID          int64     `json:"id"`
	RoomNumber  string    `json:"room_number" validate:"required"`
	NumBeds     int       `json:"num_beds" validate:"required,gt=0"`
	RoomType    RoomType  `json:"room_type" validate:"required"`
	Price       float64   `json:"price" validate:"required,gte=0"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RoomBooking holds a room for a guest. Availability is a boolean on the
// room, not a calendar: one active booking per room at a time.
type RoomBooking struct {
	ID          int64     `json:"id"`
	Reference   string    `json:"reference"`
	RoomID      int64     `json:"room_id" validate:"required"`
	PersonID    int64     `json:"person_id" validate:"required"`
	BookingDate time.Time `json:"booking_date"`
	NumNights   int       `json:"num_nights" validate:"required,gt=0"`
	TotalPrice  float64   `json:"total_price"`
	CreatedAt   time.Time `json:"created_at"`

	Room *Room `json:"room,omitempty"`
}
