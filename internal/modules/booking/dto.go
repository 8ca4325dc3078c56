package booking

type CreateBookingRequest struct {
	RoomID      int64  `json:"room_id" binding:"required"`
	NumNights   int    `json:"num_nights" binding:"required,gt=0"`
	BookingDate string `json:"booking_date,omitempty"`
}
