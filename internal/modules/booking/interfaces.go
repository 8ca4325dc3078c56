package booking

import (
	"context"

	"github.com/Fenrir-OwO/hmsproject/internal/domain"
)

type BookingRepositoryInterface interface {
	CreateWithHold(ctx context.Context, b *domain.RoomBooking) error
	DeleteWithRelease(ctx context.Context, bookingID, roomID int64) error
	GetByID(ctx context.Context, id int64) (*domain.RoomBooking, error)
	ListByPerson(ctx context.Context, personID int64) ([]domain.RoomBooking, error)
	ListAll(ctx context.Context) ([]domain.RoomBooking, error)
}

type RoomRepositoryInterface interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}
