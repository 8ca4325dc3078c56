package booking

import (
	"context"
	"errors"
	"time"

	"github.com/Fenrir-OwO/hmsproject/internal/domain"
	"github.com/Fenrir-OwO/hmsproject/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service books rooms and releases them on cancellation. A room can hold
// one active booking at a time; the hold itself happens inside the
// repository transaction so concurrent requests race on the database,
// not on stale reads.
type Service struct {
	bookings BookingRepositoryInterface
	rooms    RoomRepositoryInterface
}

func NewService(bookings BookingRepositoryInterface, rooms RoomRepositoryInterface) *Service {
	return &Service{bookings: bookings, rooms: rooms}
}

func (s *Service) Create(ctx context.Context, personID int64, req CreateBookingRequest) (*domain.RoomBooking, error) {
	room, err := s.rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	bookingDate := time.Now()
	if req.BookingDate != "" {
		bookingDate, err = time.Parse("2006-01-02", req.BookingDate)
		if err != nil {
			return nil, ErrBadBookingDate
		}
	}

	b := &domain.RoomBooking{
		Reference:   uuid.NewString(),
		RoomID:      room.ID,
		PersonID:    personID,
		BookingDate: bookingDate,
		NumNights:   req.NumNights,
		TotalPrice:  domain.BookingTotal(room.Price, req.NumNights),
	}

	if err := s.bookings.CreateWithHold(ctx, b); err != nil {
		if errors.Is(err, repository.ErrRoomUnavailable) {
			return nil, ErrRoomUnavailable
		}
		return nil, err
	}

	b.Room = room
	return b, nil
}

func (s *Service) ListMine(ctx context.Context, personID int64) ([]domain.RoomBooking, error) {
	return s.bookings.ListByPerson(ctx, personID)
}

func (s *Service) ListAll(ctx context.Context) ([]domain.RoomBooking, error) {
	return s.bookings.ListAll(ctx)
}

// Cancel deletes the booking and puts the room back on the market. Only
// the booking owner or staff may cancel; anyone else gets ErrNotOwner
// and nothing changes.
func (s *Service) Cancel(ctx context.Context, personID int64, role domain.PersonRole, bookingID int64) error {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		return err
	}

	if b.PersonID != personID && role != domain.RoleStaff {
		return ErrNotOwner
	}

	return s.bookings.DeleteWithRelease(ctx, b.ID, b.RoomID)
}
