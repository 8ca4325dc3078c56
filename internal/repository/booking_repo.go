package repository

import (
	"context"
	"time"

	"github.com/Fenrir-OwO/hmsproject/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type roomBookingModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Reference   string    `gorm:"column:reference;uniqueIndex;size:64"`
	RoomID      int64     `gorm:"column:room_id;index"`
	PersonID    int64     `gorm:"column:person_id;index"`
	BookingDate time.Time `gorm:"column:booking_date"`
	NumNights   int       `gorm:"column:num_nights"`
	TotalPrice  float64   `gorm:"column:total_price"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (roomBookingModel) TableName() string { return "room_bookings" }

func toDomainRoomBooking(m roomBookingModel) *domain.RoomBooking {
	return &domain.RoomBooking{
		ID:          m.ID,
		Reference:   m.Reference,
		RoomID:      m.RoomID,
		PersonID:    m.PersonID,
		BookingDate: m.BookingDate,
		NumNights:   m.NumNights,
		TotalPrice:  m.TotalPrice,
		CreatedAt:   m.CreatedAt,
	}
}

// CreateWithHold inserts the booking and flips the room to unavailable in
// one transaction. The room update is a compare-and-set conditioned on
// is_available, so two concurrent requests cannot both take the room.
func (r *BookingRepository) CreateWithHold(ctx context.Context, b *domain.RoomBooking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		hold := tx.Model(&roomModel{}).
			Where("id = ? AND is_available = ?", b.RoomID, true).
			Update("is_available", false)
		if hold.Error != nil {
			return hold.Error
		}
		if hold.RowsAffected == 0 {
			return ErrRoomUnavailable
		}

		m := roomBookingModel{
			Reference:   b.Reference,
			RoomID:      b.RoomID,
			PersonID:    b.PersonID,
			BookingDate: b.BookingDate,
			NumNights:   b.NumNights,
			TotalPrice:  b.TotalPrice,
		}
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		*b = *toDomainRoomBooking(m)
		return nil
	})
}

// DeleteWithRelease removes the booking row and returns the room to the
// available pool, atomically.
func (r *BookingRepository) DeleteWithRelease(ctx context.Context, bookingID, roomID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&roomBookingModel{}, bookingID).Error; err != nil {
			return err
		}
		return tx.Model(&roomModel{}).
			Where("id = ?", roomID).
			Update("is_available", true).Error
	})
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.RoomBooking, error) {
	var m roomBookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRoomBooking(m), nil
}

type bookingRow struct {
	roomBookingModel
	RoomNumber string  `gorm:"column:room_number"`
	RoomType   string  `gorm:"column:room_type"`
	RoomPrice  float64 `gorm:"column:price"`
}

func (r *BookingRepository) listRows(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]domain.RoomBooking, error) {
	q := r.db.WithContext(ctx).
		Table("room_bookings").
		Select("room_bookings.*, rooms.room_number, rooms.room_type, rooms.price").
		Joins("JOIN rooms ON rooms.id = room_bookings.room_id").
		Order("room_bookings.created_at DESC")
	q = scope(q)

	var rows []bookingRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.RoomBooking, 0, len(rows))
	for _, row := range rows {
		b := toDomainRoomBooking(row.roomBookingModel)
		b.Room = &domain.Room{
			ID:         row.RoomID,
			RoomNumber: row.RoomNumber,
			RoomType:   domain.RoomType(row.RoomType),
			Price:      row.RoomPrice,
		}
		out = append(out, *b)
	}
	return out, nil
}

func (r *BookingRepository) ListByPerson(ctx context.Context, personID int64) ([]domain.RoomBooking, error) {
	return r.listRows(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("room_bookings.person_id = ?", personID)
	})
}

func (r *BookingRepository) ListAll(ctx context.Context) ([]domain.RoomBooking, error) {
	return r.listRows(ctx, func(q *gorm.DB) *gorm.DB { return q })
}
