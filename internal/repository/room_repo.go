package repository

import (
	"context"
	"time"

	"github.com/Fenrir-OwO/hmsproject/internal/domain"

	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

type roomModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	RoomNumber  string    `gorm:"column:room_number;uniqueIndex;size:50"`
	NumBeds     int       `gorm:"column:num_beds"`
	RoomType    string    `gorm:"column:room_type;size:20"`
	Price       float64   `gorm:"column:price"`
	IsAvailable bool      `gorm:"column:is_available"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (roomModel) TableName() string { return "rooms" }

func toDomainRoom(m roomModel) *domain.Room {
	return &domain.Room{
		ID:          m.ID,
		RoomNumber:  m.RoomNumber,
		NumBeds:     m.NumBeds,
		RoomType:    domain.RoomType(m.RoomType),
		Price:       m.Price,
		IsAvailable: m.IsAvailable,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

type RoomFilter struct {
	AvailableOnly bool
	RoomType      string
}

func (r *RoomRepository) List(ctx context.Context, f RoomFilter) ([]domain.Room, error) {
	q := r.db.WithContext(ctx).Model(&roomModel{}).Order("room_number ASC")
	if f.AvailableOnly {
		q = q.Where("is_available = ?", true)
	}
	if f.RoomType != "" {
		q = q.Where("room_type = ?", f.RoomType)
	}

	var rows []roomModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Room, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainRoom(m))
	}
	return out, nil
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var m roomModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRoom(m), nil
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	m := roomModel{
		RoomNumber:  room.RoomNumber,
		NumBeds:     room.NumBeds,
		RoomType:    string(room.RoomType),
		Price:       room.Price,
		IsAvailable: room.IsAvailable,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*room = *toDomainRoom(m)
	return nil
}
