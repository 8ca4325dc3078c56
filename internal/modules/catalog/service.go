package catalog

import (
	"context"

	"github.com/Fenrir-OwO/hmsproject/internal/domain"
	"github.com/Fenrir-OwO/hmsproject/internal/repository"
)

// Service exposes the browsable hotel catalog: rooms, food menu and
// extra services.
type Service struct {
	rooms    RoomRepositoryInterface
	foods    FoodRepositoryInterface
	services ServiceRepositoryInterface
}

func NewService(rooms RoomRepositoryInterface, foods FoodRepositoryInterface, services ServiceRepositoryInterface) *Service {
	return &Service{rooms: rooms, foods: foods, services: services}
}

type RoomQuery struct {
	AvailableOnly bool
	RoomType      string
}

func (s *Service) ListRooms(ctx context.Context, q RoomQuery) ([]domain.Room, error) {
	if q.RoomType != "" && !domain.RoomType(q.RoomType).Valid() {
		return nil, ErrUnknownRoomType
	}
	return s.rooms.List(ctx, repository.RoomFilter{
		AvailableOnly: q.AvailableOnly,
		RoomType:      q.RoomType,
	})
}

func (s *Service) ListFoods(ctx context.Context) ([]domain.Food, error) {
	return s.foods.List(ctx)
}

func (s *Service) ListServices(ctx context.Context) ([]domain.Service, error) {
	return s.services.List(ctx)
}
