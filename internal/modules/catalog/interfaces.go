package catalog

import (
	"context"

	"github.com/Fenrir-OwO/hmsproject/internal/domain"
	"github.com/Fenrir-OwO/hmsproject/internal/repository"
)

type RoomRepositoryInterface interface {
	List(ctx context.Context, f repository.RoomFilter) ([]domain.Room, error)
}

type FoodRepositoryInterface interface {
	List(ctx context.Context) ([]domain.Food, error)
}

type ServiceRepositoryInterface interface {
	List(ctx context.Context) ([]domain.Service, error)
}
