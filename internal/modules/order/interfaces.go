package order

import (
	"context"

	"github.com/Fenrir-OwO/hmsproject/internal/domain"
)

type OrderRepositoryInterface interface {
	CreateFoodOrder(ctx context.Context, o *domain.FoodOrder) error
	CreateServiceOrder(ctx context.Context, o *domain.ServiceOrder) error
	ListFoodByPerson(ctx context.Context, personID int64) ([]domain.FoodOrder, error)
	ListServiceByPerson(ctx context.Context, personID int64) ([]domain.ServiceOrder, error)
}

type FoodRepositoryInterface interface {
	GetByID(ctx context.Context, id int64) (*domain.Food, error)
}

type ServiceRepositoryInterface interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}
