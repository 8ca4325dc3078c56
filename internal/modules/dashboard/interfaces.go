package dashboard

import (
	"context"

	"github.com/Fenrir-OwO/hmsproject/internal/domain"
)

type BookingRepositoryInterface interface {
	ListByPerson(ctx context.Context, personID int64) ([]domain.RoomBooking, error)
	ListAll(ctx context.Context) ([]domain.RoomBooking, error)
}

type OrderRepositoryInterface interface {
	ListFoodByPerson(ctx context.Context, personID int64) ([]domain.FoodOrder, error)
	ListServiceByPerson(ctx context.Context, personID int64) ([]domain.ServiceOrder, error)
	ListAllFood(ctx context.Context) ([]domain.FoodOrder, error)
	ListAllService(ctx context.Context) ([]domain.ServiceOrder, error)
}

type InventoryRepositoryInterface interface {
	List(ctx context.Context) ([]domain.InventoryItem, error)
}
