package payment

import (
	"context"

	"github.com/Fenrir-OwO/hmsproject/internal/domain"
)

type OrderRepositoryInterface interface {
	ListUnpaidFoodByPerson(ctx context.Context, personID int64) ([]domain.FoodOrder, error)
	ListUnpaidServiceByPerson(ctx context.Context, personID int64) ([]domain.ServiceOrder, error)
}

type PaymentRepositoryInterface interface {
	SettleForPerson(ctx context.Context, payments []domain.Payment, foodOrderIDs, serviceOrderIDs []int64, billing *domain.Billing) ([]domain.Payment, error)
	ListByPerson(ctx context.Context, personID int64) ([]domain.Payment, error)
}
