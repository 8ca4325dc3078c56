package inventory

import (
	"context"

	"github.com/Fenrir-OwO/hmsproject/internal/domain"
)

type InventoryRepositoryInterface interface {
	List(ctx context.Context) ([]domain.InventoryItem, error)
	GetByID(ctx context.Context, id int64) (*domain.InventoryItem, error)
	Create(ctx context.Context, item *domain.InventoryItem) error
	SetQuantity(ctx context.Context, id int64, quantity int) error
}
