package inventory

import (
	"context"
	"errors"
	"strings"

	"github.com/Fenrir-OwO/hmsproject/internal/domain"
	"github.com/Fenrir-OwO/hmsproject/internal/repository"

	"gorm.io/gorm"
)

// Service manages housekeeping stock. Staff-only; quantities never go
// below zero.
type Service struct {
	items InventoryRepositoryInterface
}

func NewService(items InventoryRepositoryInterface) *Service {
	return &Service{items: items}
}

func (s *Service) List(ctx context.Context) ([]domain.InventoryItem, error) {
	return s.items.List(ctx)
}

func (s *Service) Create(ctx context.Context, req CreateItemRequest) (*domain.InventoryItem, error) {
	item := &domain.InventoryItem{
		Name:     strings.TrimSpace(req.Name),
		Quantity: req.Quantity,
	}
	if err := s.items.Create(ctx, item); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrNameTaken
		}
		return nil, err
	}
	return item, nil
}

func (s *Service) Adjust(ctx context.Context, id int64, req AdjustItemRequest) (*domain.InventoryItem, error) {
	if (req.Quantity == nil) == (req.Delta == nil) {
		return nil, ErrBadAdjustment
	}

	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	quantity := item.Quantity
	if req.Quantity != nil {
		quantity = *req.Quantity
	} else {
		quantity += *req.Delta
	}
	if quantity < 0 {
		quantity = 0
	}

	if err := s.items.SetQuantity(ctx, id, quantity); err != nil {
		return nil, err
	}

	item.Quantity = quantity
	return item, nil
}
