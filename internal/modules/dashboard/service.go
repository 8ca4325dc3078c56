package dashboard

import (
	"context"

	"github.com/Fenrir-OwO/hmsproject/internal/domain"
)

// Service assembles the role-branched dashboard. Guests see their own
// bookings and orders; staff see everything plus stock levels.
type Service struct {
	bookings  BookingRepositoryInterface
	orders    OrderRepositoryInterface
	inventory InventoryRepositoryInterface
}

func NewService(bookings BookingRepositoryInterface, orders OrderRepositoryInterface, inventory InventoryRepositoryInterface) *Service {
	return &Service{bookings: bookings, orders: orders, inventory: inventory}
}

type View struct {
	Role          string                 `json:"role"`
	Bookings      []domain.RoomBooking   `json:"bookings"`
	FoodOrders    []domain.FoodOrder     `json:"food_orders"`
	ServiceOrders []domain.ServiceOrder  `json:"service_orders"`
	Inventory     []domain.InventoryItem `json:"inventory,omitempty"`
}

func (s *Service) Build(ctx context.Context, personID int64, role domain.PersonRole) (*View, error) {
	view := &View{Role: string(role)}
	var err error

	if role == domain.RoleStaff {
		if view.Bookings, err = s.bookings.ListAll(ctx); err != nil {
			return nil, err
		}
		if view.FoodOrders, err = s.orders.ListAllFood(ctx); err != nil {
			return nil, err
		}
		if view.ServiceOrders, err = s.orders.ListAllService(ctx); err != nil {
			return nil, err
		}
		if view.Inventory, err = s.inventory.List(ctx); err != nil {
			return nil, err
		}
		return view, nil
	}

	if view.Bookings, err = s.bookings.ListByPerson(ctx, personID); err != nil {
		return nil, err
	}
	if view.FoodOrders, err = s.orders.ListFoodByPerson(ctx, personID); err != nil {
		return nil, err
	}
	if view.ServiceOrders, err = s.orders.ListServiceByPerson(ctx, personID); err != nil {
		return nil, err
	}
	return view, nil
}
