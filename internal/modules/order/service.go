package order

import (
	"context"
	"errors"

	"github.com/Fenrir-OwO/hmsproject/internal/domain"

	"gorm.io/gorm"
)

// Service places food and extra-service orders against the catalog.
// Orders start unpaid and stay so until settlement.
type Service struct {
	orders   OrderRepositoryInterface
	foods    FoodRepositoryInterface
	services ServiceRepositoryInterface
}

func NewService(orders OrderRepositoryInterface, foods FoodRepositoryInterface, services ServiceRepositoryInterface) *Service {
	return &Service{orders: orders, foods: foods, services: services}
}

func (s *Service) CreateFoodOrder(ctx context.Context, personID int64, req CreateFoodOrderRequest) (*domain.FoodOrder, error) {
	food, err := s.foods.GetByID(ctx, req.FoodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFoodNotFound
		}
		return nil, err
	}

	o := &domain.FoodOrder{
		FoodID:        food.ID,
		PersonID:      personID,
		Quantity:      req.Quantity,
		TotalPrice:    domain.OrderTotal(food.Price, req.Quantity),
		PaymentStatus: domain.PaymentUnpaid,
	}

	if err := s.orders.CreateFoodOrder(ctx, o); err != nil {
		return nil, err
	}

	o.Food = food
	return o, nil
}

func (s *Service) CreateServiceOrder(ctx context.Context, personID int64, req CreateServiceOrderRequest) (*domain.ServiceOrder, error) {
	svc, err := s.services.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	o := &domain.ServiceOrder{
		ServiceID:     svc.ID,
		PersonID:      personID,
		Quantity:      req.Quantity,
		TotalPrice:    domain.OrderTotal(svc.Price, req.Quantity),
		PaymentStatus: domain.PaymentUnpaid,
	}

	if err := s.orders.CreateServiceOrder(ctx, o); err != nil {
		return nil, err
	}

	o.Service = svc
	return o, nil
}

type PersonOrders struct {
	FoodOrders    []domain.FoodOrder    `json:"food_orders"`
	ServiceOrders []domain.ServiceOrder `json:"service_orders"`
}

func (s *Service) ListMine(ctx context.Context, personID int64) (*PersonOrders, error) {
	foodOrders, err := s.orders.ListFoodByPerson(ctx, personID)
	if err != nil {
		return nil, err
	}
	serviceOrders, err := s.orders.ListServiceByPerson(ctx, personID)
	if err != nil {
		return nil, err
	}
	return &PersonOrders{FoodOrders: foodOrders, ServiceOrders: serviceOrders}, nil
}
