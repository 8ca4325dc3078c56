package payment

import (
	"context"

	"github.com/Fenrir-OwO/hmsproject/internal/domain"

	"github.com/google/uuid"
)

// Service settles a person's outstanding orders. Settlement is scoped to
// the caller: each unpaid order gets its own payment record, then the
// run is summarized in a billing ledger entry. The whole run commits in
// one repository transaction.
type Service struct {
	orders   OrderRepositoryInterface
	payments PaymentRepositoryInterface
}

func NewService(orders OrderRepositoryInterface, payments PaymentRepositoryInterface) *Service {
	return &Service{orders: orders, payments: payments}
}

type DueResult struct {
	FoodOrders    []domain.FoodOrder    `json:"food_orders"`
	ServiceOrders []domain.ServiceOrder `json:"service_orders"`
	TotalDue      int64                 `json:"total_due"`
}

func (s *Service) Due(ctx context.Context, personID int64) (*DueResult, error) {
	foodOrders, err := s.orders.ListUnpaidFoodByPerson(ctx, personID)
	if err != nil {
		return nil, err
	}
	serviceOrders, err := s.orders.ListUnpaidServiceByPerson(ctx, personID)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, o := range foodOrders {
		total += o.TotalPrice
	}
	for _, o := range serviceOrders {
		total += o.TotalPrice
	}

	return &DueResult{
		FoodOrders:    foodOrders,
		ServiceOrders: serviceOrders,
		TotalDue:      total,
	}, nil
}

type SettlementResult struct {
	Payments  []domain.Payment `json:"payments"`
	Billing   *domain.Billing  `json:"billing"`
	TotalPaid int64            `json:"total_paid"`
}

func (s *Service) Settle(ctx context.Context, personID int64, req SettleRequest) (*SettlementResult, error) {
	due, err := s.Due(ctx, personID)
	if err != nil {
		return nil, err
	}
	if len(due.FoodOrders) == 0 && len(due.ServiceOrders) == 0 {
		return nil, ErrNothingDue
	}

	payments := make([]domain.Payment, 0, len(due.FoodOrders)+len(due.ServiceOrders))
	foodIDs := make([]int64, 0, len(due.FoodOrders))
	for _, o := range due.FoodOrders {
		orderID := o.ID
		payments = append(payments, domain.Payment{
			Reference:   uuid.NewString(),
			PersonID:    personID,
			Amount:      float64(o.TotalPrice),
			Method:      req.Method,
			FoodOrderID: &orderID,
		})
		foodIDs = append(foodIDs, o.ID)
	}

	serviceIDs := make([]int64, 0, len(due.ServiceOrders))
	for _, o := range due.ServiceOrders {
		orderID := o.ID
		payments = append(payments, domain.Payment{
			Reference:      uuid.NewString(),
			PersonID:       personID,
			Amount:         float64(o.TotalPrice),
			Method:         req.Method,
			ServiceOrderID: &orderID,
		})
		serviceIDs = append(serviceIDs, o.ID)
	}

	billing := &domain.Billing{
		PersonID: personID,
		Amount:   float64(due.TotalDue),
		Status:   domain.PaymentPaid,
	}

	created, err := s.payments.SettleForPerson(ctx, payments, foodIDs, serviceIDs, billing)
	if err != nil {
		return nil, err
	}

	return &SettlementResult{
		Payments:  created,
		Billing:   billing,
		TotalPaid: due.TotalDue,
	}, nil
}

func (s *Service) History(ctx context.Context, personID int64) ([]domain.Payment, error) {
	return s.payments.ListByPerson(ctx, personID)
}
