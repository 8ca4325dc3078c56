package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/Fenrir-OwO/hmsproject/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockOrderRepo struct {
	mock.Mock
}

func (m *mockOrderRepo) ListUnpaidFoodByPerson(ctx context.Context, personID int64) ([]domain.FoodOrder, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FoodOrder), args.Error(1)
}

func (m *mockOrderRepo) ListUnpaidServiceByPerson(ctx context.Context, personID int64) ([]domain.ServiceOrder, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServiceOrder), args.Error(1)
}

type mockPaymentRepo struct {
	mock.Mock
}

func (m *mockPaymentRepo) SettleForPerson(ctx context.Context, payments []domain.Payment, foodOrderIDs, serviceOrderIDs []int64, billing *domain.Billing) ([]domain.Payment, error) {
	args := m.Called(ctx, payments, foodOrderIDs, serviceOrderIDs, billing)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *mockPaymentRepo) ListByPerson(ctx context.Context, personID int64) ([]domain.Payment, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func TestService_Due_SumsBothOrderKinds(t *testing.T) {
	orders := new(mockOrderRepo)
	orders.On("ListUnpaidFoodByPerson", mock.Anything, int64(7)).Return([]domain.FoodOrder{
		{ID: 1, TotalPrice: 37},
		{ID: 2, TotalPrice: 25},
	}, nil)
	orders.On("ListUnpaidServiceByPerson", mock.Anything, int64(7)).Return([]domain.ServiceOrder{
		{ID: 3, TotalPrice: 60},
	}, nil)

	service := NewService(orders, new(mockPaymentRepo))

	due, err := service.Due(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, int64(122), due.TotalDue)
}

func TestService_Settle_OneTransactionCarriesWholeRun(t *testing.T) {
	orders := new(mockOrderRepo)
	payments := new(mockPaymentRepo)

	orders.On("ListUnpaidFoodByPerson", mock.Anything, int64(7)).Return([]domain.FoodOrder{
		{ID: 1, PersonID: 7, TotalPrice: 37},
	}, nil)
	orders.On("ListUnpaidServiceByPerson", mock.Anything, int64(7)).Return([]domain.ServiceOrder{
		{ID: 3, PersonID: 7, TotalPrice: 60},
	}, nil)

	payments.On("SettleForPerson",
		mock.Anything,
		mock.MatchedBy(func(ps []domain.Payment) bool {
			return len(ps) == 2 &&
				ps[0].FoodOrderID != nil && *ps[0].FoodOrderID == 1 &&
				ps[1].ServiceOrderID != nil && *ps[1].ServiceOrderID == 3
		}),
		[]int64{1},
		[]int64{3},
		mock.MatchedBy(func(b *domain.Billing) bool {
			return b.PersonID == 7 && b.Amount == 97 && b.Status == domain.PaymentPaid
		}),
	).Return([]domain.Payment{
		{ID: 10, Reference: "r1", Amount: 37},
		{ID: 11, Reference: "r2", Amount: 60},
	}, nil)

	service := NewService(orders, payments)

	result, err := service.Settle(context.Background(), 7, SettleRequest{Method: "card"})

	assert.NoError(t, err)
	assert.Equal(t, int64(97), result.TotalPaid)
	assert.Len(t, result.Payments, 2)
	assert.NotNil(t, result.Billing)

	orders.AssertExpectations(t)
	payments.AssertExpectations(t)
	// The payments, mark-paid updates and ledger entry travel in one
	// repository call, so a mid-run failure cannot split them.
	payments.AssertNumberOfCalls(t, "SettleForPerson", 1)
}

func TestService_Settle_RepositoryFailureReturnsNoPayments(t *testing.T) {
	orders := new(mockOrderRepo)
	payments := new(mockPaymentRepo)

	orders.On("ListUnpaidFoodByPerson", mock.Anything, int64(7)).Return([]domain.FoodOrder{
		{ID: 1, PersonID: 7, TotalPrice: 37},
	}, nil)
	orders.On("ListUnpaidServiceByPerson", mock.Anything, int64(7)).Return([]domain.ServiceOrder{}, nil)

	payments.On("SettleForPerson", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("deadlock"))

	service := NewService(orders, payments)

	result, err := service.Settle(context.Background(), 7, SettleRequest{Method: "cash"})

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestService_Settle_NothingDue(t *testing.T) {
	orders := new(mockOrderRepo)
	orders.On("ListUnpaidFoodByPerson", mock.Anything, int64(7)).Return([]domain.FoodOrder{}, nil)
	orders.On("ListUnpaidServiceByPerson", mock.Anything, int64(7)).Return([]domain.ServiceOrder{}, nil)

	payments := new(mockPaymentRepo)
	service := NewService(orders, payments)

	_, err := service.Settle(context.Background(), 7, SettleRequest{Method: "cash"})

	assert.ErrorIs(t, err, ErrNothingDue)
	payments.AssertNotCalled(t, "SettleForPerson", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
