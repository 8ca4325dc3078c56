package order

import (
	"context"
	"testing"

	"github.com/Fenrir-OwO/hmsproject/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type mockOrderRepo struct {
	mock.Mock
}

func (m *mockOrderRepo) CreateFoodOrder(ctx context.Context, o *domain.FoodOrder) error {
	args := m.Called(ctx, o)
	if args.Error(0) == nil {
		o.ID = 1
	}
	return args.Error(0)
}

func (m *mockOrderRepo) CreateServiceOrder(ctx context.Context, o *domain.ServiceOrder) error {
	args := m.Called(ctx, o)
	if args.Error(0) == nil {
		o.ID = 1
	}
	return args.Error(0)
}

func (m *mockOrderRepo) ListFoodByPerson(ctx context.Context, personID int64) ([]domain.FoodOrder, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FoodOrder), args.Error(1)
}

func (m *mockOrderRepo) ListServiceByPerson(ctx context.Context, personID int64) ([]domain.ServiceOrder, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServiceOrder), args.Error(1)
}

type mockFoodRepo struct {
	mock.Mock
}

func (m *mockFoodRepo) GetByID(ctx context.Context, id int64) (*domain.Food, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Food), args.Error(1)
}

type mockServiceRepo struct {
	mock.Mock
}

func (m *mockServiceRepo) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func TestService_CreateFoodOrder_TruncatesTotal(t *testing.T) {
	orders := new(mockOrderRepo)
	foods := new(mockFoodRepo)

	foods.On("GetByID", mock.Anything, int64(2)).Return(&domain.Food{
		ID:       2,
		Price:    12.50,
		FoodType: domain.FoodPizza,
	}, nil)
	orders.On("CreateFoodOrder", mock.Anything, mock.Anything).Return(nil)

	service := NewService(orders, foods, new(mockServiceRepo))

	o, err := service.CreateFoodOrder(context.Background(), 7, CreateFoodOrderRequest{
		FoodID:   2,
		Quantity: 3,
	})

	assert.NoError(t, err)
	// 12.50 * 3 = 37.5, stored total drops the fraction.
	assert.Equal(t, int64(37), o.TotalPrice)
	assert.Equal(t, domain.PaymentUnpaid, o.PaymentStatus)

	orders.AssertExpectations(t)
}

func TestService_CreateFoodOrder_NotFound(t *testing.T) {
	foods := new(mockFoodRepo)
	foods.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(new(mockOrderRepo), foods, new(mockServiceRepo))

	_, err := service.CreateFoodOrder(context.Background(), 7, CreateFoodOrderRequest{
		FoodID:   99,
		Quantity: 1,
	})

	assert.ErrorIs(t, err, ErrFoodNotFound)
}

func TestService_CreateServiceOrder_Unpaid(t *testing.T) {
	orders := new(mockOrderRepo)
	services := new(mockServiceRepo)

	services.On("GetByID", mock.Anything, int64(4)).Return(&domain.Service{
		ID:          4,
		Price:       30,
		ServiceType: domain.ServiceGym,
	}, nil)
	orders.On("CreateServiceOrder", mock.Anything, mock.Anything).Return(nil)

	service := NewService(orders, new(mockFoodRepo), services)

	o, err := service.CreateServiceOrder(context.Background(), 7, CreateServiceOrderRequest{
		ServiceID: 4,
		Quantity:  2,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(60), o.TotalPrice)
	assert.Equal(t, domain.PaymentUnpaid, o.PaymentStatus)
}

func TestService_ListMine(t *testing.T) {
	orders := new(mockOrderRepo)
	orders.On("ListFoodByPerson", mock.Anything, int64(7)).Return([]domain.FoodOrder{{ID: 1}}, nil)
	orders.On("ListServiceByPerson", mock.Anything, int64(7)).Return([]domain.ServiceOrder{}, nil)

	service := NewService(orders, new(mockFoodRepo), new(mockServiceRepo))

	out, err := service.ListMine(context.Background(), 7)

	assert.NoError(t, err)
	assert.Len(t, out.FoodOrders, 1)
	assert.Empty(t, out.ServiceOrders)
}
