package catalog

import (
	"context"
	"testing"

	"github.com/Fenrir-OwO/hmsproject/internal/domain"
	"github.com/Fenrir-OwO/hmsproject/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockRoomRepo struct {
	mock.Mock
}

func (m *mockRoomRepo) List(ctx context.Context, f repository.RoomFilter) ([]domain.Room, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

type mockFoodRepo struct {
	mock.Mock
}

func (m *mockFoodRepo) List(ctx context.Context) ([]domain.Food, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Food), args.Error(1)
}

type mockServiceRepo struct {
	mock.Mock
}

func (m *mockServiceRepo) List(ctx context.Context) ([]domain.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Service), args.Error(1)
}

func TestService_ListRooms_PassesFilter(t *testing.T) {
	rooms := new(mockRoomRepo)
	rooms.On("List", mock.Anything, repository.RoomFilter{
		AvailableOnly: true,
		RoomType:      "luxury_family",
	}).Return([]domain.Room{{ID: 1, RoomNumber: "101"}}, nil)

	service := NewService(rooms, new(mockFoodRepo), new(mockServiceRepo))

	out, err := service.ListRooms(context.Background(), RoomQuery{
		AvailableOnly: true,
		RoomType:      "luxury_family",
	})

	assert.NoError(t, err)
	assert.Len(t, out, 1)
	rooms.AssertExpectations(t)
}

func TestService_ListRooms_UnknownType(t *testing.T) {
	service := NewService(new(mockRoomRepo), new(mockFoodRepo), new(mockServiceRepo))

	_, err := service.ListRooms(context.Background(), RoomQuery{RoomType: "penthouse"})

	assert.ErrorIs(t, err, ErrUnknownRoomType)
}

func TestService_ListFoods(t *testing.T) {
	foods := new(mockFoodRepo)
	foods.On("List", mock.Anything).Return([]domain.Food{
		{ID: 1, ItemNumber: "F-001", FoodType: domain.FoodPizza},
	}, nil)

	service := NewService(new(mockRoomRepo), foods, new(mockServiceRepo))

	out, err := service.ListFoods(context.Background())

	assert.NoError(t, err)
	assert.Len(t, out, 1)
}
