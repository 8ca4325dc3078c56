package repository

import (
	"context"
	"testing"

	"github.com/Fenrir-OwO/hmsproject/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUnpaidFoodOrder(t *testing.T, orders *OrderRepository, personID int64) *domain.FoodOrder {
	t.Helper()
	o := &domain.FoodOrder{
		FoodID:        1,
		PersonID:      personID,
		Quantity:      3,
		TotalPrice:    37,
		PaymentStatus: domain.PaymentUnpaid,
	}
	require.NoError(t, orders.CreateFoodOrder(context.Background(), o))
	return o
}

func TestPaymentRepository_SettleForPerson_CommitsWholeRun(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	orders := NewOrderRepository(db)
	payments := NewPaymentRepository(db)
	o := seedUnpaidFoodOrder(t, orders, 7)

	billing := &domain.Billing{PersonID: 7, Amount: 37, Status: domain.PaymentPaid}
	created, err := payments.SettleForPerson(ctx, []domain.Payment{
		{Reference: "pay-1", PersonID: 7, Amount: 37, Method: "card", FoodOrderID: &o.ID},
	}, []int64{o.ID}, nil, billing)

	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.NotZero(t, created[0].ID)
	assert.NotZero(t, billing.ID)

	unpaid, err := orders.ListUnpaidFoodByPerson(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, unpaid)

	history, err := payments.ListByPerson(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestPaymentRepository_SettleForPerson_RollsBackOnFailure(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	orders := NewOrderRepository(db)
	payments := NewPaymentRepository(db)
	o := seedUnpaidFoodOrder(t, orders, 7)

	// The duplicate reference trips the unique index mid-transaction.
	billing := &domain.Billing{PersonID: 7, Amount: 74, Status: domain.PaymentPaid}
	_, err := payments.SettleForPerson(ctx, []domain.Payment{
		{Reference: "pay-dup", PersonID: 7, Amount: 37, Method: "card", FoodOrderID: &o.ID},
		{Reference: "pay-dup", PersonID: 7, Amount: 37, Method: "card", FoodOrderID: &o.ID},
	}, []int64{o.ID}, nil, billing)
	require.Error(t, err)

	// Nothing from the failed run may survive: the order stays unpaid
	// and no payment row exists for it.
	unpaid, err := orders.ListUnpaidFoodByPerson(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, unpaid, 1)
	assert.Equal(t, domain.PaymentUnpaid, unpaid[0].PaymentStatus)

	history, err := payments.ListByPerson(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, history)
}
