package repository

import (
	"context"
	"time"

	"github.com/Fenrir-OwO/hmsproject/internal/domain"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

type paymentModel struct {
	ID             int64     `gorm:"column:id;primaryKey"`
	Reference      string    `gorm:"column:reference;uniqueIndex;size:64"`
	PersonID       int64     `gorm:"column:person_id;index"`
	Amount         float64   `gorm:"column:amount"`
	Method         string    `gorm:"column:method;size:50"`
	PaymentDate    time.Time `gorm:"column:payment_date"`
	FoodOrderID    *int64    `gorm:"column:food_order_id"`
	ServiceOrderID *int64    `gorm:"column:service_order_id"`
}

func (paymentModel) TableName() string { return "payments" }

type billingModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	PersonID    int64     `gorm:"column:person_id;index"`
	Amount      float64   `gorm:"column:amount"`
	Status      string    `gorm:"column:status;size:10"`
	PaymentDate time.Time `gorm:"column:payment_date"`
}

func (billingModel) TableName() string { return "billings" }

func toDomainPayment(m paymentModel) *domain.Payment {
	return &domain.Payment{
		ID:             m.ID,
		Reference:      m.Reference,
		PersonID:       m.PersonID,
		Amount:         m.Amount,
		Method:         m.Method,
		PaymentDate:    m.PaymentDate,
		FoodOrderID:    m.FoodOrderID,
		ServiceOrderID: m.ServiceOrderID,
	}
}

// SettleForPerson runs one settlement as a single transaction: every
// payment row, the mark-paid updates and the billing ledger entry
// commit together or not at all, so a failure mid-run cannot leave a
// payment behind for an order still marked unpaid.
func (r *PaymentRepository) SettleForPerson(ctx context.Context, payments []domain.Payment, foodOrderIDs, serviceOrderIDs []int64, billing *domain.Billing) ([]domain.Payment, error) {
	created := make([]domain.Payment, 0, len(payments))

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		for _, p := range payments {
			m := paymentModel{
				Reference:      p.Reference,
				PersonID:       p.PersonID,
				Amount:         p.Amount,
				Method:         p.Method,
				PaymentDate:    p.PaymentDate,
				FoodOrderID:    p.FoodOrderID,
				ServiceOrderID: p.ServiceOrderID,
			}
			if m.PaymentDate.IsZero() {
				m.PaymentDate = now
			}
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
			created = append(created, *toDomainPayment(m))
		}

		if err := markFoodOrdersPaid(tx, foodOrderIDs); err != nil {
			return err
		}
		if err := markServiceOrdersPaid(tx, serviceOrderIDs); err != nil {
			return err
		}

		bm := billingModel{
			PersonID:    billing.PersonID,
			Amount:      billing.Amount,
			Status:      string(billing.Status),
			PaymentDate: billing.PaymentDate,
		}
		if bm.PaymentDate.IsZero() {
			bm.PaymentDate = now
		}
		if err := tx.Create(&bm).Error; err != nil {
			return err
		}
		billing.ID = bm.ID
		billing.PaymentDate = bm.PaymentDate
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *PaymentRepository) ListByPerson(ctx context.Context, personID int64) ([]domain.Payment, error) {
	var rows []paymentModel
	tx := r.db.WithContext(ctx).
		Where("person_id = ?", personID).
		Order("payment_date DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Payment, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainPayment(m))
	}
	return out, nil
}
