package repository

import (
	"context"
	"time"

	"github.com/Fenrir-OwO/hmsproject/internal/domain"

	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

type foodOrderModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	FoodID        int64     `gorm:"column:food_id;index"`
	PersonID      int64     `gorm:"column:person_id;index"`
	Quantity      int       `gorm:"column:quantity"`
	OrderDate     time.Time `gorm:"column:order_date"`
	TotalPrice    int64     `gorm:"column:total_price"`
	PaymentStatus string    `gorm:"column:payment_status;size:10"`
}

func (foodOrderModel) TableName() string { return "food_orders" }

type serviceOrderModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	ServiceID     int64     `gorm:"column:service_id;index"`
	PersonID      int64     `gorm:"column:person_id;index"`
	Quantity      int       `gorm:"column:quantity"`
	OrderDate     time.Time `gorm:"column:order_date"`
	TotalPrice    int64     `gorm:"column:total_price"`
	PaymentStatus string    `gorm:"column:payment_status;size:10"`
}

func (serviceOrderModel) TableName() string { return "service_orders" }

func toDomainFoodOrder(m foodOrderModel) *domain.FoodOrder {
	return &domain.FoodOrder{
		ID:            m.ID,
		FoodID:        m.FoodID,
		PersonID:      m.PersonID,
		Quantity:      m.Quantity,
		OrderDate:     m.OrderDate,
		TotalPrice:    m.TotalPrice,
		PaymentStatus: domain.PaymentStatus(m.PaymentStatus),
	}
}

func toDomainServiceOrder(m serviceOrderModel) *domain.ServiceOrder {
	return &domain.ServiceOrder{
		ID:            m.ID,
		ServiceID:     m.ServiceID,
		PersonID:      m.PersonID,
		Quantity:      m.Quantity,
		OrderDate:     m.OrderDate,
		TotalPrice:    m.TotalPrice,
		PaymentStatus: domain.PaymentStatus(m.PaymentStatus),
	}
}

func (r *OrderRepository) CreateFoodOrder(ctx context.Context, o *domain.FoodOrder) error {
	m := foodOrderModel{
		FoodID:        o.FoodID,
		PersonID:      o.PersonID,
		Quantity:      o.Quantity,
		OrderDate:     o.OrderDate,
		TotalPrice:    o.TotalPrice,
		PaymentStatus: string(o.PaymentStatus),
	}
	if m.OrderDate.IsZero() {
		m.OrderDate = time.Now()
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*o = *toDomainFoodOrder(m)
	return nil
}

func (r *OrderRepository) CreateServiceOrder(ctx context.Context, o *domain.ServiceOrder) error {
	m := serviceOrderModel{
		ServiceID:     o.ServiceID,
		PersonID:      o.PersonID,
		Quantity:      o.Quantity,
		OrderDate:     o.OrderDate,
		TotalPrice:    o.TotalPrice,
		PaymentStatus: string(o.PaymentStatus),
	}
	if m.OrderDate.IsZero() {
		m.OrderDate = time.Now()
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*o = *toDomainServiceOrder(m)
	return nil
}

func (r *OrderRepository) listFood(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]domain.FoodOrder, error) {
	q := r.db.WithContext(ctx).Model(&foodOrderModel{}).Order("order_date DESC")
	var rows []foodOrderModel
	if err := scope(q).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.FoodOrder, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainFoodOrder(m))
	}
	return out, nil
}

func (r *OrderRepository) listService(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]domain.ServiceOrder, error) {
	q := r.db.WithContext(ctx).Model(&serviceOrderModel{}).Order("order_date DESC")
	var rows []serviceOrderModel
	if err := scope(q).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.ServiceOrder, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainServiceOrder(m))
	}
	return out, nil
}

func (r *OrderRepository) ListFoodByPerson(ctx context.Context, personID int64) ([]domain.FoodOrder, error) {
	return r.listFood(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("person_id = ?", personID)
	})
}

func (r *OrderRepository) ListServiceByPerson(ctx context.Context, personID int64) ([]domain.ServiceOrder, error) {
	return r.listService(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("person_id = ?", personID)
	})
}

func (r *OrderRepository) ListAllFood(ctx context.Context) ([]domain.FoodOrder, error) {
	return r.listFood(ctx, func(q *gorm.DB) *gorm.DB { return q })
}

func (r *OrderRepository) ListAllService(ctx context.Context) ([]domain.ServiceOrder, error) {
	return r.listService(ctx, func(q *gorm.DB) *gorm.DB { return q })
}

func (r *OrderRepository) ListUnpaidFoodByPerson(ctx context.Context, personID int64) ([]domain.FoodOrder, error) {
	return r.listFood(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("person_id = ? AND payment_status = ?", personID, string(domain.PaymentUnpaid))
	})
}

func (r *OrderRepository) ListUnpaidServiceByPerson(ctx context.Context, personID int64) ([]domain.ServiceOrder, error) {
	return r.listService(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("person_id = ? AND payment_status = ?", personID, string(domain.PaymentUnpaid))
	})
}

// The mark-paid updates only run inside the settlement transaction, so
// they take the transaction handle rather than the repository.
func markFoodOrdersPaid(tx *gorm.DB, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return tx.Model(&foodOrderModel{}).
		Where("id IN ?", ids).
		Update("payment_status", string(domain.PaymentPaid)).Error
}

func markServiceOrdersPaid(tx *gorm.DB, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return tx.Model(&serviceOrderModel{}).
		Where("id IN ?", ids).
		Update("payment_status", string(domain.PaymentPaid)).Error
}
