package repository

import (
	"context"
	"time"

	"github.com/Fenrir-OwO/hmsproject/internal/domain"

	"gorm.io/gorm"
)

type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

type inventoryItemModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name;uniqueIndex;size:100"`
	Quantity  int       `gorm:"column:quantity"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (inventoryItemModel) TableName() string { return "inventory_items" }

func toDomainInventoryItem(m inventoryItemModel) *domain.InventoryItem {
	return &domain.InventoryItem{
		ID:        m.ID,
		Name:      m.Name,
		Quantity:  m.Quantity,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *InventoryRepository) List(ctx context.Context) ([]domain.InventoryItem, error) {
	var rows []inventoryItemModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.InventoryItem, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainInventoryItem(m))
	}
	return out, nil
}

func (r *InventoryRepository) GetByID(ctx context.Context, id int64) (*domain.InventoryItem, error) {
	var m inventoryItemModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainInventoryItem(m), nil
}

func (r *InventoryRepository) Create(ctx context.Context, item *domain.InventoryItem) error {
	m := inventoryItemModel{Name: item.Name, Quantity: item.Quantity}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*item = *toDomainInventoryItem(m)
	return nil
}

func (r *InventoryRepository) SetQuantity(ctx context.Context, id int64, quantity int) error {
	return r.db.WithContext(ctx).Model(&inventoryItemModel{}).
		Where("id = ?", id).
		Update("quantity", quantity).Error
}

// AdjustQuantity applies a relative delta, clamped at zero by the caller.
func (r *InventoryRepository) AdjustQuantity(ctx context.Context, id int64, delta int) error {
	return r.db.WithContext(ctx).Model(&inventoryItemModel{}).
		Where("id = ?", id).
		Update("quantity", gorm.Expr("quantity + ?", delta)).Error
}
