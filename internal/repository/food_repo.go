package repository

import (
	"context"

	"github.com/Fenrir-OwO/hmsproject/internal/domain"

	"gorm.io/gorm"
)

type FoodRepository struct {
	db *gorm.DB
}

func NewFoodRepository(db *gorm.DB) *FoodRepository {
	return &FoodRepository{db: db}
}

type foodModel struct {
	ID          int64   `gorm:"column:id;primaryKey"`
	ItemNumber  string  `gorm:"column:item_number;uniqueIndex;size:50"`
	Description string  `gorm:"column:description;type:text"`
	Price       float64 `gorm:"column:price"`
	FoodType    string  `gorm:"column:food_type;size:10"`
}

func (foodModel) TableName() string { return "foods" }

func toDomainFood(m foodModel) *domain.Food {
	return &domain.Food{
		ID:          m.ID,
		ItemNumber:  m.ItemNumber,
		Description: m.Description,
		Price:       m.Price,
		FoodType:    domain.FoodType(m.FoodType),
	}
}

func (r *FoodRepository) List(ctx context.Context) ([]domain.Food, error) {
	var rows []foodModel
	if err := r.db.WithContext(ctx).Order("item_number ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Food, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainFood(m))
	}
	return out, nil
}

func (r *FoodRepository) GetByID(ctx context.Context, id int64) (*domain.Food, error) {
	var m foodModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainFood(m), nil
}

func (r *FoodRepository) Create(ctx context.Context, f *domain.Food) error {
	m := foodModel{
		ItemNumber:  f.ItemNumber,
		Description: f.Description,
		Price:       f.Price,
		FoodType:    string(f.FoodType),
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*f = *toDomainFood(m)
	return nil
}
