package repository

import (
	"context"
	"time"

	"github.com/Fenrir-OwO/hmsproject/internal/domain"

	"gorm.io/gorm"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

type employeeModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	PersonID   int64     `gorm:"column:person_id;uniqueIndex"`
	EmployeeID string    `gorm:"column:employee_id;uniqueIndex;size:20"`
	Salary     int64     `gorm:"column:salary"`
	JobTitle   string    `gorm:"column:job_title;size:100"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (employeeModel) TableName() string { return "employees" }

func toDomainEmployee(m employeeModel) *domain.Employee {
	return &domain.Employee{
		ID:         m.ID,
		PersonID:   m.PersonID,
		EmployeeID: m.EmployeeID,
		Salary:     m.Salary,
		JobTitle:   m.JobTitle,
		CreatedAt:  m.CreatedAt,
	}
}

func (r *EmployeeRepository) Create(ctx context.Context, e *domain.Employee) error {
	m := employeeModel{
		PersonID:   e.PersonID,
		EmployeeID: e.EmployeeID,
		Salary:     e.Salary,
		JobTitle:   e.JobTitle,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*e = *toDomainEmployee(m)
	return nil
}

func (r *EmployeeRepository) GetByPersonID(ctx context.Context, personID int64) (*domain.Employee, error) {
	var m employeeModel
	tx := r.db.WithContext(ctx).Where("person_id = ?", personID).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainEmployee(m), nil
}
