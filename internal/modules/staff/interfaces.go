package staff

import (
	"context"

	"github.com/Fenrir-OwO/hmsproject/internal/domain"
)

type PersonRepositoryInterface interface {
	GetByID(ctx context.Context, id int64) (*domain.Person, error)
	SetRole(ctx context.Context, personID int64, role domain.PersonRole) error
}

type EmployeeRepositoryInterface interface {
	Create(ctx context.Context, e *domain.Employee) error
	GetByPersonID(ctx context.Context, personID int64) (*domain.Employee, error)
}
