package staff

import (
	"context"
	"errors"

	"github.com/Fenrir-OwO/hmsproject/internal/domain"
	"github.com/Fenrir-OwO/hmsproject/internal/repository"

	"gorm.io/gorm"
)

// Service links employee records to accounts. Creating the record
// promotes the person to the staff role in the same call, so the role
// attribute and the employees table cannot drift apart.
type Service struct {
	persons   PersonRepositoryInterface
	employees EmployeeRepositoryInterface
}

func NewService(persons PersonRepositoryInterface, employees EmployeeRepositoryInterface) *Service {
	return &Service{persons: persons, employees: employees}
}

func (s *Service) CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (*domain.Employee, error) {
	if _, err := s.persons.GetByID(ctx, req.PersonID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonNotFound
		}
		return nil, err
	}

	e := &domain.Employee{
		PersonID:   req.PersonID,
		EmployeeID: req.EmployeeID,
		Salary:     req.Salary,
		JobTitle:   req.JobTitle,
	}
	if err := s.employees.Create(ctx, e); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrAlreadyEmployee
		}
		return nil, err
	}

	if err := s.persons.SetRole(ctx, req.PersonID, domain.RoleStaff); err != nil {
		return nil, err
	}

	return e, nil
}
