package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/Fenrir-OwO/hmsproject/internal/domain"
	"github.com/Fenrir-OwO/hmsproject/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type jwtService interface {
	GenerateToken(personID int64, username, role string) (string, error)
}

// Service contains all business logic for authentication
type Service struct {
	persons PersonRepositoryInterface
	jwt     jwtService
}

func NewService(persons PersonRepositoryInterface, jwt jwtService) *Service {
	return &Service{persons: persons, jwt: jwt}
}

type LoginResult struct {
	Person *domain.Person
	Token  string
}

// Signup creates a guest account and logs it in immediately.
func (s *Service) Signup(ctx context.Context, req SignupRequest) (*LoginResult, error) {
	if req.Password != req.PasswordConfirm {
		return nil, ErrPasswordMismatch
	}

	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	taken, err := s.persons.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	taken, err = s.persons.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	person := &domain.Person{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         domain.RoleGuest,
		IsActive:     true,
	}
	if phone := strings.TrimSpace(req.Phone); phone != "" {
		person.PhoneNumbers = []domain.PhoneNumber{{Number: phone}}
	}

	if err := s.persons.Create(ctx, person); err != nil {
		// Unique index is the backstop for the race between the exists
		// check and the insert.
		if repository.IsUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	token, err := s.jwt.GenerateToken(person.ID, person.Username, string(person.Role))
	if err != nil {
		return nil, err
	}

	person.PasswordHash = ""
	return &LoginResult{Person: person, Token: token}, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	person, err := s.persons.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !person.IsActive {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(person.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(person.ID, person.Username, string(person.Role))
	if err != nil {
		return nil, err
	}

	person.PasswordHash = ""
	return &LoginResult{Person: person, Token: token}, nil
}

func (s *Service) GetCurrentPerson(ctx context.Context, personID int64) (*domain.Person, error) {
	person, err := s.persons.GetByID(ctx, personID)
	if err != nil {
		return nil, err
	}
	person.PasswordHash = ""
	return person, nil
}
