package auth

import (
	"context"
	"testing"

	"github.com/Fenrir-OwO/hmsproject/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type mockPersonRepo struct {
	mock.Mock
}

func (m *mockPersonRepo) Create(ctx context.Context, p *domain.Person) error {
	args := m.Called(ctx, p)
	if args.Error(0) == nil {
		p.ID = 1
	}
	return args.Error(0)
}

func (m *mockPersonRepo) GetByID(ctx context.Context, id int64) (*domain.Person, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Person), args.Error(1)
}

func (m *mockPersonRepo) GetByUsername(ctx context.Context, username string) (*domain.Person, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Person), args.Error(1)
}

func (m *mockPersonRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *mockPersonRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type mockJWTService struct {
	mock.Mock
}

func (m *mockJWTService) GenerateToken(personID int64, username, role string) (string, error) {
	args := m.Called(personID, username, role)
	return args.String(0), args.Error(1)
}

func TestService_Signup_Success(t *testing.T) {
	persons := new(mockPersonRepo)
	jwtSvc := new(mockJWTService)

	persons.On("ExistsByUsername", mock.Anything, "guest1").Return(false, nil)
	persons.On("ExistsByEmail", mock.Anything, "guest1@example.com").Return(false, nil)
	persons.On("Create", mock.Anything, mock.Anything).Return(nil)
	jwtSvc.On("GenerateToken", int64(1), "guest1", "guest").Return("signup-token", nil)

	service := NewService(persons, jwtSvc)

	result, err := service.Signup(context.Background(), SignupRequest{
		Username:        "guest1",
		Email:           "Guest1@Example.com",
		Password:        "securepass",
		PasswordConfirm: "securepass",
		FirstName:       "Test",
		LastName:        "Guest",
	})

	assert.NoError(t, err)
	assert.Equal(t, "signup-token", result.Token)
	assert.Equal(t, "guest1@example.com", result.Person.Email)
	assert.Equal(t, domain.RoleGuest, result.Person.Role)
	assert.Empty(t, result.Person.PasswordHash)

	persons.AssertExpectations(t)
	jwtSvc.AssertExpectations(t)
}

func TestService_Signup_PasswordMismatch(t *testing.T) {
	service := NewService(new(mockPersonRepo), new(mockJWTService))

	_, err := service.Signup(context.Background(), SignupRequest{
		Username:        "guest1",
		Email:           "guest1@example.com",
		Password:        "securepass",
		PasswordConfirm: "different",
	})

	assert.ErrorIs(t, err, ErrPasswordMismatch)
}

func TestService_Signup_UsernameTaken(t *testing.T) {
	persons := new(mockPersonRepo)
	persons.On("ExistsByUsername", mock.Anything, "taken").Return(true, nil)

	service := NewService(persons, new(mockJWTService))

	_, err := service.Signup(context.Background(), SignupRequest{
		Username:        "taken",
		Email:           "new@example.com",
		Password:        "securepass",
		PasswordConfirm: "securepass",
	})

	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestService_Login_Success(t *testing.T) {
	persons := new(mockPersonRepo)
	jwtSvc := new(mockJWTService)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	persons.On("GetByUsername", mock.Anything, "guest1").Return(&domain.Person{
		ID:           10,
		Username:     "guest1",
		PasswordHash: string(hashed),
		Role:         domain.RoleGuest,
		IsActive:     true,
	}, nil)
	jwtSvc.On("GenerateToken", int64(10), "guest1", "guest").Return("login-token", nil)

	service := NewService(persons, jwtSvc)

	result, err := service.Login(context.Background(), LoginRequest{
		Username: "guest1",
		Password: "password123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "login-token", result.Token)
	assert.Empty(t, result.Person.PasswordHash)
}

func TestService_Login_WrongPassword(t *testing.T) {
	persons := new(mockPersonRepo)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	persons.On("GetByUsername", mock.Anything, "guest1").Return(&domain.Person{
		ID:           10,
		Username:     "guest1",
		PasswordHash: string(hashed),
		IsActive:     true,
	}, nil)

	service := NewService(persons, new(mockJWTService))

	_, err := service.Login(context.Background(), LoginRequest{
		Username: "guest1",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownUser(t *testing.T) {
	persons := new(mockPersonRepo)
	persons.On("GetByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(persons, new(mockJWTService))

	_, err := service.Login(context.Background(), LoginRequest{
		Username: "ghost",
		Password: "whatever",
	})

	// Same error for unknown user and wrong password.
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
