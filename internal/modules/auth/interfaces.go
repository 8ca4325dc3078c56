package auth

import (
	"context"

	"github.com/Fenrir-OwO/hmsproject/internal/domain"
)

// PersonRepositoryInterface — only the methods the auth service uses
type PersonRepositoryInterface interface {
	Create(ctx context.Context, p *domain.Person) error
	GetByID(ctx context.Context, id int64) (*domain.Person, error)
	GetByUsername(ctx context.Context, username string) (*domain.Person, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
