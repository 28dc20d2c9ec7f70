package ports

import (
	"context"

	"github.com/SNcodeur2001/projet-final-todo/internal/core/domain"
)

type UserRepository interface {
	// Create returns domain.ErrLoginTaken on a duplicate login.
	Create(ctx context.Context, user domain.User) (domain.User, error)
	// FindByLogin returns domain.ErrUserNotFound when absent.
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	FindByID(ctx context.Context, id uint64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

type AuthService interface {
	Register(ctx context.Context, input domain.NewUserInput) (domain.User, error)
	Login(ctx context.Context, login, password string) (domain.Session, error)
	// Verify parses and validates a bearer token.
	Verify(token string) (domain.TokenClaims, error)
}

type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
}
