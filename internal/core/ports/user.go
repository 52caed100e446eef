package ports

import (
	"context"

	"taskhub/internal/core/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user domain.User) error
	// FindByEmail and FindByID return domain.ErrUserNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) (bool, error)
}

type TokenIssuer interface {
	Issue(claims domain.TokenClaims) (string, error)
	Verify(token string) (domain.TokenClaims, error)
}

type AuthService interface {
	Register(ctx context.Context, input domain.RegisterInput) (domain.AuthResult, error)
	Login(ctx context.Context, input domain.LoginInput) (domain.AuthResult, error)
	ValidateTokenClaim(ctx context.Context, claims domain.TokenClaims) (*domain.User, error)
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}
