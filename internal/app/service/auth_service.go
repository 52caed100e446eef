package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"taskhub/internal/core/domain"
	"taskhub/internal/core/ports"
)

type AuthService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
	rt     runtime
}

func NewAuthService(users ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenIssuer, opts ...Option) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		rt:     newRuntime(opts),
	}
}

func (s *AuthService) Register(ctx context.Context, input domain.RegisterInput) (domain.AuthResult, error) {
	if len(input.Password) > domain.MaxPasswordBytes {
		return domain.AuthResult{}, domain.ErrInvalidInput
	}

	_, err := s.users.FindByEmail(ctx, input.Email)
	switch {
	case err == nil:
		return domain.AuthResult{}, domain.ErrEmailAlreadyExists
	case !errors.Is(err, domain.ErrUserNotFound):
		return domain.AuthResult{}, fmt.Errorf("find user by email: %w", err)
	}

	hash, err := s.hasher.Hash(input.Password)
	if errors.Is(err, domain.ErrInvalidInput) {
		return domain.AuthResult{}, domain.ErrInvalidInput
	}
	if err != nil {
		return domain.AuthResult{}, fmt.Errorf("hash password: %w", err)
	}

	now := s.rt.now()
	user := domain.User{
		ID:           s.rt.newID(),
		Email:        input.Email,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		PasswordHash: hash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return domain.AuthResult{}, fmt.Errorf("create user: %w", err)
	}

	return s.issue(user)
}

func (s *AuthService) Login(ctx context.Context, input domain.LoginInput) (domain.AuthResult, error) {
	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.AuthResult{}, domain.ErrInvalidCredentials
		}
		return domain.AuthResult{}, fmt.Errorf("find user by email: %w", err)
	}

	ok, err := s.hasher.Compare(user.PasswordHash, input.Password)
	if err != nil {
		return domain.AuthResult{}, fmt.Errorf("compare password: %w", err)
	}
	if !ok {
		return domain.AuthResult{}, domain.ErrInvalidCredentials
	}

	// Checked after the password so an inactive account is not revealed to guessers.
	if !user.IsActive {
		return domain.AuthResult{}, domain.ErrAccountDeactivated
	}

	return s.issue(*user)
}

// ValidateTokenClaim resolves claims to the current user record. A user that
// no longer exists yields (nil, nil).
func (s *AuthService) ValidateTokenClaim(ctx context.Context, claims domain.TokenClaims) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return user, nil
}

func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidToken) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidToken, err)
	}

	user, err := s.ValidateTokenClaim(ctx, claims)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidToken
	}
	return user, nil
}

func (s *AuthService) issue(user domain.User) (domain.AuthResult, error) {
	token, err := s.tokens.Issue(domain.TokenClaims{Subject: user.ID, Email: user.Email})
	if err != nil {
		return domain.AuthResult{}, fmt.Errorf("issue token: %w", err)
	}
	return domain.AuthResult{AccessToken: token, User: user}, nil
}

var _ ports.AuthService = (*AuthService)(nil)
