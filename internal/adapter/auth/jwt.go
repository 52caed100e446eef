package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"taskhub/internal/core/domain"
	"taskhub/internal/core/ports"
)

type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTIssuer signs HS256 session tokens carrying the user id (sub) and email.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTIssuer(secret string, ttl time.Duration) *JWTIssuer {
	return &JWTIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// WithClock returns a copy of the issuer that reads time from now.
func (j *JWTIssuer) WithClock(now func() time.Time) *JWTIssuer {
	clone := *j
	clone.now = now
	return &clone
}

func (j *JWTIssuer) Issue(claims domain.TokenClaims) (string, error) {
	issuedAt := j.now()
	registered := jwt.RegisteredClaims{
		Subject:  claims.Subject,
		IssuedAt: jwt.NewNumericDate(issuedAt),
	}
	if j.ttl > 0 {
		registered.ExpiresAt = jwt.NewNumericDate(issuedAt.Add(j.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		Email:            claims.Email,
		RegisteredClaims: registered,
	})
	signed, err := token.SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (j *JWTIssuer) Verify(raw string) (domain.TokenClaims, error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (interface{}, error) {
		return j.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return domain.TokenClaims{}, fmt.Errorf("%w: %w", domain.ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return domain.TokenClaims{}, domain.ErrInvalidToken
	}
	return domain.TokenClaims{Subject: claims.Subject, Email: claims.Email}, nil
}

// IsExpired reports whether err came from an expired token.
func IsExpired(err error) bool {
	return errors.Is(err, jwt.ErrTokenExpired)
}

var _ ports.TokenIssuer = (*JWTIssuer)(nil)
