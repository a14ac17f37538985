package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a credential fails verification for any
// reason other than expiry.
var ErrInvalidToken = errors.New("invalid token")

// ErrTokenExpired is returned when the credential is well-formed but expired.
var ErrTokenExpired = errors.New("token has expired")

// Service issues and verifies HS256 bearer tokens. Verification yields the
// subject id the token was issued for; everything else about the caller's
// identity stays with the identity provider.
type Service struct {
	secret    []byte
	expiresIn time.Duration
}

// NewService creates a new token Service
func NewService(secret string, expiresIn time.Duration) *Service {
	return &Service{
		secret:    []byte(secret),
		expiresIn: expiresIn,
	}
}

// ExpiresIn reports the lifetime applied to issued tokens.
func (s *Service) ExpiresIn() time.Duration {
	return s.expiresIn
}

// Issue signs a token for the given subject id
func (s *Service) Issue(subject string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": subject,
		"iat": now.Unix(),
		"exp": now.Add(s.expiresIn).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a raw credential and returns its subject id.
// Missing, malformed, expired, or badly signed credentials all fail.
func (s *Service) Verify(raw string) (string, error) {
	if raw == "" {
		return "", ErrInvalidToken
	}

	token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		// Validate the alg is what we expect
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}

	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		return "", ErrInvalidToken
	}
	return subject, nil
}
