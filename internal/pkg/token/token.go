// ================== internal/pkg/token/token.go ==================
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingSecret = errors.New("token signing secret is not configured")
	ErrInvalidToken  = errors.New("invalid token")
)

// Claims is the session token payload. UserID is the numeric application
// user id, not the Mongo document id.
type Claims struct {
	UserID    int64  `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	jwt.RegisteredClaims
}

// Service signs and verifies session tokens. It holds no state beyond the
// secret and the optional lifetime; a zero TTL issues non-expiring tokens.
type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(secret string, ttl time.Duration) *Service {
	return &Service{secret: []byte(secret), ttl: ttl}
}

// Issue signs a fresh token for the given user. When the service TTL is
// zero no exp claim is set and the token stays valid until the secret
// rotates.
func (s *Service) Issue(userID int64, firstName, lastName string) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrMissingSecret
	}

	now := time.Now()
	claims := &Claims{
		UserID:    userID,
		FirstName: firstName,
		LastName:  lastName,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if s.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.secret)
}

// Claims parses and verifies a token, returning its payload.
func (s *Service) Claims(tokenString string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// IsValid reports whether the signature verifies under the current secret.
// Parse failures of any kind are simply "not valid".
func (s *Service) IsValid(tokenString string) bool {
	_, err := s.Claims(tokenString)
	return err == nil
}

// Refresh decodes the payload WITHOUT verifying the signature and reissues
// a freshly signed token with the same identity fields. Callers must not
// treat a successful refresh as proof the incoming token was authentic;
// the auth gate performs that check before this ever runs on a request.
func (s *Service) Refresh(tokenString string) (string, error) {
	parser := jwt.NewParser()
	tok, _, err := parser.ParseUnverified(tokenString, &Claims{})
	if err != nil {
		return "", ErrInvalidToken
	}

	claims, ok := tok.Claims.(*Claims)
	if !ok {
		return "", ErrInvalidToken
	}
	return s.Issue(claims.UserID, claims.FirstName, claims.LastName)
}
