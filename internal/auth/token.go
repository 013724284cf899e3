package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/shopmeco/backend/internal/lifecycle"
)

const (
	bearerHeader = "Bearer"

	AuthHeader = "Authorization"
)

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	jwt.RegisteredClaims
	UserID uuid.UUID      `json:"userId"`
	Role   lifecycle.Role `json:"role"`
}

// Manager issues and verifies HS256 bearer tokens.
type Manager struct {
	secret []byte
	expiry time.Duration
}

func NewManager(secret string, expiry time.Duration) *Manager {
	return &Manager{secret: []byte(secret), expiry: expiry}
}

func (m *Manager) BuildToken(userID uuid.UUID, role lifecycle.Role) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
		},
		UserID: userID,
		Role:   role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("error while signing token: %w", err)
	}
	return signed, nil
}

func (m *Manager) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID == uuid.Nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ParseAuthHeader extracts the claims from an "Authorization: Bearer <token>"
// header value.
func (m *Manager) ParseAuthHeader(header string) (*Claims, error) {
	headerParts := strings.Split(header, " ")
	if len(headerParts) != 2 {
		return nil, fmt.Errorf("%w: auth header doesn't contain two parts", ErrInvalidToken)
	}
	if headerParts[0] != bearerHeader {
		return nil, fmt.Errorf("%w: first auth header part is invalid", ErrInvalidToken)
	}
	return m.ParseToken(headerParts[1])
}
