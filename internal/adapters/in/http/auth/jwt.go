// Package auth issues and verifies the bearer tokens of the POD API and
// guards echo routes by user capability.
package auth

import (
	"errors"
	"fmt"
	"time"

	"pod/internal/core/domain/model/kernel"
	"pod/internal/core/domain/model/user"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// Claims is the JWT payload. Role is the wire form of user.Role.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID kernel.UUID
	Email  string
	Role   user.Role
	Name   string
}

// Can reports whether the caller's role grants c.
func (p Principal) Can(c user.Capability) bool {
	return p.Role.Can(c)
}

// JWTManager signs and verifies HS256 tokens.
type JWTManager struct {
	secretKey     []byte
	tokenDuration time.Duration
	clock         kernel.Clock
}

func NewJWTManager(secretKey string, tokenDuration time.Duration, clock kernel.Clock) *JWTManager {
	return &JWTManager{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
		clock:         clock,
	}
}

// GenerateToken issues a token for u that expires after the configured duration.
func (m *JWTManager) GenerateToken(u *user.User) (string, error) {
	now := m.clock.Now()

	claims := Claims{
		UserID: u.ID().String(),
		Email:  u.Email(),
		Role:   u.Role().String(),
		Name:   u.Name(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secretKey)
}

// VerifyToken checks the signature and lifetime of tokenString and returns
// the caller it was issued to.
func (m *JWTManager) VerifyToken(tokenString string) (Principal, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secretKey, nil
	}, jwt.WithTimeFunc(m.clock.Now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Principal{}, ErrExpiredToken
		}
		return Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Principal{}, ErrInvalidToken
	}

	userID, err := kernel.UUIDFromString(claims.UserID)
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	role, err := user.ParseRole(claims.Role)
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	return Principal{
		UserID: userID,
		Email:  claims.Email,
		Role:   role,
		Name:   claims.Name,
	}, nil
}
