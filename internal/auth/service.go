package auth

import (
	"fmt"
	"time"

	"workforce-portal-backend/internal/database/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID string          `json:"user_id" example:"7a1f8c1e-3b0a-4a7d-9c1e-2f4b5d6e7a8b"`
	Email  string          `json:"email" example:"jane.doe@example.com"`
	Role   models.UserRole `json:"role" example:"VAR_SHIFT"`
	jwt.RegisteredClaims
}

// AuthService issues and validates JWT tokens for user sessions
type AuthService struct {
	secret   []byte
	issuer   string
	tokenTTL time.Duration
}

// NewAuthService creates a new authentication service
func NewAuthService(secret, issuer string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		secret:   []byte(secret),
		issuer:   issuer,
		tokenTTL: tokenTTL,
	}
}

// GenerateJWT creates a signed token for the user
func (s *AuthService) GenerateJWT(user *models.User) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID: user.ID.String(),
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

// TokenTTL returns the configured token lifetime
func (s *AuthService) TokenTTL() time.Duration {
	return s.tokenTTL
}

// UserIDFromClaims parses the claims subject as a user UUID
func UserIDFromClaims(claims *AuthClaims) (uuid.UUID, error) {
	return uuid.Parse(claims.UserID)
}
