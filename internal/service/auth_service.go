package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bible-trivia/internal/config"
	"bible-trivia/internal/domain"
	"bible-trivia/internal/dto"
	"bible-trivia/internal/util"

	"github.com/golang-jwt/jwt/v5"
)

const tokenTypeAccess = "access"

var ErrInvalidJWTToken = errors.New("invalid jwt token")

// AuthService validates the access tokens presented to the admin surfaces.
// The promotion pipeline itself only consumes the derived boolean capability
// (domain.AuthChecker); the full login flow lives outside this service.
type AuthService interface {
	CreateToken(ctx context.Context, userID string) (string, error)
	ValidateToken(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
}

type authServiceImpl struct {
	cfg *config.Config
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(cfg *config.Config) (AuthService, error) {
	if cfg.JWT.SecretKey == "" {
		return nil, errors.New("jwt secret key is not configured")
	}
	return &authServiceImpl{cfg: cfg}, nil
}

// CreateToken issues a signed access token for userID.
func (s *authServiceImpl) CreateToken(ctx context.Context, userID string) (string, error) {
	now := time.Now()
	claims := &dto.AuthClaims{
		UserID:    userID,
		TokenType: tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        util.NewULID(),
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWT.AccessTokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and verifies an access token.
func (s *authServiceImpl) ValidateToken(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	claims := &dto.AuthClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWT.SecretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJWTToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidJWTToken
	}
	if claims.TokenType != tokenTypeAccess {
		return nil, fmt.Errorf("%w: not an access token", ErrInvalidJWTToken)
	}
	return claims, nil
}

// contextAuthChecker implements domain.AuthChecker on top of the request
// context: a caller is authenticated when the middleware (or CLI bootstrap)
// has attached a validated caller id.
type contextAuthChecker struct{}

// NewContextAuthChecker creates the AuthChecker used by the pipeline.
func NewContextAuthChecker() domain.AuthChecker {
	return contextAuthChecker{}
}

func (contextAuthChecker) IsAuthenticated(ctx context.Context) bool {
	_, ok := domain.CallerID(ctx)
	return ok
}
