package dto

import "github.com/golang-jwt/jwt/v5"

// AuthClaims are the JWT claims carried by access tokens.
type AuthClaims struct {
	UserID    string `json:"uid"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}
