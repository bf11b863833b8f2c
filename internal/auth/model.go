package auth

import "github.com/golang-jwt/jwt/v5"

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type Service interface {
	GenerateToken(email string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}
