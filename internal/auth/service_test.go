package auth_test

import (
	"testing"
	"time"

	"github.com/Rashed1879/talk-trove-server/internal/auth"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestJWTService_Cycle(t *testing.T) {
	// Arrange
	secret := "super_secret_key"
	expiry := time.Hour
	service := auth.NewJWTService(secret, expiry)
	email := "instructor@talktrove.dev"

	// Act 1: Generate
	token, err := service.GenerateToken(email)

	// Assert 1: Should succeed
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Act 2: Validate
	claims, err := service.ValidateToken(token)

	// Assert 2: Should retrieve the identity unchanged
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, email, claims.Email)
	assert.Equal(t, "talk-trove-server", claims.Issuer)
}

func TestJWTService_InvalidToken(t *testing.T) {
	service := auth.NewJWTService("secret", time.Hour)
	_, err := service.ValidateToken("invalid.token.string")
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	// A token signed with a negative lifetime is already past expiry
	service := auth.NewJWTService("secret", -time.Minute)
	token, err := service.GenerateToken("late@talktrove.dev")
	assert.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_WrongSecret(t *testing.T) {
	signer := auth.NewJWTService("secret_a", time.Hour)
	verifier := auth.NewJWTService("secret_b", time.Hour)

	token, err := signer.GenerateToken("user@talktrove.dev")
	assert.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}
