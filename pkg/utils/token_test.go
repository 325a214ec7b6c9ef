package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateAndValidateToken(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateToken(userID, "budi@example.com", "MEMBER", testSecret, 1)
	require.NoError(t, err)

	claims, err := ValidateToken(token, testSecret)
	require.NoError(t, err)

	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "budi@example.com", claims.Email)
	assert.Equal(t, "MEMBER", claims.Role)
}

func TestGenerateToken_EmptySecret(t *testing.T) {
	_, err := GenerateToken(uuid.New(), "budi@example.com", "MEMBER", "", 1)
	assert.ErrorIs(t, err, ErrEmptyJWTSecret)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken(uuid.New(), "budi@example.com", "MEMBER", testSecret, 1)
	require.NoError(t, err)

	_, err = ValidateToken(token, "secret-lain")
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	// expiryHours negatif: token lahir sudah kadaluarsa
	token, err := GenerateToken(uuid.New(), "budi@example.com", "MEMBER", testSecret, -1)
	require.NoError(t, err)

	_, err = ValidateToken(token, testSecret)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("bukan.token.jwt", testSecret)
	assert.Error(t, err)
}

func TestValidateToken_RejectsIncompleteClaims(t *testing.T) {
	sign := func(claims *Claims) string {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := token.SignedString([]byte(testSecret))
		require.NoError(t, err)
		return signed
	}

	base := jwt.RegisteredClaims{
		Issuer:    jwtIssuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	tests := []struct {
		name   string
		claims *Claims
	}{
		{"missing user id", &Claims{Role: "MEMBER", RegisteredClaims: base}},
		{"missing role", &Claims{UserID: uuid.New().String(), RegisteredClaims: base}},
		{"user id not a uuid", &Claims{UserID: "admin", Role: "ADMIN", RegisteredClaims: base}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateToken(sign(tt.claims), testSecret)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestValidateToken_RejectsWrongIssuer(t *testing.T) {
	claims := &Claims{
		UserID: uuid.New().String(),
		Role:   "MEMBER",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "someone-else",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ValidateToken(signed, testSecret)
	assert.Error(t, err)
}
