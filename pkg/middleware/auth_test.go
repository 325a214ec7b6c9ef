package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"gym-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testJWTConfig = utils.JWTConfig{
	Secret:      "test-secret",
	ExpiryHours: 1,
}

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuth_ValidToken(t *testing.T) {
	userID := uuid.New()
	token, err := utils.GenerateToken(userID, "budi@example.com", "MEMBER", testJWTConfig.Secret, 1)
	require.NoError(t, err)

	var gotUserID uuid.UUID
	var gotRole string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = utils.GetUserIDFromContext(r.Context())
		gotRole, _ = utils.GetRoleFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	Auth(testJWTConfig, zap.NewNop())(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, gotUserID)
	assert.Equal(t, "MEMBER", gotRole)
}

func TestAuth_Rejections(t *testing.T) {
	expired, err := utils.GenerateToken(uuid.New(), "budi@example.com", "MEMBER", testJWTConfig.Secret, -1)
	require.NoError(t, err)

	wrongKey, err := utils.GenerateToken(uuid.New(), "budi@example.com", "MEMBER", "secret-lain", 1)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc123", http.StatusUnauthorized},
		{"garbage token", "Bearer bukan.token.jwt", http.StatusForbidden},
		{"expired token", "Bearer " + expired, http.StatusUnauthorized},
		{"wrong signing key", "Bearer " + wrongKey, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var called bool
			req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			Auth(testJWTConfig, zap.NewNop())(okHandler(&called)).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.False(t, called, "handler must not run")
		})
	}
}

func TestAdmin(t *testing.T) {
	tests := []struct {
		name       string
		role       string
		wantStatus int
		wantCalled bool
	}{
		{"admin passes", "ADMIN", http.StatusOK, true},
		{"member blocked", "MEMBER", http.StatusForbidden, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var called bool
			req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
			ctx := utils.SetUserContext(req.Context(), uuid.New(), tt.role)
			rec := httptest.NewRecorder()

			Admin(zap.NewNop())(okHandler(&called)).ServeHTTP(rec, req.WithContext(ctx))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalled, called)
		})
	}
}

func TestAdmin_WithoutAuthContext(t *testing.T) {
	var called bool
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()

	Admin(zap.NewNop())(okHandler(&called)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}
