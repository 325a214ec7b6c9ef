package wire

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"gym-booking/internal/adaptor"
	"gym-booking/internal/dto/request"
	"gym-booking/internal/dto/response"
	"gym-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubClassService struct{}

func (s *stubClassService) GetClasses(ctx context.Context) ([]response.ClassResponse, error) {
	return []response.ClassResponse{}, nil
}
func (s *stubClassService) CreateClass(ctx context.Context, req *request.CreateClassRequest) (*response.ClassResponse, error) {
	return nil, nil
}
func (s *stubClassService) ToggleClass(ctx context.Context, classID string) (*response.ClassResponse, error) {
	return nil, nil
}
func (s *stubClassService) DeleteClass(ctx context.Context, classID string) error { return nil }

type stubTrainerService struct{}

func (s *stubTrainerService) GetTrainers(ctx context.Context) ([]response.TrainerResponse, error) {
	return []response.TrainerResponse{}, nil
}
func (s *stubTrainerService) CreateTrainer(ctx context.Context, req *request.CreateTrainerRequest) (*response.TrainerResponse, error) {
	return nil, nil
}
func (s *stubTrainerService) DeleteTrainer(ctx context.Context, trainerID string) error { return nil }

func testConfig() *utils.Config {
	return &utils.Config{JWT: utils.JWTConfig{Secret: "test-secret", ExpiryHours: 1}}
}

// Listing class dan trainer bisa diakses tanpa token; mutasinya tetap
// di belakang auth.
func TestCatalogRoutesArePublic(t *testing.T) {
	log := zap.NewNop()
	config := testConfig()

	r := chi.NewRouter()
	wireClass(r, adaptor.NewClassHandler(&stubClassService{}, log), config, log)
	wireTrainer(r, adaptor.NewTrainerHandler(&stubTrainerService{}, log), config, log)

	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
	}{
		{"list classes without token", http.MethodGet, "/api/classes", http.StatusOK},
		{"list trainers without token", http.MethodGet, "/api/trainers/all", http.StatusOK},
		{"create class without token", http.MethodPost, "/api/classes", http.StatusUnauthorized},
		{"toggle class without token", http.MethodPut, "/api/classes/abc/toggle", http.StatusUnauthorized},
		{"create trainer without token", http.MethodPost, "/api/trainers/create", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

// Toggle pakai PUT; PATCH bukan bagian kontrak.
func TestToggleClassMethodIsPut(t *testing.T) {
	log := zap.NewNop()
	r := chi.NewRouter()
	wireClass(r, adaptor.NewClassHandler(&stubClassService{}, log), testConfig(), log)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/classes/abc/toggle", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
