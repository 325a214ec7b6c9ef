package adaptor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gym-booking/internal/dto/request"
	"gym-booking/internal/dto/response"
	"gym-booking/internal/usecase"
	"gym-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// stubBookingService mengembalikan error yang diskrip per test
type stubBookingService struct {
	createErr error
	cancelErr error
	listErr   error
}

func (s *stubBookingService) CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) error {
	return s.createErr
}

func (s *stubBookingService) GetUserBookings(ctx context.Context, userID string) ([]response.BookingResponse, error) {
	return nil, s.listErr
}

func (s *stubBookingService) CancelBooking(ctx context.Context, userID string, bookingID string) error {
	return s.cancelErr
}

func authedRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := utils.SetUserContext(req.Context(), uuid.New(), "MEMBER")
	return req.WithContext(ctx)
}

func TestCreateBookingHandler_StatusCodes(t *testing.T) {
	body := `{"class_id":"` + uuid.New().String() + `"}`

	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"booked", nil, http.StatusOK},
		{"invalid input", usecase.ErrInvalidInput, http.StatusBadRequest},
		{"no membership", usecase.ErrNoActiveMembership, http.StatusForbidden},
		{"class unavailable", usecase.ErrClassUnavailable, http.StatusBadRequest},
		{"class in past", usecase.ErrClassInPast, http.StatusBadRequest},
		{"class full", usecase.ErrClassFull, http.StatusBadRequest},
		{"already booked", usecase.ErrAlreadyBooked, http.StatusBadRequest},
		{"unknown error", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewBookingHandler(&stubBookingService{createErr: tt.serviceErr}, zap.NewNop())

			rec := httptest.NewRecorder()
			handler.CreateBooking(rec, authedRequest(http.MethodPost, "/api/bookings", body))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCreateBookingHandler_RequiresAuth(t *testing.T) {
	handler := NewBookingHandler(&stubBookingService{}, zap.NewNop())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{}`))
	handler.CreateBooking(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateBookingHandler_BadJSON(t *testing.T) {
	handler := NewBookingHandler(&stubBookingService{}, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.CreateBooking(rec, authedRequest(http.MethodPost, "/api/bookings", "{not json"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCancelBookingHandler_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"cancelled", nil, http.StatusOK},
		{"not allowed", usecase.ErrNotAllowed, http.StatusForbidden},
		{"malformed id", usecase.ErrInvalidInput, http.StatusBadRequest},
		{"unknown error", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewBookingHandler(&stubBookingService{cancelErr: tt.serviceErr}, zap.NewNop())

			bookingID := uuid.New().String()
			req := authedRequest(http.MethodDelete, "/api/bookings/"+bookingID, "")

			// chi.URLParam butuh route context
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", bookingID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			rec := httptest.NewRecorder()
			handler.CancelBooking(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestGetUserBookingsHandler(t *testing.T) {
	handler := NewBookingHandler(&stubBookingService{}, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.GetUserBookings(rec, authedRequest(http.MethodGet, "/api/bookings", ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status"`)
}
