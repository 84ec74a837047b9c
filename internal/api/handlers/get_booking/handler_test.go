package get_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/GameLounge-BookingService/internal/service/bookings"
	"github.com/m04kA/GameLounge-BookingService/internal/service/bookings/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetByID(ctx context.Context, id uuid.UUID) (*models.BookingResponse, error) {
	args := m.Called(ctx, id)
	resp, _ := args.Get(0).(*models.BookingResponse)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc *mockService, id string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/bookings/{bookingId}", NewHandler(svc, nopLogger{}).Handle)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/bookings/"+id, nil))
	return rec
}

func TestHandler_OK(t *testing.T) {
	id := uuid.New()
	svc := &mockService{}
	svc.On("GetByID", mock.Anything, id).Return(&models.BookingResponse{ID: id.String()}, nil)

	rec := serve(svc, id.String())
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), id.String())
}

func TestHandler_InvalidID(t *testing.T) {
	svc := &mockService{}
	rec := serve(svc, "not-a-uuid")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestHandler_NotFound(t *testing.T) {
	id := uuid.New()
	svc := &mockService{}
	svc.On("GetByID", mock.Anything, id).Return(nil, bookings.ErrBookingNotFound)

	rec := serve(svc, id.String())
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Booking not found")
}
