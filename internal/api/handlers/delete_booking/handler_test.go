package delete_booking

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
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc *mockService, id string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/bookings/{bookingId}", NewHandler(svc, nopLogger{}).Handle)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/bookings/"+id, nil))
	return rec
}

func TestHandler_OK(t *testing.T) {
	id := uuid.New()
	svc := &mockService{}
	svc.On("Delete", mock.Anything, id).Return(nil)

	rec := serve(svc, id.String())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Booking deleted successfully"}`, rec.Body.String())
}

func TestHandler_NotFound(t *testing.T) {
	id := uuid.New()
	svc := &mockService{}
	svc.On("Delete", mock.Anything, id).Return(bookings.ErrBookingNotFound)

	rec := serve(svc, id.String())
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_InvalidID(t *testing.T) {
	svc := &mockService{}

	rec := serve(svc, "nope")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
