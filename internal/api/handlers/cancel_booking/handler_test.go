package cancel_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/GameLounge-BookingService/internal/service/bookings"
	"github.com/m04kA/GameLounge-BookingService/internal/service/bookings/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) CancelByReference(ctx context.Context, reference string) (*models.BookingResponse, error) {
	args := m.Called(ctx, reference)
	resp, _ := args.Get(0).(*models.BookingResponse)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc *mockService, ref string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/bookings/reference/{reference}/cancel", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodPost)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/bookings/reference/"+ref+"/cancel", nil))
	return rec
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name       string
		resp       *models.BookingResponse
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "cancelled", resp: &models.BookingResponse{ReferenceNumber: "KGGAB12CD", Status: "cancelled"}, wantStatus: http.StatusOK, wantBody: `"status":"cancelled"`},
		{name: "not found", err: bookings.ErrBookingNotFound, wantStatus: http.StatusNotFound},
		{name: "already cancelled", err: bookings.ErrCannotCancel, wantStatus: http.StatusBadRequest},
		{name: "too late", err: bookings.ErrTooLateToCancel, wantStatus: http.StatusBadRequest, wantBody: "1 hour before"},
		{name: "internal", err: bookings.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("CancelByReference", mock.Anything, "KGGAB12CD").Return(tt.resp, tt.err)

			rec := serve(svc, "KGGAB12CD")
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}
