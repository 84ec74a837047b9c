package update_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
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

func (m *mockService) Update(ctx context.Context, id uuid.UUID, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	args := m.Called(ctx, id, req)
	resp, _ := args.Get(0).(*models.BookingResponse)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc *mockService, id, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/bookings/{bookingId}", NewHandler(svc, nopLogger{}).Handle)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/bookings/"+id, strings.NewReader(body)))
	return rec
}

func TestHandler_OK(t *testing.T) {
	id := uuid.New()
	svc := &mockService{}
	svc.On("Update", mock.Anything, id, mock.MatchedBy(func(req *models.UpdateBookingRequest) bool {
		return req.Status != nil && *req.Status == "confirmed"
	})).Return(&models.BookingResponse{ID: id.String(), Status: "confirmed"}, nil)

	rec := serve(svc, id.String(), `{"status":"confirmed"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"confirmed"`)
	svc.AssertExpectations(t)
}

func TestHandler_Errors(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name       string
		id         string
		body       string
		serviceErr error
		wantStatus int
		wantDetail string
	}{
		{name: "invalid id", id: "42", body: `{}`, wantStatus: http.StatusBadRequest, wantDetail: msgInvalidBookingID},
		{name: "malformed body", id: id.String(), body: `{`, wantStatus: http.StatusBadRequest, wantDetail: msgInvalidRequestBody},
		{name: "not found", id: id.String(), body: `{}`, serviceErr: bookings.ErrBookingNotFound, wantStatus: http.StatusNotFound, wantDetail: msgNotFound},
		{name: "invalid status", id: id.String(), body: `{"status":"lost"}`, serviceErr: bookings.ErrInvalidStatus, wantStatus: http.StatusBadRequest, wantDetail: msgInvalidStatus},
		{name: "internal", id: id.String(), body: `{}`, serviceErr: bookings.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			if tt.serviceErr != nil {
				svc.On("Update", mock.Anything, id, mock.Anything).Return(nil, tt.serviceErr)
			}

			rec := serve(svc, tt.id, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantDetail != "" {
				assert.Contains(t, rec.Body.String(), tt.wantDetail)
			}
			if tt.serviceErr == nil {
				svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}
