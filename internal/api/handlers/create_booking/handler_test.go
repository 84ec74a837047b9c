package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	createBooking "github.com/m04kA/GameLounge-BookingService/internal/usecase/create_booking"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*createBooking.Response)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const validBody = `{"name":"Arjun","phone":"+91 98765 43210","gameType":"vr","date":"2025-06-14","timeSlot":"4:00 PM","numPeople":2}`

func post(uc *mockUseCase, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(uc, 60, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body)))
	return rec
}

func TestHandler_Created(t *testing.T) {
	id := uuid.New()
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createBooking.Request) bool {
		return req.DurationMinutes == 60 && req.TimeSlot == "4:00 PM" && req.NumPeople == 2
	})).Return(&createBooking.Response{
		ID:              id,
		ReferenceNumber: "KGGAB12CD",
		Name:            "Arjun",
		GameType:        "vr",
		Date:            time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
		TimeSlot:        "4:00 PM",
		DurationMinutes: 60,
		NumPeople:       2,
		Price:           500,
		Status:          "pending",
	}, nil)

	rec := post(uc, validBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, id.String(), body["id"])
	assert.Equal(t, "KGGAB12CD", body["referenceNumber"])
	assert.Equal(t, "2025-06-14", body["date"])
	assert.Equal(t, "pending", body["status"])
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		ucErr      error
		wantStatus int
	}{
		{name: "malformed body", body: `{"name":`, wantStatus: http.StatusBadRequest},
		{name: "malformed date", body: strings.Replace(validBody, "2025-06-14", "14/06/2025", 1), wantStatus: http.StatusBadRequest},
		{name: "slot full", body: validBody, ucErr: createBooking.ErrSlotNotAvailable, wantStatus: http.StatusConflict},
		{name: "past closing", body: validBody, ucErr: createBooking.ErrExceedsClosingTime, wantStatus: http.StatusBadRequest},
		{name: "unknown game type", body: validBody, ucErr: createBooking.ErrUnknownGameType, wantStatus: http.StatusBadRequest},
		{name: "invalid duration", body: validBody, ucErr: createBooking.ErrInvalidDuration, wantStatus: http.StatusBadRequest},
		{name: "invalid input", body: validBody, ucErr: createBooking.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "internal", body: validBody, ucErr: createBooking.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			if tt.ucErr != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.ucErr)
			}

			rec := post(uc, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
