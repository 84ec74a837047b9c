package calculate_price

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GameLounge-BookingService/internal/service/pricing"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func post(body string) *httptest.ResponseRecorder {
	calc := pricing.NewCalculator(map[string]float64{"vr": 250, "board-games": 80})
	rec := httptest.NewRecorder()
	NewHandler(calc, nopLogger{}).Handle(rec,
		httptest.NewRequest(http.MethodPost, "/api/bookings/calculate-price", strings.NewReader(body)))
	return rec
}

func TestHandler_Price(t *testing.T) {
	rec := post(`{"gameType":"vr","durationMinutes":90,"numPeople":3}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp PriceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 250.0, resp.RatePerHour)
	assert.Equal(t, 1125.0, resp.Price)
}

func TestHandler_Defaults(t *testing.T) {
	rec := post(`{"gameType":"board-games"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp PriceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, 1, resp.NumPeople)
	assert.Equal(t, 80.0, resp.Price)
}

func TestHandler_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, post(`{"gameType":"pinball"}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(`{"gameType":"vr","durationMinutes":0}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(`{"gameType":"vr","numPeople":0}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(`not json`).Code)
}
