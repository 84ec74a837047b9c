package seed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/GameLounge-BookingService/internal/service/catalog/models"
)

type fakeService struct {
	resp *models.SeedResponse
	err  error
}

func (f fakeService) Seed(context.Context) (*models.SeedResponse, error) {
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandler(t *testing.T) {
	t.Run("seeded", func(t *testing.T) {
		svc := fakeService{resp: &models.SeedResponse{Message: "Database seeded successfully", GameTypes: 5, GalleryImages: 12}}

		rec := httptest.NewRecorder()
		NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodPost, "/api/seed", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Database seeded successfully","gameTypes":5,"galleryImages":12}`, rec.Body.String())
	})

	t.Run("failure", func(t *testing.T) {
		svc := fakeService{err: errors.New("db down")}

		rec := httptest.NewRecorder()
		NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodPost, "/api/seed", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "Failed to seed database")
	})
}
