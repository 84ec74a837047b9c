package health

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler("Karthikeya Games Galaxy").Handle(rec, httptest.NewRequest(http.MethodGet, "/api/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Karthikeya Games Galaxy API is running!"}`, rec.Body.String())
}
