package router_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"spamlens/internal/domain"
	"spamlens/internal/handler"
	"spamlens/internal/router"
	"spamlens/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestSetup_Routes(t *testing.T) {
	mockSvc := new(mocks.MockClassificationService)
	mockSvc.On("ClassifyText", mock.Anything, "hi mom").
		Return(&domain.TextDecision{Label: domain.LabelHam}, nil)

	r := router.Setup(
		[]string{"*"},
		handler.NewClassifyHandler(mockSvc, 0),
		handler.NewHealthHandler("v1", false),
	)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/predict", strings.NewReader(`{"text":"hi mom"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"label":"ham"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	for _, path := range []string{"/healthz", "/readyz"} {
		w = httptest.NewRecorder()
		req, _ = http.NewRequest(http.MethodGet, path, http.NoBody)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/predict", http.NoBody)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
