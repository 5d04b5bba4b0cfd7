package middleware_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pageza/mixmaster/backend/internal/catalog"
	"github.com/pageza/mixmaster/backend/internal/ledger"
	"github.com/pageza/mixmaster/backend/internal/logger"
	"github.com/pageza/mixmaster/backend/internal/middleware"
	"github.com/pageza/mixmaster/backend/internal/service"
	"github.com/pageza/mixmaster/backend/internal/testhelpers"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{&catalog.ValidationError{Field: "name", Message: "Name required"}, http.StatusBadRequest},
		{&ledger.ModerationError{Message: "no"}, http.StatusUnprocessableEntity},
		{fmt.Errorf("rating: %w", ledger.ErrInvalidRating), http.StatusBadRequest},
		{fmt.Errorf("%w: x", service.ErrRecipeNotFound), http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, middleware.StatusFor(tt.err), tt.err.Error())
	}
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(middleware.AssignRequestID(), middleware.ErrorHandler(logger.Nop()))
	r.GET("/validation", func(c *gin.Context) {
		_ = c.Error(&catalog.ValidationError{Field: "name", Message: "Name required"})
	})
	r.GET("/internal", func(c *gin.Context) {
		_ = c.Error(errors.New("disk on fire"))
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("unexpected")
	})
	r.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	do := func(path string) (*httptest.ResponseRecorder, middleware.ErrorResponse) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		var body middleware.ErrorResponse
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		return w, body
	}

	w, body := do("/validation")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, middleware.ErrorResponse{Error: "Name required", Field: "name"}, body)

	w, body = do("/internal")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal Server Error", body.Error)

	w, body = do("/panic")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal Server Error", body.Error)

	w, _ = do("/ok")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(middleware.AssignRequestID(), middleware.RequestLogger(logger.Nop()))
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.RequestID(c))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(middleware.RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(middleware.RequestIDHeader))
}

func TestCORSAllowsConfiguredOrigins(t *testing.T) {
	r := gin.New()
	r.Use(middleware.CORS([]string{"http://localhost:8081"}))
	r.POST("/api/v1/recipes", func(c *gin.Context) { c.Status(http.StatusCreated) })

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/recipes", nil)
	req.Header.Set("Origin", "http://localhost:8081")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:8081", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/api/v1/recipes", nil)
	req.Header.Set("Origin", "http://evil.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimiter(t *testing.T) {
	client := testhelpers.SetupRedis(t)
	rl := middleware.NewRecipeCreationRateLimiter(client, 2, logger.Nop())

	r := gin.New()
	r.POST("/recipes", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusCreated) })

	post := func(remoteAddr string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/recipes", nil)
		req.RemoteAddr = remoteAddr
		r.ServeHTTP(w, req)
		return w
	}

	codes := make([]int, 0, 3)
	remaining := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		w := post("10.1.2.3:4000")
		codes = append(codes, w.Code)
		remaining = append(remaining, w.Header().Get("X-RateLimit-Remaining"))
		if i == 2 {
			assert.NotEmpty(t, w.Header().Get("Retry-After"))
		}
	}
	assert.Equal(t, []int{http.StatusCreated, http.StatusCreated, http.StatusTooManyRequests}, codes)
	assert.Equal(t, []string{"1", "0", "0"}, remaining)

	w := post("10.9.9.9:4000")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))
}
