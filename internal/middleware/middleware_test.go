package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-gin-stream-events/internal/middleware"
	"go-gin-stream-events/internal/model"
	"go-gin-stream-events/internal/observability"
	"go-gin-stream-events/internal/service/mocks"
	"go-gin-stream-events/internal/session"
	apperrors "go-gin-stream-events/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func setupAuthRouter(accounts *mocks.MockAccountService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.Authenticate(accounts))

	router.GET("/optional", func(c *gin.Context) {
		account := middleware.CurrentAccount(c)
		if account == nil {
			c.JSON(http.StatusOK, gin.H{"user": ""})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": account.Username})
	})
	router.GET("/private", middleware.RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"session": middleware.CurrentSession(c).ID})
	})
	router.GET("/staff", middleware.RequireAuth(), middleware.RequireStaff(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return router
}

func request(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthenticate(t *testing.T) {
	bob := &model.Account{ID: 5, Username: "bob"}
	sess := &session.Session{ID: "sid", AccountID: 5}

	t.Run("Anonymous on optional route", func(t *testing.T) {
		accounts := mocks.NewMockAccountService(t)
		router := setupAuthRouter(accounts)

		w := request(router, "/optional", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user":""}`, w.Body.String())
		accounts.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
	})

	t.Run("Valid token", func(t *testing.T) {
		accounts := mocks.NewMockAccountService(t)
		router := setupAuthRouter(accounts)
		accounts.EXPECT().Authenticate(mock.Anything, "good").Return(bob, sess, nil).Once()

		w := request(router, "/private", "good")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"session":"sid"}`, w.Body.String())
	})

	t.Run("Invalid token on private route", func(t *testing.T) {
		accounts := mocks.NewMockAccountService(t)
		router := setupAuthRouter(accounts)
		accounts.EXPECT().Authenticate(mock.Anything, "bad").Return(nil, nil, apperrors.ErrUnauthorized).Once()

		w := request(router, "/private", "bad")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Invalid token on optional route", func(t *testing.T) {
		accounts := mocks.NewMockAccountService(t)
		router := setupAuthRouter(accounts)
		accounts.EXPECT().Authenticate(mock.Anything, "bad").Return(nil, nil, apperrors.ErrUnauthorized).Once()

		w := request(router, "/optional", "bad")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Session store failure", func(t *testing.T) {
		accounts := mocks.NewMockAccountService(t)
		router := setupAuthRouter(accounts)
		accounts.EXPECT().Authenticate(mock.Anything, "tok").Return(nil, nil, errors.New("redis down")).Once()

		w := request(router, "/private", "tok")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("Staff only", func(t *testing.T) {
		accounts := mocks.NewMockAccountService(t)
		router := setupAuthRouter(accounts)
		accounts.EXPECT().Authenticate(mock.Anything, "good").Return(bob, sess, nil).Once()
		accounts.EXPECT().Authenticate(mock.Anything, "admin").Return(&model.Account{ID: 1, IsStaff: true}, sess, nil).Once()

		assert.Equal(t, http.StatusForbidden, request(router, "/staff", "good").Code)
		assert.Equal(t, http.StatusNoContent, request(router, "/staff", "admin").Code)
	})

	t.Run("Malformed header", func(t *testing.T) {
		accounts := mocks.NewMockAccountService(t)
		router := setupAuthRouter(accounts)

		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Basic abc")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	_, err := middleware.RateLimiter("lots")
	require.Error(t, err)

	limit, err := middleware.RateLimiter("2-M")
	require.NoError(t, err)

	router := gin.New()
	router.POST("/login", limit, func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Allowed origin", func(t *testing.T) {
		router := gin.New()
		router.Use(middleware.CORS([]string{"https://app.example.com"}))
		router.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Origin", "https://app.example.com")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Other origin rejected", func(t *testing.T) {
		router := gin.New()
		router.Use(middleware.CORS([]string{"https://app.example.com"}))
		router.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Wildcard", func(t *testing.T) {
		router := gin.New()
		router.Use(middleware.CORS([]string{"*"}))
		router.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Origin", "https://anywhere.example.com")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestTracing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := observability.Tracer
	observability.Tracer = tp.Tracer("test")
	t.Cleanup(func() { observability.Tracer = prev })

	router := gin.New()
	router.Use(middleware.Tracing(), middleware.Metrics(), middleware.RequestLogger())
	router.GET("/events/:event_id", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/events/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "GET /events/:event_id", spans[0].Name())
}
