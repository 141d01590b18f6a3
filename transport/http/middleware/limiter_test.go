package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"popflea/config"
	"popflea/infras/otel/mocks"
	"popflea/shared/cache"
	cacheMocks "popflea/shared/cache/mocks"
	"popflea/shared/constant"
	"popflea/transport/http/middleware"
)

func limiterConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 30
	cfg.App.RateLimiter.WriteMaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func limiterRequest(method string) *http.Request {
	req := httptest.NewRequest(method, "/v1/bookings", nil)
	req.Header.Set(constant.RequestHeaderRealIP, "1.2.3.4")
	req.Header.Set(constant.RequestHeaderUserAgent, "tester")

	return req
}

func TestRateLimit_ReadBucket(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().
		Get(gomock.Any(), "limiter:read:1.2.3.4:tester", gomock.Any()).
		Return(cache.Nil)

	mockCache.EXPECT().
		Save(gomock.Any(), "limiter:read:1.2.3.4:tester", 1, 60).
		Return(nil)

	m := middleware.NewAppMiddleware(mocks.NewOtel(), limiterConfig(), mockCache)

	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	})

	rec := httptest.NewRecorder()
	m.RateLimit()(next).ServeHTTP(rec, limiterRequest(http.MethodGet))

	assert.True(t, reached)
	assert.Equal(t, "30", rec.Header().Get(constant.RequestHeaderRateLimit))
	assert.Equal(t, "29", rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
}

func TestRateLimit_WriteBucket(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().
		Get(gomock.Any(), "limiter:write:1.2.3.4:tester", gomock.Any()).
		Return(cache.Nil)

	mockCache.EXPECT().
		Save(gomock.Any(), "limiter:write:1.2.3.4:tester", 1, 60).
		Return(nil)

	m := middleware.NewAppMiddleware(mocks.NewOtel(), limiterConfig(), mockCache)

	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	})

	rec := httptest.NewRecorder()
	m.RateLimit()(next).ServeHTTP(rec, limiterRequest(http.MethodPost))

	assert.True(t, reached)
	assert.Equal(t, "2", rec.Header().Get(constant.RequestHeaderRateLimit))
	assert.Equal(t, "1", rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
}

func TestRateLimit_WriteBudgetExhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().
		Get(gomock.Any(), "limiter:write:1.2.3.4:tester", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			count, _ := value.(*int)
			*count = 2

			return nil
		})

	m := middleware.NewAppMiddleware(mocks.NewOtel(), limiterConfig(), mockCache)

	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	})

	rec := httptest.NewRecorder()
	m.RateLimit()(next).ServeHTTP(rec, limiterRequest(http.MethodPost))

	assert.False(t, reached)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRateLimit_FailsOpenOnCacheError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("redis down"))

	m := middleware.NewAppMiddleware(mocks.NewOtel(), limiterConfig(), mockCache)

	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	})

	rec := httptest.NewRecorder()
	m.RateLimit()(next).ServeHTTP(rec, limiterRequest(http.MethodGet))

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := limiterConfig()
	cfg.App.RateLimiter.Enable = false

	m := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, mockCache)

	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	})

	rec := httptest.NewRecorder()
	m.RateLimit()(next).ServeHTTP(rec, limiterRequest(http.MethodPost))

	assert.True(t, reached)
}
