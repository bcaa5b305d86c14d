package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/VanderIG123/stylists-api/internal/auth"
	"github.com/VanderIG123/stylists-api/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestAuthMiddleware(t *testing.T) {
	tokens := auth.NewTokens("secret", time.Hour)
	r := gin.New()
	r.GET("/me", AuthMiddleware(tokens), func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, p)
	})

	cases := []struct {
		name   string
		header string
		status int
		code   string
	}{
		{"missing", "", http.StatusUnauthorized, "missing_authorization_header"},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, "invalid_authorization_header"},
		{"garbage token", "Bearer abc", http.StatusUnauthorized, "invalid_token"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.code, body["error_code"])
		})
	}

	token, err := tokens.Issue(auth.Principal{ID: 9, Email: "jo@example.com", Type: models.KindUser})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":9,"email":"jo@example.com","type":"user"}`, w.Body.String())
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, RequestIDFrom(c)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	minted := w.Header().Get(RequestIDHeader)
	assert.Len(t, minted, 36)
	assert.Equal(t, minted, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "123e4567-e89b-12d3-a456-426614174000")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "123e4567-e89b-12d3-a456-426614174000", w.Header().Get(RequestIDHeader))
}

func TestMemoryLimiter(t *testing.T) {
	l := NewMemoryLimiter(1, 2)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := l.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, _ := l.Allow(ctx, "1.2.3.4")
	assert.False(t, ok, "burst exhausted")

	ok, _ = l.Allow(ctx, "5.6.7.8")
	assert.True(t, ok, "keys are independent")
}

func TestMemoryLimiter_EvictsIdleKeys(t *testing.T) {
	l := NewMemoryLimiter(60, 1)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	l.lastSweep = now
	ctx := context.Background()

	_, _ = l.Allow(ctx, "1.1.1.1")
	_, _ = l.Allow(ctx, "2.2.2.2")
	require.Equal(t, 2, l.Len())

	now = now.Add(5 * time.Minute)
	_, _ = l.Allow(ctx, "2.2.2.2")
	assert.Equal(t, 2, l.Len(), "nothing idle long enough yet")

	now = now.Add(6 * time.Minute)
	_, _ = l.Allow(ctx, "3.3.3.3")
	assert.Equal(t, 2, l.Len(), "1.1.1.1 was idle for 11 minutes")

	ok, _ := l.Allow(ctx, "1.1.1.1")
	assert.True(t, ok, "an evicted key starts with a fresh bucket")
}

// fakeRedis counts INCRs per key the way a redis transaction would.
type fakeRedis struct {
	counts map[string]int64
	ttls   map[string]time.Duration
	err    error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{counts: map[string]int64{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) TxPipeline() redis.Pipeliner {
	return &fakePipe{redis: f}
}

type fakePipe struct {
	redis.Pipeliner
	redis *fakeRedis
}

func (p *fakePipe) Incr(_ context.Context, key string) *redis.IntCmd {
	p.redis.counts[key]++
	return redis.NewIntResult(p.redis.counts[key], nil)
}

func (p *fakePipe) Expire(_ context.Context, key string, ttl time.Duration) *redis.BoolCmd {
	p.redis.ttls[key] = ttl
	return redis.NewBoolResult(true, nil)
}

func (p *fakePipe) Exec(context.Context) ([]redis.Cmder, error) {
	return nil, p.redis.err
}

func TestRedisLimiter_FixedWindow(t *testing.T) {
	fake := newFakeRedis()
	l := NewRedisLimiter(fake, 2)
	now := time.Date(2025, 6, 1, 12, 0, 10, 0, time.UTC)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := l.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, err := l.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, ok, "third call in the same minute")

	ok, _ = l.Allow(ctx, "5.6.7.8")
	assert.True(t, ok, "keys are independent")

	now = now.Add(time.Minute)
	ok, _ = l.Allow(ctx, "1.2.3.4")
	assert.True(t, ok, "a new window resets the budget")

	key := "ratelimit:1.2.3.4:" + strconv.FormatInt(now.Unix()/60, 10)
	assert.Equal(t, int64(1), fake.counts[key])
	assert.Equal(t, 2*time.Minute, fake.ttls[key])
}

func TestRedisLimiter_ExecError(t *testing.T) {
	fake := newFakeRedis()
	fake.err = assert.AnError
	_, err := NewRedisLimiter(fake, 2).Allow(context.Background(), "1.2.3.4")
	assert.ErrorIs(t, err, assert.AnError)
}

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string) (bool, error) {
	return false, assert.AnError
}

func TestRateLimit(t *testing.T) {
	r := gin.New()
	r.GET("/", RateLimit(NewMemoryLimiter(1, 1), zap.NewNop()), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	open := gin.New()
	open.GET("/", RateLimit(failingLimiter{}, zap.NewNop()), func(c *gin.Context) { c.Status(http.StatusOK) })
	w = httptest.NewRecorder()
	open.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(zap.NewNop()))
	r.GET("/", func(*gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal_error")
}
