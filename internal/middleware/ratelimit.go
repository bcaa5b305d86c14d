package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/VanderIG123/stylists-api/internal/httperr"
)

// Limiter decides whether one more request from key fits its budget.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// Buckets untouched for idleTTL are dropped; the sweep runs at most once
// per sweepEvery, piggybacked on Allow.
const (
	idleTTL    = 10 * time.Minute
	sweepEvery = time.Minute
)

type memoryEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryLimiter keeps a token bucket per key in process memory.
type MemoryLimiter struct {
	perMin int
	burst  int
	now    func() time.Time

	mu        sync.Mutex
	entries   map[string]*memoryEntry
	lastSweep time.Time
}

func NewMemoryLimiter(perMin, burst int) *MemoryLimiter {
	return &MemoryLimiter{
		perMin:    perMin,
		burst:     max(burst, 1),
		now:       time.Now,
		entries:   make(map[string]*memoryEntry),
		lastSweep: time.Now(),
	}
}

func (m *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	now := m.now()

	m.mu.Lock()
	if now.Sub(m.lastSweep) >= sweepEvery {
		m.sweep(now)
	}
	e, ok := m.entries[key]
	if !ok {
		e = &memoryEntry{
			limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(max(m.perMin, 1))), m.burst),
		}
		m.entries[key] = e
	}
	e.lastSeen = now
	m.mu.Unlock()

	return e.limiter.AllowN(now, 1), nil
}

// sweep is called with mu held.
func (m *MemoryLimiter) sweep(now time.Time) {
	for key, e := range m.entries {
		if now.Sub(e.lastSeen) > idleTTL {
			delete(m.entries, key)
		}
	}
	m.lastSweep = now
}

// Len reports how many keys currently hold a bucket.
func (m *MemoryLimiter) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// TxPipeliner is the part of the redis client RedisLimiter uses.
type TxPipeliner interface {
	TxPipeline() redis.Pipeliner
}

// RedisLimiter is a fixed one-minute window shared by every API replica.
type RedisLimiter struct {
	client TxPipeliner
	perMin int
	now    func() time.Time
}

func NewRedisLimiter(client TxPipeliner, perMin int) *RedisLimiter {
	return &RedisLimiter{client: client, perMin: perMin, now: time.Now}
}

func (r *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	window := r.now().Unix() / 60
	k := "ratelimit:" + key + ":" + strconv.FormatInt(window, 10)

	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.Expire(ctx, k, 2*time.Minute)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	return incr.Val() <= int64(r.perMin), nil
}

// RateLimit rejects callers over budget with 429. A limiter error lets the
// request through.
func RateLimit(l Limiter, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		ok, err := l.Allow(c.Request.Context(), ip)
		if err != nil {
			log.Warn("rate limiter unavailable", zap.Error(err))
			c.Next()
			return
		}
		if !ok {
			log.Warn("rate limit exceeded", zap.String("ip", ip))
			httperr.Write(c, http.StatusTooManyRequests, "rate_limited", "Too many requests. Try again later.")
			c.Abort()
			return
		}
		c.Next()
	}
}
