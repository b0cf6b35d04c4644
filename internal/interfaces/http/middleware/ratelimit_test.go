package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/contentforge/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

func newTestLimiter(limit int, window time.Duration) (*RateLimiter, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	rl := NewRateLimiter(limit, window)
	rl.now = clock.Now
	return rl, clock
}

func TestRateLimiter(t *testing.T) {
	t.Run("allows requests within limit", func(t *testing.T) {
		limiter, _ := newTestLimiter(5, time.Minute)
		for i := 0; i < 5; i++ {
			assert.True(t, limiter.Allow("owner-1"), "request %d should be allowed", i+1)
		}
		assert.False(t, limiter.Allow("owner-1"))
		assert.Equal(t, 0, limiter.Remaining("owner-1"))
	})

	t.Run("separate limits per key", func(t *testing.T) {
		limiter, _ := newTestLimiter(2, time.Minute)

		assert.True(t, limiter.Allow("owner-a"))
		assert.True(t, limiter.Allow("owner-a"))
		assert.False(t, limiter.Allow("owner-a"))

		assert.True(t, limiter.Allow("owner-b"))
		assert.Equal(t, 1, limiter.Remaining("owner-b"))
		assert.Equal(t, 2, limiter.Remaining("unknown"))
	})

	t.Run("refills over the window", func(t *testing.T) {
		limiter, clock := newTestLimiter(2, time.Minute)
		assert.True(t, limiter.Allow("owner-1"))
		assert.True(t, limiter.Allow("owner-1"))
		assert.False(t, limiter.Allow("owner-1"))

		clock.Advance(30 * time.Second)
		assert.True(t, limiter.Allow("owner-1"))
		assert.False(t, limiter.Allow("owner-1"))
	})

	t.Run("limit below one is clamped", func(t *testing.T) {
		limiter, _ := newTestLimiter(0, time.Minute)
		assert.True(t, limiter.Allow("owner-1"))
		assert.False(t, limiter.Allow("owner-1"))
	})

	t.Run("sweep drops idle keys", func(t *testing.T) {
		limiter, clock := newTestLimiter(1, time.Minute)
		limiter.Allow("idle")
		clock.Advance(90 * time.Second)
		limiter.Allow("recent")
		clock.Advance(45 * time.Second)

		limiter.Sweep()
		assert.NotContains(t, limiter.clients, "idle")
		assert.Contains(t, limiter.clients, "recent")
	})

	t.Run("concurrent access", func(t *testing.T) {
		limiter, _ := newTestLimiter(100, time.Minute)
		var wg sync.WaitGroup
		var mu sync.Mutex
		allowed := 0
		for i := 0; i < 150; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if limiter.Allow("shared") {
					mu.Lock()
					allowed++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, 100, allowed)
	})
}

func TestRateLimiter_RunStopsOnCancel(t *testing.T) {
	limiter := NewRateLimiter(1, time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		limiter.Run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRateLimitByOwner(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter, _ := newTestLimiter(1, time.Minute)

	r := gin.New()
	r.Use(RequestID(), func(c *gin.Context) {
		if owner := c.GetHeader("X-Test-Owner"); owner != "" {
			c.Set(OwnerIDKey, owner)
		}
		c.Next()
	}, RateLimitByOwner(limiter))
	r.POST("/generate", func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(owner string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/generate", nil)
		if owner != "" {
			req.Header.Set("X-Test-Owner", owner)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := send("owner-1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	w = send("owner-1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "61", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), dto.ErrCodeRateLimited)

	// other owners and anonymous callers have their own buckets
	assert.Equal(t, http.StatusOK, send("owner-2").Code)
	assert.Equal(t, http.StatusOK, send("").Code)
	assert.Contains(t, limiter.clients, "ip:192.0.2.1")
}
