package middleware

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
)

const (
	msgTooManyRequests = "too many requests, please try again later"

	// DefaultClientTTL время, после которого неактивный клиент удаляется
	DefaultClientTTL = 3 * time.Minute
)

type client struct {
	limiter *rate.Limiter
	seen    time.Time
}

// RateLimiter token bucket на каждый IP
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*client
	limit   rate.Limit
	burst   int
	ttl     time.Duration
	now     func() time.Time
}

func NewRateLimiter(rps float64, burst int) *RateLimiter {
	return &RateLimiter{
		clients: make(map[string]*client),
		limit:   rate.Limit(rps),
		burst:   burst,
		ttl:     DefaultClientTTL,
		now:     time.Now,
	}
}

// Allow расходует один токен клиента ip
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	c, ok := rl.clients[ip]
	if !ok {
		c = &client{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[ip] = c
	}
	c.seen = now

	return c.limiter.AllowN(now, 1)
}

// Cleanup удаляет клиентов, не появлявшихся дольше ttl
func (rl *RateLimiter) Cleanup() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	removed := 0
	now := rl.now()
	for ip, c := range rl.clients {
		if now.Sub(c.seen) > rl.ttl {
			delete(rl.clients, ip)
			removed++
		}
	}
	return removed
}

// RunCleanup периодически вызывает Cleanup до отмены ctx
func (rl *RateLimiter) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.Cleanup()
		}
	}
}

// RateLimit ограничивает изменяющие запросы (всё, кроме GET/HEAD/OPTIONS)
func RateLimit(rl *RateLimiter, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}

			ip := clientIP(r)
			if !rl.Allow(ip) {
				logger.Warn("%s %s - Rate limit exceeded: ip=%s", r.Method, r.URL.Path, ip)
				w.Header().Set("Retry-After", "1")
				handlers.RespondError(w, http.StatusTooManyRequests, msgTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
