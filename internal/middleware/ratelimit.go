package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/platform/logger"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/platform/web"
)

// RateLimiter limita por IP los POSTs públicos (formularios y login).
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*visitor
	limit    rate.Limit
	burst    int
	idle     time.Duration
	now      func() time.Time
}

type visitor struct {
	lim  *rate.Limiter
	seen time.Time
}

// NewRateLimiter: perMinute <= 0 desactiva el límite.
func NewRateLimiter(perMinute, burst int) *RateLimiter {
	if burst <= 0 {
		burst = 1
	}
	lim := rate.Inf
	if perMinute > 0 {
		lim = rate.Every(time.Minute / time.Duration(perMinute))
	}
	return &RateLimiter{
		limiters: map[string]*visitor{},
		limit:    lim,
		burst:    burst,
		idle:     10 * time.Minute,
		now:      time.Now,
	}
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for k, v := range rl.limiters {
		if now.Sub(v.seen) > rl.idle {
			delete(rl.limiters, k)
		}
	}

	v, ok := rl.limiters[ip]
	if !ok {
		v = &visitor{lim: rate.NewLimiter(rl.limit, rl.burst)}
		rl.limiters[ip] = v
	}
	v.seen = now
	return v.lim.AllowN(now, 1)
}

// Middleware sólo cuenta métodos que no son GET/HEAD.
func (rl *RateLimiter) Middleware(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet || r.Method == http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}
			ip := clientIP(r)
			if !rl.allow(ip) {
				log.Warn("rate limited", map[string]any{"ip": ip, "path": r.URL.Path})
				w.Header().Set("Retry-After", "60")
				web.WriteStatus(w, http.StatusTooManyRequests, web.StatusError, "Muitas tentativas. Aguarde um minuto e tente novamente.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// chimw.RealIP ya reescribió RemoteAddr cuando hay proxy.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
