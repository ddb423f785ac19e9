package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"
)

// RateLimit allows at most requests per window for each client address,
// using a fixed window that resets for everyone at once. A non-positive
// requests disables limiting.
func RateLimit(requests int, window time.Duration) Middleware {
	return rateLimit(requests, window, time.Now)
}

func rateLimit(requests int, window time.Duration, now func() time.Time) Middleware {
	return func(next http.Handler) http.Handler {
		if requests <= 0 {
			return next
		}

		var (
			mu        sync.Mutex
			visitors  = make(map[string]int)
			lastReset = now()
		)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()

			if now().Sub(lastReset) >= window {
				visitors = make(map[string]int)
				lastReset = now()
			}

			ip := clientIP(r)
			if visitors[ip] >= requests {
				mu.Unlock()
				writeError(w, http.StatusTooManyRequests, "too many requests")
				return
			}
			visitors[ip]++
			mu.Unlock()

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
