package middleware

import (
	"net/http"

	"golang.org/x/time/rate"
)

// Throttle returns a middleware that sheds load above ratePerSec requests
// per second across all routes, answering 429 once the bucket is empty.
// Burst equals the rate so no extra burst capacity is allowed beyond the
// configured per-second maximum. A rate of zero disables the limiter.
func Throttle(ratePerSec int) func(http.Handler) http.Handler {
	if ratePerSec <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	limiter := rate.NewLimiter(rate.Limit(ratePerSec), ratePerSec)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":"rate limit exceeded"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
