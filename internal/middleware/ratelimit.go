// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter provides per-IP request limiting backed by Valkey, using a
// fixed window counter. Backing the counter with Valkey keeps limits
// consistent when multiple replicas serve the same traffic.
type RateLimiter struct {
	client *redis.Client
	limit  int           // max requests per window
	window time.Duration // window duration
}

// NewRateLimiter creates a rate limiter allowing limit requests per window.
// Counter keys are bucketed at whole-second granularity, so windows under
// one second are clamped to one second.
func NewRateLimiter(client *redis.Client, limit int, window time.Duration) *RateLimiter {
	if window < time.Second {
		window = time.Second
	}
	return &RateLimiter{client: client, limit: limit, window: window}
}

// allow checks whether the given key is within the rate limit. Valkey
// errors fail open: a broken limiter must not take the API down with it.
func (rl *RateLimiter) allow(r *http.Request, key string) bool {
	ctx := r.Context()
	window := time.Now().Unix() / int64(rl.window.Seconds())
	counterKey := fmt.Sprintf("ratelimit:%s:%d", key, window)

	count, err := rl.client.Incr(ctx, counterKey).Result()
	if err != nil {
		slog.Error("rate limiter unavailable", "error", err)
		return true
	}
	if count == 1 {
		rl.client.Expire(ctx, counterKey, rl.window)
	}
	return count <= int64(rl.limit)
}

// Middleware returns an HTTP middleware that rate-limits by client IP.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if !rl.allow(r, ip) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":"rate_limited","message":"too many requests"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP extracts the client's IP address, checking X-Forwarded-For
// and X-Real-IP headers for proxied requests.
func clientIP(r *http.Request) string {
	// Check X-Forwarded-For first (may contain multiple IPs).
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// Take the first (leftmost) IP, the original client.
		if idx := strings.IndexByte(xff, ','); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}

	// Check X-Real-IP.
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	// Fall back to RemoteAddr (strip port).
	addr := r.RemoteAddr
	if idx := strings.LastIndex(addr, ":"); idx != -1 {
		return addr[:idx]
	}
	return addr
}
