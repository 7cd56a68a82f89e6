package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/sofibear01/MantenimientoProducto/internal/apierror"

	"github.com/gin-gonic/gin"
)

// rateEntry tracks request counts per IP within a sliding window.
type rateEntry struct {
	count     int
	windowEnd time.Time
	mu        sync.Mutex
}

const purgeInterval = 5 * time.Minute

// RateLimiter returns a sliding-window per-IP rate limiter. Expired entries
// are purged inline on the request path at most once per purgeInterval, so
// IPs that never return don't accumulate and no background goroutine is
// needed.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	var (
		entries   = make(map[string]*rateEntry)
		mu        sync.Mutex
		lastPurge = time.Now()
	)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		mu.Lock()
		if now.Sub(lastPurge) >= purgeInterval {
			for k, e := range entries {
				e.mu.Lock()
				if now.After(e.windowEnd) {
					delete(entries, k)
				}
				e.mu.Unlock()
			}
			lastPurge = now
		}
		entry, exists := entries[ip]
		if !exists {
			entry = &rateEntry{}
			entries[ip] = entry
		}
		mu.Unlock()

		entry.mu.Lock()
		defer entry.mu.Unlock()

		if now.After(entry.windowEnd) {
			entry.count = 0
			entry.windowEnd = now.Add(window)
		}

		entry.count++
		if entry.count > limit {
			c.Header("Retry-After", entry.windowEnd.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Demasiadas solicitudes. Intente nuevamente en un momento."))
			return
		}
		c.Next()
	}
}
