package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RequestIDHeader carries the per-request id in both directions.
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "request_id"

// RequestLogger assigns each request an id and logs it once it completes.
// An incoming X-Request-ID is reused.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)

		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String(requestIDKey, id),
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			logger.Error("request", fields...)
		case status >= http.StatusBadRequest:
			logger.Warn("request", fields...)
		default:
			logger.Info("request", fields...)
		}
	}
}

// clientIdleTTL is how long an unused client limiter is kept.
const clientIdleTTL = 10 * time.Minute

type clientEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// ClientLimiter rate-limits per client IP. Clients idle for longer than
// the TTL are forgotten.
type ClientLimiter struct {
	mu        sync.Mutex
	m         map[string]*clientEntry
	r         rate.Limit
	b         int
	ttl       time.Duration
	lastSweep time.Time
	now       func() time.Time
}

// NewClientLimiter allows each client reqPerSec requests with bursts of burst.
func NewClientLimiter(reqPerSec float64, burst int) *ClientLimiter {
	ttl := clientIdleTTL
	// An evicted client must not come back with more tokens than it would have had.
	if reqPerSec > 0 {
		if refill := time.Duration(float64(burst) / reqPerSec * float64(time.Second)); refill > ttl {
			ttl = refill
		}
	}
	return &ClientLimiter{
		m:   make(map[string]*clientEntry),
		r:   rate.Limit(reqPerSec),
		b:   burst,
		ttl: ttl,
		now: time.Now,
	}
}

func (cl *ClientLimiter) limiterFor(client string) *rate.Limiter {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	now := cl.now()
	if now.Sub(cl.lastSweep) >= cl.ttl {
		cl.sweep(now)
	}

	e, ok := cl.m[client]
	if !ok {
		e = &clientEntry{lim: rate.NewLimiter(cl.r, cl.b)}
		cl.m[client] = e
	}
	e.lastSeen = now
	return e.lim
}

// sweep drops clients idle for at least ttl. Callers hold cl.mu.
func (cl *ClientLimiter) sweep(now time.Time) {
	for client, e := range cl.m {
		if now.Sub(e.lastSeen) >= cl.ttl {
			delete(cl.m, client)
		}
	}
	cl.lastSweep = now
}

// Allow reports whether client may make a request now.
func (cl *ClientLimiter) Allow(client string) bool {
	return cl.limiterFor(client).Allow()
}

// RateLimit rejects requests over the client's budget with 429.
func RateLimit(limiter *ClientLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			respondError(c, http.StatusTooManyRequests, "Too many requests, slow down", nil)
			return
		}
		c.Next()
	}
}
