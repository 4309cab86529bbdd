package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"openhiring/internal/config"
	"openhiring/internal/logging"
)

// clientLimiter tracks the token bucket for one remote address.
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// SubmissionLimiter rate limits form submissions per client IP so the
// public application and contact forms cannot be flooded.
type SubmissionLimiter struct {
	limit         rate.Limit
	burst         int
	clients       map[string]*clientLimiter
	mu            sync.Mutex
	logger        logging.Logger
	cleanupTicker *time.Ticker
	stopCleanup   chan bool
}

// NewSubmissionLimiter creates a submission limiter from configuration.
func NewSubmissionLimiter(cfg *config.Config) *SubmissionLimiter {
	sl := &SubmissionLimiter{
		limit:         rate.Limit(float64(cfg.RateLimit.SubmissionsPerMinute) / 60.0),
		burst:         cfg.RateLimit.Burst,
		clients:       make(map[string]*clientLimiter),
		logger:        logging.GetGlobalLogger(),
		cleanupTicker: time.NewTicker(5 * time.Minute),
		stopCleanup:   make(chan bool),
	}

	go sl.cleanupRoutine()

	return sl
}

// Middleware rejects submissions from clients that exhausted their
// token bucket. GET requests pass through untouched.
func (sl *SubmissionLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodPost {
				return next(c)
			}

			ip := c.RealIP()
			if !sl.allow(ip) {
				sl.logger.Warn("Submission rate limit exceeded", map[string]interface{}{
					"ip":   ip,
					"path": c.Path(),
				})
				return echo.NewHTTPError(http.StatusTooManyRequests,
					"Too many submissions. Please wait a minute and try again.")
			}

			return next(c)
		}
	}
}

// allow checks the client's token bucket, creating it on first sight.
func (sl *SubmissionLimiter) allow(ip string) bool {
	sl.mu.Lock()
	defer sl.mu.Unlock()

	client, exists := sl.clients[ip]
	if !exists {
		client = &clientLimiter{limiter: rate.NewLimiter(sl.limit, sl.burst)}
		sl.clients[ip] = client
	}
	client.lastSeen = time.Now()

	return client.limiter.Allow()
}

// cleanupRoutine periodically drops buckets for clients not seen
// recently.
func (sl *SubmissionLimiter) cleanupRoutine() {
	for {
		select {
		case <-sl.cleanupTicker.C:
			sl.cleanup()
		case <-sl.stopCleanup:
			sl.cleanupTicker.Stop()
			return
		}
	}
}

func (sl *SubmissionLimiter) cleanup() {
	sl.mu.Lock()
	defer sl.mu.Unlock()

	cutoff := time.Now().Add(-10 * time.Minute)
	for ip, client := range sl.clients {
		if client.lastSeen.Before(cutoff) {
			delete(sl.clients, ip)
		}
	}
}

// Stop stops the limiter's cleanup routine.
func (sl *SubmissionLimiter) Stop() {
	sl.stopCleanup <- true
}
