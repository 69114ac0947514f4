package middleware

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// SecurityConfig holds security middleware configuration
type SecurityConfig struct {
	MaxRequestSize    int64
	RateLimitRequests int
	RateLimitWindow   time.Duration
	Disabled          bool
}

// DefaultSecurityConfig returns the configuration used when none is provided
func DefaultSecurityConfig() *SecurityConfig {
	return &SecurityConfig{
		MaxRequestSize:    1 * 1024 * 1024, // 1MB, largest payload is an article body
		RateLimitRequests: 300,
		RateLimitWindow:   time.Minute,
	}
}

// SecurityMiddleware caps request sizes, rate limits per client IP and sets
// the standard security headers on every response
func SecurityMiddleware(config *SecurityConfig) gin.HandlerFunc {
	if config == nil {
		config = DefaultSecurityConfig()
	}

	var mu sync.Mutex
	limiters := make(map[string]*rate.Limiter)

	return func(c *gin.Context) {
		if c.Request.ContentLength > config.MaxRequestSize {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"success": false,
				"error":   "Request body too large",
			})
			c.Abort()
			return
		}

		if !config.Disabled {
			clientIP := c.ClientIP()
			mu.Lock()
			limiter, exists := limiters[clientIP]
			if !exists {
				limiter = rate.NewLimiter(rate.Every(config.RateLimitWindow/time.Duration(config.RateLimitRequests)), config.RateLimitRequests)
				limiters[clientIP] = limiter
			}
			mu.Unlock()

			if !limiter.Allow() {
				log.Printf("rate limit exceeded for IP %s: %s %s", clientIP, c.Request.Method, c.Request.URL.Path)
				c.JSON(http.StatusTooManyRequests, gin.H{
					"success": false,
					"error":   "Rate limit exceeded",
				})
				c.Abort()
				return
			}
		}

		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		c.Next()
	}
}

// AuthRateLimitMiddleware applies a stricter per-IP limit on the login
// endpoint
func AuthRateLimitMiddleware(requestsPerMinute int, disabled bool) gin.HandlerFunc {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 10
	}

	var mu sync.Mutex
	limiters := make(map[string]*rate.Limiter)

	return func(c *gin.Context) {
		if disabled {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		mu.Lock()
		limiter, exists := limiters[clientIP]
		if !exists {
			limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(requestsPerMinute)), requestsPerMinute)
			limiters[clientIP] = limiter
		}
		mu.Unlock()

		if !limiter.Allow() {
			log.Printf("auth rate limit exceeded for IP %s", clientIP)
			c.JSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   "Too many authentication attempts. Please try again later.",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
