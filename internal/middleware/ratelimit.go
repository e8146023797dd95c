package middleware

import (
	"sync"

	"jits_backend/internal/logger"
	"jits_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// максимум адресов, после которого кэш лимитеров сбрасывается
const maxLimiterEntries = 10000

// IPRateLimiter - token bucket на каждый IP клиента
type IPRateLimiter struct {
	mu       sync.RWMutex
	limiters map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
}

func NewIPRateLimiter(rps float64, burst int) *IPRateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &IPRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(rps),
		burst:    burst,
	}
}

func (l *IPRateLimiter) get(ip string) *rate.Limiter {
	l.mu.RLock()
	limiter, exists := l.limiters[ip]
	l.mu.RUnlock()
	if exists {
		return limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if limiter, exists = l.limiters[ip]; exists {
		return limiter
	}
	if len(l.limiters) >= maxLimiterEntries {
		l.limiters = make(map[string]*rate.Limiter)
	}
	limiter = rate.NewLimiter(l.rate, l.burst)
	l.limiters[ip] = limiter
	return limiter
}

// Allow расходует один токен адреса ip
func (l *IPRateLimiter) Allow(ip string) bool {
	return l.get(ip).Allow()
}

// RateLimit - middleware для чувствительных маршрутов (signup, login, сброс пароля).
// rps <= 0 отключает ограничение.
func RateLimit(limiter *IPRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil || limiter.rate <= 0 {
			c.Next()
			return
		}

		if !limiter.Allow(c.ClientIP()) {
			logger.CtxWarn(c.Request.Context(), "Rate limit exceeded",
				"ip", c.ClientIP(),
				"path", c.Request.URL.Path,
			)
			apperrors.HandleError(c, apperrors.RateLimited())
			return
		}
		c.Next()
	}
}
