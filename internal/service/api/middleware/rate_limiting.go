package middleware

import (
	"fmt"
	"sync"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/service/api/constants"
	applog "github.com/luis-photousa/asi-sage-landing-pagev0.1/pkg/log"
)

// maxIPRateLimiters 메모리에 유지하는 IP 별 Limiter 의 최대 개수.
// 초과하면 임의의 항목 하나를 제거한다. (Go 맵 순회 순서가 무작위인 점을 이용)
const maxIPRateLimiters = 10000

// retryAfter Rate Limit 초과 응답에 포함하는 헤더 이름
const retryAfter = "Retry-After"

// ipRateLimiter IP 주소별 Token Bucket Limiter 를 관리합니다.
type ipRateLimiter struct {
	mu       sync.RWMutex
	limiters map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
}

func newIPRateLimiter(requestsPerSecond float64, burst int) *ipRateLimiter {
	return &ipRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
	}
}

// getLimiter IP 의 Limiter 를 반환하며, 없으면 새로 만듭니다.
func (i *ipRateLimiter) getLimiter(ip string) *rate.Limiter {
	i.mu.RLock()
	limiter, exists := i.limiters[ip]
	i.mu.RUnlock()

	if exists {
		return limiter
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	// 다른 고루틴이 먼저 만들었을 수 있다.
	if limiter, exists = i.limiters[ip]; exists {
		return limiter
	}

	if len(i.limiters) >= maxIPRateLimiters {
		for oldIP := range i.limiters {
			delete(i.limiters, oldIP)
			break
		}
	}

	limiter = rate.NewLimiter(i.rate, i.burst)
	i.limiters[ip] = limiter

	return limiter
}

func (i *ipRateLimiter) size() int {
	i.mu.RLock()
	defer i.mu.RUnlock()

	return len(i.limiters)
}

// RateLimiting IP 기반 요청 속도 제한 미들웨어를 반환합니다.
//
// IP 마다 초당 requestsPerSecond 개의 토큰이 채워지고 최대 burst 개까지 쌓이는 Token Bucket 을 사용합니다.
// 토큰이 없으면 Retry-After 헤더와 함께 429 를 반환합니다. 1 미만의 값(예: 0.2 = 5초에 1건)도 허용합니다.
//
// Panics:
//   - requestsPerSecond 또는 burst 가 0 이하인 경우
func RateLimiting(requestsPerSecond float64, burst int) echo.MiddlewareFunc {
	if requestsPerSecond <= 0 {
		panic(fmt.Sprintf(constants.PanicMsgRateLimitRequestsPerSecondInvalid, requestsPerSecond))
	}
	if burst <= 0 {
		panic(fmt.Sprintf(constants.PanicMsgRateLimitBurstInvalid, burst))
	}

	limiter := newIPRateLimiter(requestsPerSecond, burst)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			if !limiter.getLimiter(ip).Allow() {
				applog.WithComponentAndFields(constants.ComponentMiddlewareRateLimit, applog.Fields{
					"remote_ip": ip,
					"path":      c.Request().URL.Path,
					"method":    c.Request().Method,
				}).Warn(constants.LogMsgRateLimitExceeded)

				c.Response().Header().Set(retryAfter, constants.RetryAfterSeconds)

				return ErrRateLimitExceeded
			}

			return next(c)
		}
	}
}
