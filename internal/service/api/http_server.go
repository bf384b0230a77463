package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/service/api/constants"
	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/service/api/httputil"
	appmiddleware "github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/service/api/middleware"
	applog "github.com/luis-photousa/asi-sage-landing-pagev0.1/pkg/log"
)

// hstsMaxAge HTTPS 로 서비스할 때 Strict-Transport-Security 헤더에 설정하는 기간(초, 1년)
const hstsMaxAge = 31536000

// HTTPServerConfig HTTP 서버 생성에 필요한 설정을 정의합니다.
type HTTPServerConfig struct {
	// Debug Echo 프레임워크의 디버그 모드 활성화 여부
	Debug bool

	// AllowOrigins CORS 에서 허용할 Origin 목록 (예: ["https://shop.example.com"])
	AllowOrigins []string

	// RequestTimeout 각 HTTP 요청의 최대 처리 시간. 0 이면 기본값을 사용한다.
	RequestTimeout time.Duration

	// RateLimitPerSecond, RateLimitBurst IP 별 요청 속도 제한. 0 이면 기본값을 사용한다.
	RateLimitPerSecond float64
	RateLimitBurst     int

	// EnableHSTS HTTPS 서버일 때 HSTS 헤더를 추가한다.
	EnableHSTS bool
}

// NewHTTPServer 미들웨어 체인이 구성된 Echo 인스턴스를 생성합니다.
//
// 미들웨어 적용 순서:
//
//  1. PanicRecovery - 다른 미들웨어의 panic 도 복구하도록 가장 먼저 적용
//  2. RequestID - 로그에 request_id 가 포함되도록 로깅보다 먼저 적용
//  3. Server 헤더 제거
//  4. HTTPLogger - 429, 503 응답도 기록되도록 RateLimiting, Timeout 보다 먼저 적용
//  5. RateLimiting - IP 별 요청 속도 제한
//  6. BodyLimit - 요청 본문 크기 제한 (초과 시 413)
//  7. Timeout - 요청 처리 시간 제한 (초과 시 503)
//  8. CORS
//  9. Secure - 보안 헤더
//
// 라우트는 포함되지 않으며, 반환된 Echo 인스턴스에 별도로 등록해야 합니다.
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = constants.DefaultReadTimeout
	e.Server.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout
	e.Server.WriteTimeout = constants.DefaultWriteTimeout
	e.Server.IdleTimeout = constants.DefaultIdleTimeout

	// Echo 내부 로그도 애플리케이션 로거로 기록한다.
	e.Logger = appmiddleware.Logger{Logger: applog.StandardLogger()}

	e.HTTPErrorHandler = httputil.ErrorHandler

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = constants.DefaultRequestTimeout
	}
	rps := cfg.RateLimitPerSecond
	if rps <= 0 {
		rps = constants.DefaultRateLimitPerSecond
	}
	burst := cfg.RateLimitBurst
	if burst <= 0 {
		burst = constants.DefaultRateLimitBurst
	}

	// 1. Panic 복구
	e.Use(appmiddleware.PanicRecovery())
	// 2. Request ID
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	// 3. Server 헤더 제거
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderServer, "")
			return next(c)
		}
	})
	// 4. HTTP 로깅
	e.Use(appmiddleware.HTTPLogger())
	// 5. Rate Limiting
	e.Use(appmiddleware.RateLimiting(rps, burst))
	// 6. Body Limit
	e.Use(middleware.BodyLimit(constants.DefaultMaxBodySize))
	// 7. Timeout
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout:      timeout,
		ErrorMessage: constants.ErrMsgServiceUnavailable,
	}))
	// 8. CORS
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodPost},
	}))
	// 9. 보안 헤더
	secureConfig := middleware.DefaultSecureConfig
	if cfg.EnableHSTS {
		secureConfig.HSTSMaxAge = hstsMaxAge
	}
	e.Use(middleware.SecureWithConfig(secureConfig))

	return e
}
