package middleware

import (
	"net/http"
	"runtime"

	"github.com/labstack/echo/v4"

	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/service/api/constants"
	applog "github.com/luis-photousa/asi-sage-landing-pagev0.1/pkg/log"
)

// stackBufferSize panic 발생 시 스택 트레이스를 저장할 버퍼 크기 (4KB)
const stackBufferSize = 4 << 10

// PanicRecovery 핸들러에서 발생한 panic 을 복구하여 스택 트레이스와 함께 기록하고, 전역 에러 핸들러로 넘깁니다.
// 다른 미들웨어의 panic 도 복구할 수 있도록 가장 먼저 등록해야 합니다.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (returnErr error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				// http.ErrAbortHandler 는 net/http 가 연결을 끊기 위해 사용하므로 다시 던진다.
				if r == http.ErrAbortHandler {
					panic(r)
				}

				err, ok := r.(error)
				if !ok {
					err = NewErrPanicRecovered(r)
				}

				stack := make([]byte, stackBufferSize)
				length := runtime.Stack(stack, false)

				fields := applog.Fields{
					"error":  err,
					"stack":  string(stack[:length]),
					"path":   c.Request().URL.Path,
					"method": c.Request().Method,
				}
				if requestID := c.Response().Header().Get(echo.HeaderXRequestID); requestID != "" {
					fields["request_id"] = requestID
				}

				applog.WithComponentAndFields(constants.ComponentMiddlewarePanicRecovery, fields).Error(constants.LogMsgPanicRecovered)

				c.Error(err)
				returnErr = nil
			}()

			return next(c)
		}
	}
}
