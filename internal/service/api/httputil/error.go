// Package httputil API 핸들러가 공통으로 사용하는 에러 응답 생성 함수와 전역 에러 핸들러를 제공합니다.
package httputil

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/pkg/errors"
	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/service/api/constants"
	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/service/api/model/response"
	applog "github.com/luis-photousa/asi-sage-landing-pagev0.1/pkg/log"
)

// ErrorHandler Echo 프레임워크의 전역 에러 핸들러입니다.
//
// 모든 에러를 표준 ErrorResponse JSON 형식으로 변환하여 반환합니다.
// echo.HTTPError 가 아닌 에러는 apperrors 의 분류에 따라 상태 코드를 정하고, 그 밖의 에러는 500 으로 처리합니다.
func ErrorHandler(err error, c echo.Context) {
	code, message := resolve(err)

	fields := applog.Fields{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"status_code": code,
		"error":       err,
		"remote_ip":   c.RealIP(),
		"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
	}

	if code >= http.StatusInternalServerError {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Error(constants.LogMsgHTTP5xxServerError)
	} else if code >= http.StatusBadRequest {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Warn(constants.LogMsgHTTP4xxClientError)
	}

	// 이미 응답이 전송된 경우 추가 응답을 시도하지 않는다.
	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	_ = c.JSON(code, response.ErrorResponse{
		ResultCode: code,
		Message:    message,
	})
}

// resolve 에러로부터 응답 상태 코드와 메시지를 결정합니다.
func resolve(err error) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		message := http.StatusText(he.Code)
		switch m := he.Message.(type) {
		case string:
			message = m
		case response.ErrorResponse:
			message = m.Message
		}

		switch he.Code {
		case http.StatusNotFound:
			// 라우트 불일치 등 echo 기본 404 메시지는 통일된 문구로 바꾼다.
			if _, ok := he.Message.(response.ErrorResponse); !ok {
				message = constants.ErrMsgNotFound
			}
		case http.StatusRequestEntityTooLarge:
			message = constants.ErrMsgRequestEntityTooLarge
		}
		return he.Code, message
	}

	switch apperrors.UnderlyingType(err) {
	case apperrors.InvalidInput:
		return http.StatusBadRequest, constants.ErrMsgBadRequest
	case apperrors.NotFound:
		return http.StatusNotFound, constants.ErrMsgNotFound
	case apperrors.Unavailable, apperrors.Timeout:
		return http.StatusServiceUnavailable, constants.ErrMsgServiceUnavailable
	}

	return http.StatusInternalServerError, constants.ErrMsgInternalServer
}
