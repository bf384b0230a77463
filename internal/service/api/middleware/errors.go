package middleware

import (
	"fmt"

	apperrors "github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/pkg/errors"
	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/service/api/constants"
	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/service/api/httputil"
)

// ErrRateLimitExceeded 허용된 요청 빈도를 초과한 클라이언트에게 반환할 429 에러입니다.
var ErrRateLimitExceeded = httputil.NewTooManyRequestsError(constants.ErrMsgTooManyRequests)

// NewErrPanicRecovered 캡처된 패닉 값을 내부 시스템 오류로 래핑하여 새로운 에러를 생성합니다.
func NewErrPanicRecovered(r any) error {
	return apperrors.New(apperrors.Internal, fmt.Sprintf("%v", r))
}
