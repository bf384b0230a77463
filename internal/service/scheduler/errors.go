package scheduler

import (
	apperrors "github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/pkg/errors"
)

var (
	// ErrRefresherNotInitialized 서비스 시작 시 캐시 갱신을 담당하는 Refresher가 올바르게 초기화되지 않았을 때 반환하는 에러입니다.
	ErrRefresherNotInitialized = apperrors.New(apperrors.Internal, "Refresher 객체가 초기화되지 않았습니다")
)

// NewErrInvalidCronSpec Cron 표현식이 올바르지 않아 스케줄 등록에 실패했을 때 반환하는 에러를 생성합니다.
func NewErrInvalidCronSpec(timeSpec string, cause error) error {
	return apperrors.Wrapf(cause, apperrors.InvalidInput, "스케줄 등록 실패: 잘못된 Cron 표현식입니다 (TimeSpec='%s')", timeSpec)
}
