package contact

import (
	apperrors "github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/pkg/errors"
)

// ErrMsgMissingFields 필수 입력값이 비어 있을 때의 메시지
const ErrMsgMissingFields = "이름, 이메일, 문의 내용은 필수입니다"

var (
	// ErrQueueFull 문의 큐가 가득 차 더 이상 접수할 수 없을 때 반환합니다.
	ErrQueueFull = apperrors.New(apperrors.Unavailable, "문의 큐가 가득 찼습니다")

	// ErrNotRunning 서비스가 시작되지 않았거나 이미 종료된 상태에서 접수를 시도했을 때 반환합니다.
	ErrNotRunning = apperrors.New(apperrors.Unavailable, "문의 서비스가 실행 중이 아닙니다")
)
