package errors

import "strconv"

// ErrorType 에러 분류입니다.
type ErrorType int

const (
	// Unknown 분류할 수 없는 에러
	Unknown ErrorType = iota

	// Internal 내부 로직 오류
	Internal

	// System 파일, 네트워크 등 인프라 오류
	System

	// Unauthorized 인증 실패
	Unauthorized

	// Forbidden 접근 권한 없음
	Forbidden

	// InvalidInput 요청 값 또는 설정 값 검증 실패
	InvalidInput

	// Conflict 리소스 충돌
	Conflict

	// NotFound 상품, 컬렉션 등 요청한 리소스 없음
	NotFound

	// ExecutionFailed 외부 API 호출(알림 발송 등) 실패
	ExecutionFailed

	// ParsingFailed 가격표, JSON 등 데이터 해석 실패
	ParsingFailed

	// Timeout 시간 초과
	Timeout

	// Unavailable 일시적으로 사용할 수 없음 (큐 포화 등)
	Unavailable
)

var errorTypeNames = [...]string{
	Unknown:         "Unknown",
	Internal:        "Internal",
	System:          "System",
	Unauthorized:    "Unauthorized",
	Forbidden:       "Forbidden",
	InvalidInput:    "InvalidInput",
	Conflict:        "Conflict",
	NotFound:        "NotFound",
	ExecutionFailed: "ExecutionFailed",
	ParsingFailed:   "ParsingFailed",
	Timeout:         "Timeout",
	Unavailable:     "Unavailable",
}

func (t ErrorType) String() string {
	if t < 0 || int(t) >= len(errorTypeNames) {
		return "ErrorType(" + strconv.Itoa(int(t)) + ")"
	}
	return errorTypeNames[t]
}
