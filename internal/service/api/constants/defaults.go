package constants

import "time"

// 서버 설정 기본값 상수입니다.
const (
	// DefaultRequestTimeout 설정이 없을 때 적용하는 요청 처리 제한 시간
	DefaultRequestTimeout = 30 * time.Second

	// DefaultReadTimeout 요청 본문을 읽는 데 허용하는 최대 시간
	DefaultReadTimeout = 15 * time.Second

	// DefaultWriteTimeout 응답을 쓰는 데 허용하는 최대 시간. 요청 처리 제한 시간보다 길어야 한다.
	DefaultWriteTimeout = 65 * time.Second

	// DefaultIdleTimeout Keep-Alive 연결의 유휴 제한 시간
	DefaultIdleTimeout = 120 * time.Second

	// DefaultShutdownTimeout Graceful Shutdown 시 최대 대기 시간
	DefaultShutdownTimeout = 5 * time.Second

	// DefaultRateLimitPerSecond 설정이 없을 때 IP 별 초당 허용 요청 수
	DefaultRateLimitPerSecond = 20.0

	// DefaultRateLimitBurst 설정이 없을 때 IP 별 버스트 허용량
	DefaultRateLimitBurst = 40

	// ContactRateLimitPerSecond 문의 접수 엔드포인트의 IP 별 초당 허용 요청 수 (5초에 1건)
	ContactRateLimitPerSecond = 0.2

	// ContactRateLimitBurst 문의 접수 엔드포인트의 IP 별 버스트 허용량
	ContactRateLimitBurst = 3
)
