package constants

// 내부 로깅을 위한 메시지 상수입니다.
const (
	// ------------------------------------------------------------------------------------------------
	// 서비스 생명주기
	// ------------------------------------------------------------------------------------------------

	LogMsgServiceStarting       = "API 서비스 시작중..."
	LogMsgServiceStarted        = "API 서비스 시작됨"
	LogMsgServiceAlreadyStarted = "API 서비스가 이미 시작됨!!!"
	LogMsgServiceStopping       = "API 서비스 중지중..."
	LogMsgServiceStopped        = "API 서비스 중지됨"
	LogMsgServiceUnexpectedExit = "API 서비스가 예기치 않게 종료되었습니다"

	LogMsgServiceCatalogLoaded = "API 서비스 > 카탈로그 로드 완료"
	LogMsgServiceCatalogEmpty  = "API 서비스 > 카탈로그가 비어 있습니다. 가격표 파일 경로를 확인해 주세요"

	LogMsgServiceHTTPServerStarting      = "API 서비스 > http 서버 시작"
	LogMsgServiceHTTPServerStopped       = "API 서비스 > http 서버 중지됨"
	LogMsgServiceHTTPServerShutdownError = "API 서비스 > http 서버 종료 중 오류 발생"
	LogMsgServiceHTTPServerFatalError    = "API 서비스 > http 서버를 구성하는 중에 치명적인 오류가 발생하였습니다"

	// ------------------------------------------------------------------------------------------------
	// 핸들러
	// ------------------------------------------------------------------------------------------------

	LogMsgHealthCheck        = "헬스체크 요청"
	LogMsgVersionInfo        = "버전 정보 요청"
	LogMsgInvalidSortOption  = "알 수 없는 정렬 방식이라 기본 순서를 사용합니다"
	LogMsgContactRejected    = "문의 접수가 거부되었습니다"
	LogMsgContactAccepted    = "문의가 접수되었습니다"
	LogMsgHTTP4xxClientError = "클라이언트 요청 오류"
	LogMsgHTTP5xxServerError = "서버 내부 오류"
	LogMsgPanicRecovered     = "PANIC RECOVERED"
	LogMsgRateLimitExceeded  = "Rate limit 초과"
	LogMsgHTTPRequest        = "HTTP 요청"
)
