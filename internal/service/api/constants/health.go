package constants

// 헬스체크 및 시스템 상태 관련 상수입니다.
const (
	// HealthStatusHealthy 헬스체크 상태: 정상
	HealthStatusHealthy = "healthy"

	// HealthStatusUnhealthy 헬스체크 상태: 비정상
	HealthStatusUnhealthy = "unhealthy"

	// DependencyCatalog 의존성 ID: 가격표 카탈로그
	DependencyCatalog = "catalog"

	// MsgDepStatusHealthy 의존성 상태: 정상
	MsgDepStatusHealthy = "정상 작동 중 (상품 %d개)"

	// MsgDepStatusCatalogEmpty 의존성 상태: 가격표에서 상품을 찾지 못함
	MsgDepStatusCatalogEmpty = "가격표에서 상품을 찾을 수 없습니다"
)
