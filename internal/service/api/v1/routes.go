// Package v1 상점 API 의 v1 버전 라우트를 정의합니다.
//
// 주요 엔드포인트:
//   - GET  /api/v1/products           - 상품 목록 (검색, 필터, 정렬)
//   - GET  /api/v1/products/:slug     - 상품 상세
//   - GET  /api/v1/collections        - 컬렉션 목록
//   - GET  /api/v1/collections/:slug  - 컬렉션 상세
//   - GET  /api/v1/filters            - 필터 사이드바 구성
//   - POST /api/v1/contact            - 문의 접수
package v1

import (
	"github.com/labstack/echo/v4"

	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/service/api/constants"
	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/service/api/middleware"
	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/service/api/v1/handler"
)

// RegisterRoutes Echo 인스턴스에 v1 API 라우트를 등록합니다.
//
// 문의 접수에는 전역 Rate Limit 외에 더 엄격한 IP 별 제한이 추가로 적용됩니다.
func RegisterRoutes(e *echo.Echo, h *handler.Handler) {
	v1Group := e.Group("/api/v1")

	v1Group.GET("/products", h.ListProductsHandler)
	v1Group.GET("/products/:"+constants.PathParamSlug, h.GetProductHandler)
	v1Group.GET("/collections", h.ListCollectionsHandler)
	v1Group.GET("/collections/:"+constants.PathParamSlug, h.GetCollectionHandler)
	v1Group.GET("/filters", h.FiltersHandler)

	v1Group.POST("/contact", h.SubmitContactHandler,
		middleware.RateLimiting(constants.ContactRateLimitPerSecond, constants.ContactRateLimitBurst),
	)
}
