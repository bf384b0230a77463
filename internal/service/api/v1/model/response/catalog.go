// Package response v1 API 응답 본문 모델을 정의합니다.
package response

import "github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/catalog"

// ProductListResponse 상품 목록 응답
type ProductListResponse struct {
	// 조건에 맞는 상품 목록 (정렬 적용)
	Products []catalog.Product `json:"products"`
	// 상품 수
	Total int `json:"total" example:"12"`
}

// CollectionListResponse 컬렉션 목록 응답
type CollectionListResponse struct {
	Collections []catalog.Collection `json:"collections"`
}

// FiltersResponse 필터 사이드바 구성 응답
type FiltersResponse struct {
	// 견본 테이블에 있는 색상 (이름 순)
	Colors []catalog.FacetValue `json:"colors"`
	// 용량 (숫자 순)
	Sizes []catalog.FacetValue `json:"sizes"`
	// 지원하는 정렬 방식
	SortOptions []catalog.SortOption `json:"sortOptions" example:"name-asc,name-desc,price-asc,price-desc"`
}
