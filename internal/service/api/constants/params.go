package constants

// 상품 목록 조회에 사용하는 쿼리 파라미터 키입니다.
const (
	QueryParamSearch     = "q"
	QueryParamCollection = "collection"
	QueryParamColor      = "color"
	QueryParamSize       = "size"
	QueryParamSort       = "sort"
)

// 경로 파라미터 키입니다.
const (
	PathParamSlug = "slug"
)

// 문의 양식 JSON 필드 이름입니다.
const (
	ContactFieldName    = "name"
	ContactFieldEmail   = "email"
	ContactFieldMessage = "message"
)
