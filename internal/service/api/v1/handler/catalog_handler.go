package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/catalog"
	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/service/api/constants"
	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/service/api/v1/model/response"
	applog "github.com/luis-photousa/asi-sage-landing-pagev0.1/pkg/log"
	"github.com/luis-photousa/asi-sage-landing-pagev0.1/pkg/strutil"
)

// ListProductsHandler godoc
// @Summary 상품 목록 조회
// @Description 가격표에서 만든 상품 목록을 반환합니다. 조건이 없으면 가격표 순서 그대로 반환합니다.
// @Description
// @Description color, size 는 여러 번 지정하거나 쉼표로 구분할 수 있으며, 하나라도 일치하면 포함됩니다.
// @Description 알 수 없는 sort 값은 무시하고 가격표 순서를 사용합니다.
// @Tags Catalog
// @Produce json
// @Param q query string false "검색어 (상품명, slug, 컬렉션명, SKU)" example(mug)
// @Param collection query string false "컬렉션 slug" example(mugs)
// @Param color query []string false "색상" collectionFormat(multi)
// @Param size query []string false "용량" collectionFormat(multi)
// @Param sort query string false "정렬 방식" Enums(name-asc, name-desc, price-asc, price-desc)
// @Success 200 {object} response.ProductListResponse "상품 목록"
// @Failure 429 {object} response.ErrorResponse "요청 빈도 초과"
// @Router /api/v1/products [get]
func (h *Handler) ListProductsHandler(c echo.Context) error {
	ctx := c.Request().Context()

	var products []catalog.Product
	if q, ok := h.parseQuery(c); ok {
		products = h.catalog.SearchProducts(ctx, q)
	} else {
		products = h.catalog.ListProducts(ctx)
	}

	if products == nil {
		products = []catalog.Product{}
	}

	return c.JSON(http.StatusOK, response.ProductListResponse{
		Products: products,
		Total:    len(products),
	})
}

// parseQuery 쿼리 파라미터로 검색 조건을 만듭니다. 조건이 하나도 없으면 false 를 반환합니다.
func (h *Handler) parseQuery(c echo.Context) (catalog.Query, bool) {
	params := c.QueryParams()

	q := catalog.Query{
		Search:     params.Get(constants.QueryParamSearch),
		Collection: params.Get(constants.QueryParamCollection),
		Colors:     splitMulti(params[constants.QueryParamColor]),
		Sizes:      splitMulti(params[constants.QueryParamSize]),
	}

	if raw := params.Get(constants.QueryParamSort); raw != "" {
		sort, ok := catalog.ParseSortOption(raw)
		if !ok {
			h.log(c).WithField("sort", raw).Debug(constants.LogMsgInvalidSortOption)
		}
		q.Sort = sort
	}

	empty := q.Search == "" && q.Collection == "" && len(q.Colors) == 0 && len(q.Sizes) == 0 && q.Sort == catalog.SortDefault
	return q, !empty
}

// splitMulti ?color=black&color=red,blue 처럼 반복 지정과 쉼표 구분을 함께 허용합니다.
func splitMulti(values []string) []string {
	var out []string
	for _, v := range values {
		out = append(out, strutil.SplitAndTrim(v, ",")...)
	}
	return out
}

// GetProductHandler godoc
// @Summary 상품 상세 조회
// @Description slug 에 해당하는 상품의 옵션 구성, 가격 범위, 요약 설명을 반환합니다.
// @Tags Catalog
// @Produce json
// @Param slug path string true "상품 slug" example(11-oz-mug)
// @Success 200 {object} catalog.ProductDetail "상품 상세"
// @Failure 404 {object} response.ErrorResponse "상품 없음"
// @Router /api/v1/products/{slug} [get]
func (h *Handler) GetProductHandler(c echo.Context) error {
	slug := c.Param(constants.PathParamSlug)

	detail, ok := h.catalog.GetProductBySlug(c.Request().Context(), slug)
	if !ok {
		h.log(c).WithField("slug", slug).Debug("상품을 찾을 수 없습니다")
		return NewErrProductNotFound()
	}

	return c.JSON(http.StatusOK, detail)
}

// ListCollectionsHandler godoc
// @Summary 컬렉션 목록 조회
// @Description 상품의 Category 에서 파생된 컬렉션 목록을 처음 등장한 순서대로 반환합니다.
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.CollectionListResponse "컬렉션 목록"
// @Router /api/v1/collections [get]
func (h *Handler) ListCollectionsHandler(c echo.Context) error {
	collections := h.catalog.ListCollections(c.Request().Context())
	if collections == nil {
		collections = []catalog.Collection{}
	}

	return c.JSON(http.StatusOK, response.CollectionListResponse{Collections: collections})
}

// GetCollectionHandler godoc
// @Summary 컬렉션 상세 조회
// @Description 컬렉션과 그에 속한 상품 목록을 반환합니다. 대표 이미지는 첫 번째 상품의 첫 이미지입니다.
// @Tags Catalog
// @Produce json
// @Param slug path string true "컬렉션 slug" example(mugs)
// @Success 200 {object} catalog.CollectionDetail "컬렉션 상세"
// @Failure 404 {object} response.ErrorResponse "컬렉션 없음"
// @Router /api/v1/collections/{slug} [get]
func (h *Handler) GetCollectionHandler(c echo.Context) error {
	slug := c.Param(constants.PathParamSlug)

	detail, ok := h.catalog.GetCollectionBySlug(c.Request().Context(), slug)
	if !ok {
		h.log(c).WithField("slug", slug).Debug("컬렉션을 찾을 수 없습니다")
		return NewErrCollectionNotFound()
	}

	return c.JSON(http.StatusOK, detail)
}

// FiltersHandler godoc
// @Summary 필터 목록 조회
// @Description 필터 사이드바에 표시할 색상, 용량과 상품 수, 지원하는 정렬 방식을 반환합니다.
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.FiltersResponse "필터 목록"
// @Router /api/v1/filters [get]
func (h *Handler) FiltersHandler(c echo.Context) error {
	facets := h.catalog.Filters(c.Request().Context())

	resp := response.FiltersResponse{
		Colors:      facets.Colors,
		Sizes:       facets.Sizes,
		SortOptions: catalog.SortOptions(),
	}
	if resp.Colors == nil {
		resp.Colors = []catalog.FacetValue{}
	}
	if resp.Sizes == nil {
		resp.Sizes = []catalog.FacetValue{}
	}

	h.log(c).WithFields(applog.Fields{
		"colors": len(resp.Colors),
		"sizes":  len(resp.Sizes),
	}).Debug("필터 목록 조회")

	return c.JSON(http.StatusOK, resp)
}
