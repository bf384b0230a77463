package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/catalog"
	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/service/api/constants"
)

// slugsOf 응답 본문의 products 배열에서 slug 목록을 꺼냅니다.
func slugsOf(body string) []string {
	slugs := []string{}
	for _, v := range gjson.Get(body, "products.#.slug").Array() {
		slugs = append(slugs, v.String())
	}
	return slugs
}

// =============================================================================
// 상품 목록
// =============================================================================

func TestListProductsHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		target    string
		wantSlugs []string
		wantQuery *catalog.Query
	}{
		{
			name:      "조건 없음은 전체 목록",
			target:    "/api/v1/products",
			wantSlugs: []string{"11-oz-mug", "coaster-tile"},
		},
		{
			name:      "검색어",
			target:    "/api/v1/products?q=M-11-RD",
			wantSlugs: []string{"11-oz-mug"},
			wantQuery: &catalog.Query{Search: "M-11-RD"},
		},
		{
			name:      "반복 지정과 쉼표 구분 색상",
			target:    "/api/v1/products?color=black,red&color=white",
			wantSlugs: []string{"11-oz-mug", "coaster-tile"},
			wantQuery: &catalog.Query{Colors: []string{"black", "red", "white"}},
		},
		{
			name:      "용량 필터",
			target:    "/api/v1/products?size=11+oz",
			wantSlugs: []string{"11-oz-mug"},
			wantQuery: &catalog.Query{Sizes: []string{"11 oz"}},
		},
		{
			name:      "컬렉션 필터",
			target:    "/api/v1/products?collection=tiles",
			wantSlugs: []string{"coaster-tile"},
			wantQuery: &catalog.Query{Collection: "tiles"},
		},
		{
			name:      "camelCase 정렬 값",
			target:    "/api/v1/products?sort=priceAsc",
			wantSlugs: []string{"coaster-tile", "11-oz-mug"},
			wantQuery: &catalog.Query{Sort: catalog.SortPriceAsc},
		},
		{
			name:      "알 수 없는 정렬 값은 가격표 순서",
			target:    "/api/v1/products?sort=cheapest",
			wantSlugs: []string{"11-oz-mug", "coaster-tile"},
		},
		{
			name:      "일치 없음은 빈 배열",
			target:    "/api/v1/products?q=sleeve",
			wantSlugs: []string{},
			wantQuery: &catalog.Query{Search: "sleeve"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			reader := &stubReader{products: fixtureProducts()}
			e := newTestEcho(NewHandler(reader, &stubSubmitter{}))

			rec := serve(e, http.MethodGet, tt.target, "")
			require.Equal(t, http.StatusOK, rec.Code)

			body := rec.Body.String()
			assert.True(t, gjson.Get(body, "products").IsArray())
			assert.Equal(t, tt.wantSlugs, slugsOf(body))
			assert.Equal(t, int64(len(tt.wantSlugs)), gjson.Get(body, "total").Int())

			if tt.wantQuery == nil {
				assert.Nil(t, reader.lastQuery)
				assert.Equal(t, 1, reader.listCalls)
				return
			}
			require.NotNil(t, reader.lastQuery)
			assert.Equal(t, *tt.wantQuery, *reader.lastQuery)
		})
	}
}

func TestListProductsHandler_EmptyCatalog(t *testing.T) {
	t.Parallel()

	e := newTestEcho(NewHandler(&stubReader{}, &stubSubmitter{}))

	rec := serve(e, http.MethodGet, "/api/v1/products", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"products":[],"total":0}`, rec.Body.String())
}

func TestSplitMulti(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []string
		want   []string
	}{
		{"nil", nil, nil},
		{"단일 값", []string{"black"}, []string{"black"}},
		{"쉼표 구분", []string{"black, red"}, []string{"black", "red"}},
		{"빈 항목 제외", []string{"black,,", " "}, []string{"black"}},
		{"반복과 쉼표 혼합", []string{"11 oz", "15 oz,20 oz"}, []string{"11 oz", "15 oz", "20 oz"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, splitMulti(tt.values))
		})
	}
}

// =============================================================================
// 상품 상세, 컬렉션, 필터
// =============================================================================

func TestGetProductHandler(t *testing.T) {
	t.Parallel()

	e := newTestEcho(NewHandler(&stubReader{products: fixtureProducts()}, &stubSubmitter{}))

	t.Run("존재하는 상품", func(t *testing.T) {
		t.Parallel()

		rec := serve(e, http.MethodGet, "/api/v1/products/11-oz-mug", "")
		require.Equal(t, http.StatusOK, rec.Code)

		body := rec.Body.String()
		assert.Equal(t, "11-oz-mug", gjson.Get(body, "slug").String())
		assert.Equal(t, "500", gjson.Get(body, "priceRange.min").String())
		assert.Equal(t, "520", gjson.Get(body, "priceRange.max").String())
		assert.Equal(t, int64(2), gjson.Get(body, "variants.#").Int())
	})

	t.Run("존재하지 않는 상품", func(t *testing.T) {
		t.Parallel()

		rec := serve(e, http.MethodGet, "/api/v1/products/unknown", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"result_code":404,"message":"`+constants.ErrMsgProductNotFound+`"}`, rec.Body.String())
	})
}

func TestCollectionHandlers(t *testing.T) {
	t.Parallel()

	e := newTestEcho(NewHandler(&stubReader{products: fixtureProducts()}, &stubSubmitter{}))

	t.Run("목록", func(t *testing.T) {
		t.Parallel()

		rec := serve(e, http.MethodGet, "/api/v1/collections", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"collections":[
			{"id":"col_mugs","slug":"mugs","name":"Mugs"},
			{"id":"col_tiles","slug":"tiles","name":"Tiles"}
		]}`, rec.Body.String())
	})

	t.Run("상세", func(t *testing.T) {
		t.Parallel()

		rec := serve(e, http.MethodGet, "/api/v1/collections/mugs", "")
		require.Equal(t, http.StatusOK, rec.Code)

		body := rec.Body.String()
		assert.Equal(t, "mugs", gjson.Get(body, "slug").String())
		assert.Equal(t, "https://cdn.example.com/black.jpg", gjson.Get(body, "image").String())
		assert.Equal(t, []string{"11-oz-mug"}, slugsOf(body))
	})

	t.Run("존재하지 않는 컬렉션", func(t *testing.T) {
		t.Parallel()

		rec := serve(e, http.MethodGet, "/api/v1/collections/unknown", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, constants.ErrMsgCollectionNotFound, gjson.Get(rec.Body.String(), "message").String())
	})
}

func TestFiltersHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		products   []catalog.Product
		wantColors []string
		wantSizes  []string
	}{
		{"상품 있음", fixtureProducts(), []string{"black", "red", "white"}, []string{"11 oz"}},
		{"빈 카탈로그", nil, []string{}, []string{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := newTestEcho(NewHandler(&stubReader{products: tt.products}, &stubSubmitter{}))

			rec := serve(e, http.MethodGet, "/api/v1/filters", "")
			require.Equal(t, http.StatusOK, rec.Code)

			body := rec.Body.String()
			assert.True(t, gjson.Get(body, "colors").IsArray())
			assert.True(t, gjson.Get(body, "sizes").IsArray())

			colors := []string{}
			for _, v := range gjson.Get(body, "colors.#.value").Array() {
				colors = append(colors, v.String())
			}
			sizes := []string{}
			for _, v := range gjson.Get(body, "sizes.#.value").Array() {
				sizes = append(sizes, v.String())
			}

			assert.Equal(t, tt.wantColors, colors)
			assert.Equal(t, tt.wantSizes, sizes)
			assert.Equal(t, `["name-asc","name-desc","price-asc","price-desc"]`, gjson.Get(body, "sortOptions").Raw)
		})
	}
}
