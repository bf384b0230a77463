// Package storefront 가격표로부터 만든 카탈로그를 조회하는 읽기 전용 서비스를 제공합니다.
package storefront

import (
	"context"

	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/catalog"
)

const component = "storefront.catalog"

// Reader 카탈로그 조회 작업 목록입니다. 모든 작업은 읽기 전용입니다.
type Reader interface {
	ListProducts(ctx context.Context) []catalog.Product
	GetProductBySlug(ctx context.Context, slug string) (*catalog.ProductDetail, bool)
	ListCollections(ctx context.Context) []catalog.Collection
	GetCollectionBySlug(ctx context.Context, slug string) (*catalog.CollectionDetail, bool)
	SearchProducts(ctx context.Context, q catalog.Query) []catalog.Product
	Filters(ctx context.Context) catalog.Facets
}

// ProductSource 가격표를 읽어 상품 목록을 만드는 공급원입니다. pricelist.Source 가 이를 구현합니다.
type ProductSource interface {
	LoadProducts(ctx context.Context, rules catalog.Rules) []catalog.Product
}

// Catalog 호출될 때마다 가격표를 다시 읽어 결과를 만드는 Reader 구현체입니다.
// 상태를 갖지 않으므로 여러 고루틴에서 동시에 사용해도 안전합니다.
type Catalog struct {
	source ProductSource
	rules  catalog.Rules
}

// NewCatalog 새로운 Catalog 를 생성합니다.
func NewCatalog(source ProductSource, rules catalog.Rules) *Catalog {
	if source == nil {
		panic("ProductSource는 필수입니다")
	}

	return &Catalog{source: source, rules: rules}
}

func (c *Catalog) load(ctx context.Context) []catalog.Product {
	return c.source.LoadProducts(ctx, c.rules)
}

// ListProducts 카탈로그의 모든 상품을 가격표 순서대로 반환합니다.
func (c *Catalog) ListProducts(ctx context.Context) []catalog.Product {
	return c.load(ctx)
}

// GetProductBySlug slug 에 해당하는 상품의 상세 정보를 반환합니다.
func (c *Catalog) GetProductBySlug(ctx context.Context, slug string) (*catalog.ProductDetail, bool) {
	p, ok := catalog.FindBySlug(c.load(ctx), slug)
	if !ok {
		return nil, false
	}

	detail := catalog.NewProductDetail(p)
	return &detail, true
}

// ListCollections 상품에서 파생된 컬렉션 목록을 반환합니다.
func (c *Catalog) ListCollections(ctx context.Context) []catalog.Collection {
	return catalog.Collections(c.load(ctx))
}

// GetCollectionBySlug 컬렉션과 그에 속한 상품을 반환합니다.
func (c *Catalog) GetCollectionBySlug(ctx context.Context, slug string) (*catalog.CollectionDetail, bool) {
	return catalog.CollectionDetailOf(c.load(ctx), slug)
}

// SearchProducts 검색어, 컬렉션, 색상, 용량 조건으로 상품을 거르고 정렬합니다.
func (c *Catalog) SearchProducts(ctx context.Context, q catalog.Query) []catalog.Product {
	return c.rules.Apply(c.load(ctx), q)
}

// Filters 필터 사이드바에 표시할 색상과 용량 목록을 반환합니다.
func (c *Catalog) Filters(ctx context.Context) catalog.Facets {
	return c.rules.BuildFacets(c.load(ctx))
}
