package storefront

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/catalog"
	apperrors "github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/pkg/errors"
	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/service/cache"
	applog "github.com/luis-photousa/asi-sage-landing-pagev0.1/pkg/log"
)

const (
	keyProducts    = "products"
	keyCollections = "collections"
	keyFilters     = "filters"

	keyProductPrefix    = "product:"
	keyCollectionPrefix = "collection:"
	keySearchPrefix     = "search:"
)

// CachedCatalog 다른 Reader 의 조회 결과를 JSON 으로 직렬화하여 저장소에 보관하는 데코레이터입니다.
//
// 찾지 못한 결과(false)는 보관하지 않습니다. 저장소 오류는 경고로 기록하고 원본 Reader 의 결과를 그대로 반환합니다.
type CachedCatalog struct {
	next  Reader
	store cache.Store
	ttl   time.Duration
}

// NewCachedCatalog 새로운 CachedCatalog 를 생성합니다.
func NewCachedCatalog(next Reader, store cache.Store, ttl time.Duration) *CachedCatalog {
	if next == nil {
		panic("Reader는 필수입니다")
	}
	if store == nil {
		panic("cache.Store는 필수입니다")
	}

	return &CachedCatalog{next: next, store: store, ttl: ttl}
}

func (c *CachedCatalog) ListProducts(ctx context.Context) []catalog.Product {
	v, _ := cached(ctx, c, keyProducts, func() ([]catalog.Product, bool) {
		return c.next.ListProducts(ctx), true
	})
	return v
}

func (c *CachedCatalog) GetProductBySlug(ctx context.Context, slug string) (*catalog.ProductDetail, bool) {
	return cached(ctx, c, keyProductPrefix+slug, func() (*catalog.ProductDetail, bool) {
		return c.next.GetProductBySlug(ctx, slug)
	})
}

func (c *CachedCatalog) ListCollections(ctx context.Context) []catalog.Collection {
	v, _ := cached(ctx, c, keyCollections, func() ([]catalog.Collection, bool) {
		return c.next.ListCollections(ctx), true
	})
	return v
}

func (c *CachedCatalog) GetCollectionBySlug(ctx context.Context, slug string) (*catalog.CollectionDetail, bool) {
	return cached(ctx, c, keyCollectionPrefix+slug, func() (*catalog.CollectionDetail, bool) {
		return c.next.GetCollectionBySlug(ctx, slug)
	})
}

func (c *CachedCatalog) SearchProducts(ctx context.Context, q catalog.Query) []catalog.Product {
	v, _ := cached(ctx, c, searchKey(q), func() ([]catalog.Product, bool) {
		return c.next.SearchProducts(ctx, q), true
	})
	return v
}

func (c *CachedCatalog) Filters(ctx context.Context) catalog.Facets {
	v, _ := cached(ctx, c, keyFilters, func() (catalog.Facets, bool) {
		return c.next.Filters(ctx), true
	})
	return v
}

// Refresh 저장소를 비운 뒤 자주 조회되는 목록을 다시 채웁니다.
func (c *CachedCatalog) Refresh(ctx context.Context) error {
	if err := c.store.Flush(ctx); err != nil {
		return apperrors.Wrap(err, apperrors.Unavailable, "캐시를 비우지 못했습니다")
	}

	c.ListProducts(ctx)
	c.ListCollections(ctx)
	c.Filters(ctx)

	products, _ := c.CachedCount(ctx, keyProducts)
	collections, _ := c.CachedCount(ctx, keyCollections)

	applog.WithComponentAndFields(component, applog.Fields{
		"products":    products,
		"collections": collections,
	}).Info("카탈로그 캐시를 갱신했습니다")

	return nil
}

// CachedCount 저장소에 보관된 목록의 항목 수를 디코딩 없이 반환합니다. 보관된 값이 없으면 false 를 반환합니다.
func (c *CachedCatalog) CachedCount(ctx context.Context, key string) (int64, bool) {
	data, ok, err := c.store.Get(ctx, key)
	if err != nil || !ok {
		return 0, false
	}

	r := gjson.GetBytes(data, "#")
	if !r.Exists() {
		return 0, false
	}
	return r.Int(), true
}

func cached[T any](ctx context.Context, c *CachedCatalog, key string, load func() (T, bool)) (T, bool) {
	if data, ok, err := c.store.Get(ctx, key); err != nil {
		logStoreError(key, err, "캐시 조회에 실패하여 원본을 사용합니다")
	} else if ok {
		var v T
		err := json.Unmarshal(data, &v)
		if err == nil {
			return v, true
		}
		logStoreError(key, err, "캐시 값을 해석할 수 없어 원본을 사용합니다")
	}

	v, ok := load()
	if !ok {
		return v, false
	}

	data, err := json.Marshal(v)
	if err != nil {
		logStoreError(key, err, "조회 결과를 직렬화하지 못했습니다")
		return v, true
	}
	if err := c.store.Set(ctx, key, data, c.ttl); err != nil {
		logStoreError(key, err, "조회 결과를 캐시에 저장하지 못했습니다")
	}

	return v, true
}

func logStoreError(key string, err error, message string) {
	applog.WithComponentAndFields(component, applog.Fields{
		"key":   key,
		"error": err,
	}).Warn(message)
}

// searchKey 같은 결과를 내는 검색 조건이 같은 키를 갖도록 정규화합니다.
func searchKey(q catalog.Query) string {
	return keySearchPrefix + strings.Join([]string{
		strings.ToLower(strings.TrimSpace(q.Search)),
		q.Collection,
		joinSorted(q.Colors),
		joinSorted(q.Sizes),
		string(q.Sort),
	}, "|")
}

func joinSorted(values []string) string {
	if len(values) == 0 {
		return ""
	}
	s := append([]string(nil), values...)
	sort.Strings(s)
	return strings.Join(s, ",")
}
