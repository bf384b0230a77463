package catalog

import (
	"sort"
	"strings"

	"github.com/iancoleman/strcase"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/luis-photousa/asi-sage-landing-pagev0.1/pkg/strutil"
)

// SortOption 상품 목록 정렬 방식입니다.
type SortOption string

const (
	SortDefault   SortOption = ""
	SortNameAsc   SortOption = "name-asc"
	SortNameDesc  SortOption = "name-desc"
	SortPriceAsc  SortOption = "price-asc"
	SortPriceDesc SortOption = "price-desc"
)

var sortOptions = []SortOption{SortNameAsc, SortNameDesc, SortPriceAsc, SortPriceDesc}

// SortOptions 지원하는 정렬 방식 목록을 반환합니다.
func SortOptions() []SortOption { return append([]SortOption{}, sortOptions...) }

// ParseSortOption "priceAsc", "PRICE_ASC", "price-asc" 를 모두 SortPriceAsc 로 해석합니다.
// 알 수 없는 값이면 false 를 반환합니다.
func ParseSortOption(s string) (SortOption, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return SortDefault, true
	}
	candidate := SortOption(strcase.ToKebab(s))
	for _, o := range sortOptions {
		if o == candidate {
			return o, true
		}
	}
	return SortDefault, false
}

// Query 상품 목록 검색 조건입니다. 비어 있는 조건은 적용되지 않습니다.
type Query struct {
	Search     string
	Collection string
	Colors     []string // 하나라도 일치하면 통과
	Sizes      []string // 하나라도 일치하면 통과
	Sort       SortOption
}

// Apply 조건에 맞는 상품을 정렬하여 반환합니다. 입력 슬라이스는 변경하지 않습니다.
func (r Rules) Apply(products []Product, q Query) []Product {
	out := make([]Product, 0, len(products))
	needle := strings.TrimSpace(q.Search)

	for _, p := range products {
		if q.Collection != "" && p.CollectionSlug != q.Collection {
			continue
		}
		if needle != "" && !matchesSearch(p, needle) {
			continue
		}
		if len(q.Colors) > 0 && !anyOf(q.Colors, func(c string) bool { return r.ProductMatchesColor(p, c) }) {
			continue
		}
		if len(q.Sizes) > 0 && !anyOf(q.Sizes, func(s string) bool { return ProductMatchesSize(p, s) }) {
			continue
		}
		out = append(out, p)
	}

	SortProducts(out, q.Sort)
	return out
}

func anyOf(values []string, fn func(string) bool) bool {
	for _, v := range values {
		if fn(v) {
			return true
		}
	}
	return false
}

// matchesSearch 이름, 슬러그, 컬렉션 이름, Variant SKU 중 하나라도 검색어를 포함하면(대소문자 무시) true
func matchesSearch(p Product, needle string) bool {
	if strutil.ContainsFold(p.Name, needle) || strutil.ContainsFold(p.Slug, needle) {
		return true
	}
	if p.CollectionName != "" && strutil.ContainsFold(p.CollectionName, needle) {
		return true
	}
	for _, v := range p.Variants {
		if v.SKU != "" && strutil.ContainsFold(v.SKU, needle) {
			return true
		}
	}
	return false
}

// SortProducts 상품을 정렬합니다. SortDefault 이면 카탈로그 순서를 유지합니다.
// 가격 정렬은 CardPrice 를 사용하며, 가격을 해석할 수 없는 상품은 뒤로 보냅니다.
func SortProducts(products []Product, opt SortOption) {
	switch opt {
	case SortNameAsc, SortNameDesc:
		// collate.Collator 는 동시 사용이 안전하지 않으므로 호출마다 생성한다.
		c := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(products, func(i, j int) bool {
			cmp := c.CompareString(products[i].Name, products[j].Name)
			if opt == SortNameDesc {
				return cmp > 0
			}
			return cmp < 0
		})

	case SortPriceAsc, SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			pi, okI := minorUnits(products[i].CardPrice())
			pj, okJ := minorUnits(products[j].CardPrice())
			if !okI || !okJ {
				return okI && !okJ
			}
			if opt == SortPriceDesc {
				return pi.GreaterThan(pj)
			}
			return pi.LessThan(pj)
		})
	}
}

// FacetValue 필터 항목과 해당 상품 수입니다.
type FacetValue struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Hex   string `json:"hex,omitempty"`
	Count int    `json:"count"`
}

// Facets 필터 사이드바에 표시할 색상과 용량 목록입니다.
type Facets struct {
	Colors []FacetValue `json:"colors"`
	Sizes  []FacetValue `json:"sizes"`
}

// BuildFacets 상품 목록에서 필터 항목을 만듭니다.
// 색상은 견본 테이블에 있는 것만 이름 순으로, 용량은 숫자 순으로 정렬합니다.
func (r Rules) BuildFacets(products []Product) Facets {
	colorCount := make(map[string]int)
	sizeCount := make(map[string]int)

	for _, p := range products {
		for _, c := range r.ColorsFromProduct(p) {
			if _, ok := r.SwatchHex(c); ok {
				colorCount[c]++
			}
		}
		for _, s := range SizesFromProduct(p) {
			sizeCount[s]++
		}
	}

	colors := make([]string, 0, len(colorCount))
	for c := range colorCount {
		colors = append(colors, c)
	}
	sort.Strings(colors)

	sizes := make([]string, 0, len(sizeCount))
	for s := range sizeCount {
		sizes = append(sizes, s)
	}
	sort.Strings(sizes)
	SortNatural(sizes)

	f := Facets{Colors: make([]FacetValue, 0, len(colors)), Sizes: make([]FacetValue, 0, len(sizes))}
	for _, c := range colors {
		hex, _ := r.SwatchHex(c)
		f.Colors = append(f.Colors, FacetValue{Value: c, Label: ColorDisplayLabel(c), Hex: hex, Count: colorCount[c]})
	}
	for _, s := range sizes {
		f.Sizes = append(f.Sizes, FacetValue{Value: s, Label: s, Count: sizeCount[s]})
	}
	return f
}
