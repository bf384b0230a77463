package catalog

// Build 시트 형식을 판별하여 해당 파서로 카탈로그를 만듭니다.
func Build(rows []Row, rules Rules) []Product {
	if DetectFormat(rows) == FormatEnriched {
		return ParseEnriched(rows, rules)
	}
	return ParsePlain(rows, rules)
}

// FindBySlug 슬러그가 정확히 일치하는 상품을 찾습니다.
func FindBySlug(products []Product, slug string) (Product, bool) {
	for _, p := range products {
		if p.Slug == slug {
			return p, true
		}
	}
	return Product{}, false
}

// Collections 상품의 (CollectionSlug, CollectionName) 쌍을 처음 등장한 순서대로 중복 없이 반환합니다.
func Collections(products []Product) []Collection {
	seen := make(map[string]struct{})
	out := []Collection{}
	for _, p := range products {
		if p.CollectionSlug == "" {
			continue
		}
		pair := p.CollectionSlug + "\x00" + p.CollectionName
		if _, ok := seen[pair]; ok {
			continue
		}
		seen[pair] = struct{}{}
		out = append(out, Collection{ID: "col_" + p.CollectionSlug, Slug: p.CollectionSlug, Name: p.CollectionName})
	}
	return out
}

// CollectionDetailOf 슬러그에 해당하는 컬렉션과 그 상품 목록을 반환합니다.
// 대표 이미지는 컬렉션의 첫 번째 상품 이미지입니다.
func CollectionDetailOf(products []Product, slug string) (*CollectionDetail, bool) {
	var col *Collection
	for _, c := range Collections(products) {
		if c.Slug == slug {
			c := c
			col = &c
			break
		}
	}
	if col == nil {
		return nil, false
	}

	d := &CollectionDetail{Collection: *col, Products: []Product{}}
	for _, p := range products {
		if p.CollectionSlug != slug {
			continue
		}
		d.Products = append(d.Products, p)
		if d.Image == nil && len(p.Images) > 0 {
			img := p.Images[0]
			d.Image = &img
		}
	}
	return d, true
}
