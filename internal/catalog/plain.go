package catalog

import "strconv"

// ParsePlain 한 행이 한 상품인 시트를 변환합니다.
//
// 이름이 없거나 가격(티어 또는 가격 열)을 해석할 수 없는 행은 제외됩니다.
// SKU 가 없으면 "row_{i+2}" (헤더 행을 포함한 1부터 시작하는 시트 행 번호)를 사용하고,
// 슬러그가 겹치면 "-{i}" 를 붙입니다.
func ParsePlain(rows []Row, rules Rules) []Product {
	products := make([]Product, 0, len(rows))
	slugs := slugRegistry{}

	for i, row := range rows {
		cells := normalizeRow(row)

		name, ok := cells.pick(rules.Synonyms.Name)
		if !ok {
			continue
		}

		tiers := rules.extractTiers(cells)
		price, ok := rules.resolvePrice(cells, tiers)
		if !ok {
			continue
		}

		sku, ok := cells.pick(rules.Synonyms.SKU)
		if !ok {
			sku = "row_" + strconv.Itoa(i+2)
		}

		images := []string{}
		if img, ok := cells.pick(rules.Synonyms.Image); ok {
			images = append(images, img)
		}

		slug := slugs.claim(Slugify(name), strconv.Itoa(i))
		id := productID(slug)

		products = append(products, Product{
			ID:     id,
			Slug:   slug,
			Name:   name,
			Images: images,
			Tiers:  tiers,
			Variants: []Variant{{
				ID:     "var_" + id,
				Price:  price,
				Images: append([]string{}, images...),
				SKU:    sku,
			}},
		})
	}

	return products
}
