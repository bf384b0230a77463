package catalog

import (
	"strconv"
	"strings"

	"github.com/luis-photousa/asi-sage-landing-pagev0.1/pkg/maputil"
)

// enrichedColumns 확장 형식의 고정 열
type enrichedColumns struct {
	Name        string `col:"Name"`
	SKU         string `col:"SKU"`
	Product     string `col:"Product"`
	Category    string `col:"Category"`
	Description string `col:"Description"`
}

// enrichedRow 가격이 해석된 확장 형식의 행
type enrichedRow struct {
	index  int
	cols   enrichedColumns
	tiers  []PriceTier
	price  string
	images []string
}

type productGroup struct {
	rows []enrichedRow
}

func exactName(mapKey, fieldName string) bool { return mapKey == fieldName }

func decodeEnrichedColumns(row Row) enrichedColumns {
	cols, err := maputil.Decode[enrichedColumns](row.Map(),
		maputil.WithTagName("col"),
		maputil.WithMatchName(exactName),
	)
	if err != nil {
		// 고정 열에 슬라이스/맵 같은 값이 들어온 경우. 해당 열은 비어 있는 것으로 본다.
		return enrichedColumns{}
	}
	return *cols
}

// imageColumns "Image 1" .. "Image {max}" 열의 값을 순서대로 반환한다. 중복은 제거하지 않는다.
func imageColumns(row Row, max int) []string {
	images := []string{}
	for n := 1; n <= max; n++ {
		v, ok := row.Lookup(colImagePrefix + strconv.Itoa(n))
		if !ok {
			continue
		}
		if s := strings.TrimSpace(cellString(v)); s != "" {
			images = append(images, s)
		}
	}
	return images
}

// groupKey Product 열이 있고 Name 과 다르면 Product, 아니면 Name 에서 파생한 키, 둘 다 없으면 SKU
func (r Rules) groupKey(cols enrichedColumns) string {
	switch {
	case cols.Product != "" && cols.Product != cols.Name:
		return cols.Product
	case cols.Name != "":
		return r.ProductKey(cols.Name)
	default:
		return cols.SKU
	}
}

// ParseEnriched Product/Category 고정 열을 가진 시트를 변환합니다.
//
// 가격을 해석할 수 없는 행은 그룹화 전에 제외됩니다. 그룹은 처음 등장한 순서를 유지하며,
// 그룹마다 하나의 Product 와 행마다 하나의 Variant 가 만들어집니다.
func ParseEnriched(rows []Row, rules Rules) []Product {
	groups := newOrderedMap[string, *productGroup]()

	for i, row := range rows {
		cells := normalizeRow(row)
		tiers := rules.extractTiers(cells)
		price, ok := rules.resolvePrice(cells, tiers)
		if !ok {
			continue
		}

		cols := decodeEnrichedColumns(row)
		key := rules.groupKey(cols)
		if key == "" {
			continue
		}

		g, ok := groups.get(key)
		if !ok {
			g = &productGroup{}
			groups.set(key, g)
		}
		g.rows = append(g.rows, enrichedRow{
			index:  i,
			cols:   cols,
			tiers:  tiers,
			price:  price,
			images: imageColumns(row, rules.MaxImageColumns),
		})
	}

	products := make([]Product, 0, groups.len())
	slugs := slugRegistry{}

	groups.each(func(key string, g *productGroup) {
		products = append(products, buildGroupProduct(key, g, slugs))
	})

	return products
}

func buildGroupProduct(key string, g *productGroup, slugs slugRegistry) Product {
	first := g.rows[0]

	name := first.cols.Product
	if name == "" {
		name = DisplayName(key)
	}

	// SKU 는 변환 없이 그대로 붙인다.
	disambiguator := first.cols.SKU
	if disambiguator == "" {
		disambiguator = strconv.Itoa(first.index)
	}
	slug := slugs.claim(Slugify(key), disambiguator)
	id := productID(slug)

	p := Product{
		ID:          id,
		Slug:        slug,
		Name:        name,
		Images:      []string{},
		Tiers:       first.tiers,
		Description: first.cols.Description,
		Variants:    make([]Variant, 0, len(g.rows)),
	}
	if first.cols.Category != "" {
		p.CollectionSlug = Slugify(first.cols.Category)
		p.CollectionName = first.cols.Category
	}

	seen := make(map[string]struct{})
	for i, row := range g.rows {
		for _, img := range row.images {
			if _, dup := seen[img]; !dup {
				seen[img] = struct{}{}
				p.Images = append(p.Images, img)
			}
		}

		label := row.cols.Name
		if label == "" {
			label = row.cols.SKU
		}
		p.Variants = append(p.Variants, Variant{
			ID:     "var_" + id + "_" + strconv.Itoa(i),
			Price:  row.price,
			Images: row.images,
			Label:  label,
			SKU:    row.cols.SKU,
		})
	}

	return p
}
