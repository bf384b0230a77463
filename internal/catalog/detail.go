package catalog

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/luis-photousa/asi-sage-landing-pagev0.1/pkg/strutil"
)

var variantOptionType = VariantType{ID: "variant", Type: "string", Label: "Variant"}

// NewProductDetail 상품 상세 조회 결과를 만듭니다.
//
// 라벨이 있는 Variant 마다 "Variant" 종류의 선택 값 하나를 만들고, Description 열이 있으면
// HTML 태그를 제거한 텍스트를 summary 로 사용합니다.
func NewProductDetail(p Product) ProductDetail {
	d := ProductDetail{
		Product:    p,
		Summary:    summarize(p.Description),
		Variants:   make([]VariantDetail, 0, len(p.Variants)),
		PriceRange: priceRange(p.Variants),
	}
	if d.Images == nil {
		d.Images = []string{}
	}

	for _, v := range p.Variants {
		if v.Images == nil {
			v.Images = []string{}
		}
		vd := VariantDetail{Variant: v, Combinations: []Combination{}}
		if v.Label != "" {
			vd.Combinations = append(vd.Combinations, Combination{
				VariantValue: VariantValue{
					ID:          "vv_" + v.ID,
					Value:       v.Label,
					VariantType: variantOptionType,
				},
			})
		}
		d.Variants = append(d.Variants, vd)
	}

	return d
}

// summarize HTML 이 섞인 설명에서 텍스트만 추출한다. 비어 있으면 nil.
func summarize(description string) *string {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil
	}

	text := description
	if strings.Contains(description, "<") {
		if doc, err := goquery.NewDocumentFromReader(strings.NewReader(description)); err == nil {
			text = doc.Text()
		}
	}

	text = strutil.NormalizeSpaces(text)
	if text == "" {
		return nil
	}
	return &text
}

func priceRange(variants []Variant) *PriceRange {
	var r *PriceRange
	var lo, hi string
	for _, v := range variants {
		d, ok := minorUnits(v.Price)
		if !ok {
			continue
		}
		if r == nil {
			r, lo, hi = &PriceRange{}, v.Price, v.Price
			continue
		}
		if l, _ := minorUnits(lo); d.LessThan(l) {
			lo = v.Price
		}
		if h, _ := minorUnits(hi); d.GreaterThan(h) {
			hi = v.Price
		}
	}
	if r == nil {
		return nil
	}
	r.Min, r.Max = lo, hi
	return r
}
