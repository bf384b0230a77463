package catalog

// PriceTier 수량 구간별 단가입니다. Price 는 최소 화폐 단위(센트)의 정수 문자열입니다.
type PriceTier struct {
	Tier   string `json:"tier"`
	MinQty int    `json:"minQty"`
	Price  string `json:"price"`
}

// Variant 구매 가능한 하나의 구성입니다. 일반 형식에서는 상품당 하나, 확장 형식에서는 원본 행당 하나입니다.
type Variant struct {
	ID     string   `json:"id"`
	Price  string   `json:"price"`
	Images []string `json:"images"`
	Label  string   `json:"label,omitempty"`
	SKU    string   `json:"sku,omitempty"`
}

// Product 카탈로그의 상품입니다.
//
// Slug 는 한 번의 로드 안에서 유일하고 ID 는 Slug 로부터 결정됩니다.
// Variants 는 비어 있지 않으며, Tiers 가 있으면 첫 번째(T1) 가격이 카드에 표시되는 대표 가격입니다.
type Product struct {
	ID             string      `json:"id"`
	Slug           string      `json:"slug"`
	Name           string      `json:"name"`
	Images         []string    `json:"images"`
	Tiers          []PriceTier `json:"tiers,omitempty"`
	CollectionSlug string      `json:"collectionSlug,omitempty"`
	CollectionName string      `json:"collectionName,omitempty"`
	Variants       []Variant   `json:"variants"`

	// Description 확장 형식의 Description 열(HTML 허용) 원문. 상세 조회의 summary 로만 노출된다.
	Description string `json:"-"`
}

// CardPrice 상품 카드에 표시하는 가격입니다. T1 이 있으면 T1, 없으면 첫 번째 Variant 의 가격입니다.
func (p Product) CardPrice() string {
	if len(p.Tiers) > 0 {
		return p.Tiers[0].Price
	}
	if len(p.Variants) > 0 {
		return p.Variants[0].Price
	}
	return ""
}

// VariantType 선택 가능한 속성의 종류입니다.
type VariantType struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Label string `json:"label"`
}

// VariantValue 선택 가능한 속성 값 하나입니다.
type VariantValue struct {
	ID          string      `json:"id"`
	Value       string      `json:"value"`
	ColorValue  *string     `json:"colorValue"`
	VariantType VariantType `json:"variantType"`
}

// Combination Variant 를 구성하는 속성 값입니다.
type Combination struct {
	VariantValue VariantValue `json:"variantValue"`
}

// VariantDetail 상세 화면용 Variant 입니다.
type VariantDetail struct {
	Variant
	Combinations []Combination `json:"combinations"`
}

// PriceRange Variant 가격의 최소/최대값(최소 화폐 단위)입니다.
type PriceRange struct {
	Min string `json:"min"`
	Max string `json:"max"`
}

// ProductDetail 상품 상세 조회 결과입니다. 저장되지 않고 조회 시점에 Product 로부터 만들어집니다.
type ProductDetail struct {
	Product
	Summary    *string         `json:"summary"`
	Variants   []VariantDetail `json:"variants"`
	PriceRange *PriceRange     `json:"priceRange,omitempty"`
}

// Collection 확장 형식의 Category 열에서 파생된 컬렉션입니다.
type Collection struct {
	ID   string `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// CollectionDetail 컬렉션과 그에 속한 상품 목록입니다.
type CollectionDetail struct {
	Collection
	Description *string   `json:"description"`
	Image       *string   `json:"image"`
	Products    []Product `json:"products"`
}
