package catalog

// Synonyms 일반 형식에서 논리 필드별로 인정하는 정규화된 열 이름 목록입니다. 앞에 있을수록 우선합니다.
type Synonyms struct {
	Name  []string
	Price []string
	SKU   []string
	Image []string
}

// Swatch 필터와 색상 견본에 사용하는 색상 이름과 HEX 값입니다.
type Swatch struct {
	Color string `json:"color"`
	Hex   string `json:"hex"`
}

// Rules 변환에 사용하는 모든 고정 테이블입니다. 특이한 스키마의 시트를 다룰 때 필요한 항목만 바꿔서 사용합니다.
type Rules struct {
	Synonyms Synonyms

	// Suffixes 상품 종류를 나타내는 접미사. 나열 순서대로 검사하며 처음 일치한 것이 사용된다.
	Suffixes []string

	Swatches []Swatch

	MaxTiers        int
	MaxImageColumns int
}

// DefaultSynonyms 기본 동의어 목록을 반환합니다.
func DefaultSynonyms() Synonyms {
	return Synonyms{
		Name:  []string{"productname", "product_name", "name", "product", "item", "description", "itemname", "item_name", "title"},
		Price: []string{"price", "unitprice", "unit_price", "retail", "msrp", "listprice", "list_price", "cost"},
		SKU:   []string{"sku", "id", "item", "itemid", "item_id", "productid", "product_id"},
		Image: []string{"image", "imageurl", "image_url", "photo", "picture", "img", "image_link"},
	}
}

// DefaultSuffixes 기본 상품 접미사 목록을 반환합니다.
func DefaultSuffixes() []string {
	return []string{
		" mug", " mugs", " glass", " glasses", " stein", " tile", " tiles", " sleeve",
		" pad", " pads", " box", " ornament", " mirror", " notebook", " enamel",
	}
}

// DefaultSwatches 기본 색상 견본 테이블을 반환합니다.
func DefaultSwatches() []Swatch {
	return []Swatch{
		{"maroon", "#782f40"},
		{"red", "#ba0c2f"},
		{"pink", "#e4a9bb"},
		{"orange", "#dc4405"},
		{"yellow", "#d9c756"},
		{"light green", "#a4d65e"},
		{"green", "#00594c"},
		{"light blue", "#02a3e0"},
		{"cambridge blue", "#307fe2"},
		{"blue", "#250e62"},
		{"black", "#101820"},
		{"white", "#f5f5f5"},
	}
}

// DefaultRules 기본 Rules 를 반환합니다. 호출할 때마다 새 슬라이스를 만들므로 수정해도 안전합니다.
func DefaultRules() Rules {
	return Rules{
		Synonyms:        DefaultSynonyms(),
		Suffixes:        DefaultSuffixes(),
		Swatches:        DefaultSwatches(),
		MaxTiers:        5,
		MaxImageColumns: 20,
	}
}

// SwatchHex 색상 이름에 해당하는 HEX 값을 반환합니다.
func (r Rules) SwatchHex(color string) (string, bool) {
	for _, s := range r.Swatches {
		if s.Color == color {
			return s.Hex, true
		}
	}
	return "", false
}
