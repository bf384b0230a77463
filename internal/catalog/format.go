package catalog

// Format 시트 형식입니다.
type Format int

const (
	// FormatPlain 한 행이 한 상품인 형식
	FormatPlain Format = iota

	// FormatEnriched Product/Category 고정 열로 여러 행을 한 상품으로 묶는 형식
	FormatEnriched
)

func (f Format) String() string {
	if f == FormatEnriched {
		return "enriched"
	}
	return "plain"
}

// 확장 형식의 고정 열 이름. 대소문자까지 정확히 일치해야 한다.
const (
	colName        = "Name"
	colSKU         = "SKU"
	colProduct     = "Product"
	colCategory    = "Category"
	colDescription = "Description"
	colImagePrefix = "Image "
)

// DetectFormat 첫 번째 행에 "Product" 와 "Category" 열이 모두 있으면 확장 형식으로 판단합니다.
// 행이 없으면 일반 형식입니다.
func DetectFormat(rows []Row) Format {
	if len(rows) == 0 {
		return FormatPlain
	}
	if rows[0].Has(colProduct) && rows[0].Has(colCategory) {
		return FormatEnriched
	}
	return FormatPlain
}
