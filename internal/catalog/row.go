package catalog

import (
	"fmt"
	"math"
	"strconv"
)

// Cell 원본 열 이름과 셀 값입니다. 값이 비어 있는 셀은 Row 에 포함되지 않습니다.
type Cell struct {
	Header string
	Value  any
}

// Row 시트의 데이터 행 하나입니다. 셀은 시트의 열 순서를 따릅니다.
type Row []Cell

// Lookup 원본 열 이름이 정확히 일치하는 셀 값을 반환합니다. 같은 이름이 여러 번 나오면 마지막 값이 우선합니다.
func (r Row) Lookup(header string) (any, bool) {
	for i := len(r) - 1; i >= 0; i-- {
		if r[i].Header == header {
			return r[i].Value, true
		}
	}
	return nil, false
}

// Has 원본 열 이름이 정확히 일치하는 셀이 있는지 확인합니다.
func (r Row) Has(header string) bool {
	_, ok := r.Lookup(header)
	return ok
}

// Map 열 이름을 키로 하는 맵을 반환합니다.
func (r Row) Map() map[string]any {
	m := make(map[string]any, len(r))
	for _, c := range r {
		m[c.Header] = c.Value
	}
	return m
}

// RowOf 테스트와 JSON 입력을 위해 헤더-값 쌍으로 Row 를 만듭니다.
//
//	catalog.RowOf("Name", "Ceramic Mug", "Price", "$9.50")
func RowOf(kv ...any) Row {
	if len(kv)%2 != 0 {
		panic("catalog.RowOf: 헤더와 값의 개수가 맞지 않습니다")
	}
	row := make(Row, 0, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		row = append(row, Cell{Header: fmt.Sprint(kv[i]), Value: kv[i+1]})
	}
	return row
}

// cellString 셀 값을 문자열로 변환한다. 숫자는 불필요한 소수점 없이 표현한다.
func cellString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return formatFloat(t, 64)
	case float32:
		return formatFloat(float64(t), 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, bits)
}
