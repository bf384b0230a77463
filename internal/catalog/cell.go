package catalog

import "strings"

// normalizedRow 정규화된 열 이름을 키로 하는 셀 문자열 맵. 값은 앞뒤 공백이 제거되어 있다.
type normalizedRow map[string]string

func normalizeRow(row Row) normalizedRow {
	out := make(normalizedRow, len(row))
	for _, c := range row {
		if c.Value == nil {
			continue
		}
		if s, ok := c.Value.(string); ok && s == "" {
			continue
		}
		key := NormalizeHeader(c.Header)
		if key == "" {
			continue
		}
		out[key] = strings.TrimSpace(cellString(c.Value))
	}
	return out
}

// pick keys 순서대로 값이 비어 있지 않은 첫 번째 셀을 반환한다.
func (n normalizedRow) pick(keys []string) (string, bool) {
	for _, k := range keys {
		if v := n[k]; v != "" {
			return v, true
		}
	}
	return "", false
}

// first keys 중 존재하는 첫 번째 키의 값을 반환한다. 값이 빈 문자열이어도 존재하면 선택된다.
func (n normalizedRow) first(keys ...string) (string, bool) {
	for _, k := range keys {
		if v, ok := n[k]; ok {
			return v, true
		}
	}
	return "", false
}

// PickCell 동의어 목록(keys) 순서대로 비어 있지 않은 첫 번째 셀 값을 반환합니다.
// keys 는 NormalizeHeader 로 정규화된 이름이어야 합니다.
func PickCell(row Row, keys []string) (string, bool) {
	return normalizeRow(row).pick(keys)
}
