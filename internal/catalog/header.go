package catalog

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun   = regexp.MustCompile(`[\s\p{Z}]+`)
	nonHeaderKeyRun = regexp.MustCompile(`[^a-z0-9_]`)
)

// NormalizeHeader 열 이름을 비교용 키로 정규화합니다.
// 앞뒤 공백 제거, 소문자 변환, 연속 공백을 "_" 하나로 바꾼 뒤 [a-z0-9_] 이외의 문자를 제거합니다.
//
//	"T1 QTY"      -> "t1_qty"
//	"Unit Price$" -> "unit_price"
func NormalizeHeader(h string) string {
	s := strings.ToLower(strings.TrimSpace(h))
	s = whitespaceRun.ReplaceAllString(s, "_")
	return nonHeaderKeyRun.ReplaceAllString(s, "")
}
