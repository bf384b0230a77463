// Package strutil 문자열 처리 유틸리티를 제공합니다.
package strutil

import (
	"strings"
	"unicode/utf8"
)

// NormalizeSpaces 앞뒤 공백을 제거하고 연속된 공백을 하나로 축약합니다.
// 예: "  11   oz " -> "11 oz"
func NormalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SplitAndTrim sep 으로 분리한 뒤 각 항목의 공백을 제거하고 빈 항목을 제외합니다.
// 결과가 없으면 nil 을 반환합니다.
func SplitAndTrim(s, sep string) []string {
	var out []string
	for _, tok := range strings.Split(s, sep) {
		if tok = strings.TrimSpace(tok); tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// Mask 토큰, API 키 등을 로그에 남길 때 앞 4자(긴 값은 뒤 4자 포함)만 노출합니다.
func Mask(s string) string {
	n := utf8.RuneCountInString(s)
	switch {
	case n == 0:
		return ""
	case n <= 4:
		return "***"
	case n <= 12:
		return string([]rune(s)[:4]) + "***"
	default:
		r := []rune(s)
		return string(r[:4]) + "***" + string(r[n-4:])
	}
}

// ContainsFold s 가 substr 을 대소문자 구분 없이 포함하는지 확인합니다.
// 대소문자 변환 시 바이트 길이가 달라지는 문자(터키어 İ 등)는 정확하지 않을 수 있습니다.
func ContainsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	for i := range s {
		if i+len(substr) > len(s) {
			return false
		}
		if strings.EqualFold(s[i:i+len(substr)], substr) {
			return true
		}
	}
	return false
}
