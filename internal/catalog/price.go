package catalog

import (
	"encoding/json"
	"math"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	priceNoise = regexp.MustCompile(`[$,\s]`)

	// leadingNumber 문자열 앞부분의 10진수. 뒤에 붙은 문자("9.99ea")는 무시된다.
	leadingNumber = regexp.MustCompile(`^([+-]?)(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

	hundred = decimal.NewFromInt(100)
)

// ParsePrice 가격 셀 값을 최소 화폐 단위(센트)의 정수 문자열로 변환합니다.
//
// "$", 쉼표, 공백을 제거한 뒤 앞부분의 10진수를 읽어 100 을 곱하고 반올림합니다.
// 값이 없거나 숫자가 아니거나 음수이면 false 를 반환합니다.
//
//	"$19.99", "19.99", 19.99 -> "1999"
//	"1,250"                  -> "125000"
func ParsePrice(v any) (string, bool) {
	var s string
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		s = t
	case json.Number:
		s = t.String()
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return "", false
		}
		s = cellString(t)
	default:
		s = cellString(t)
	}
	if s == "" {
		return "", false
	}

	d, ok := parseDecimal(priceNoise.ReplaceAllString(s, ""))
	if !ok || d.IsNegative() {
		return "", false
	}
	return d.Mul(hundred).Round(0).StringFixed(0), true
}

func parseDecimal(s string) (decimal.Decimal, bool) {
	m := leadingNumber.FindStringSubmatch(s)
	if m == nil {
		return decimal.Zero, false
	}

	sign := m[1]
	if sign == "+" {
		sign = ""
	}
	mantissa := strings.TrimSuffix(m[2], ".")
	if strings.HasPrefix(mantissa, ".") {
		mantissa = "0" + mantissa
	}

	d, err := decimal.NewFromString(sign + mantissa + m[3])
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// minorUnits 최소 화폐 단위 문자열을 비교 가능한 값으로 변환한다.
func minorUnits(s string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
