package catalog

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/luis-photousa/asi-sage-landing-pagev0.1/pkg/strutil"
)

var (
	sizePattern    = regexp.MustCompile(`(?i)\d+\s*oz\.?`)
	trailingPeriod = regexp.MustCompile(`\s*\.\s*$`)
	twoWordDisplay = regexp.MustCompile(`^(light|dark|cambridge)\s+(\w+)$`)
	leadingDigits  = regexp.MustCompile(`^\d+`)
)

// SizesFromText 텍스트에서 "11 oz", "15oz." 같은 용량 표기를 찾아 정규화된 목록을 반환합니다.
// 끝의 마침표를 제거하고 공백을 하나로 줄인 뒤 소문자로 바꾸며, 중복은 제거됩니다.
//
//	"11 oz. two-tone light blue mug" -> ["11 oz"]
func SizesFromText(text string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, m := range sizePattern.FindAllString(text, -1) {
		s := normalizeSize(m)
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func normalizeSize(s string) string {
	s = trailingPeriod.ReplaceAllString(s, "")
	return strings.ToLower(strutil.NormalizeSpaces(s))
}

// SizesFromProduct 상품 이름과 모든 Variant 라벨에서 용량을 모아 숫자 순서로 정렬해 반환합니다.
func SizesFromProduct(p Product) []string {
	seen := make(map[string]struct{})
	var sizes []string
	add := func(text string) {
		for _, s := range SizesFromText(text) {
			if _, ok := seen[s]; !ok {
				seen[s] = struct{}{}
				sizes = append(sizes, s)
			}
		}
	}

	add(p.Name)
	for _, v := range p.Variants {
		add(v.Label)
	}

	SortNatural(sizes)
	return sizes
}

// ColorsFromProduct Variant 라벨에서 추출한 색상을 처음 등장한 순서대로 중복 없이 반환합니다.
func (r Rules) ColorsFromProduct(p Product) []string {
	seen := make(map[string]struct{})
	var colors []string
	for _, v := range p.Variants {
		c, ok := r.ColorFromLabel(v.Label)
		if !ok {
			continue
		}
		if _, dup := seen[c]; !dup {
			seen[c] = struct{}{}
			colors = append(colors, c)
		}
	}
	return colors
}

// ProductMatchesColor 상품의 색상 중 color 와 정확히 일치하는 것이 있는지 확인합니다.
func (r Rules) ProductMatchesColor(p Product, color string) bool {
	for _, c := range r.ColorsFromProduct(p) {
		if c == color {
			return true
		}
	}
	return false
}

// ProductMatchesSize 상품의 용량 중 size 와 정확히 일치하는 것이 있는지 확인합니다.
func ProductMatchesSize(p Product, size string) bool {
	for _, s := range SizesFromProduct(p) {
		if s == size {
			return true
		}
	}
	return false
}

// ColorDisplayLabel 정규화된 색상 이름을 표시용으로 바꿉니다.
//
//	"light blue" -> "Light Blue"
//	"red"        -> "Red"
func ColorDisplayLabel(color string) string {
	lower := strings.ToLower(strings.TrimSpace(color))
	if m := twoWordDisplay.FindStringSubmatch(lower); m != nil {
		return upperFirst(m[1]) + " " + upperFirst(m[2])
	}
	if lower == "" {
		return color
	}
	return upperFirst(lower)
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// SortNatural 앞자리 숫자를 수치로 비교하여 정렬합니다. ("9 oz" < "11 oz" < "15 oz")
func SortNatural(values []string) {
	sort.SliceStable(values, func(i, j int) bool {
		return naturalLess(values[i], values[j])
	})
}

func naturalLess(a, b string) bool {
	da, db := leadingDigits.FindString(a), leadingDigits.FindString(b)
	if da != "" && db != "" && da != db {
		na, errA := strconv.Atoi(da)
		nb, errB := strconv.Atoi(db)
		if errA == nil && errB == nil && na != nb {
			return na < nb
		}
	}
	return a < b
}
