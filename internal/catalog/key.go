package catalog

import (
	"regexp"
	"strings"
)

var (
	// twoWordColor "light blue", "dark green", "cambridge blue" 처럼 두 단어로 된 색상 이름
	twoWordColor = regexp.MustCompile(`(?i)\b(light|dark|cambridge)\s+\w+$`)

	unchangedToken = regexp.MustCompile(`(?i)^(\d+([.,]\d+)?|\d*\s*oz\.?)$`)
	nonSlugRun     = regexp.MustCompile(`[^a-z0-9]+`)
)

// splitSuffix name 이 접미사로 끝나면(대소문자 무시) 접미사 앞부분과 접미사를 반환한다.
// 접미사는 Suffixes 순서대로 검사하며 처음 일치한 것을 사용한다.
func (r Rules) splitSuffix(name string) (before, suffix string, ok bool) {
	lower := strings.ToLower(name)
	for _, suf := range r.Suffixes {
		if strings.HasSuffix(lower, strings.ToLower(suf)) {
			return strings.TrimSpace(name[:len(name)-len(suf)]), suf, true
		}
	}
	return name, "", false
}

// colorWordCount 접미사 앞부분의 끝에서 색상을 나타내는 단어 수(1 또는 2)
func colorWordCount(before string) int {
	if twoWordColor.MatchString(before) {
		return 2
	}
	return 1
}

// ProductKey 색상만 다른 상품 이름들이 공유하는 그룹 키를 반환합니다.
//
//	"11 oz. rim/handle red mug"  -> "11 oz. rim/handle mug"
//	"15 oz. light blue mug"      -> "15 oz. mug"
//
// 접미사가 일치하지 않으면 공백을 제거한 이름 전체가 키입니다.
func (r Rules) ProductKey(name string) string {
	name = strings.TrimSpace(name)
	before, suffix, ok := r.splitSuffix(name)
	if !ok {
		return name
	}

	words := strings.Fields(before)
	drop := colorWordCount(before)
	if drop > len(words) {
		drop = len(words)
	}
	words = words[:len(words)-drop]

	return strings.TrimSpace(strings.Join(words, " ") + strings.ToLower(suffix))
}

// ColorFromLabel Variant 라벨에서 소문자 색상 이름을 추출합니다.
// ProductKey 와 같은 접미사/색상 단어 규칙을 사용하며, 접미사가 일치하지 않거나 남는 단어가 없으면 false 입니다.
//
//	"11 oz. two-tone light blue mug" -> "light blue"
//	"11 oz. two-tone black mug"      -> "black"
func (r Rules) ColorFromLabel(label string) (string, bool) {
	label = strings.TrimSpace(label)
	if label == "" {
		return "", false
	}
	before, _, ok := r.splitSuffix(label)
	if !ok {
		return "", false
	}

	words := strings.Fields(before)
	if len(words) == 0 {
		return "", false
	}
	last := strings.ToLower(words[len(words)-1])

	if m := twoWordColor.FindStringSubmatch(before); m != nil {
		return strings.ToLower(m[1]) + " " + last, true
	}
	return last, true
}

// DisplayName 그룹 키로부터 표시용 상품 이름을 만듭니다.
// 숫자와 "oz" 토큰은 그대로 두고, 나머지는 공백으로 나뉜 토큰마다 첫 글자만 대문자로 바꿉니다.
// "/" 로 이어진 단어는 양쪽을 각각 변환하고, "-" 로 이어진 단어는 하나의 토큰으로 취급합니다.
//
//	"11 oz. rim/handle mug" -> "11 oz. Rim/Handle Mug"
//	"11 oz. two-tone mug"   -> "11 oz. Two-tone Mug"
func DisplayName(key string) string {
	tokens := strings.Fields(key)
	for i, tok := range tokens {
		if unchangedToken.MatchString(tok) {
			continue
		}
		parts := strings.Split(tok, "/")
		for j, p := range parts {
			parts[j] = upperFirst(p)
		}
		tokens[i] = strings.Join(parts, "/")
	}
	return strings.Join(tokens, " ")
}

// Slugify URL 경로용 슬러그를 만듭니다. 결과가 비어 있으면 "product" 입니다.
//
//	"11 oz. Rim/Handle Mug" -> "11-oz-rim-handle-mug"
func Slugify(s string) string {
	slug := nonSlugRun.ReplaceAllString(strings.ToLower(s), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "product"
	}
	return slug
}

// productID 슬러그로부터 상품 ID 를 만든다.
func productID(slug string) string {
	return "prod_" + strings.ReplaceAll(slug, "-", "_")
}

// slugRegistry 한 번의 로드에서 사용된 슬러그를 기록한다.
type slugRegistry map[string]struct{}

// claim slug 가 이미 사용되었으면 "-{disambiguator}" 를 붙인다. 붙인 결과는 다시 검사하지 않는다.
func (s slugRegistry) claim(slug, disambiguator string) string {
	if _, used := s[slug]; used {
		slug = slug + "-" + disambiguator
	}
	s[slug] = struct{}{}
	return slug
}
