package catalog

import (
	"regexp"
	"strconv"
)

var nonDigit = regexp.MustCompile(`\D`)

// ExtractTiers 기본 Rules 로 행의 수량 구간 가격을 추출합니다.
func ExtractTiers(row Row) []PriceTier {
	return DefaultRules().ExtractTiers(row)
}

// ExtractTiers "T{n} QTY"/"T{n}_QTY" 와 "T{n} Price"/"T{n}_Price" 열 쌍에서 티어를 추출합니다 (n = 1..MaxTiers).
//
// 가격이 해석되고, 수량에서 숫자 이외의 문자를 제거한 값이 0 보다 큰 정수일 때만 티어가 생성됩니다.
// 결과는 시트의 열 순서와 관계없이 티어 번호 순서입니다.
func (r Rules) ExtractTiers(row Row) []PriceTier {
	return r.extractTiers(normalizeRow(row))
}

func (r Rules) extractTiers(n normalizedRow) []PriceTier {
	var tiers []PriceTier
	for i := 1; i <= r.MaxTiers; i++ {
		num := strconv.Itoa(i)

		qtyRaw, hasQty := n.first("t"+num+"qty", "t"+num+"_qty")
		priceRaw, hasPrice := n.first("t"+num+"price", "t"+num+"_price")
		if !hasQty || !hasPrice {
			continue
		}

		price, ok := ParsePrice(priceRaw)
		if !ok {
			continue
		}
		qty, err := strconv.Atoi(nonDigit.ReplaceAllString(qtyRaw, ""))
		if err != nil || qty <= 0 {
			continue
		}

		tiers = append(tiers, PriceTier{Tier: "T" + num, MinQty: qty, Price: price})
	}
	return tiers
}

// resolvePrice 티어가 있으면 T1 가격, 없으면 가격 동의어 열의 값을 사용한다.
func (r Rules) resolvePrice(n normalizedRow, tiers []PriceTier) (string, bool) {
	if len(tiers) > 0 {
		return tiers[0].Price, true
	}
	raw, ok := n.pick(r.Synonyms.Price)
	if !ok {
		return "", false
	}
	return ParsePrice(raw)
}
