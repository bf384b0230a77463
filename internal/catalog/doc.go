// Package catalog 가격표 스프레드시트의 행(Row)을 정규화된 상품 카탈로그로 변환합니다.
//
// 변환은 부수 효과가 없는 순수 함수로 구성됩니다. 동일한 행 목록과 Rules 는 항상 같은 순서와 내용의
// []Product 를 만들어내며, 잘못된 셀은 에러가 아니라 "값 없음"으로 취급되어 해당 행이나 티어만 제외됩니다.
//
// 두 가지 시트 형식을 지원합니다.
//
//   - 일반(plain): 한 행이 한 상품이며, 열 이름은 Synonyms 의 동의어 목록으로 추론합니다.
//   - 확장(enriched): Name, SKU, Product, Category, Image 1..Image 20 고정 열을 사용하며
//     색상만 다른 행들을 하나의 상품과 여러 Variant 로 묶습니다.
//
// DetectFormat 이 형식을 고르고 Build 가 해당 파서(ParsePlain, ParseEnriched)를 호출합니다.
package catalog
