// Package pricelist 가격표 워크북 파일을 찾아 첫 번째 시트를 catalog.Row 목록으로 읽습니다.
//
// 파일을 읽을 수 없으면 에러 대신 빈 결과를 반환합니다. 상위 계층은 빈 카탈로그로 동작합니다.
package pricelist
