// Package validation 설정 값 검증에 사용하는 순수 함수들을 제공합니다.
//
// 각 함수는 검증 실패 시 사람이 읽을 수 있는 한국어 메시지를 담은 error 를 반환하며,
// internal/config 의 validator 커스텀 태그에서 호출됩니다.
package validation
