package handler

import (
	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/service/api/constants"
	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/service/api/httputil"
)

// NewErrProductNotFound slug 에 해당하는 상품이 없을 때의 404 에러를 생성합니다.
func NewErrProductNotFound() error {
	return httputil.NewNotFoundError(constants.ErrMsgProductNotFound)
}

// NewErrCollectionNotFound slug 에 해당하는 컬렉션이 없을 때의 404 에러를 생성합니다.
func NewErrCollectionNotFound() error {
	return httputil.NewNotFoundError(constants.ErrMsgCollectionNotFound)
}

// NewErrInvalidContactBody 문의 본문이 JSON 객체가 아닐 때의 400 에러를 생성합니다.
func NewErrInvalidContactBody() error {
	return httputil.NewBadRequestError(constants.ErrMsgContactInvalidRequest)
}

// NewErrContactFieldsRequired 문의 필수 항목이 비어 있을 때의 400 에러를 생성합니다.
func NewErrContactFieldsRequired() error {
	return httputil.NewBadRequestError(constants.ErrMsgContactFieldsRequired)
}

// NewErrContactUnavailable 문의 큐가 가득 찼거나 서비스가 종료 중일 때의 503 에러를 생성합니다.
func NewErrContactUnavailable() error {
	return httputil.NewServiceUnavailableError(constants.ErrMsgServiceUnavailable)
}
