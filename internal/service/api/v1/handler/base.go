// Package handler v1 API 의 HTTP 요청 핸들러를 제공합니다.
//
// 카탈로그 조회(상품, 컬렉션, 필터)와 문의 접수 요청을 받아 storefront, contact 서비스로 전달합니다.
package handler

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/service/api/constants"
	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/service/contact"
	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/service/storefront"
	applog "github.com/luis-photousa/asi-sage-landing-pagev0.1/pkg/log"
)

// ContactSubmitter 문의를 접수하는 기능입니다. contact.Service 가 이를 구현합니다.
type ContactSubmitter interface {
	Submit(ctx context.Context, f contact.Form) (contact.Submission, error)
}

// Handler v1 API 요청을 처리하는 핸들러입니다.
type Handler struct {
	catalog storefront.Reader

	contactSubmitter ContactSubmitter
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(catalog storefront.Reader, contactSubmitter ContactSubmitter) *Handler {
	if catalog == nil {
		panic(constants.PanicMsgCatalogRequired)
	}
	if contactSubmitter == nil {
		panic(constants.PanicMsgContactSubmitterRequired)
	}

	return &Handler{
		catalog: catalog,

		contactSubmitter: contactSubmitter,
	}
}

// log 공통 필드가 설정된 로거 엔트리를 반환합니다.
func (h *Handler) log(c echo.Context) *applog.Entry {
	return applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  c.Path(),
		"remote_ip": c.RealIP(),
	})
}
