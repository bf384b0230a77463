package handler

import (
	"io"

	"github.com/labstack/echo/v4"
	"github.com/tidwall/gjson"

	apperrors "github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/pkg/errors"
	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/service/api/constants"
	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/service/api/httputil"
	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/service/contact"
	applog "github.com/luis-photousa/asi-sage-landing-pagev0.1/pkg/log"
)

// SubmitContactHandler godoc
// @Summary 문의 접수
// @Description 상점 문의 양식을 접수합니다. 접수된 문의는 설정된 채널(텔레그램, 이메일)로 비동기 전달됩니다.
// @Description
// @Description name, email, message 는 앞뒤 공백을 제거한 뒤에도 비어 있으면 안 됩니다.
// @Description 문자열이 아닌 값은 빈 값으로 취급합니다.
// @Description
// @Description ```bash
// @Description curl -X POST "http://localhost:8080/api/v1/contact" \
// @Description   -H "Content-Type: application/json" \
// @Description   -d '{"name":"Jane","email":"jane@example.com","message":"Hello"}'
// @Description ```
// @Tags Contact
// @Accept json
// @Produce json
// @Param contact body response.ContactRequest true "문의 내용"
// @Success 200 {object} response.OKResponse "접수 완료"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청 또는 필수 항목 누락"
// @Failure 429 {object} response.ErrorResponse "요청 빈도 초과"
// @Failure 503 {object} response.ErrorResponse "문의 큐가 가득 참"
// @Router /api/v1/contact [post]
func (h *Handler) SubmitContactHandler(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		// BodyLimit 초과 등 읽기 실패는 에러 핸들러가 상태 코드를 정한다.
		return err
	}

	form, ok := parseContactForm(body)
	if !ok {
		h.log(c).WithField("reason", "invalid_json").Warn(constants.LogMsgContactRejected)
		return NewErrInvalidContactBody()
	}

	sub, err := h.contactSubmitter.Submit(c.Request().Context(), form)
	if err != nil {
		h.log(c).WithError(err).Warn(constants.LogMsgContactRejected)

		switch {
		case apperrors.Is(err, apperrors.InvalidInput):
			return NewErrContactFieldsRequired()
		case apperrors.Is(err, apperrors.Unavailable):
			return NewErrContactUnavailable()
		}
		return err
	}

	h.log(c).WithFields(applog.Fields{
		"submission_id":  sub.ID,
		"message_length": len(sub.Message),
	}).Info(constants.LogMsgContactAccepted)

	return httputil.OK(c)
}

// parseContactForm 요청 본문에서 문의 양식을 꺼냅니다. 본문이 JSON 객체가 아니면 false 를 반환합니다.
func parseContactForm(body []byte) (contact.Form, bool) {
	if !gjson.ValidBytes(body) {
		return contact.Form{}, false
	}

	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return contact.Form{}, false
	}

	field := func(name string) string {
		v := root.Get(name)
		if v.Type != gjson.String {
			return ""
		}
		return v.Str
	}

	return contact.Form{
		Name:    field(constants.ContactFieldName),
		Email:   field(constants.ContactFieldEmail),
		Message: field(constants.ContactFieldMessage),
	}, true
}
