// Package contact 문의 양식 접수와 알림 발송을 담당합니다.
//
// 접수된 문의는 제한된 크기의 큐에 쌓이고, 서비스의 작업 고루틴이 설정된 모든 Notifier(텔레그램, SendGrid, 로그)로 전달합니다.
package contact

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	apperrors "github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/pkg/errors"
)

// Form 문의 양식 입력값입니다.
type Form struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// Submission 접수된 문의입니다.
type Submission struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Message    string    `json:"message"`
	ReceivedAt time.Time `json:"received_at"`
}

var formValidator = validator.New(validator.WithRequiredStructEnabled())

// Normalize 각 필드의 앞뒤 공백을 제거한 Form 을 반환합니다.
func (f Form) Normalize() Form {
	return Form{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Message: strings.TrimSpace(f.Message),
	}
}

// Validate 공백을 제거한 뒤 세 필드가 모두 채워져 있는지 검증합니다.
func (f Form) Validate() error {
	if err := formValidator.Struct(f.Normalize()); err != nil {
		return apperrors.Wrap(err, apperrors.InvalidInput, ErrMsgMissingFields)
	}
	return nil
}

// NewSubmission 검증을 통과한 Form 으로 새 문의를 만듭니다.
func NewSubmission(f Form, now time.Time) (Submission, error) {
	if err := f.Validate(); err != nil {
		return Submission{}, err
	}

	f = f.Normalize()
	return Submission{
		ID:         uuid.NewString(),
		Name:       f.Name,
		Email:      f.Email,
		Message:    f.Message,
		ReceivedAt: now,
	}, nil
}
