package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/pkg/errors"
	"github.com/luis-photousa/asi-sage-landing-pagev0.1/pkg/validation"
)

// 텔레그램 봇 토큰 형식 (예: 123456:ABC-DEF1234ghIkl-zyx57W2v1u123ew11)
var telegramBotTokenRegex = regexp.MustCompile(`^\d{3,20}:[a-zA-Z0-9_-]{30,50}$`)

// newValidator 커스텀 유효성 검사 함수가 등록된 Validator 를 생성합니다.
func newValidator() *validator.Validate {
	v := validator.New()

	// 에러 메시지에 구조체 필드명 대신 JSON 키를 사용한다.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	for tag, fn := range map[string]validator.Func{
		"cors_origin":        validateCORSOrigin,
		"cron_spec":          validateCronSpec,
		"spreadsheet_path":   validateSpreadsheetPath,
		"telegram_bot_token": validateTelegramBotToken,
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("초기화 치명적 오류: '%s' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", tag, err))
		}
	}

	return v
}

func validateCORSOrigin(fl validator.FieldLevel) bool {
	return validation.ValidateCORSOrigin(fl.Field().String()) == nil
}

func validateCronSpec(fl validator.FieldLevel) bool {
	return validation.ValidateCronExpression(fl.Field().String()) == nil
}

func validateSpreadsheetPath(fl validator.FieldLevel) bool {
	return validation.ValidateSpreadsheetPath(fl.Field().String()) == nil
}

// validateTelegramBotToken 식별자(숫자)와 비밀키가 콜론(:)으로 구분된 형태인지 검증합니다.
func validateTelegramBotToken(fl validator.FieldLevel) bool {
	return telegramBotTokenRegex.MatchString(fl.Field().String())
}

// checkStruct 구조체의 유효성을 검사하고, 첫 번째 에러를 사용자 친화적인 메시지로 반환합니다.
func checkStruct(v *validator.Validate, s any, contextName string) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		firstErr := validationErrors[0]
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 설정이 올바르지 않습니다: %s (조건: %s, 값: '%v')", contextName, firstErr.Field(), firstErr.Tag(), firstErr.Value()))
	}
	return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("%s 유효성 검증에 실패했습니다", contextName))
}
