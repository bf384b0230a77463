package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/pkg/errors"
)

// AppConfig 애플리케이션의 모든 설정을 포함하는 최상위 구조체
type AppConfig struct {
	Debug     bool            `json:"debug"`
	Pricelist PricelistConfig `json:"pricelist"`
	HTTP      HTTPConfig      `json:"http"`
	CORS      CORSConfig      `json:"cors"`
	Cache     CacheConfig     `json:"cache"`
	Refresh   RefreshConfig   `json:"refresh"`
	Contact   ContactConfig   `json:"contact"`
}

// validate 설정 파일 로드 직후, 각 설정 항목의 정합성과 필수 값의 유효성을 검증합니다.
func (c *AppConfig) validate(v *validator.Validate) error {
	if err := checkStruct(v, c.Pricelist, "가격표(pricelist)"); err != nil {
		return err
	}
	if err := c.HTTP.validate(v); err != nil {
		return err
	}
	if err := c.CORS.validate(v); err != nil {
		return err
	}
	if err := checkStruct(v, c.Cache, "캐시(cache)"); err != nil {
		return err
	}
	if err := c.Refresh.validate(v); err != nil {
		return err
	}
	return checkStruct(v, c.Contact, "문의(contact)")
}

// VerifyRecommendations 운영 환경에서 권장되지 않는 설정에 대한 경고 메시지를 반환합니다. 실행을 막지는 않습니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	if c.HTTP.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 이 경우 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.HTTP.ListenPort))
	}
	if len(c.CORS.AllowOrigins) == 1 && c.CORS.AllowOrigins[0] == "*" && !c.Debug {
		warnings = append(warnings, "운영 모드에서 모든 Origin(*)의 요청을 허용하고 있습니다")
	}
	if !c.Contact.Telegram.Enabled() && !c.Contact.SendGrid.Enabled() {
		warnings = append(warnings, "문의 알림 채널(telegram, sendgrid)이 설정되지 않았습니다. 문의 내용은 로그에만 기록됩니다")
	}

	return warnings
}

// PricelistConfig 가격표 파일 위치 설정
type PricelistConfig struct {
	// Path 지정되면 다른 후보 경로를 사용하지 않는다.
	Path          string `json:"path" validate:"omitempty,spreadsheet_path"`
	EnvVar        string `json:"env_var"`
	PreferredPath string `json:"preferred_path" validate:"omitempty,spreadsheet_path"`
	DefaultPath   string `json:"default_path" validate:"omitempty,spreadsheet_path"`
}

// HTTPConfig 웹 서버 설정
type HTTPConfig struct {
	ListenPort     int             `json:"listen_port" validate:"min=1,max=65535"`
	TLSServer      bool            `json:"tls_server"`
	TLSCertFile    string          `json:"tls_cert_file" validate:"required_if=TLSServer true,omitempty,file"`
	TLSKeyFile     string          `json:"tls_key_file" validate:"required_if=TLSServer true,omitempty,file"`
	RequestTimeout time.Duration   `json:"request_timeout" validate:"gt=0"`
	RateLimit      RateLimitConfig `json:"rate_limit"`
}

// RateLimitConfig IP 별 요청 속도 제한 설정
type RateLimitConfig struct {
	RequestsPerSecond float64 `json:"requests_per_second" validate:"gt=0"`
	Burst             int     `json:"burst" validate:"min=1"`
}

func (c *HTTPConfig) validate(v *validator.Validate) error {
	err := v.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fieldErr := range validationErrors {
			switch fieldErr.StructField() {
			case "ListenPort":
				return apperrors.New(apperrors.InvalidInput, "웹 서버 포트(listen_port)는 1에서 65535 사이의 값이어야 합니다")
			case "TLSCertFile", "TLSKeyFile":
				name := fieldErr.Field()
				if fieldErr.Tag() == "required_if" {
					return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("TLS 서버 활성화 시 %s 는 필수입니다", name))
				}
				return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("지정된 TLS 파일(%s)을 찾을 수 없습니다: '%v'", name, fieldErr.Value()))
			case "RequestTimeout":
				return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("요청 제한 시간(request_timeout)은 0보다 커야 합니다: '%v'", fieldErr.Value()))
			case "RequestsPerSecond", "Burst":
				return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("요청 속도 제한(rate_limit.%s) 설정이 올바르지 않습니다: '%v'", fieldErr.Field(), fieldErr.Value()))
			}
		}
	}
	return apperrors.Wrap(err, apperrors.InvalidInput, "웹 서버 설정 검증 중 알 수 없는 오류가 발생했습니다")
}

// CORSConfig 교차 출처 리소스 공유(CORS) 정책
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"dive,cors_origin"`
}

func (c *CORSConfig) validate(v *validator.Validate) error {
	if len(c.AllowOrigins) == 0 {
		return apperrors.New(apperrors.InvalidInput, "CORS 허용 도메인(allow_origins) 목록이 비어있습니다")
	}
	for _, origin := range c.AllowOrigins {
		if origin == "*" && len(c.AllowOrigins) > 1 {
			return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다. 모든 도메인을 허용하려면 와일드카드만 설정하세요")
		}
	}

	err := v.Struct(c)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fieldErr := range validationErrors {
			if fieldErr.Tag() == "cors_origin" {
				return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("CORS Origin 형식이 올바르지 않습니다: '%v' (형식: Scheme://Host[:Port], 예: https://example.com)", fieldErr.Value()))
			}
		}
	}
	return apperrors.Wrap(err, apperrors.InvalidInput, "CORS 설정 검증 중 알 수 없는 오류가 발생했습니다")
}

// CacheConfig 조회 결과 캐시 설정. TTL 이 0 이면 캐시를 사용하지 않습니다.
// RedisURL 이 지정되면 메모리 대신 Redis 에 저장합니다.
type CacheConfig struct {
	TTL       time.Duration `json:"ttl" validate:"min=0"`
	RedisURL  string        `json:"redis_url" validate:"omitempty,url"`
	KeyPrefix string        `json:"key_prefix"`

	// MaxEntries 메모리 저장소의 최대 항목 수. Redis 저장소에는 적용되지 않는다.
	MaxEntries int `json:"max_entries" validate:"min=0"`
}

// Enabled 캐시 사용 여부
func (c CacheConfig) Enabled() bool { return c.TTL > 0 }

// RefreshConfig 캐시를 주기적으로 비우고 다시 채우는 스케줄 설정
type RefreshConfig struct {
	Enabled  bool   `json:"enabled"`
	TimeSpec string `json:"time_spec" validate:"required_if=Enabled true,omitempty,cron_spec"`
}

func (c *RefreshConfig) validate(v *validator.Validate) error {
	err := v.Struct(c)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && validationErrors[0].Tag() == "cron_spec" {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("캐시 갱신 스케줄(refresh.time_spec) 설정이 유효하지 않습니다: '%s'", c.TimeSpec))
	}
	return checkStruct(v, c, "캐시 갱신(refresh)")
}

// ContactConfig 문의 접수와 알림 발송 설정
type ContactConfig struct {
	QueueSize int            `json:"queue_size" validate:"min=1"`
	Telegram  TelegramConfig `json:"telegram"`
	SendGrid  SendGridConfig `json:"sendgrid"`
}

// TelegramConfig 텔레그램 봇 토큰 및 채팅 ID. BotToken 이 비어 있으면 사용하지 않습니다.
type TelegramConfig struct {
	BotToken string `json:"bot_token" validate:"omitempty,telegram_bot_token"`
	ChatID   int64  `json:"chat_id" validate:"required_with=BotToken"`
}

// Enabled 텔레그램 알림 사용 여부
func (c TelegramConfig) Enabled() bool { return c.BotToken != "" }

// SendGridConfig SendGrid 메일 발송 설정. APIKey 가 비어 있으면 사용하지 않습니다.
type SendGridConfig struct {
	APIKey string `json:"api_key"`
	From   string `json:"from" validate:"required_with=APIKey,omitempty,email"`
	To     string `json:"to" validate:"required_with=APIKey,omitempty,email"`
}

// Enabled 메일 알림 사용 여부
func (c SendGridConfig) Enabled() bool { return c.APIKey != "" }
