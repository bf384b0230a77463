// Package maputil 맵 데이터를 구조체로 변환하는 유틸리티를 제공합니다.
package maputil

import (
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

type decodingConfig struct {
	tagName          string
	weaklyTypedInput bool
	errorUnused      bool
	trimSpace        bool
	matchName        func(mapKey, fieldName string) bool
	hooks            []mapstructure.DecodeHookFunc
}

// Option 디코딩 동작을 조정하는 함수형 옵션입니다.
type Option func(*decodingConfig)

// WithTagName 필드 매핑에 사용할 태그 이름을 지정합니다. (기본값: "json")
func WithTagName(name string) Option {
	return func(c *decodingConfig) { c.tagName = name }
}

// WithWeaklyTypedInput "12" -> 12 와 같은 느슨한 타입 변환 허용 여부입니다. (기본값: true)
func WithWeaklyTypedInput(enable bool) Option {
	return func(c *decodingConfig) { c.weaklyTypedInput = enable }
}

// WithErrorUnused 구조체에 없는 키가 있으면 에러로 처리합니다. (기본값: false)
func WithErrorUnused(enable bool) Option {
	return func(c *decodingConfig) { c.errorUnused = enable }
}

// WithTrimSpace 문자열 값의 앞뒤 공백 제거 여부입니다. (기본값: true)
func WithTrimSpace(enable bool) Option {
	return func(c *decodingConfig) { c.trimSpace = enable }
}

// WithMatchName 맵 키와 필드 이름의 비교 함수를 지정합니다. 기본은 대소문자를 구분하지 않습니다.
func WithMatchName(fn func(mapKey, fieldName string) bool) Option {
	return func(c *decodingConfig) { c.matchName = fn }
}

// WithDecodeHook 기본 훅보다 먼저 실행될 훅을 추가합니다.
func WithDecodeHook(hooks ...mapstructure.DecodeHookFunc) Option {
	return func(c *decodingConfig) { c.hooks = append(c.hooks, hooks...) }
}

// Decode input 을 새 T 값으로 디코딩합니다.
//
//	cols, err := maputil.Decode[fixedColumns](row.Map(), maputil.WithTagName("col"))
func Decode[T any](input any, opts ...Option) (*T, error) {
	out := new(T)
	if err := DecodeTo(input, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeTo input 을 output 에 병합하여 디코딩합니다.
func DecodeTo[T any](input any, output *T, opts ...Option) error {
	if output == nil {
		return errors.New("디코딩 결과를 저장할 output 포인터가 nil입니다")
	}

	cfg := &decodingConfig{
		tagName:          "json",
		weaklyTypedInput: true,
		trimSpace:        true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	hooks := append([]mapstructure.DecodeHookFunc{}, cfg.hooks...)
	if cfg.trimSpace {
		hooks = append(hooks, trimSpaceHookFunc())
	}
	hooks = append(hooks,
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		stringToSliceHookFunc(cfg.trimSpace),
	)

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           output,
		TagName:          cfg.tagName,
		WeaklyTypedInput: cfg.weaklyTypedInput,
		ErrorUnused:      cfg.errorUnused,
		MatchName:        cfg.matchName,
		DecodeHook:       mapstructure.ComposeDecodeHookFunc(hooks...),
	})
	if err != nil {
		return err
	}

	if err := decoder.Decode(input); err != nil {
		return fmt.Errorf("입력 데이터를 %T(으)로 디코딩하는 데 실패했습니다: %w", output, err)
	}
	return nil
}
