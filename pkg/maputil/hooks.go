package maputil

import (
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// trimSpaceHookFunc 문자열 입력의 앞뒤 공백을 제거한다.
func trimSpaceHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, _ reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		return strings.TrimSpace(reflect.ValueOf(data).String()), nil
	}
}

// stringToSliceHookFunc "a, b" 를 []string{"a", "b"} 로 분리한다. []byte 대상은 건드리지 않는다.
func stringToSliceHookFunc(trimSpace bool) mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Slice || t.Elem().Kind() == reflect.Uint8 {
			return data, nil
		}

		s := reflect.ValueOf(data).String()
		if s == "" {
			return []string{}, nil
		}

		parts := strings.Split(s, ",")
		if trimSpace {
			for i := range parts {
				parts[i] = strings.TrimSpace(parts[i])
			}
		}
		return parts, nil
	}
}
