package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/pricelist"
	apperrors "github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/pkg/errors"
)

const (
	// AppName 애플리케이션 식별자입니다. 로그 파일 이름과 설정 파일 이름에 사용됩니다.
	AppName string = "storefront"

	// DefaultFilename 실행 인자로 경로가 주어지지 않을 때 읽는 설정 파일입니다.
	DefaultFilename = AppName + ".json"

	// EnvPrefix 설정을 덮어쓰는 환경 변수의 접두사입니다.
	// 이중 밑줄(__)은 계층 구분자로 변환됩니다. 예: STOREFRONT_HTTP__LISTEN_PORT -> http.listen_port
	EnvPrefix = "STOREFRONT_"
)

// 기본값
const (
	DefaultListenPort        = 8080
	DefaultRequestTimeout    = "30s"
	DefaultRequestsPerSecond = 20.0
	DefaultBurst             = 40
	DefaultCacheTTL          = "60s"
	DefaultCacheKeyPrefix    = "storefront:"
	DefaultCacheMaxEntries   = 10000
	DefaultRefreshTimeSpec   = "0 */10 * * * *"
	DefaultContactQueueSize  = 64
)

func defaults() map[string]any {
	return map[string]any{
		"pricelist.env_var":        pricelist.DefaultEnvVar,
		"pricelist.preferred_path": pricelist.DefaultPreferredPath,
		"pricelist.default_path":   pricelist.DefaultPlainPath,

		"http.listen_port":                   DefaultListenPort,
		"http.request_timeout":               DefaultRequestTimeout,
		"http.rate_limit.requests_per_second": DefaultRequestsPerSecond,
		"http.rate_limit.burst":               DefaultBurst,

		"cors.allow_origins": []string{"*"},

		"cache.ttl":         DefaultCacheTTL,
		"cache.key_prefix":  DefaultCacheKeyPrefix,
		"cache.max_entries": DefaultCacheMaxEntries,

		"refresh.time_spec": DefaultRefreshTimeSpec,

		"contact.queue_size": DefaultContactQueueSize,
	}
}

// Load 기본 설정 파일을 읽어 애플리케이션 설정을 로드합니다.
// 기본 설정 파일이 없으면 기본값과 환경 변수만으로 설정을 구성합니다.
func Load() (*AppConfig, error) {
	return load(DefaultFilename, false)
}

// LoadWithFile 지정된 경로의 설정 파일을 읽어 애플리케이션 설정을 로드합니다. 파일이 없으면 에러입니다.
func LoadWithFile(filename string) (*AppConfig, error) {
	return load(filename, true)
}

func load(filename string, mustExist bool) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일
	if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist) && !mustExist:
			// 설정 파일 없이 실행하는 경우
		case errors.Is(err, fs.ErrNotExist):
			return nil, apperrors.Wrap(err, apperrors.System, fmt.Sprintf("설정 파일을 찾을 수 없습니다: '%s'", filename))
		default:
			return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
		}
	}

	// 3. 환경 변수
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	// 4. 구조체 변환. 구조체에 없는 키가 있으면 에러로 처리한다.
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			ErrorUnused:      true,
			WeaklyTypedInput: true,
		},
	}
	var appConfig AppConfig
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}
	appConfig.CORS.AllowOrigins = trimAll(appConfig.CORS.AllowOrigins)

	// 5. 유효성 검사
	if err := appConfig.validate(newValidator()); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일('%s')의 유효성 검증에 실패했습니다", filename))
	}

	return &appConfig, nil
}

// envKey STOREFRONT_CACHE__REDIS_URL -> cache.redis_url
func envKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "__", ".")
}

func trimAll(values []string) []string {
	out := values[:0]
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
