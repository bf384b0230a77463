package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/pricelist"
	apperrors "github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/pkg/errors"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	// 패키지 디렉터리에는 storefront.json 이 없으므로 기본값만으로 구성된다.
	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.Debug)
	assert.Equal(t, pricelist.DefaultEnvVar, cfg.Pricelist.EnvVar)
	assert.Equal(t, pricelist.DefaultPreferredPath, cfg.Pricelist.PreferredPath)
	assert.Equal(t, pricelist.DefaultPlainPath, cfg.Pricelist.DefaultPath)
	assert.Empty(t, cfg.Pricelist.Path)

	assert.Equal(t, DefaultListenPort, cfg.HTTP.ListenPort)
	assert.Equal(t, 30*time.Second, cfg.HTTP.RequestTimeout)
	assert.Equal(t, DefaultRequestsPerSecond, cfg.HTTP.RateLimit.RequestsPerSecond)
	assert.Equal(t, DefaultBurst, cfg.HTTP.RateLimit.Burst)

	assert.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)

	assert.Equal(t, time.Minute, cfg.Cache.TTL)
	assert.True(t, cfg.Cache.Enabled())
	assert.Equal(t, DefaultCacheKeyPrefix, cfg.Cache.KeyPrefix)
	assert.Equal(t, DefaultCacheMaxEntries, cfg.Cache.MaxEntries)

	assert.False(t, cfg.Refresh.Enabled)
	assert.Equal(t, DefaultRefreshTimeSpec, cfg.Refresh.TimeSpec)

	assert.Equal(t, DefaultContactQueueSize, cfg.Contact.QueueSize)
	assert.False(t, cfg.Contact.Telegram.Enabled())
	assert.False(t, cfg.Contact.SendGrid.Enabled())
}

func TestLoadWithFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		content   string
		wantType  apperrors.ErrorType
		wantErr   bool
		checkFunc func(*testing.T, *AppConfig)
	}{
		{
			name: "성공: 파일의 값이 기본값을 덮어쓴다",
			content: `{
				"debug": true,
				"pricelist": { "path": "data/custom.xlsx" },
				"http": { "listen_port": 9090, "request_timeout": "5s", "rate_limit": { "requests_per_second": 1.5, "burst": 3 } },
				"cors": { "allow_origins": ["https://shop.example.com", "http://localhost:3000"] },
				"cache": { "ttl": "0s", "redis_url": "redis://localhost:6379/0" },
				"refresh": { "enabled": true, "time_spec": "@every 5m" },
				"contact": {
					"queue_size": 8,
					"telegram": { "bot_token": "123456:ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789", "chat_id": 42 },
					"sendgrid": { "api_key": "SG.key", "from": "shop@example.com", "to": "owner@example.com" }
				}
			}`,
			checkFunc: func(t *testing.T, cfg *AppConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "data/custom.xlsx", cfg.Pricelist.Path)
				assert.Equal(t, pricelist.DefaultPlainPath, cfg.Pricelist.DefaultPath, "파일에 없는 키는 기본값 유지")
				assert.Equal(t, 9090, cfg.HTTP.ListenPort)
				assert.Equal(t, 5*time.Second, cfg.HTTP.RequestTimeout)
				assert.Equal(t, 1.5, cfg.HTTP.RateLimit.RequestsPerSecond)
				assert.Equal(t, []string{"https://shop.example.com", "http://localhost:3000"}, cfg.CORS.AllowOrigins)
				assert.False(t, cfg.Cache.Enabled())
				assert.Equal(t, "redis://localhost:6379/0", cfg.Cache.RedisURL)
				assert.True(t, cfg.Refresh.Enabled)
				assert.True(t, cfg.Contact.Telegram.Enabled())
				assert.Equal(t, int64(42), cfg.Contact.Telegram.ChatID)
				assert.True(t, cfg.Contact.SendGrid.Enabled())
				assert.Empty(t, cfg.VerifyRecommendations())
			},
		},
		{
			name:     "실패: 알 수 없는 키",
			content:  `{ "http": { "listen_port": 8080, "unknown": 1 } }`,
			wantErr:  true,
			wantType: apperrors.System,
		},
		{
			name:     "실패: JSON 형식 오류",
			content:  `{ "http": `,
			wantErr:  true,
			wantType: apperrors.InvalidInput,
		},
		{
			name:     "실패: 포트 범위",
			content:  `{ "http": { "listen_port": 70000 } }`,
			wantErr:  true,
			wantType: apperrors.InvalidInput,
		},
		{
			name:     "실패: TLS 활성화 시 인증서 경로 필수",
			content:  `{ "http": { "tls_server": true } }`,
			wantErr:  true,
			wantType: apperrors.InvalidInput,
		},
		{
			name:     "실패: 요청 제한 시간은 0보다 커야 한다",
			content:  `{ "http": { "request_timeout": "0s" } }`,
			wantErr:  true,
			wantType: apperrors.InvalidInput,
		},
		{
			name:     "실패: 와일드카드와 다른 Origin 혼용",
			content:  `{ "cors": { "allow_origins": ["*", "https://example.com"] } }`,
			wantErr:  true,
			wantType: apperrors.InvalidInput,
		},
		{
			name:     "실패: 잘못된 Origin",
			content:  `{ "cors": { "allow_origins": ["https://example.com/path"] } }`,
			wantErr:  true,
			wantType: apperrors.InvalidInput,
		},
		{
			name:     "실패: 빈 Origin 목록",
			content:  `{ "cors": { "allow_origins": [] } }`,
			wantErr:  true,
			wantType: apperrors.InvalidInput,
		},
		{
			name:     "실패: 지원하지 않는 가격표 형식",
			content:  `{ "pricelist": { "path": "data/pricelist.csv" } }`,
			wantErr:  true,
			wantType: apperrors.InvalidInput,
		},
		{
			name:     "실패: 잘못된 Redis URL",
			content:  `{ "cache": { "redis_url": "not a url" } }`,
			wantErr:  true,
			wantType: apperrors.InvalidInput,
		},
		{
			name:     "실패: 갱신 활성화 시 잘못된 Cron 표현식",
			content:  `{ "refresh": { "enabled": true, "time_spec": "*/5 * * * *" } }`,
			wantErr:  true,
			wantType: apperrors.InvalidInput,
		},
		{
			name:    "성공: 갱신 비활성화 시 Cron 표현식은 검사하지 않는다",
			content: `{ "refresh": { "enabled": false, "time_spec": "" } }`,
		},
		{
			name:     "실패: 텔레그램 토큰 형식",
			content:  `{ "contact": { "telegram": { "bot_token": "invalid", "chat_id": 1 } } }`,
			wantErr:  true,
			wantType: apperrors.InvalidInput,
		},
		{
			name:     "실패: 텔레그램 토큰이 있으면 chat_id 필수",
			content:  `{ "contact": { "telegram": { "bot_token": "123456:ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789" } } }`,
			wantErr:  true,
			wantType: apperrors.InvalidInput,
		},
		{
			name:     "실패: SendGrid 키가 있으면 발신/수신 주소 필수",
			content:  `{ "contact": { "sendgrid": { "api_key": "SG.key", "from": "shop@example.com" } } }`,
			wantErr:  true,
			wantType: apperrors.InvalidInput,
		},
		{
			name:     "실패: 문의 큐 크기",
			content:  `{ "contact": { "queue_size": 0 } }`,
			wantErr:  true,
			wantType: apperrors.InvalidInput,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := LoadWithFile(writeConfigFile(t, tt.content))
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, cfg)
				assert.True(t, apperrors.Is(err, tt.wantType), "err=%v", err)
				return
			}

			require.NoError(t, err)
			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoadWithFile_MissingFile(t *testing.T) {
	t.Parallel()

	cfg, err := LoadWithFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.True(t, apperrors.Is(err, apperrors.System))
}

func TestLoadWithFile_TLSFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cert := filepath.Join(dir, "cert.pem")
	key := filepath.Join(dir, "key.pem")
	require.NoError(t, os.WriteFile(cert, []byte("cert"), 0o600))
	require.NoError(t, os.WriteFile(key, []byte("key"), 0o600))

	path := filepath.Join(dir, DefaultFilename)
	content := `{ "http": { "tls_server": true, "tls_cert_file": "` + filepath.ToSlash(cert) + `", "tls_key_file": "` + filepath.ToSlash(key) + `" } }`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadWithFile(path)
	require.NoError(t, err)
	assert.True(t, cfg.HTTP.TLSServer)

	content = `{ "http": { "tls_server": true, "tls_cert_file": "` + filepath.ToSlash(filepath.Join(dir, "missing.pem")) + `", "tls_key_file": "` + filepath.ToSlash(key) + `" } }`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	_, err = LoadWithFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tls_cert_file")
}

// =============================================================================
// Environment Overrides
// =============================================================================

func TestLoadWithFile_EnvOverrides(t *testing.T) {
	path := writeConfigFile(t, `{ "http": { "listen_port": 9090 }, "cache": { "key_prefix": "file:" } }`)

	t.Setenv("STOREFRONT_HTTP__LISTEN_PORT", "7070")
	t.Setenv("STOREFRONT_CACHE__REDIS_URL", "redis://cache:6379/1")
	t.Setenv("STOREFRONT_CORS__ALLOW_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("STOREFRONT_DEBUG", "true")

	cfg, err := LoadWithFile(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.HTTP.ListenPort)
	assert.Equal(t, "redis://cache:6379/1", cfg.Cache.RedisURL)
	assert.Equal(t, "file:", cfg.Cache.KeyPrefix)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.AllowOrigins)
	assert.True(t, cfg.Debug)
}

func TestEnvKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "http.listen_port", envKey("STOREFRONT_HTTP__LISTEN_PORT"))
	assert.Equal(t, "contact.telegram.bot_token", envKey("STOREFRONT_CONTACT__TELEGRAM__BOT_TOKEN"))
	assert.Equal(t, "debug", envKey("STOREFRONT_DEBUG"))
}

func TestAppConfig_VerifyRecommendations(t *testing.T) {
	t.Parallel()

	cfg := &AppConfig{
		HTTP: HTTPConfig{ListenPort: 80},
		CORS: CORSConfig{AllowOrigins: []string{"*"}},
	}

	warnings := cfg.VerifyRecommendations()
	assert.Len(t, warnings, 3)

	cfg.Debug = true
	cfg.HTTP.ListenPort = 8080
	cfg.Contact.SendGrid.APIKey = "SG.key"
	assert.Empty(t, cfg.VerifyRecommendations())
}
