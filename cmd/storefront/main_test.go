package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/config"
	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/pkg/version"
	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/pricelist"
	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/service/api"
	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/service/contact"
	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/service/scheduler"
	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/service/storefront"
)

// =============================================================================
// 메타데이터 검증
// =============================================================================

func TestAppMetadata(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "storefront", config.AppName)
	assert.Equal(t, "storefront.json", config.DefaultFilename)
	assert.NotEmpty(t, version.Get().Version, "버전 정보는 비어있을 수 없습니다")
}

// =============================================================================
// 가격표 Source 구성
// =============================================================================

func TestNewPricelistSource(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  config.PricelistConfig
		want pricelist.Source
	}{
		{
			name: "설정이 비어 있으면 기본값 사용",
			cfg:  config.PricelistConfig{},
			want: pricelist.DefaultSource(),
		},
		{
			name: "명시적 경로 지정",
			cfg:  config.PricelistConfig{Path: "/data/custom.xlsx"},
			want: pricelist.Source{
				Path:          "/data/custom.xlsx",
				EnvVar:        pricelist.DefaultEnvVar,
				PreferredPath: pricelist.DefaultPreferredPath,
				DefaultPath:   pricelist.DefaultPlainPath,
			},
		},
		{
			name: "후보 경로 전체 재정의",
			cfg: config.PricelistConfig{
				EnvVar:        "MY_PRICELIST",
				PreferredPath: "a.xlsx",
				DefaultPath:   "b.xlsx",
			},
			want: pricelist.Source{
				EnvVar:        "MY_PRICELIST",
				PreferredPath: "a.xlsx",
				DefaultPath:   "b.xlsx",
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := newPricelistSource(tt.cfg)
			assert.Equal(t, tt.want.Path, got.Path)
			assert.Equal(t, tt.want.EnvVar, got.EnvVar)
			assert.Equal(t, tt.want.PreferredPath, got.PreferredPath)
			assert.Equal(t, tt.want.DefaultPath, got.DefaultPath)
		})
	}
}

// =============================================================================
// 애플리케이션 구성
// =============================================================================

func newTestAppConfig() *config.AppConfig {
	return &config.AppConfig{
		HTTP: config.HTTPConfig{
			ListenPort:     18080,
			RequestTimeout: 5 * time.Second,
		},
		CORS:    config.CORSConfig{AllowOrigins: []string{"*"}},
		Contact: config.ContactConfig{QueueSize: 4},
	}
}

func TestNewApplication(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		modify     func(c *config.AppConfig)
		wantCached bool
		wantTypes  []string
	}{
		{
			name:       "캐시 비활성화",
			modify:     func(c *config.AppConfig) {},
			wantCached: false,
			wantTypes:  []string{"contact", "api"},
		},
		{
			name: "메모리 캐시 활성화",
			modify: func(c *config.AppConfig) {
				c.Cache.TTL = time.Minute
			},
			wantCached: true,
			wantTypes:  []string{"contact", "api"},
		},
		{
			name: "캐시와 갱신 스케줄 활성화",
			modify: func(c *config.AppConfig) {
				c.Cache.TTL = time.Minute
				c.Refresh = config.RefreshConfig{Enabled: true, TimeSpec: "0 */10 * * * *"}
			},
			wantCached: true,
			wantTypes:  []string{"contact", "scheduler", "api"},
		},
		{
			name: "캐시 없이 갱신 스케줄만 지정하면 무시",
			modify: func(c *config.AppConfig) {
				c.Refresh = config.RefreshConfig{Enabled: true, TimeSpec: "0 */10 * * * *"}
			},
			wantCached: false,
			wantTypes:  []string{"contact", "api"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := newTestAppConfig()
			tt.modify(cfg)

			app, err := newApplication(cfg, version.Get())
			require.NoError(t, err)
			defer app.Close()

			_, isCached := app.catalog.(*storefront.CachedCatalog)
			assert.Equal(t, tt.wantCached, isCached)

			var types []string
			for _, s := range app.services {
				switch s.(type) {
				case *contact.Service:
					types = append(types, "contact")
				case *scheduler.Scheduler:
					types = append(types, "scheduler")
				case *api.Service:
					types = append(types, "api")
				default:
					t.Fatalf("알 수 없는 서비스 타입: %T", s)
				}
			}
			assert.Equal(t, tt.wantTypes, types)
		})
	}
}

func TestNewApplication_InvalidRedisURL(t *testing.T) {
	t.Parallel()

	cfg := newTestAppConfig()
	cfg.Cache.TTL = time.Minute
	cfg.Cache.RedisURL = "not-a-redis-url"

	app, err := newApplication(cfg, version.Get())
	assert.Error(t, err)
	assert.Nil(t, app)
}

func TestApplication_CloseIsIdempotent(t *testing.T) {
	t.Parallel()

	cfg := newTestAppConfig()
	cfg.Cache.TTL = time.Minute

	app, err := newApplication(cfg, version.Get())
	require.NoError(t, err)
	require.Len(t, app.closers, 1)

	assert.NotPanics(t, func() {
		app.Close()
		app.Close()
	})
	assert.Empty(t, app.closers)
}
