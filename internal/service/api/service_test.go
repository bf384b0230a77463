package api

import (
	"context"
	"crypto/tls"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/config"
	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/pkg/version"
	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/service/api/constants"
	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/testutil"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
	)
}

// =============================================================================
// Test Helpers
// =============================================================================

func newTestAppConfig(port int) *config.AppConfig {
	appConfig := &config.AppConfig{Debug: true}
	appConfig.HTTP.ListenPort = port
	appConfig.HTTP.RequestTimeout = 5 * time.Second
	appConfig.HTTP.RateLimit.RequestsPerSecond = 100
	appConfig.HTTP.RateLimit.Burst = 100
	appConfig.CORS.AllowOrigins = []string{"*"}
	return appConfig
}

func isRunning(s *Service) bool {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()
	return s.running
}

// waitGroupDone wg 가 timeout 안에 완료되는지 반환합니다.
func waitGroupDone(wg *sync.WaitGroup, timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}

// =============================================================================
// Constructor Tests
// =============================================================================

func TestNewService(t *testing.T) {
	t.Parallel()

	appConfig := newTestAppConfig(8080)
	buildInfo := version.Info{Version: "v0.1.0"}

	s := NewService(appConfig, fixtureCatalog(), acceptingSubmitter{}, buildInfo)

	assert.Same(t, appConfig, s.appConfig)
	assert.Equal(t, buildInfo, s.buildInfo)
	assert.False(t, s.running)
}

func TestNewService_RequiredDependencies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		create    func()
		wantPanic string
	}{
		{
			name:      "AppConfig 누락",
			create:    func() { NewService(nil, fixtureCatalog(), acceptingSubmitter{}, version.Info{}) },
			wantPanic: constants.PanicMsgAppConfigRequired,
		},
		{
			name:      "Catalog 누락",
			create:    func() { NewService(newTestAppConfig(8080), nil, acceptingSubmitter{}, version.Info{}) },
			wantPanic: constants.PanicMsgCatalogRequired,
		},
		{
			name:      "ContactSubmitter 누락",
			create:    func() { NewService(newTestAppConfig(8080), fixtureCatalog(), nil, version.Info{}) },
			wantPanic: constants.PanicMsgContactSubmitterRequired,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.PanicsWithValue(t, tt.wantPanic, tt.create)
		})
	}
}

// =============================================================================
// Lifecycle Tests
// =============================================================================

func TestService_Lifecycle(t *testing.T) {
	port := testutil.FreePort(t)
	s := NewService(newTestAppConfig(port), fixtureCatalog(), acceptingSubmitter{}, version.Info{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wg := &sync.WaitGroup{}

	wg.Add(1)
	require.NoError(t, s.Start(ctx, wg))
	require.NoError(t, testutil.WaitForServer(port, 2*time.Second))
	assert.True(t, isRunning(s))

	cancel()

	require.True(t, waitGroupDone(wg, constants.DefaultShutdownTimeout+time.Second), "서비스가 제한 시간 안에 종료되어야 합니다")
	assert.False(t, isRunning(s))
}

func TestService_DuplicateStart(t *testing.T) {
	port := testutil.FreePort(t)
	s := NewService(newTestAppConfig(port), fixtureCatalog(), acceptingSubmitter{}, version.Info{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wg := &sync.WaitGroup{}

	wg.Add(1)
	require.NoError(t, s.Start(ctx, wg))
	require.NoError(t, testutil.WaitForServer(port, 2*time.Second))

	// 이미 실행 중이면 Start 가 바로 Done 을 호출한다.
	wg.Add(1)
	assert.NoError(t, s.Start(ctx, wg))
	assert.True(t, isRunning(s))

	cancel()
	require.True(t, waitGroupDone(wg, constants.DefaultShutdownTimeout+time.Second))
}

func TestService_StartTLS(t *testing.T) {
	port := testutil.FreePort(t)
	certFile, keyFile := testutil.WriteSelfSignedCert(t)

	appConfig := newTestAppConfig(port)
	appConfig.HTTP.TLSServer = true
	appConfig.HTTP.TLSCertFile = certFile
	appConfig.HTTP.TLSKeyFile = keyFile

	s := NewService(appConfig, fixtureCatalog(), acceptingSubmitter{}, version.Info{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wg := &sync.WaitGroup{}

	wg.Add(1)
	require.NoError(t, s.Start(ctx, wg))
	require.NoError(t, testutil.WaitForServer(port, 2*time.Second))

	transport := &http.Transport{
		TLSClientConfig:   &tls.Config{InsecureSkipVerify: true}, //nolint:gosec // 테스트용 자체 서명 인증서
		DisableKeepAlives: true,
	}
	client := &http.Client{Transport: transport, Timeout: 2 * time.Second}

	resp, err := client.Get("https://127.0.0.1:" + strconv.Itoa(port) + "/health")
	require.NoError(t, err)
	_ = resp.Body.Close()
	transport.CloseIdleConnections()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Strict-Transport-Security"), "max-age=")

	cancel()
	require.True(t, waitGroupDone(wg, constants.DefaultShutdownTimeout+time.Second))
}

func TestService_UnexpectedServerExit(t *testing.T) {
	// 존재하지 않는 인증서로 TLS 서버를 시작하면 서버가 즉시 종료된다.
	appConfig := newTestAppConfig(testutil.FreePort(t))
	appConfig.HTTP.TLSServer = true
	appConfig.HTTP.TLSCertFile = "/nonexistent/cert.pem"
	appConfig.HTTP.TLSKeyFile = "/nonexistent/key.pem"

	s := NewService(appConfig, fixtureCatalog(), acceptingSubmitter{}, version.Info{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wg := &sync.WaitGroup{}

	wg.Add(1)
	require.NoError(t, s.Start(ctx, wg))

	require.True(t, waitGroupDone(wg, 2*time.Second), "서버가 실패하면 컨텍스트 취소 없이도 서비스가 종료되어야 합니다")
	assert.False(t, isRunning(s))
}

func TestService_handleServerError(t *testing.T) {
	t.Parallel()

	s := NewService(newTestAppConfig(8080), fixtureCatalog(), acceptingSubmitter{}, version.Info{})

	tests := []struct {
		name string
		err  error
	}{
		{"nil", nil},
		{"정상 종료", http.ErrServerClosed},
		{"래핑된 정상 종료", errors.Join(errors.New("shutdown"), http.ErrServerClosed)},
		{"예기치 않은 오류", errors.New("bind: address already in use")},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.NotPanics(t, func() { s.handleServerError(tt.err) })
		})
	}
}

func TestService_logCatalogSummary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		catalog         stubCatalog
		wantProducts    int
		wantCollections int
	}{
		{name: "상품 있음", catalog: fixtureCatalog(), wantProducts: 1, wantCollections: 1},
		{name: "빈 카탈로그", catalog: stubCatalog{}, wantProducts: 0, wantCollections: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := NewService(newTestAppConfig(8080), tt.catalog, acceptingSubmitter{}, version.Info{})

			products, collections := s.logCatalogSummary(context.Background())
			assert.Equal(t, tt.wantProducts, products)
			assert.Equal(t, tt.wantCollections, collections)
		})
	}
}
