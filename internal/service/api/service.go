// Package api 상점 HTTP API 서버를 제공합니다.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"

	_ "github.com/luis-photousa/asi-sage-landing-pagev0.1/docs"
	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/config"
	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/pkg/version"
	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/service/api/constants"
	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/service/api/handler/system"
	v1 "github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/service/api/v1"
	v1handler "github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/service/api/v1/handler"
	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/service/storefront"
	applog "github.com/luis-photousa/asi-sage-landing-pagev0.1/pkg/log"
)

// Service 상점 API 서버의 생명주기를 관리하는 서비스입니다.
//
// Echo 기반 HTTP/HTTPS 서버를 고루틴으로 실행하고, context 취소 시 Graceful Shutdown 을 수행합니다.
type Service struct {
	appConfig *config.AppConfig

	catalog          storefront.Reader
	contactSubmitter v1handler.ContactSubmitter

	buildInfo version.Info

	running   bool
	runningMu sync.Mutex
}

// NewService Service 인스턴스를 생성합니다.
func NewService(appConfig *config.AppConfig, catalog storefront.Reader, contactSubmitter v1handler.ContactSubmitter, buildInfo version.Info) *Service {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}
	if catalog == nil {
		panic(constants.PanicMsgCatalogRequired)
	}
	if contactSubmitter == nil {
		panic(constants.PanicMsgContactSubmitterRequired)
	}

	return &Service{
		appConfig: appConfig,

		catalog:          catalog,
		contactSubmitter: contactSubmitter,

		buildInfo: buildInfo,
	}
}

// Start API 서비스를 시작합니다. 서버는 고루틴에서 실행되며 이 함수는 즉시 반환됩니다.
// 서비스가 완전히 종료되면 serviceStopWG.Done() 이 호출됩니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarting)

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn(constants.LogMsgServiceAlreadyStarted)
		return nil
	}

	s.running = true

	go s.runServiceLoop(serviceStopCtx, serviceStopWG)

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarted)

	return nil
}

func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	s.logCatalogSummary(serviceStopCtx)

	e := s.setupServer()

	httpServerDone := make(chan struct{})
	go s.startHTTPServer(e, httpServerDone)

	s.waitForShutdown(serviceStopCtx, e, httpServerDone)
}

// logCatalogSummary 서버를 열기 전에 카탈로그를 한 번 읽어 규모를 기록합니다.
// 캐시가 연결되어 있으면 첫 요청 전에 캐시가 채워진다.
func (s *Service) logCatalogSummary(ctx context.Context) (products, collections int) {
	products = len(s.catalog.ListProducts(ctx))
	collections = len(s.catalog.ListCollections(ctx))

	fields := applog.Fields{
		"products":    products,
		"collections": collections,
	}
	if products == 0 {
		applog.WithComponentAndFields(constants.ComponentService, fields).Warn(constants.LogMsgServiceCatalogEmpty)
		return
	}
	applog.WithComponentAndFields(constants.ComponentService, fields).Info(constants.LogMsgServiceCatalogLoaded)
	return
}

// setupServer 핸들러, 미들웨어 체인, 라우트가 구성된 Echo 인스턴스를 만듭니다.
func (s *Service) setupServer() *echo.Echo {
	systemHandler := system.NewHandler(s.catalog, s.buildInfo)
	v1Handler := v1handler.NewHandler(s.catalog, s.contactSubmitter)

	httpConfig := s.appConfig.HTTP
	e := NewHTTPServer(HTTPServerConfig{
		Debug:              s.appConfig.Debug,
		AllowOrigins:       s.appConfig.CORS.AllowOrigins,
		RequestTimeout:     httpConfig.RequestTimeout,
		RateLimitPerSecond: httpConfig.RateLimit.RequestsPerSecond,
		RateLimitBurst:     httpConfig.RateLimit.Burst,
		EnableHSTS:         httpConfig.TLSServer,
	})

	RegisterRoutes(e, systemHandler)
	v1.RegisterRoutes(e, v1Handler)

	return e
}

// startHTTPServer HTTP/HTTPS 서버를 시작하고, 서버가 종료되면 done 채널을 닫습니다.
func (s *Service) startHTTPServer(e *echo.Echo, done chan struct{}) {
	defer close(done)

	httpConfig := s.appConfig.HTTP
	address := fmt.Sprintf(":%d", httpConfig.ListenPort)

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port": httpConfig.ListenPort,
		"tls":  httpConfig.TLSServer,
	}).Info(constants.LogMsgServiceHTTPServerStarting)

	var err error
	if httpConfig.TLSServer {
		err = e.StartTLS(address, httpConfig.TLSCertFile, httpConfig.TLSKeyFile)
	} else {
		err = e.Start(address)
	}

	s.handleServerError(err)
}

// handleServerError 서버 종료 원인을 기록합니다. Graceful Shutdown 에 의한 종료는 정상으로 취급합니다.
func (s *Service) handleServerError(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceHTTPServerStopped)
		return
	}

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port":  s.appConfig.HTTP.ListenPort,
		"error": err,
	}).Error(constants.LogMsgServiceHTTPServerFatalError)
}

// waitForShutdown 종료 신호 또는 서버의 조기 종료를 기다린 뒤 정리합니다.
func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone chan struct{}) {
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopping)

	case <-httpServerDone:
		// 포트 바인딩 실패 등으로 서버가 먼저 종료된 경우
		applog.WithComponent(constants.ComponentService).Error(constants.LogMsgServiceUnexpectedExit)

		s.cleanup()

		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error(constants.LogMsgServiceHTTPServerShutdownError)
	}

	<-httpServerDone

	s.cleanup()
}

func (s *Service) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopped)
}
