package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/catalog"
	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/config"
	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/pkg/version"
	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/pricelist"
	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/service"
	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/service/api"
	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/service/cache"
	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/service/contact"
	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/service/scheduler"
	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/service/storefront"
	applog "github.com/luis-photousa/asi-sage-landing-pagev0.1/pkg/log"
)

// @title Storefront API
// @version 0.1.0
// @description 판촉물 가격표(스프레드시트)를 상품 카탈로그로 변환하여 제공하는 스토어프론트의 REST API입니다.
// @description
// @description ## 주요 기능
// @description - 상품 목록, 검색, 필터링, 정렬
// @description - 컬렉션(카테고리) 목록 및 상세
// @description - 색상/사이즈 필터 집계
// @description - 문의 접수 (Telegram, SendGrid 알림)
// @description
// @description 가격표 파일은 요청 시점에 다시 읽히므로, 파일을 교체하면 서버 재시작 없이 반영됩니다.
// @description 캐시가 활성화된 경우 TTL 이 지나거나 갱신 스케줄이 실행된 뒤 반영됩니다.

// @license.name MIT

// @BasePath /

const (
	banner = `
  ____   _                    __                    _
 / ___| | |_   ___   _ __   / _|  _ __   ___   _ __  | |_
 \___ \ | __| / _ \ | '__| | |_  | '__| / _ \ | '_ \ | __|
  ___) || |_ | (_) || |    |  _| | |   | (_) || | | || |_
 |____/  \__| \___/ |_|    |_|   |_|    \___/ |_| |_| \__|
                                                      %s
--------------------------------------------------------------------------------
`
)

func main() {
	configFile := flag.String("config", "", "설정 파일 경로 (지정하지 않으면 "+config.DefaultFilename+")")
	flag.Parse()

	// 1. .env 파일이 있으면 환경 변수로 등록한다 (이미 설정된 환경 변수는 덮어쓰지 않음)
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "[WARN] .env 파일을 읽을 수 없습니다: %v\n", err)
	}

	// 2. 환경설정 로드 (로그 설정에 필요하므로 로거보다 먼저 수행한다)
	appConfig, err := loadConfig(*configFile)
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 3. 로그 시스템 초기화
	var logOpts applog.Options
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	} else {
		logOpts = applog.NewProductionOptions(config.AppName)
	}

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	applog.SetDebugMode(appConfig.Debug)

	buildInfo := version.Get()
	fmt.Printf(banner, buildInfo.Version)

	applog.WithComponentAndFields("main", log.Fields{
		"version": buildInfo.String(),
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("서버 초기화 시작")

	for _, w := range appConfig.VerifyRecommendations() {
		applog.WithComponent("main").Warn(w)
	}

	app, err := newApplication(appConfig, buildInfo)
	if err != nil {
		applog.WithComponentAndFields("main", log.Fields{
			"error": err,
		}).Error("서비스 구성 실패")

		log.Fatal("서비스 구성 실패로 프로그램을 종료합니다")
	}
	defer app.Close()

	serviceStopCtx, cancel := context.WithCancel(context.Background())
	serviceStopWG := &sync.WaitGroup{}

	// 서비스를 시작한다.
	for _, s := range app.services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields("main", log.Fields{
				"error": err,
			}).Error("서비스 초기화 실패")

			cancel() // 이미 시작된 서비스들도 종료
			serviceStopWG.Wait()
			app.Close()

			log.Fatal("서비스 초기화 실패로 프로그램을 종료합니다")
		}
	}

	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)

	applog.WithComponent("main").Info("서버 가동 완료")

	<-termC

	applog.WithComponent("main").Info("종료 신호를 수신했습니다. 서비스를 정리합니다")
	cancel()
	serviceStopWG.Wait()
}

func loadConfig(filename string) (*config.AppConfig, error) {
	if filename == "" {
		return config.Load()
	}
	return config.LoadWithFile(filename)
}

// application 실행에 필요한 서비스와 자원을 묶어 둔 구조체입니다.
type application struct {
	catalog  storefront.Reader
	services []service.Service

	closers []io.Closer
}

// newApplication 설정에 따라 카탈로그, 캐시, 갱신 스케줄, 문의, API 서비스를 구성합니다.
// 서비스는 시작하지 않습니다.
func newApplication(appConfig *config.AppConfig, buildInfo version.Info) (*application, error) {
	app := &application{}

	var reader storefront.Reader = storefront.NewCatalog(newPricelistSource(appConfig.Pricelist), catalog.DefaultRules())

	var refreshService service.Service
	if appConfig.Cache.Enabled() {
		store, err := cache.New(appConfig.Cache)
		if err != nil {
			return nil, err
		}
		app.closers = append(app.closers, store)

		cached := storefront.NewCachedCatalog(reader, store, appConfig.Cache.TTL)
		if appConfig.Refresh.Enabled {
			refreshService = scheduler.NewService(appConfig.Refresh.TimeSpec, cached)
		}
		reader = cached
	} else if appConfig.Refresh.Enabled {
		applog.WithComponent("main").Warn("캐시가 비활성화되어 있으므로 캐시 갱신 스케줄(refresh)은 사용되지 않습니다")
	}
	app.catalog = reader

	notifiers, err := contact.NewNotifiers(appConfig.Contact)
	if err != nil {
		app.Close()
		return nil, err
	}
	contactService := contact.NewService(notifiers, appConfig.Contact.QueueSize)

	app.services = append(app.services, contactService)
	if refreshService != nil {
		app.services = append(app.services, refreshService)
	}
	app.services = append(app.services, api.NewService(appConfig, reader, contactService, buildInfo))

	return app, nil
}

// Close 보유한 자원을 모두 정리합니다. 여러 번 호출해도 안전합니다.
func (a *application) Close() {
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			applog.WithComponentAndFields("main", log.Fields{
				"error": err,
			}).Warn("자원 정리 중 오류가 발생했습니다")
		}
	}
	a.closers = nil
}

// newPricelistSource 설정된 가격표 경로를 Source 로 변환합니다. 비어 있는 항목은 기본값을 사용합니다.
func newPricelistSource(cfg config.PricelistConfig) pricelist.Source {
	s := pricelist.DefaultSource()

	s.Path = cfg.Path
	if cfg.EnvVar != "" {
		s.EnvVar = cfg.EnvVar
	}
	if cfg.PreferredPath != "" {
		s.PreferredPath = cfg.PreferredPath
	}
	if cfg.DefaultPath != "" {
		s.DefaultPath = cfg.DefaultPath
	}

	return s
}
