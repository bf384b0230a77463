package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/luis-photousa/asi-sage-landing-pagev0.1/pkg/cronx"
	applog "github.com/luis-photousa/asi-sage-landing-pagev0.1/pkg/log"
)

// component Scheduler 서비스의 로깅용 컴포넌트 이름
const component = "scheduler.service"

// refreshTimeout 캐시 갱신 1회에 허용하는 최대 시간
const refreshTimeout = 30 * time.Second

// Refresher 캐시를 비우고 다시 채우는 작업입니다. storefront.CachedCatalog 가 이를 구현합니다.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Scheduler 설정된 Cron 스케줄에 맞춰 카탈로그 캐시를 주기적으로 갱신하는 서비스입니다.
type Scheduler struct {
	timeSpec string

	cron *cron.Cron

	refresher Refresher

	running   bool
	runningMu sync.Mutex
}

// NewService 새로운 Scheduler 서비스 인스턴스를 생성합니다.
func NewService(timeSpec string, refresher Refresher) *Scheduler {
	if refresher == nil {
		panic("Refresher는 필수입니다")
	}

	return &Scheduler{
		timeSpec: timeSpec,

		refresher: refresher,
	}
}

// Start 스케줄러를 시작하고 캐시 갱신 작업을 Cron 엔진에 등록합니다.
//
// 매개변수:
//   - serviceStopCtx: 서비스 종료 신호를 받기 위한 Context
//   - serviceStopWG: 서비스 종료 완료를 알리기 위한 WaitGroup
//
// 반환값:
//   - error: refresher 가 nil 이거나 Cron 표현식이 올바르지 않은 경우
func (s *Scheduler) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(component).Info("서비스 시작 진입: Scheduler 서비스 초기화 프로세스를 시작합니다")

	if s.refresher == nil {
		serviceStopWG.Done()
		return ErrRefresherNotInitialized
	}

	if s.running {
		serviceStopWG.Done()
		applog.WithComponent(component).Warn("Scheduler 서비스가 이미 실행 중입니다 (중복 호출)")
		return nil
	}

	// 1. Cron 엔진 초기화
	// - StandardParser: 초 단위 스케줄링 지원 (6개 필드: 초 분 시 일 월 요일)
	// - Recover: Panic 발생 시 복구
	// - SkipIfStillRunning: 이전 갱신이 끝나지 않았으면 이번 실행을 건너뜀
	c := cron.New(
		cron.WithParser(cronx.StandardParser()),
		cron.WithLogger(cron.VerbosePrintfLogger(applog.StandardLogger())),
		cron.WithChain(
			cron.Recover(cron.VerbosePrintfLogger(applog.StandardLogger())),
			cron.SkipIfStillRunning(cron.VerbosePrintfLogger(applog.StandardLogger())),
		),
	)

	// 2. 작업 등록
	if _, err := c.AddFunc(s.timeSpec, s.runRefresh); err != nil {
		serviceStopWG.Done()
		return NewErrInvalidCronSpec(s.timeSpec, err)
	}

	// 3. 스케줄러 시작
	s.cron = c
	s.cron.Start()
	s.running = true

	applog.WithComponentAndFields(component, applog.Fields{
		"time_spec":   s.timeSpec,
		"next_run_at": s.cron.Entries()[0].Next,
	}).Info("서비스 시작 완료: Scheduler 서비스가 정상적으로 초기화되었습니다")

	// 4. 종료 신호 대기
	go func() {
		defer serviceStopWG.Done()

		<-serviceStopCtx.Done()

		s.stop()
	}()

	return nil
}

// stop 실행 중인 스케줄러를 중지하고 진행 중인 갱신이 끝날 때까지 기다립니다.
func (s *Scheduler) stop() {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if !s.running {
		return
	}

	applog.WithComponent(component).Info("종료 절차 진입: Scheduler 서비스 중지 시그널을 수신했습니다")

	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}

	s.cron = nil
	s.running = false

	applog.WithComponent(component).Info("Scheduler 서비스 종료 완료: 모든 리소스가 정리되었습니다")
}

// runRefresh Cron 에 의해 호출되는 캐시 갱신 작업입니다.
//
// 갱신의 생명주기는 서비스 종료 신호와 분리합니다. 종료 시 cron.Stop() 이 진행 중인 작업의 완료를 기다리므로,
// 갱신 도중 컨텍스트가 취소되어 캐시가 빈 상태로 남는 일을 막습니다.
func (s *Scheduler) runRefresh() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	startedAt := time.Now()
	if err := s.refresher.Refresh(ctx); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"time_spec": s.timeSpec,
			"error":     err,
		}).Error("캐시 갱신 실패: Refresher 실행 중 오류가 발생했습니다")
		return
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"elapsed": time.Since(startedAt).String(),
	}).Debug("캐시 갱신 작업을 마쳤습니다")
}
