package contact

import (
	"context"
	"fmt"
	"sync"
	"time"

	apperrors "github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/pkg/errors"
	applog "github.com/luis-photousa/asi-sage-landing-pagev0.1/pkg/log"
)

const component = "contact.service"

// defaultNotifyTimeout Notifier 한 곳에 문의를 전달할 때 허용하는 최대 시간
const defaultNotifyTimeout = 15 * time.Second

// Service 문의를 큐에 접수하고 백그라운드에서 Notifier 들에게 전달하는 서비스입니다.
type Service struct {
	notifiers []Notifier

	queue chan Submission

	notifyTimeout time.Duration

	now func() time.Time

	running   bool
	runningMu sync.Mutex
}

// NewService 새로운 문의 서비스를 생성합니다. queueSize 는 처리 대기 중인 문의의 최대 개수입니다.
func NewService(notifiers []Notifier, queueSize int) *Service {
	if len(notifiers) == 0 {
		panic("Notifier는 하나 이상 필요합니다")
	}
	if queueSize < 1 {
		queueSize = 1
	}

	return &Service{
		notifiers: notifiers,

		queue: make(chan Submission, queueSize),

		notifyTimeout: defaultNotifyTimeout,

		now: time.Now,
	}
}

// Start 큐에 쌓인 문의를 처리하는 작업 고루틴을 시작합니다.
// serviceStopCtx 가 취소되면 남은 문의를 모두 전달한 뒤 serviceStopWG.Done() 을 호출합니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(component).Info("서비스 시작 진입: Contact 서비스 초기화 프로세스를 시작합니다")

	if s.running {
		serviceStopWG.Done()
		applog.WithComponent(component).Warn("Contact 서비스가 이미 실행 중입니다 (중복 호출)")
		return nil
	}

	s.running = true

	go s.run(serviceStopCtx, serviceStopWG)

	names := make([]string, 0, len(s.notifiers))
	for _, n := range s.notifiers {
		names = append(names, n.Name())
	}
	applog.WithComponentAndFields(component, applog.Fields{
		"notifiers":  names,
		"queue_size": cap(s.queue),
	}).Info("서비스 시작 완료: Contact 서비스가 정상적으로 초기화되었습니다")

	return nil
}

// Submit 문의를 검증하여 큐에 접수합니다. 큐가 가득 차 있으면 기다리지 않고 ErrQueueFull 을 반환합니다.
func (s *Service) Submit(ctx context.Context, f Form) (Submission, error) {
	sub, err := NewSubmission(f, s.now())
	if err != nil {
		return Submission{}, err
	}

	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if !s.running {
		return Submission{}, ErrNotRunning
	}

	select {
	case s.queue <- sub:
		applog.WithComponentAndFields(component, applog.Fields{
			"submission_id": sub.ID,
			"queued":        len(s.queue),
		}).Debug("문의를 큐에 접수했습니다")
		return sub, nil

	case <-ctx.Done():
		return Submission{}, ctx.Err()

	default:
		applog.WithComponentAndFields(component, applog.Fields{
			"submission_id": sub.ID,
			"queue_size":    cap(s.queue),
		}).Warn("문의 큐가 가득 차 접수를 거부했습니다")
		return Submission{}, ErrQueueFull
	}
}

func (s *Service) run(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	for {
		select {
		case sub := <-s.queue:
			s.deliver(sub)

		case <-serviceStopCtx.Done():
			s.shutdown()
			return
		}
	}
}

// shutdown 더 이상 접수하지 않도록 상태를 바꾼 뒤 큐에 남은 문의를 모두 전달합니다.
func (s *Service) shutdown() {
	applog.WithComponent(component).Info("종료 절차 진입: Contact 서비스 중지 시그널을 수신했습니다")

	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	remaining := 0
	for {
		select {
		case sub := <-s.queue:
			s.deliver(sub)
			remaining++
		default:
			applog.WithComponentAndFields(component, applog.Fields{
				"drained": remaining,
			}).Info("Contact 서비스 종료 완료: 대기 중이던 문의를 모두 처리했습니다")
			return
		}
	}
}

// deliver 문의를 모든 Notifier 에게 전달합니다. 한 Notifier 의 실패는 다른 Notifier 에 영향을 주지 않습니다.
func (s *Service) deliver(sub Submission) {
	for _, n := range s.notifiers {
		if err := s.notify(n, sub); err != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"notifier":      n.Name(),
				"submission_id": sub.ID,
				"error":         err,
			}).Error("문의 알림 전달에 실패했습니다")
		}
	}
}

func (s *Service) notify(n Notifier, sub Submission) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = apperrors.New(apperrors.Internal, fmt.Sprintf("Notifier 실행 중 패닉이 발생했습니다: %v", r))
		}
	}()

	// 종료 신호와 분리하여 종료 중에도 남은 문의를 끝까지 전달한다.
	ctx, cancel := context.WithTimeout(context.Background(), s.notifyTimeout)
	defer cancel()

	return n.Notify(ctx, sub)
}
