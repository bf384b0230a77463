package service

import (
	"context"
	"sync"
)

// Service 애플리케이션 수명 동안 백그라운드에서 동작하는 서비스입니다.
//
// Start 는 serviceStopWG 의 Done 을 서비스가 완전히 종료된 뒤 한 번 호출해야 하며,
// serviceStopCtx 가 취소되면 종료 절차를 시작합니다.
type Service interface {
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
}
