// Package testutil 여러 패키지의 테스트에서 공유하는 도우미 함수를 제공합니다.
package testutil

import (
	"fmt"
	"net"
	"testing"
	"time"
)

// FreePort 테스트 서버가 사용할 수 있는 임의의 로컬 포트를 반환합니다.
func FreePort(t testing.TB) int {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("사용 가능한 포트를 찾을 수 없습니다: %v", err)
	}
	defer l.Close()

	return l.Addr().(*net.TCPAddr).Port
}

// WaitForServer 서버가 port 에서 연결을 받을 때까지 최대 timeout 만큼 기다립니다.
func WaitForServer(port int, timeout time.Duration) error {
	address := fmt.Sprintf("127.0.0.1:%d", port)

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		conn, err := net.DialTimeout("tcp", address, 100*time.Millisecond)
		if err == nil {
			return conn.Close()
		}
		time.Sleep(10 * time.Millisecond)
	}
	return fmt.Errorf("서버가 %v 안에 시작되지 않았습니다 (address=%s)", timeout, address)
}
