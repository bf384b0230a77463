package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
)

// hook 로그 레벨에 따라 엔트리를 main, critical, verbose, console 출력으로 분배합니다.
//
//   - console: 모든 레벨
//   - critical: ERROR 이상
//   - verbose: DEBUG, TRACE (main 에는 기록하지 않음)
//   - main: INFO 이상
type hook struct {
	formatter Formatter

	main     io.Writer
	critical io.Writer
	verbose  io.Writer
	console  io.Writer

	mu     sync.RWMutex
	closed bool
}

func (h *hook) Levels() []Level { return AllLevels }

func (h *hook) Fire(entry *Entry) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return nil
	}

	msg, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	if h.console != nil {
		_, _ = h.console.Write(msg)
	}

	var firstErr error
	write := func(w io.Writer, channel string) {
		if w == nil {
			return
		}
		if _, err := w.Write(msg); err != nil {
			fmt.Fprintf(os.Stderr, "[LOG] %s 로그 기록 실패: %v\n", channel, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	if entry.Level <= ErrorLevel {
		write(h.critical, "critical")
	}
	if entry.Level >= DebugLevel {
		write(h.verbose, "verbose")
		return firstErr
	}
	write(h.main, "main")

	return firstErr
}

func (h *hook) close() {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()
}

// closer hook 을 먼저 닫아 기록을 멈춘 뒤 파일을 닫습니다. 여러 번 호출해도 안전합니다.
type closer struct {
	hook    *hook
	closers []io.Closer
	closed  atomic.Bool
}

func (c *closer) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}

	if c.hook != nil {
		c.hook.close()
	}

	var errs []error
	for _, cl := range c.closers {
		if err := cl.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("로그 파일 닫기 실패: %v", errs)
	}
	return nil
}
