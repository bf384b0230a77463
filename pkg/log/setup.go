package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultDir        = "logs"
	defaultMaxSizeMB  = 100
	defaultMaxBackups = 20
)

var (
	setupOnce   sync.Once
	setupCloser io.Closer
	setupErr    error
)

// Setup 전역 로거를 초기화합니다. 프로세스당 한 번만 실행되며 이후 호출은 최초 결과를 반환합니다.
// 반환된 Closer 는 종료 시 반드시 닫아야 합니다.
func Setup(opts Options) (io.Closer, error) {
	setupOnce.Do(func() {
		setupCloser, setupErr = setup(opts)
	})
	return setupCloser, setupErr
}

func setup(opts Options) (io.Closer, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("유효하지 않은 로그 설정: %w", err)
	}

	dir := opts.Dir
	if dir == "" {
		dir = defaultDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("로그 디렉터리 생성 실패: %w", err)
	}

	level := opts.Level
	if level == 0 {
		level = InfoLevel
	}

	mainFile := rotatingFile(dir, opts.Name, "", opts)
	h := &hook{
		formatter: newTextFormatter(opts.CallerPathPrefix),
		main:      mainFile,
	}
	closers := []io.Closer{mainFile}

	if opts.EnableCriticalLog {
		w := rotatingFile(dir, opts.Name, "critical", opts)
		h.critical = w
		closers = append(closers, w)
	}
	if opts.EnableVerboseLog {
		w := rotatingFile(dir, opts.Name, "verbose", opts)
		h.verbose = w
		closers = append(closers, w)
	}
	if opts.EnableConsoleLog {
		h.console = os.Stdout
	}

	logrus.SetLevel(level)
	logrus.SetReportCaller(opts.ReportCaller)
	// 실제 출력은 hook 이 담당한다.
	logrus.SetOutput(io.Discard)
	logrus.SetFormatter(silentFormatter{})
	logrus.AddHook(h)

	c := &closer{hook: h, closers: closers}
	logrus.RegisterExitHandler(func() { _ = c.Close() })

	return c, nil
}

func rotatingFile(dir, name, kind string, opts Options) *lumberjack.Logger {
	filename := name + ".log"
	if kind != "" {
		filename = name + "." + kind + ".log"
	}

	maxSize := opts.MaxSizeMB
	if maxSize == 0 {
		maxSize = defaultMaxSizeMB
	}
	maxBackups := opts.MaxBackups
	if maxBackups == 0 {
		maxBackups = defaultMaxBackups
	}

	return &lumberjack.Logger{
		Filename:   filepath.Join(dir, filename),
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     opts.MaxAge,
		LocalTime:  true,
	}
}

func newTextFormatter(callerPathPrefix string) *logrus.TextFormatter {
	return &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
		CallerPrettyfier: func(frame *runtime.Frame) (string, string) {
			fn := frame.Function + "(line:" + strconv.Itoa(frame.Line) + ")"
			if callerPathPrefix != "" {
				if rest, ok := strings.CutPrefix(fn, callerPathPrefix); ok {
					fn = "..." + rest
				}
			}
			return fn, ""
		},
	}
}

// silentFormatter 표준 출력이 io.Discard 일 때 불필요한 포맷팅을 생략한다.
type silentFormatter struct{}

func (silentFormatter) Format(*logrus.Entry) ([]byte, error) { return nil, nil }
