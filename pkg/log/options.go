package log

import (
	"fmt"
	"os"
)

// Options 로깅 시스템 설정입니다.
type Options struct {
	Name  string // 로그 파일명에 사용할 애플리케이션 이름
	Dir   string // 로그 디렉터리 (비어 있으면 "logs")
	Level Level

	MaxAge     int // 보관 일수 (0: 삭제하지 않음)
	MaxSizeMB  int // 파일당 최대 크기 (0: 100MB)
	MaxBackups int // 최대 백업 파일 수 (0: 20개)

	EnableCriticalLog bool // ERROR 이상을 <name>.critical.log 에 별도 기록
	EnableVerboseLog  bool // DEBUG 이하를 <name>.verbose.log 에 기록
	EnableConsoleLog  bool // 표준 출력에도 기록

	ReportCaller     bool
	CallerPathPrefix string // 호출자 함수명에서 잘라낼 모듈 경로
}

// Validate 설정 값을 검증합니다.
func (o *Options) Validate() error {
	if o.Name == "" {
		return fmt.Errorf("애플리케이션 이름(Name)이 설정되지 않았습니다")
	}
	if o.Dir != "" {
		if info, err := os.Stat(o.Dir); err == nil && !info.IsDir() {
			return fmt.Errorf("로그 디렉터리 경로(%s)가 파일로 존재합니다", o.Dir)
		}
	}
	if o.MaxAge < 0 || o.MaxSizeMB < 0 || o.MaxBackups < 0 {
		return fmt.Errorf("로그 보관 설정은 0 이상이어야 합니다 (max_age=%d, max_size_mb=%d, max_backups=%d)", o.MaxAge, o.MaxSizeMB, o.MaxBackups)
	}
	return nil
}

// NewProductionOptions 운영 환경용 설정을 반환합니다.
func NewProductionOptions(appName string) Options {
	return Options{
		Name:              appName,
		Level:             InfoLevel,
		MaxAge:            30,
		MaxSizeMB:         100,
		MaxBackups:        20,
		EnableCriticalLog: true,
		EnableVerboseLog:  true,
		ReportCaller:      true,
		CallerPathPrefix:  "github.com/luis-photousa",
	}
}

// NewDevelopmentOptions 개발 환경용 설정을 반환합니다. 모든 로그를 콘솔에도 출력합니다.
func NewDevelopmentOptions(appName string) Options {
	return Options{
		Name:             appName,
		Level:            TraceLevel,
		MaxAge:           1,
		MaxSizeMB:        50,
		MaxBackups:       5,
		EnableConsoleLog: true,
		ReportCaller:     true,
		CallerPathPrefix: "github.com/luis-photousa",
	}
}
