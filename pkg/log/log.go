// Package log 스토어프론트 서버 공통 로깅(logrus + lumberjack)을 제공합니다.
//
// 모든 패키지는 WithComponent 로 자신의 컴포넌트 이름을 필드로 남깁니다.
//
//	applog.WithComponentAndFields("pricelist", applog.Fields{"path": path}).Warn("가격표 파일을 읽을 수 없습니다")
package log

import "github.com/sirupsen/logrus"

// StandardLogger 전역 logrus 로거를 반환합니다.
func StandardLogger() *Logger { return logrus.StandardLogger() }

// WithComponent component 필드가 설정된 엔트리를 반환합니다.
func WithComponent(component string) *Entry {
	return logrus.WithField("component", component)
}

// WithComponentAndFields component 필드와 추가 필드가 설정된 엔트리를 반환합니다.
func WithComponentAndFields(component string, fields Fields) *Entry {
	f := make(Fields, len(fields)+1)
	for k, v := range fields {
		f[k] = v
	}
	f["component"] = component
	return logrus.WithFields(f)
}

// WithFields 필드가 설정된 엔트리를 반환합니다.
func WithFields(fields Fields) *Entry { return logrus.WithFields(fields) }

// WithError error 필드가 설정된 엔트리를 반환합니다.
func WithError(err error) *Entry { return logrus.WithError(err) }

// SetDebugMode 디버그 모드이면 TRACE, 아니면 INFO 로 레벨을 조정합니다.
func SetDebugMode(debug bool) {
	if debug {
		logrus.SetLevel(TraceLevel)
		return
	}
	logrus.SetLevel(InfoLevel)
}

// SetLevel 전역 로그 레벨을 설정합니다.
func SetLevel(level Level) { logrus.SetLevel(level) }

// IsDebugEnabled DEBUG 레벨이 활성화되어 있는지 확인합니다.
func IsDebugEnabled() bool { return logrus.IsLevelEnabled(DebugLevel) }
