package middleware

import (
	"io"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	applog "github.com/luis-photousa/asi-sage-landing-pagev0.1/pkg/log"
)

// Logger Echo 의 log.Logger 인터페이스를 애플리케이션 로거(logrus)로 연결하는 어댑터입니다.
// Echo 내부에서 출력하는 메시지도 애플리케이션 로그 파일로 모이게 됩니다.
//
//	e.Logger = middleware.Logger{Logger: applog.StandardLogger()}
type Logger struct {
	*applog.Logger
}

var _ echo.Logger = Logger{}

func (l Logger) Output() io.Writer { return l.Logger.Out }
func (l Logger) SetOutput(w io.Writer) { l.Logger.SetOutput(w) }

// Prefix, Header 는 logrus 포맷터가 담당하므로 사용하지 않는다.
func (l Logger) Prefix() string { return "" }
func (l Logger) SetPrefix(string) {}
func (l Logger) SetHeader(string) {}

// levelMapping Echo 로그 레벨과 logrus 로그 레벨의 대응표
var levelMapping = []struct {
	echo   log.Lvl
	logrus applog.Level
}{
	{log.DEBUG, applog.DebugLevel},
	{log.INFO, applog.InfoLevel},
	{log.WARN, applog.WarnLevel},
	{log.ERROR, applog.ErrorLevel},
}

// Level 현재 레벨을 Echo 레벨로 반환합니다. 대응하는 레벨이 없으면(Trace, Fatal, Panic) OFF 입니다.
func (l Logger) Level() log.Lvl {
	for _, m := range levelMapping {
		if m.logrus == l.Logger.Level {
			return m.echo
		}
	}
	return log.OFF
}

// SetLevel Echo 레벨을 logrus 레벨로 바꿔 적용합니다. OFF 는 무시합니다.
func (l Logger) SetLevel(lvl log.Lvl) {
	for _, m := range levelMapping {
		if m.echo == lvl {
			l.Logger.SetLevel(m.logrus)
			return
		}
	}
}

func (l Logger) jsonEntry(j log.JSON) *applog.Entry {
	return l.Logger.WithFields(applog.Fields(j))
}

func (l Logger) Print(i ...any) { l.Logger.Print(i...) }
func (l Logger) Printf(format string, args ...any) { l.Logger.Printf(format, args...) }
func (l Logger) Printj(j log.JSON) { l.jsonEntry(j).Print() }

func (l Logger) Debug(i ...any) { l.Logger.Debug(i...) }
func (l Logger) Debugf(format string, args ...any) { l.Logger.Debugf(format, args...) }
func (l Logger) Debugj(j log.JSON) { l.jsonEntry(j).Debug() }

func (l Logger) Info(i ...any) { l.Logger.Info(i...) }
func (l Logger) Infof(format string, args ...any) { l.Logger.Infof(format, args...) }
func (l Logger) Infoj(j log.JSON) { l.jsonEntry(j).Info() }

func (l Logger) Warn(i ...any) { l.Logger.Warn(i...) }
func (l Logger) Warnf(format string, args ...any) { l.Logger.Warnf(format, args...) }
func (l Logger) Warnj(j log.JSON) { l.jsonEntry(j).Warn() }

func (l Logger) Error(i ...any) { l.Logger.Error(i...) }
func (l Logger) Errorf(format string, args ...any) { l.Logger.Errorf(format, args...) }
func (l Logger) Errorj(j log.JSON) { l.jsonEntry(j).Error() }

func (l Logger) Fatal(i ...any) { l.Logger.Fatal(i...) }
func (l Logger) Fatalf(format string, args ...any) { l.Logger.Fatalf(format, args...) }
func (l Logger) Fatalj(j log.JSON) { l.jsonEntry(j).Fatal() }

func (l Logger) Panic(i ...any) { l.Logger.Panic(i...) }
func (l Logger) Panicf(format string, args ...any) { l.Logger.Panicf(format, args...) }
func (l Logger) Panicj(j log.JSON) { l.jsonEntry(j).Panic() }
