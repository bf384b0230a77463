package middleware

import (
	"bytes"
	"testing"

	"github.com/labstack/gommon/log"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	applog "github.com/luis-photousa/asi-sage-landing-pagev0.1/pkg/log"
)

func newTestAdapter() (Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}

	l := logrus.New()
	l.SetOutput(buf)
	l.SetFormatter(&logrus.JSONFormatter{DisableTimestamp: true})
	l.SetLevel(applog.DebugLevel)

	return Logger{Logger: l}, buf
}

func TestLoggerAdapter_Level(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		level applog.Level
		want  log.Lvl
	}{
		{"Debug", applog.DebugLevel, log.DEBUG},
		{"Info", applog.InfoLevel, log.INFO},
		{"Warn", applog.WarnLevel, log.WARN},
		{"Error", applog.ErrorLevel, log.ERROR},
		{"Trace 는 대응 없음", applog.TraceLevel, log.OFF},
		{"Panic 은 대응 없음", applog.PanicLevel, log.OFF},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l, _ := newTestAdapter()
			l.Logger.SetLevel(tt.level)

			assert.Equal(t, tt.want, l.Level())
		})
	}
}

func TestLoggerAdapter_SetLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		lvl  log.Lvl
		want applog.Level
	}{
		{"DEBUG", log.DEBUG, applog.DebugLevel},
		{"INFO", log.INFO, applog.InfoLevel},
		{"WARN", log.WARN, applog.WarnLevel},
		{"ERROR", log.ERROR, applog.ErrorLevel},
		{"OFF 는 무시", log.OFF, applog.DebugLevel},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l, _ := newTestAdapter()
			l.SetLevel(tt.lvl)

			assert.Equal(t, tt.want, l.Logger.GetLevel())
		})
	}
}

func TestLoggerAdapter_Methods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		log       func(l Logger)
		wantLevel string
		wantMsg   string
	}{
		{"Debug", func(l Logger) { l.Debug("debug msg") }, "debug", "debug msg"},
		{"Infof", func(l Logger) { l.Infof("info %d", 1) }, "info", "info 1"},
		{"Warn", func(l Logger) { l.Warn("warn msg") }, "warning", "warn msg"},
		{"Errorf", func(l Logger) { l.Errorf("error %s", "x") }, "error", "error x"},
		{"Printf", func(l Logger) { l.Printf("print %s", "y") }, "info", "print y"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l, buf := newTestAdapter()
			tt.log(l)

			assert.Contains(t, buf.String(), `"level":"`+tt.wantLevel+`"`)
			assert.Contains(t, buf.String(), `"msg":"`+tt.wantMsg+`"`)
		})
	}
}

func TestLoggerAdapter_JSONMethods(t *testing.T) {
	t.Parallel()

	l, buf := newTestAdapter()
	l.Infoj(log.JSON{"slug": "11-oz-mug"})

	assert.Contains(t, buf.String(), `"slug":"11-oz-mug"`)
	assert.Contains(t, buf.String(), `"level":"info"`)
}

func TestLoggerAdapter_PanicMethods(t *testing.T) {
	t.Parallel()

	l, _ := newTestAdapter()

	assert.Panics(t, func() { l.Panic("boom") })
	assert.Panics(t, func() { l.Panicf("boom %d", 1) })
}

func TestLoggerAdapter_OutputAndPrefix(t *testing.T) {
	t.Parallel()

	l, buf := newTestAdapter()
	require.Same(t, buf, l.Output())

	other := &bytes.Buffer{}
	l.SetOutput(other)
	l.Info("moved")
	assert.Contains(t, other.String(), "moved")
	assert.Empty(t, buf.String())

	l.SetPrefix("ignored")
	l.SetHeader("ignored")
	assert.Empty(t, l.Prefix())
}
