package log

import "github.com/sirupsen/logrus"

// Level logrus.Level 의 별칭입니다.
type Level = logrus.Level

const (
	PanicLevel = logrus.PanicLevel
	FatalLevel = logrus.FatalLevel
	ErrorLevel = logrus.ErrorLevel
	WarnLevel  = logrus.WarnLevel
	InfoLevel  = logrus.InfoLevel
	DebugLevel = logrus.DebugLevel
	TraceLevel = logrus.TraceLevel
)

// AllLevels logrus.AllLevels 의 별칭입니다.
var AllLevels = logrus.AllLevels

type (
	// Fields 구조화 로그 필드 (logrus.Fields)
	Fields = logrus.Fields

	// Entry 로그 엔트리 (logrus.Entry)
	Entry = logrus.Entry

	// Logger 로거 (logrus.Logger)
	Logger = logrus.Logger

	// Formatter 포맷터 (logrus.Formatter)
	Formatter = logrus.Formatter
)
