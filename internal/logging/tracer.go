package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// TracePrefix 是调试跟踪行的前缀。
const TracePrefix = "pymonkey: "

// traceFormatter 只输出 "pymonkey: <message>"，不带时间与字段。
type traceFormatter struct{}

func (traceFormatter) Format(e *logrus.Entry) ([]byte, error) {
	return []byte(TracePrefix + e.Message + "\n"), nil
}

// NewTracer 创建调试跟踪 logger：enabled 为 false 时不产生任何输出。
func NewTracer(enabled bool, w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(traceFormatter{})
	if !enabled || w == nil {
		logger.SetOutput(io.Discard)
		logger.SetLevel(logrus.PanicLevel)
		return logger
	}
	logger.SetOutput(w)
	logger.SetLevel(logrus.DebugLevel)
	return logger
}
