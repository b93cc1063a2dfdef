package logger

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"

	"cloud.google.com/go/logging"
)

// DetailedLogger prefixes every entry with the caller's file:line.
type DetailedLogger struct {
	Logger
}

// DetailedLoggerFromContext returns the detailed logger that was stored in context.
// If there isn't logger stored, returns a new logger.
func DetailedLoggerFromContext(ctx context.Context) ILogger {
	if d, ok := ctx.Value(CtxDetailedLoggerKey).(*DetailedLogger); ok {
		return d
	}

	return newDetailedLogger()
}

func newDetailedLogger() *DetailedLogger {
	l := newDefaultLogger()

	return &DetailedLogger{
		Logger: Logger{
			trace:   l.trace,
			started: l.started,
			labels:  l.labels,
		},
	}
}

func caller() string {
	if _, filename, line, ok := runtime.Caller(3); ok {
		return fmt.Sprintf("%s:%d ", filepath.Base(filename), line)
	}

	return ""
}

func detailedLogReq(s logging.Severity, l *Logger, v ...interface{}) {
	logReqEntry(s, l, caller()+fmt.Sprint(v...))
}

func detailedLogReqf(s logging.Severity, l *Logger, format string, v ...interface{}) {
	logReqEntry(s, l, caller()+fmt.Sprintf(format, v...))
}

func (l *DetailedLogger) Debug(v ...interface{}) {
	detailedLogReq(logging.Debug, &l.Logger, v...)
}

func (l *DetailedLogger) Info(v ...interface{}) {
	detailedLogReq(logging.Info, &l.Logger, v...)
}

func (l *DetailedLogger) Print(v ...interface{}) {
	detailedLogReq(logging.Info, &l.Logger, v...)
}

func (l *DetailedLogger) Warning(v ...interface{}) {
	detailedLogReq(logging.Warning, &l.Logger, v...)
}

func (l *DetailedLogger) Error(v ...interface{}) {
	detailedLogReq(logging.Error, &l.Logger, v...)
}

func (l *DetailedLogger) Debugf(format string, v ...interface{}) {
	detailedLogReqf(logging.Debug, &l.Logger, format, v...)
}

func (l *DetailedLogger) Infof(format string, v ...interface{}) {
	detailedLogReqf(logging.Info, &l.Logger, format, v...)
}

func (l *DetailedLogger) Printf(format string, v ...interface{}) {
	detailedLogReqf(logging.Info, &l.Logger, format, v...)
}

func (l *DetailedLogger) Warningf(format string, v ...interface{}) {
	detailedLogReqf(logging.Warning, &l.Logger, format, v...)
}

func (l *DetailedLogger) Errorf(format string, v ...interface{}) {
	detailedLogReqf(logging.Error, &l.Logger, format, v...)
}
