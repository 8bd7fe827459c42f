package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"moodmate/be/biz/config"
	"moodmate/be/biz/util/trace_info"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var _ hlog.FullLogger = (*Logger)(nil)

// Logger is an hlog.FullLogger backed by logrus. Ctx methods attach the
// request log id and caller public id as fields.
type Logger struct {
	l *logrus.Logger
}

func New(out io.Writer, level hlog.Level) *Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02 15:04:05.000"})
	l.SetOutput(out)
	lg := &Logger{l: l}
	lg.SetLevel(level)
	return lg
}

// Init installs the logger as the hlog default.
func Init(conf config.LoggerConf) {
	hlog.SetLogger(New(newOutput(conf), parseLevel(conf.Level)))
}

func newOutput(conf config.LoggerConf) io.Writer {
	dir := conf.Dir
	if dir == "" {
		dir = "./log"
	}
	filename := conf.FileName
	if filename == "" {
		filename = "moodmate.log"
	}

	maxSize := conf.MaxSize
	if maxSize == 0 {
		maxSize = 512
	}

	maxBackups := conf.MaxBackups
	if maxBackups == 0 {
		maxBackups = 10
	}

	maxAge := conf.MaxAge
	if maxAge == 0 {
		maxAge = 14
	}

	file := &lumberjack.Logger{
		Filename:   filepath.Join(dir, filename),
		MaxSize:    maxSize,
		MaxAge:     maxAge,
		MaxBackups: maxBackups,
		LocalTime:  true,
	}
	if conf.Stdout {
		return io.MultiWriter(file, os.Stdout)
	}
	return file
}

func parseLevel(level string) hlog.Level {
	switch level {
	case "trace":
		return hlog.LevelTrace
	case "debug":
		return hlog.LevelDebug
	case "info":
		return hlog.LevelInfo
	case "notice":
		return hlog.LevelNotice
	case "warn":
		return hlog.LevelWarn
	case "error":
		return hlog.LevelError
	case "fatal":
		return hlog.LevelFatal
	}
	return hlog.LevelInfo
}

// notice has no logrus counterpart and is logged at info.
func toLogrus(level hlog.Level) logrus.Level {
	switch level {
	case hlog.LevelTrace:
		return logrus.TraceLevel
	case hlog.LevelDebug:
		return logrus.DebugLevel
	case hlog.LevelInfo, hlog.LevelNotice:
		return logrus.InfoLevel
	case hlog.LevelWarn:
		return logrus.WarnLevel
	case hlog.LevelError:
		return logrus.ErrorLevel
	case hlog.LevelFatal:
		return logrus.FatalLevel
	}
	return logrus.InfoLevel
}

func (lg *Logger) SetLevel(level hlog.Level) {
	lg.l.SetLevel(toLogrus(level))
}

func (lg *Logger) SetOutput(w io.Writer) {
	lg.l.SetOutput(w)
}

func (lg *Logger) entry(ctx context.Context) *logrus.Entry {
	fields := logrus.Fields{}
	if id := trace_info.GetLogId(ctx); id != "" {
		fields["log_id"] = id
	}
	if id := trace_info.GetUserId(ctx); id != "" {
		fields["user_id"] = id
	}
	return lg.l.WithContext(ctx).WithFields(fields)
}

func (lg *Logger) Trace(v ...interface{})  { lg.l.Trace(v...) }
func (lg *Logger) Debug(v ...interface{})  { lg.l.Debug(v...) }
func (lg *Logger) Info(v ...interface{})   { lg.l.Info(v...) }
func (lg *Logger) Notice(v ...interface{}) { lg.l.Info(v...) }
func (lg *Logger) Warn(v ...interface{})   { lg.l.Warn(v...) }
func (lg *Logger) Error(v ...interface{})  { lg.l.Error(v...) }
func (lg *Logger) Fatal(v ...interface{})  { lg.l.Fatal(v...) }

func (lg *Logger) Tracef(format string, v ...interface{})  { lg.l.Tracef(format, v...) }
func (lg *Logger) Debugf(format string, v ...interface{})  { lg.l.Debugf(format, v...) }
func (lg *Logger) Infof(format string, v ...interface{})   { lg.l.Infof(format, v...) }
func (lg *Logger) Noticef(format string, v ...interface{}) { lg.l.Infof(format, v...) }
func (lg *Logger) Warnf(format string, v ...interface{})   { lg.l.Warnf(format, v...) }
func (lg *Logger) Errorf(format string, v ...interface{})  { lg.l.Errorf(format, v...) }
func (lg *Logger) Fatalf(format string, v ...interface{})  { lg.l.Fatalf(format, v...) }

func (lg *Logger) CtxTracef(ctx context.Context, format string, v ...interface{}) {
	lg.entry(ctx).Tracef(format, v...)
}

func (lg *Logger) CtxDebugf(ctx context.Context, format string, v ...interface{}) {
	lg.entry(ctx).Debugf(format, v...)
}

func (lg *Logger) CtxInfof(ctx context.Context, format string, v ...interface{}) {
	lg.entry(ctx).Infof(format, v...)
}

func (lg *Logger) CtxNoticef(ctx context.Context, format string, v ...interface{}) {
	lg.entry(ctx).WithField("notice", true).Info(fmt.Sprintf(format, v...))
}

func (lg *Logger) CtxWarnf(ctx context.Context, format string, v ...interface{}) {
	lg.entry(ctx).Warnf(format, v...)
}

func (lg *Logger) CtxErrorf(ctx context.Context, format string, v ...interface{}) {
	lg.entry(ctx).Errorf(format, v...)
}

func (lg *Logger) CtxFatalf(ctx context.Context, format string, v ...interface{}) {
	lg.entry(ctx).Fatalf(format, v...)
}
