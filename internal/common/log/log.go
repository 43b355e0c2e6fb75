package log

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field is re-exported so call-sites never import zap directly.
type Field = zap.Field

var (
	String = zap.String
	Int    = zap.Int
	Any    = zap.Any
	Err    = zap.Error
)

var logger = zap.NewNop()

type Option func(*options)

type options struct {
	level      zapcore.Level
	env        string
	withCaller bool
	callerSkip int
}

func WithLogEnvOption(env string) Option {
	return func(o *options) { o.env = env }
}

func WithCaller(enabled bool) Option {
	return func(o *options) { o.withCaller = enabled }
}

func AddCallerSkip(skip int) Option {
	return func(o *options) { o.callerSkip = skip }
}

func DebugLogLevel() Option {
	return func(o *options) { o.level = zapcore.DebugLevel }
}

func InfoLogLevel() Option {
	return func(o *options) { o.level = zapcore.InfoLevel }
}

// Init configures the package-level logger. Local env gets a human readable
// console encoder, everything else structured JSON.
func Init(appName string, opts ...Option) {
	o := &options{level: zapcore.InfoLevel, withCaller: true, callerSkip: 1}
	for _, opt := range opts {
		opt(o)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "timestamp"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if o.env == "local" || o.env == "" {
		devCfg := zap.NewDevelopmentEncoderConfig()
		devCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		enc = zapcore.NewConsoleEncoder(devCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.Lock(os.Stdout), o.level)

	zapOpts := []zap.Option{}
	if o.withCaller {
		zapOpts = append(zapOpts, zap.AddCaller(), zap.AddCallerSkip(o.callerSkip))
	}

	logger = zap.New(core, zapOpts...).Named(appName)
}

// InitForTest keeps test output quiet.
func InitForTest() {
	logger = zap.NewNop()
}

func withCtx(ctx context.Context, fields []Field) []Field {
	if cid := GetCorrelationId(ctx); cid != "" {
		fields = append(fields, zap.String("x-correlation-id", cid))
	}
	return fields
}

func Debug(ctx context.Context, msg string, fields ...Field) {
	logger.Debug(msg, withCtx(ctx, fields)...)
}

func Info(ctx context.Context, msg string, fields ...Field) {
	logger.Info(msg, withCtx(ctx, fields)...)
}

func Warn(ctx context.Context, msg string, fields ...Field) {
	logger.Warn(msg, withCtx(ctx, fields)...)
}

func Error(ctx context.Context, msg string, fields ...Field) {
	logger.Error(msg, withCtx(ctx, fields)...)
}

func Infof(ctx context.Context, format string, args ...interface{}) {
	logger.Sugar().Infof(format, args...)
}

func Warnf(ctx context.Context, format string, args ...interface{}) {
	logger.Sugar().Warnf(format, args...)
}

func Errorf(ctx context.Context, format string, args ...interface{}) {
	logger.Sugar().Errorf(format, args...)
}

func Fatalf(ctx context.Context, format string, args ...interface{}) {
	logger.Sugar().Fatalf(format, args...)
}

func Sync() {
	_ = logger.Sync()
}
