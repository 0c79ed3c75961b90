package logger

import (
	"context"

	"github.com/sanzad/sanzad-backend/internal/pkg/constants"
	"go.uber.org/zap"
)

var global *zap.SugaredLogger

func init() {
	l, err := zap.NewProduction(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
	global = l.Sugar()
}

// Init replaces the default production logger, e.g. with a development one.
func Init(debug bool) {
	var (
		l   *zap.Logger
		err error
	)
	if debug {
		l, err = zap.NewDevelopment(zap.AddCallerSkip(1))
	} else {
		l, err = zap.NewProduction(zap.AddCallerSkip(1))
	}
	if err != nil {
		panic(err)
	}
	global = l.Sugar()
}

func Sync() {
	_ = global.Sync()
}

func with(ctx context.Context) *zap.SugaredLogger {
	if ctx == nil {
		return global
	}
	if rid, ok := ctx.Value(constants.CtxKeyRequestID).(string); ok && rid != "" {
		return global.With("request_id", rid)
	}
	return global
}

func Infof(ctx context.Context, format string, args ...interface{}) {
	with(ctx).Infof(format, args...)
}

func Warnf(ctx context.Context, format string, args ...interface{}) {
	with(ctx).Warnf(format, args...)
}

func Error(ctx context.Context, msg string) {
	with(ctx).Error(msg)
}

func Errorf(ctx context.Context, format string, args ...interface{}) {
	with(ctx).Errorf(format, args...)
}

func Fatal(ctx context.Context, err error) {
	with(ctx).Fatal(err)
}
