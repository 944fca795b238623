// Package logger provides the shared zap logger and context helpers.
package logger

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("logger",
	fx.Provide(New),
	fx.Invoke(func(log *zap.Logger) {
		zap.ReplaceGlobals(log)
	}),
)

func New() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true
	return cfg.Build()
}

// FromContext returns the global logger enriched with the active span's
// trace_id and span_id when a recording span is present.
func FromContext(ctx context.Context) *zap.Logger {
	log := zap.L()
	sc := trace.SpanContextFromContext(ctx)
	if sc.HasTraceID() {
		log = log.With(zap.String("trace_id", sc.TraceID().String()))
	}
	if sc.HasSpanID() {
		log = log.With(zap.String("span_id", sc.SpanID().String()))
	}
	return log
}
