package hnslog

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type ctxKey struct{}

// NewRequestCtx attaches a fresh request ID to ctx and returns a logger
// entry carrying it as a field, so every log line for one decode/compose
// call can be correlated (spec's "request ID in logs" ambient feature).
func NewRequestCtx(ctx context.Context) (context.Context, *logrus.Entry) {
	entry := logrus.NewEntry(Log()).WithField("requestId", uuid.New().String())

	return NewCtx(ctx, entry)
}

// NewCtx stores logger in ctx, keyed so FromCtx can retrieve it later.
func NewCtx(ctx context.Context, logger *logrus.Entry) (context.Context, *logrus.Entry) {
	ctx = context.WithValue(ctx, ctxKey{}, logger)

	return ctx, entryWithCtx(ctx, logger)
}

// FromCtx retrieves the logger attached by NewCtx/NewRequestCtx, falling
// back to the package-global logger if none was attached.
func FromCtx(ctx context.Context) *logrus.Entry {
	logger, ok := ctx.Value(ctxKey{}).(*logrus.Entry)
	if !ok {
		return logrus.NewEntry(Log())
	}

	return entryWithCtx(ctx, logger)
}

func entryWithCtx(ctx context.Context, logger *logrus.Entry) *logrus.Entry {
	loggerCopy := *logger
	loggerCopy.Context = ctx

	return &loggerCopy
}
