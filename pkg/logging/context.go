package logging

import (
	"context"

	"github.com/sirupsen/logrus"
)

type contextKey struct{}

// NewContext returns a copy of ctx carrying logger.
func NewContext(ctx context.Context, logger *logrus.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or a discarding logger.
func FromContext(ctx context.Context) *logrus.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(contextKey{}).(*logrus.Logger); ok && logger != nil {
			return logger
		}
	}
	return Discard()
}
