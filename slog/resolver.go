// Package slog provides logging decorators for cratedoc services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rdocs/cratedoc"
)

// Ensure LoggingResolver implements cratedoc.Resolver.
var _ cratedoc.Resolver = (*LoggingResolver)(nil)

// LoggingResolver wraps a Resolver with logging. Each resolution gets a
// request id so concurrent lookups can be told apart in the logs.
type LoggingResolver struct {
	next   cratedoc.Resolver
	logger *slog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next cratedoc.Resolver, logger *slog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// Resolve delegates to the wrapped resolver and logs the operation.
func (r *LoggingResolver) Resolve(ctx context.Context, path string) (doc *cratedoc.Document, err error) {
	requestID := uuid.New().String()
	defer func(begin time.Time) {
		attrs := []any{
			"request_id", requestID,
			"path", path,
			"duration", time.Since(begin),
			"err", err,
		}
		if doc != nil {
			attrs = append(attrs, "kind", doc.Kind.String())
		}
		r.logger.Info("symbol resolution", attrs...)
	}(time.Now())
	return r.next.Resolve(ctx, path)
}
