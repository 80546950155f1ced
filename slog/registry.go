package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/rdocs/cratedoc"
)

// Ensure LoggingRegistryService implements cratedoc.RegistryService.
var _ cratedoc.RegistryService = (*LoggingRegistryService)(nil)

// LoggingRegistryService wraps a RegistryService with logging.
type LoggingRegistryService struct {
	next   cratedoc.RegistryService
	logger *slog.Logger
}

// NewLoggingRegistryService creates a new LoggingRegistryService.
func NewLoggingRegistryService(next cratedoc.RegistryService, logger *slog.Logger) *LoggingRegistryService {
	return &LoggingRegistryService{next: next, logger: logger}
}

// CrateInfo delegates to the wrapped service and logs the operation.
func (s *LoggingRegistryService) CrateInfo(ctx context.Context, name string) (info *cratedoc.CrateInfo, err error) {
	defer func(begin time.Time) {
		s.logger.Info("crate info",
			"crate", name,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CrateInfo(ctx, name)
}
