package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/business_management_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	clock    func() time.Time
	location *time.Location
}

// ServiceOption is a functional option shared by every service constructor
type ServiceOption func(*BaseService)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.clock = now
	}
}

// WithLocation sets the location calendar months are computed in.
func WithLocation(loc *time.Location) ServiceOption {
	return func(s *BaseService) {
		s.location = loc
	}
}

func newBaseService(options ...ServiceOption) BaseService {
	b := BaseService{clock: time.Now, location: time.UTC}
	for _, option := range options {
		option(&b)
	}
	if b.clock == nil {
		b.clock = time.Now
	}
	if b.location == nil {
		b.location = time.UTC
	}
	return b
}

// Now returns the current time in the service location.
func (s *BaseService) Now() time.Time {
	return s.clock().In(s.location)
}

// Location returns the location calendar months are computed in.
func (s *BaseService) Location() *time.Location {
	return s.location
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}
