package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/stgabriel-shg/shg_backend/internal/apperrors"
	"github.com/stgabriel-shg/shg_backend/internal/core/domain"
	"github.com/stgabriel-shg/shg_backend/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		// Return a default logger if not found in context
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// Authorize checks the permission table for the actor's office before a gated
// operation runs. The table is static; a denial is always ErrForbidden.
func (s *BaseService) Authorize(ctx context.Context, actor domain.Reviewer, action domain.Action) error {
	if actor.Role.Can(action) {
		return nil
	}
	s.LogDebug(ctx, "Permission denied",
		slog.String("user_id", actor.UserID),
		slog.String("role", string(actor.Role)),
		slog.String("action", string(action)))
	return fmt.Errorf("%w: %s may not %s", apperrors.ErrForbidden, actor.Role, action)
}
