package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/monetary_correction_app/internal/middleware"
)

// BaseService gives services access to the request-scoped logger.
type BaseService struct{}

// GetLogger returns the logger attached to ctx by the HTTP middleware, or the default logger.
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs msg at error level with err attached.
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	s.logWithError(ctx, slog.LevelError, err, msg, keyvals)
}

// LogWarn logs msg at warn level with err attached. Used for failures the service recovers from.
func (s *BaseService) LogWarn(ctx context.Context, err error, msg string, keyvals ...any) {
	s.logWithError(ctx, slog.LevelWarn, err, msg, keyvals)
}

func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).InfoContext(ctx, msg, keyvals...)
}

func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).DebugContext(ctx, msg, keyvals...)
}

func (s *BaseService) logWithError(ctx context.Context, level slog.Level, err error, msg string, keyvals []any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Log(ctx, level, msg, args...)
}
