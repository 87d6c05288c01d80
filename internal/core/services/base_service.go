package services

import (
	"context"
	"log/slog"

	"github.com/Sachin796/Worktopia/internal/apperrors"
	"github.com/Sachin796/Worktopia/internal/core/domain"
	"github.com/Sachin796/Worktopia/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

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

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeWorkspaceOwner checks that userID owns the location the workspace sits at.
func (s *BaseService) AuthorizeWorkspaceOwner(ctx context.Context, ws *domain.Workspace, userID int64) error {
	ownerID, ok := ws.OwnerID()
	if !ok || ownerID != userID {
		s.LogWarn(ctx, "User is not the owner of the workspace",
			slog.Int64("user_id", userID),
			slog.Int64("workspace_id", ws.WorkspaceID))
		return apperrors.NewForbiddenError("only the workspace owner can modify it")
	}
	return nil
}
