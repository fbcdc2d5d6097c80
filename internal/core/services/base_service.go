package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/adops_erp/internal/core/domain"
	portssvc "github.com/SscSPs/adops_erp/internal/core/ports/services"
	"github.com/SscSPs/adops_erp/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Authorizer portssvc.PermissionAuthorizerSvc
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// Authorize checks the accounting permission gate for action.
func (s *BaseService) Authorize(ctx context.Context, companyID int64, userID string, action domain.PermissionAction) error {
	if s.Authorizer == nil {
		s.LogDebug(ctx, "No permission authorizer provided, access granted by default",
			slog.String("user_id", userID),
			slog.Int64("company_id", companyID),
			slog.String("action", string(action)))
		return nil
	}
	if err := s.Authorizer.RequirePermission(ctx, companyID, userID, domain.ModuleAccounting, action); err != nil {
		s.GetLogger(ctx).Warn("Authorization failed",
			slog.String("user_id", userID),
			slog.Int64("company_id", companyID),
			slog.String("action", string(action)),
			slog.String("error", err.Error()))
		return err
	}
	return nil
}

