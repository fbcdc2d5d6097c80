package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/adops_erp/internal/apperrors"
	"github.com/SscSPs/adops_erp/internal/core/domain"
	portsrepo "github.com/SscSPs/adops_erp/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/adops_erp/internal/core/ports/services"
	"github.com/SscSPs/adops_erp/internal/middleware"
)

// permissionService answers the per-company permission gate from stored grants.
type permissionService struct {
	permissionRepo portsrepo.PermissionReader
	retry          RetryPolicy
}

// PermissionServiceOption configures a permissionService.
type PermissionServiceOption func(*permissionService)

// WithPermissionRetryPolicy overrides the retry policy for transient storage errors.
func WithPermissionRetryPolicy(policy RetryPolicy) PermissionServiceOption {
	return func(s *permissionService) {
		s.retry = policy
	}
}

// NewPermissionService creates a new PermissionAuthorizerSvc.
func NewPermissionService(permissionRepo portsrepo.PermissionReader, options ...PermissionServiceOption) portssvc.PermissionAuthorizerSvc {
	s := &permissionService{permissionRepo: permissionRepo, retry: DefaultRetryPolicy()}
	for _, opt := range options {
		opt(s)
	}
	return s
}

var _ portssvc.PermissionAuthorizerSvc = (*permissionService)(nil)

// RequirePermission returns nil if the user was granted module:action on the company.
// Returns apperrors.ErrUnauthorized when no user is given and apperrors.ErrForbidden when the grant is missing.
func (s *permissionService) RequirePermission(ctx context.Context, companyID int64, userID string, module domain.PermissionModule, action domain.PermissionAction) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if userID == "" {
		return apperrors.ErrUnauthorized
	}

	var allowed bool
	err := retryStorage(ctx, s.retry, "check permission", func() error {
		var err error
		allowed, err = s.permissionRepo.HasPermission(ctx, companyID, userID, module, action)
		return err
	})
	if err != nil {
		logger.Error("Failed to check permission in repository", slog.String("error", err.Error()), slog.String("user_id", userID))
		return fmt.Errorf("failed to check authorization: %w", err)
	}
	if !allowed {
		return fmt.Errorf("%w: user %s lacks %s:%s on company %d", apperrors.ErrForbidden, userID, module, action, companyID)
	}
	return nil
}
