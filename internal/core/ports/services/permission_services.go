package services

import (
	"context"

	"github.com/SscSPs/adops_erp/internal/core/domain"
)

// PermissionAuthorizerSvc is the pass/fail gate called before every operation.
type PermissionAuthorizerSvc interface {
	// RequirePermission returns nil when allowed and apperrors.ErrForbidden otherwise.
	RequirePermission(ctx context.Context, companyID int64, userID string, module domain.PermissionModule, action domain.PermissionAction) error
}
