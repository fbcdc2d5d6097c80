package repositories

import (
	"context"

	"github.com/SscSPs/adops_erp/internal/core/domain"
)

// PermissionReader answers whether a user was granted an action on a module of a company.
type PermissionReader interface {
	HasPermission(ctx context.Context, companyID int64, userID string, module domain.PermissionModule, action domain.PermissionAction) (bool, error)
}

// PermissionRepositoryFacade combines all permission-related repository interfaces.
type PermissionRepositoryFacade interface {
	PermissionReader
}
