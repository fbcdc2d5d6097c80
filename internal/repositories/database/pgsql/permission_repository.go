package pgsql

import (
	"context"

	"github.com/SscSPs/adops_erp/internal/core/domain"
	portsrepo "github.com/SscSPs/adops_erp/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPermissionRepository struct {
	BaseRepository
}

// newPgxPermissionRepository creates a new repository for user permission grants.
func newPgxPermissionRepository(pool *pgxpool.Pool) portsrepo.PermissionRepositoryFacade {
	return &PgxPermissionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PermissionRepositoryFacade = (*PgxPermissionRepository)(nil)

// HasPermission reports whether a grant row exists for the user.
func (r *PgxPermissionRepository) HasPermission(ctx context.Context, companyID int64, userID string, module domain.PermissionModule, action domain.PermissionAction) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM user_permissions
			WHERE company_id = $1 AND user_id = $2 AND module = $3 AND action = $4
		);
	`
	var allowed bool
	if err := r.Pool.QueryRow(ctx, query, companyID, userID, string(module), string(action)).Scan(&allowed); err != nil {
		return false, translateError("check permission", err)
	}
	return allowed, nil
}
