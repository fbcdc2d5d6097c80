package pgsql

import (
	portsrepo "github.com/SscSPs/adops_erp/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:    newPgxAccountRepository(dbPool),
		AuxiliaryRepo:  newPgxAuxiliaryRepository(dbPool),
		PermissionRepo: newPgxPermissionRepository(dbPool),
		VoucherRepo:    newPgxVoucherRepository(dbPool),
	}
}
