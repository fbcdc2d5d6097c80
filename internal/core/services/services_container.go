package services

import (
	portsrepo "github.com/SscSPs/adops_erp/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/adops_erp/internal/core/ports/services"
	"github.com/SscSPs/adops_erp/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	retry := RetryPolicy{MaxAttempts: cfg.StorageMaxRetries, BaseInterval: cfg.StorageRetryBase}

	// The permission gate comes first since every other service depends on it
	container.Permission = NewPermissionService(repos.PermissionRepo, WithPermissionRetryPolicy(retry))

	container.Voucher = NewVoucherService(
		repos.VoucherRepo,
		repos.AccountRepo,
		repos.AuxiliaryRepo,
		WithVoucherAuthorizer(container.Permission),
		WithRetryPolicy(retry),
	)

	container.Auxiliary = NewAuxiliaryService(
		repos.AccountRepo,
		repos.AuxiliaryRepo,
		WithAuxiliaryAuthorizer(container.Permission),
		WithAuxiliaryRetryPolicy(retry),
	)

	return container
}
