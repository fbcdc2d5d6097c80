package domain

// PermissionModule groups actions that can be granted to a user per company.
type PermissionModule string

const ModuleAccounting PermissionModule = "accounting"

// PermissionAction is a single grantable action within a module.
type PermissionAction string

const (
	ActionCreate  PermissionAction = "create"
	ActionRead    PermissionAction = "read"
	ActionUpdate  PermissionAction = "update"
	ActionApprove PermissionAction = "approve"
)
