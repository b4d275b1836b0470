// internals/features/church/admins/service/permissions.go
package service

import (
	adminModel "sepcam_backend/internals/features/church/admins/model"
)

// Permission is a closed enumeration. Anything outside the constants below
// (including the legacy "is_inventory_admin" flag some old pages referenced)
// evaluates to false — fail closed, never a silent grant.
type Permission string

const (
	PermissionManageMembers  Permission = "manage_members"
	PermissionManageFinances Permission = "manage_finances"
	PermissionManageEvents   Permission = "manage_events"
	PermissionManageContent  Permission = "manage_content"
	PermissionAccessAllCells Permission = "access_all_cells"
	PermissionManageUsers    Permission = "manage_users"
	PermissionSystemConfig   Permission = "system_config"
)

// HasPermission maps a permission to a pure predicate over the admin level.
func HasPermission(admin *adminModel.AdminModel, perm Permission) bool {
	if admin == nil {
		return false
	}

	superAdmin := admin.IsSuperAdmin()
	moderator := admin.IsModerator()
	cellAdmin := admin.IsCellAdmin()

	switch perm {
	case PermissionManageMembers:
		return superAdmin || moderator || cellAdmin
	case PermissionManageFinances:
		return superAdmin || moderator
	case PermissionManageEvents:
		return superAdmin || moderator || cellAdmin
	case PermissionManageContent:
		return superAdmin || moderator
	case PermissionAccessAllCells:
		return superAdmin || moderator
	case PermissionManageUsers:
		return superAdmin
	case PermissionSystemConfig:
		return superAdmin
	default:
		return false
	}
}
