package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	adminModel "sepcam_backend/internals/features/church/admins/model"
	"sepcam_backend/internals/constants"
)

func adminWithLevel(level string) *adminModel.AdminModel {
	return &adminModel.AdminModel{AdminLevel: level}
}

func TestHasPermission(t *testing.T) {
	super := adminWithLevel(constants.LevelSuperAdmin)
	moderator := adminWithLevel(constants.LevelModerator)
	cell := adminWithLevel(constants.LevelCell)

	tests := []struct {
		perm          Permission
		superAdmin    bool
		moderatorWant bool
		cellWant      bool
	}{
		{PermissionManageMembers, true, true, true},
		{PermissionManageEvents, true, true, true},
		{PermissionManageFinances, true, true, false},
		{PermissionManageContent, true, true, false},
		{PermissionAccessAllCells, true, true, false},
		{PermissionManageUsers, true, false, false},
		{PermissionSystemConfig, true, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.perm), func(t *testing.T) {
			assert.Equal(t, tt.superAdmin, HasPermission(super, tt.perm))
			assert.Equal(t, tt.moderatorWant, HasPermission(moderator, tt.perm))
			assert.Equal(t, tt.cellWant, HasPermission(cell, tt.perm))
		})
	}
}

func TestHasPermissionFailClosed(t *testing.T) {
	super := adminWithLevel(constants.LevelSuperAdmin)

	// Unknown permission names grant nothing, whatever the level.
	assert.False(t, HasPermission(super, Permission("is_inventory_admin")))
	assert.False(t, HasPermission(super, Permission("")))
	assert.False(t, HasPermission(adminWithLevel(constants.LevelCell), Permission("does_not_exist")))

	// Unknown levels grant nothing either.
	assert.False(t, HasPermission(adminWithLevel("OWNER"), PermissionManageMembers))

	// Nil admin grants nothing.
	assert.False(t, HasPermission(nil, PermissionManageMembers))
}
