// internals/features/church/admins/service/access_service.go
package service

import (
	"gorm.io/gorm"

	adminModel "sepcam_backend/internals/features/church/admins/model"
	memberModel "sepcam_backend/internals/features/church/members/model"
	"sepcam_backend/internals/constants"
)

// memberScope is the one place the level dispatch lives. Both the query
// builder and the pointwise check go through it, so the two can never
// drift apart: a member is in scope iff the predicate says so.
type memberScope struct {
	assemblyOnly bool // match on assembly alone
	cellScoped   bool // match on assembly AND cell
}

// resolveScope returns (scope, ok). ok=false means fail closed: the admin
// sees nothing. A Cell-level admin without a cell is not an error — the
// scope is simply empty (no silent elevation).
func resolveScope(admin *adminModel.AdminModel) (memberScope, bool) {
	if admin == nil {
		return memberScope{}, false
	}
	switch admin.AdminLevel {
	case constants.LevelSuperAdmin, constants.LevelModerator:
		// Moderators see the whole assembly today; the distinct level exists
		// only so permissions can narrow later.
		return memberScope{assemblyOnly: true}, true
	case constants.LevelCell:
		if admin.AdminCellID == nil {
			return memberScope{}, false
		}
		return memberScope{cellScoped: true}, true
	default:
		return memberScope{}, false
	}
}

// GetManagedMembers returns a query over the members this admin may view
// or manage. Callers layer their own filters (search, status, dates) on top.
func GetManagedMembers(db *gorm.DB, admin *adminModel.AdminModel) *gorm.DB {
	q := db.Model(&memberModel.MemberModel{})

	scope, ok := resolveScope(admin)
	if !ok {
		// fail closed: a query that matches nothing
		return q.Where("1 = 0")
	}
	if scope.cellScoped {
		return q.Where("member_assembly_id = ? AND member_cell_id = ?", admin.AdminAssemblyID, *admin.AdminCellID)
	}
	return q.Where("member_assembly_id = ?", admin.AdminAssemblyID)
}

// CanAccessMember is the pointwise equivalent of GetManagedMembers: true
// iff the member would be in the managed set. No query is executed.
func CanAccessMember(admin *adminModel.AdminModel, member *memberModel.MemberModel) bool {
	if member == nil {
		return false
	}
	scope, ok := resolveScope(admin)
	if !ok {
		return false
	}
	if member.MemberAssemblyID != admin.AdminAssemblyID {
		return false
	}
	if scope.cellScoped {
		return member.MemberCellID != nil && *member.MemberCellID == *admin.AdminCellID
	}
	return scope.assemblyOnly
}
