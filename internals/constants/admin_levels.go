package constants

import "fmt"

// Admin levels. "Cell" is mixed-case for historical reasons: the very first
// deployment stored it that way and the column was never migrated.
const (
	LevelSuperAdmin = "SUPERADMIN"
	LevelCell       = "Cell"
	LevelModerator  = "MODERATOR"
)

// Error message templates for level checks
const (
	ErrOnlySuperAdminsCanAccess = "❌ Only super administrators may access %s."
	ErrOnlyAdminsCanAccess      = "❌ Only administrators may access %s."
	ErrOutsideScope             = "This member is outside your administrative scope"
)

func LevelErrorSuperAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlySuperAdminsCanAccess, feature)
}

func LevelErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// ✅ Grouped Level Slices
// ==========================
var (
	AllAdminLevels = []string{
		LevelSuperAdmin,
		LevelCell,
		LevelModerator,
	}

	AssemblyWideLevels = []string{
		LevelSuperAdmin,
		LevelModerator,
	}

	SuperAdminOnly = []string{
		LevelSuperAdmin,
	}
)

func IsKnownLevel(level string) bool {
	for _, l := range AllAdminLevels {
		if l == level {
			return true
		}
	}
	return false
}
