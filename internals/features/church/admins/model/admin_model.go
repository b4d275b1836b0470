package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	Assembly "sepcam_backend/internals/features/church/assemblies/model"
	Cell "sepcam_backend/internals/features/church/cells/model"
	Member "sepcam_backend/internals/features/church/members/model"
	User "sepcam_backend/internals/features/users/auth/model"
	"sepcam_backend/internals/constants"
)

// AdminModel is an authorization profile bound one-to-one to a member and
// scoped to one assembly. A level of "Cell" must carry a cell; the other
// levels must not. The linked user row is the login credential provisioned
// by the admin service.
type AdminModel struct {
	// PK
	AdminID uuid.UUID `gorm:"column:admin_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"admin_id"`

	// FK
	AdminMemberID   uuid.UUID  `gorm:"column:admin_member_id;type:uuid;not null;uniqueIndex" json:"admin_member_id"`
	AdminAssemblyID uuid.UUID  `gorm:"column:admin_assembly_id;type:uuid;not null;index" json:"admin_assembly_id"`
	AdminCellID     *uuid.UUID `gorm:"column:admin_cell_id;type:uuid;index" json:"admin_cell_id,omitempty"`
	AdminUserID     *uuid.UUID `gorm:"column:admin_user_id;type:uuid;uniqueIndex" json:"admin_user_id,omitempty"`

	Member   Member.MemberModel     `gorm:"foreignKey:AdminMemberID;references:MemberID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"member,omitempty"`
	Assembly Assembly.AssemblyModel `gorm:"foreignKey:AdminAssemblyID;references:AssemblyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"assembly,omitempty"`
	Cell     *Cell.CellModel        `gorm:"foreignKey:AdminCellID;references:CellID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"cell,omitempty"`
	User     *User.UserModel        `gorm:"foreignKey:AdminUserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"user,omitempty"`

	AdminLevel string `gorm:"column:admin_level;size:100;not null;default:'Cell';index" json:"admin_level"`

	// Timestamps
	AdminCreatedAt time.Time      `gorm:"column:admin_created_at;autoCreateTime" json:"admin_created_at"`
	AdminUpdatedAt time.Time      `gorm:"column:admin_updated_at;autoUpdateTime" json:"admin_updated_at"`
	AdminDeletedAt gorm.DeletedAt `gorm:"column:admin_deleted_at;index" json:"admin_deleted_at,omitempty"`
}

func (AdminModel) TableName() string {
	return "admins"
}

func (a *AdminModel) IsSuperAdmin() bool { return a.AdminLevel == constants.LevelSuperAdmin }
func (a *AdminModel) IsCellAdmin() bool  { return a.AdminLevel == constants.LevelCell }
func (a *AdminModel) IsModerator() bool  { return a.AdminLevel == constants.LevelModerator }
