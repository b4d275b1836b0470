package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	Assembly "sepcam_backend/internals/features/church/assemblies/model"
)

// FamilyModel groups members sharing a household; owned by one assembly.
type FamilyModel struct {
	// PK
	FamilyID uuid.UUID `gorm:"column:family_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"family_id"`

	// FK
	FamilyAssemblyID uuid.UUID `gorm:"column:family_assembly_id;type:uuid;not null;index" json:"family_assembly_id"`

	Assembly Assembly.AssemblyModel `gorm:"foreignKey:FamilyAssemblyID;references:AssemblyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"assembly,omitempty"`

	FamilyName    string `gorm:"column:family_name;size:200;not null;index" json:"family_name"`
	FamilyAddress string `gorm:"column:family_address;type:text" json:"family_address"`
	FamilyPhone   string `gorm:"column:family_phone;size:20" json:"family_phone"`
	FamilyEmail   string `gorm:"column:family_email;size:255" json:"family_email"`
	FamilyNotes   string `gorm:"column:family_notes;type:text" json:"family_notes"`

	FamilyCreatedAt time.Time      `gorm:"column:family_created_at;autoCreateTime" json:"family_created_at"`
	FamilyUpdatedAt time.Time      `gorm:"column:family_updated_at;autoUpdateTime" json:"family_updated_at"`
	FamilyDeletedAt gorm.DeletedAt `gorm:"column:family_deleted_at;index" json:"family_deleted_at,omitempty"`
}

func (FamilyModel) TableName() string {
	return "families"
}
