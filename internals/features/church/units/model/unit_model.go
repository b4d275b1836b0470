package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UnitModel is a ministry/department (Praise Team, Media, Ushering, ...).
// Units are global across assemblies; the same Praise Team roster spans
// every assembly. The leader FK goes soft on member deletion, never the
// other way.
type UnitModel struct {
	// PK
	UnitID uuid.UUID `gorm:"column:unit_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"unit_id"`

	UnitName        string `gorm:"column:unit_name;size:200;not null;uniqueIndex" json:"unit_name"`
	UnitDescription string `gorm:"column:unit_description;type:text" json:"unit_description"`

	// Optional leader; goes NULL when the member is deleted. The FK lives in
	// SQL (ON DELETE SET NULL) — a struct tag here would cycle the imports —
	// and member deletion clears it explicitly as well.
	UnitLeaderID *uuid.UUID `gorm:"column:unit_leader_id;type:uuid;index" json:"unit_leader_id,omitempty"`

	UnitCreatedAt time.Time      `gorm:"column:unit_created_at;autoCreateTime" json:"unit_created_at"`
	UnitUpdatedAt time.Time      `gorm:"column:unit_updated_at;autoUpdateTime" json:"unit_updated_at"`
	UnitDeletedAt gorm.DeletedAt `gorm:"column:unit_deleted_at;index" json:"unit_deleted_at,omitempty"`
}

func (UnitModel) TableName() string {
	return "units"
}
