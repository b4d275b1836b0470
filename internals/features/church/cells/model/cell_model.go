package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	Assembly "sepcam_backend/internals/features/church/assemblies/model"
)

// CellModel is a small-group subdivision used for localized pastoral
// oversight. Cells are assembly-scoped.
type CellModel struct {
	// PK
	CellID uuid.UUID `gorm:"column:cell_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"cell_id"`

	// FK
	CellAssemblyID uuid.UUID `gorm:"column:cell_assembly_id;type:uuid;not null;index" json:"cell_assembly_id"`

	Assembly Assembly.AssemblyModel `gorm:"foreignKey:CellAssemblyID;references:AssemblyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"assembly,omitempty"`

	CellName        string    `gorm:"column:cell_name;size:200;not null;index" json:"cell_name"`
	CellCreatedDate time.Time `gorm:"column:cell_created_date;type:date;not null" json:"cell_created_date"`

	CellCreatedAt time.Time      `gorm:"column:cell_created_at;autoCreateTime" json:"cell_created_at"`
	CellUpdatedAt time.Time      `gorm:"column:cell_updated_at;autoUpdateTime" json:"cell_updated_at"`
	CellDeletedAt gorm.DeletedAt `gorm:"column:cell_deleted_at;index" json:"cell_deleted_at,omitempty"`
}

func (CellModel) TableName() string {
	return "cells"
}
