package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	Admin "sepcam_backend/internals/features/church/admins/model"
	Assembly "sepcam_backend/internals/features/church/assemblies/model"
)

// Status
const (
	InventoryAvailable   = "AVAILABLE"
	InventoryInUse       = "IN_USE"
	InventoryMaintenance = "MAINTENANCE"
	InventoryRetired     = "RETIRED"
)

// Condition
const (
	ConditionNew     = "NEW"
	ConditionGood    = "GOOD"
	ConditionFair    = "FAIR"
	ConditionPoor    = "POOR"
	ConditionDamaged = "DAMAGED"
)

var (
	InventoryStatuses   = []string{InventoryAvailable, InventoryInUse, InventoryMaintenance, InventoryRetired}
	InventoryConditions = []string{ConditionNew, ConditionGood, ConditionFair, ConditionPoor, ConditionDamaged}
)

// InventoryModel is an assembly-owned physical asset.
type InventoryModel struct {
	// PK
	InventoryID uuid.UUID `gorm:"column:inventory_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"inventory_id"`

	// FK
	InventoryAssemblyID uuid.UUID  `gorm:"column:inventory_assembly_id;type:uuid;not null;index" json:"inventory_assembly_id"`
	InventoryAddedByID  *uuid.UUID `gorm:"column:inventory_added_by_id;type:uuid;index" json:"inventory_added_by_id,omitempty"`

	Assembly Assembly.AssemblyModel `gorm:"foreignKey:InventoryAssemblyID;references:AssemblyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"assembly,omitempty"`
	AddedBy  *Admin.AdminModel      `gorm:"foreignKey:InventoryAddedByID;references:AdminID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"added_by,omitempty"`

	InventoryName         string `gorm:"column:inventory_name;size:200;not null;index" json:"inventory_name"`
	InventoryDescription  string `gorm:"column:inventory_description;type:text" json:"inventory_description"`
	InventoryBrand        string `gorm:"column:inventory_brand;size:100" json:"inventory_brand"`
	InventoryModel        string `gorm:"column:inventory_model;size:100" json:"inventory_model"`
	InventoryLocation     string `gorm:"column:inventory_location;size:200" json:"inventory_location"`
	InventoryAcquiredFrom string `gorm:"column:inventory_acquired_from;size:200" json:"inventory_acquired_from"`

	InventoryQuantity  int     `gorm:"column:inventory_quantity;not null;default:1" json:"inventory_quantity"`
	InventoryUnitPrice float64 `gorm:"column:inventory_unit_price;type:numeric(10,2);not null;default:0" json:"inventory_unit_price"`
	// derived: quantity * unit price, recomputed on every save
	InventoryTotalPrice float64 `gorm:"column:inventory_total_price;type:numeric(12,2);not null;default:0" json:"inventory_total_price"`

	InventoryStatus    string `gorm:"column:inventory_status;size:20;not null;default:'AVAILABLE';index" json:"inventory_status"`
	InventoryCondition string `gorm:"column:inventory_condition;size:20;not null;default:'GOOD';index" json:"inventory_condition"`

	InventoryCreatedAt time.Time      `gorm:"column:inventory_created_at;autoCreateTime" json:"inventory_created_at"`
	InventoryUpdatedAt time.Time      `gorm:"column:inventory_updated_at;autoUpdateTime" json:"inventory_updated_at"`
	InventoryDeletedAt gorm.DeletedAt `gorm:"column:inventory_deleted_at;index" json:"inventory_deleted_at,omitempty"`
}

func (InventoryModel) TableName() string {
	return "inventories"
}

// BeforeSave keeps the derived total in sync.
func (m *InventoryModel) BeforeSave(tx *gorm.DB) error {
	m.InventoryTotalPrice = float64(m.InventoryQuantity) * m.InventoryUnitPrice
	return nil
}
