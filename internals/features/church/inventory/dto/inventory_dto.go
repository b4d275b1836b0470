package dto

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"sepcam_backend/internals/features/church/inventory/model"
)

var validate = validator.New()

type InventoryRequest struct {
	InventoryName         string `json:"inventory_name" validate:"required,max=200"`
	InventoryDescription  string `json:"inventory_description"`
	InventoryBrand        string `json:"inventory_brand" validate:"max=100"`
	InventoryModel        string `json:"inventory_model" validate:"max=100"`
	InventoryLocation     string `json:"inventory_location" validate:"max=200"`
	InventoryAcquiredFrom string `json:"inventory_acquired_from" validate:"max=200"`

	InventoryQuantity  int     `json:"inventory_quantity" validate:"required,gte=1"`
	InventoryUnitPrice float64 `json:"inventory_unit_price" validate:"gte=0"`

	InventoryStatus    string `json:"inventory_status" validate:"omitempty,oneof=AVAILABLE IN_USE MAINTENANCE RETIRED"`
	InventoryCondition string `json:"inventory_condition" validate:"omitempty,oneof=NEW GOOD FAIR POOR DAMAGED"`
}

func (r *InventoryRequest) Validate() error {
	return validate.Struct(r)
}

func (r *InventoryRequest) ToModelCreate(assemblyID uuid.UUID, addedByID *uuid.UUID) *model.InventoryModel {
	status := r.InventoryStatus
	if status == "" {
		status = model.InventoryAvailable
	}
	condition := r.InventoryCondition
	if condition == "" {
		condition = model.ConditionGood
	}
	return &model.InventoryModel{
		InventoryAssemblyID:   assemblyID,
		InventoryAddedByID:    addedByID,
		InventoryName:         r.InventoryName,
		InventoryDescription:  r.InventoryDescription,
		InventoryBrand:        r.InventoryBrand,
		InventoryModel:        r.InventoryModel,
		InventoryLocation:     r.InventoryLocation,
		InventoryAcquiredFrom: r.InventoryAcquiredFrom,
		InventoryQuantity:     r.InventoryQuantity,
		InventoryUnitPrice:    r.InventoryUnitPrice,
		InventoryStatus:       status,
		InventoryCondition:    condition,
	}
}

func (r *InventoryRequest) ApplyToModel(m *model.InventoryModel) {
	m.InventoryName = r.InventoryName
	m.InventoryDescription = r.InventoryDescription
	m.InventoryBrand = r.InventoryBrand
	m.InventoryModel = r.InventoryModel
	m.InventoryLocation = r.InventoryLocation
	m.InventoryAcquiredFrom = r.InventoryAcquiredFrom
	m.InventoryQuantity = r.InventoryQuantity
	m.InventoryUnitPrice = r.InventoryUnitPrice
	if r.InventoryStatus != "" {
		m.InventoryStatus = r.InventoryStatus
	}
	if r.InventoryCondition != "" {
		m.InventoryCondition = r.InventoryCondition
	}
}
