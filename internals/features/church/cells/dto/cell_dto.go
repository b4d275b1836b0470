package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"sepcam_backend/internals/features/church/cells/model"
)

var validate = validator.New()

type CellRequest struct {
	CellName        string     `json:"cell_name" validate:"required,max=200"`
	CellCreatedDate *time.Time `json:"cell_created_date,omitempty"`
}

func (r *CellRequest) Validate() error {
	return validate.Struct(r)
}

func (r *CellRequest) ToModelCreate(assemblyID uuid.UUID) *model.CellModel {
	created := time.Now()
	if r.CellCreatedDate != nil {
		created = *r.CellCreatedDate
	}
	return &model.CellModel{
		CellAssemblyID:  assemblyID,
		CellName:        r.CellName,
		CellCreatedDate: created,
	}
}

type CellResponse struct {
	CellID          uuid.UUID `json:"cell_id"`
	CellAssemblyID  uuid.UUID `json:"cell_assembly_id"`
	CellName        string    `json:"cell_name"`
	CellCreatedDate time.Time `json:"cell_created_date"`
	CellMemberCount int64     `json:"cell_member_count"`
	CellCreatedAt   time.Time `json:"cell_created_at"`
	CellUpdatedAt   time.Time `json:"cell_updated_at"`
}

func ToCellResponse(m *model.CellModel, memberCount int64) CellResponse {
	return CellResponse{
		CellID:          m.CellID,
		CellAssemblyID:  m.CellAssemblyID,
		CellName:        m.CellName,
		CellCreatedDate: m.CellCreatedDate,
		CellMemberCount: memberCount,
		CellCreatedAt:   m.CellCreatedAt,
		CellUpdatedAt:   m.CellUpdatedAt,
	}
}
