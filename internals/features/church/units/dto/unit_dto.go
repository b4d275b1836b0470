package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"sepcam_backend/internals/features/church/units/model"
)

var validate = validator.New()

type UnitRequest struct {
	UnitName        string     `json:"unit_name" validate:"required,max=200"`
	UnitDescription string     `json:"unit_description"`
	UnitLeaderID    *uuid.UUID `json:"unit_leader_id,omitempty"`
}

func (r *UnitRequest) Validate() error {
	return validate.Struct(r)
}

func (r *UnitRequest) ToModelCreate() *model.UnitModel {
	return &model.UnitModel{
		UnitName:        r.UnitName,
		UnitDescription: r.UnitDescription,
		UnitLeaderID:    r.UnitLeaderID,
	}
}

type UnitResponse struct {
	UnitID          uuid.UUID  `json:"unit_id"`
	UnitName        string     `json:"unit_name"`
	UnitDescription string     `json:"unit_description,omitempty"`
	UnitLeaderID    *uuid.UUID `json:"unit_leader_id,omitempty"`
	UnitLeaderName  string     `json:"unit_leader_name,omitempty"`
	UnitMemberCount int64      `json:"unit_member_count"`
	UnitCreatedAt   time.Time  `json:"unit_created_at"`
	UnitUpdatedAt   time.Time  `json:"unit_updated_at"`
}

func ToUnitResponse(m *model.UnitModel, leaderName string, memberCount int64) UnitResponse {
	return UnitResponse{
		UnitID:          m.UnitID,
		UnitName:        m.UnitName,
		UnitDescription: m.UnitDescription,
		UnitLeaderID:    m.UnitLeaderID,
		UnitLeaderName:  leaderName,
		UnitMemberCount: memberCount,
		UnitCreatedAt:   m.UnitCreatedAt,
		UnitUpdatedAt:   m.UnitUpdatedAt,
	}
}
