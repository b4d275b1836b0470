package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"sepcam_backend/internals/features/church/admins/model"
)

var validate = validator.New()

type AdminCreateRequest struct {
	AdminMemberID uuid.UUID  `json:"admin_member_id" validate:"required"`
	AdminLevel    string     `json:"admin_level" validate:"required,oneof=SUPERADMIN MODERATOR Cell"`
	AdminCellID   *uuid.UUID `json:"admin_cell_id,omitempty"`

	// Optional. Left empty, the provisioner falls back to the legacy
	// first-name-derived default.
	Password string `json:"password" validate:"omitempty,min=8"`
}

func (r *AdminCreateRequest) Validate() error {
	return validate.Struct(r)
}

type AdminUpdateRequest struct {
	AdminLevel  string     `json:"admin_level" validate:"required,oneof=SUPERADMIN MODERATOR Cell"`
	AdminCellID *uuid.UUID `json:"admin_cell_id,omitempty"`
}

func (r *AdminUpdateRequest) Validate() error {
	return validate.Struct(r)
}

type AdminResponse struct {
	AdminID         uuid.UUID  `json:"admin_id"`
	AdminMemberID   uuid.UUID  `json:"admin_member_id"`
	AdminAssemblyID uuid.UUID  `json:"admin_assembly_id"`
	AdminCellID     *uuid.UUID `json:"admin_cell_id,omitempty"`
	AdminUserID     *uuid.UUID `json:"admin_user_id,omitempty"`
	AdminLevel      string     `json:"admin_level"`

	MemberFullName string `json:"member_full_name,omitempty"`
	CellName       string `json:"cell_name,omitempty"`
	UserName       string `json:"username,omitempty"`

	AdminCreatedAt time.Time `json:"admin_created_at"`
	AdminUpdatedAt time.Time `json:"admin_updated_at"`
}

func ToAdminResponse(a *model.AdminModel) AdminResponse {
	resp := AdminResponse{
		AdminID:         a.AdminID,
		AdminMemberID:   a.AdminMemberID,
		AdminAssemblyID: a.AdminAssemblyID,
		AdminCellID:     a.AdminCellID,
		AdminUserID:     a.AdminUserID,
		AdminLevel:      a.AdminLevel,
		AdminCreatedAt:  a.AdminCreatedAt,
		AdminUpdatedAt:  a.AdminUpdatedAt,
	}
	if a.Member.MemberID != uuid.Nil {
		resp.MemberFullName = a.Member.FullName()
	}
	if a.Cell != nil {
		resp.CellName = a.Cell.CellName
	}
	if a.User != nil {
		resp.UserName = a.User.UserName
	}
	return resp
}

func ToAdminResponses(list []model.AdminModel) []AdminResponse {
	out := make([]AdminResponse, 0, len(list))
	for i := range list {
		out = append(out, ToAdminResponse(&list[i]))
	}
	return out
}
