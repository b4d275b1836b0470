package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"sepcam_backend/internals/features/church/members/model"
)

var validate = validator.New()

// =========================
// Request (Create / Update)
// =========================

type MemberRequest struct {
	MemberAssemblyID uuid.UUID  `json:"member_assembly_id"` // may be overridden from the admin scope
	MemberUnitID     *uuid.UUID `json:"member_unit_id,omitempty"`
	MemberCellID     *uuid.UUID `json:"member_cell_id,omitempty"`
	MemberFamilyID   *uuid.UUID `json:"member_family_id,omitempty"`

	MemberFirstName  string `json:"member_first_name" validate:"required,max=100"`
	MemberLastName   string `json:"member_last_name" validate:"required,max=100"`
	MemberMiddleName string `json:"member_middle_name" validate:"max=100"`

	MemberDateOfBirth   *time.Time `json:"member_date_of_birth,omitempty"`
	MemberGender        string     `json:"member_gender" validate:"required,oneof=M F O"`
	MemberMaritalStatus string     `json:"member_marital_status" validate:"omitempty,oneof=SINGLE MARRIED DIVORCED WIDOWED SEPARATED"`

	MemberEmail                 string `json:"member_email" validate:"omitempty,email"`
	MemberPhone                 string `json:"member_phone" validate:"max=20"`
	MemberAddress               string `json:"member_address"`
	MemberEmergencyContactName  string `json:"member_emergency_contact_name" validate:"max=200"`
	MemberEmergencyContactPhone string `json:"member_emergency_contact_phone" validate:"max=20"`

	MemberMembershipStatus string     `json:"member_membership_status" validate:"omitempty,oneof=ACTIVE INACTIVE VISITOR NEW_MEMBER TRANSFERRED"`
	MemberMembershipDate   *time.Time `json:"member_membership_date,omitempty"`
	MemberBaptismDate      *time.Time `json:"member_baptism_date,omitempty"`
	MemberConfirmationDate *time.Time `json:"member_confirmation_date,omitempty"`

	MemberPhotoURL string `json:"member_photo_url" validate:"omitempty,url"`
}

func (r *MemberRequest) Validate() error {
	return validate.Struct(r)
}

// DTO -> Model (CREATE)
func (r *MemberRequest) ToModelCreate() *model.MemberModel {
	if r == nil {
		return nil
	}
	status := r.MemberMembershipStatus
	if status == "" {
		status = model.StatusActive
	}
	return &model.MemberModel{
		MemberAssemblyID: r.MemberAssemblyID,
		MemberUnitID:     r.MemberUnitID,
		MemberCellID:     r.MemberCellID,
		MemberFamilyID:   r.MemberFamilyID,

		MemberFirstName:  r.MemberFirstName,
		MemberLastName:   r.MemberLastName,
		MemberMiddleName: r.MemberMiddleName,

		MemberDateOfBirth:   r.MemberDateOfBirth,
		MemberGender:        r.MemberGender,
		MemberMaritalStatus: r.MemberMaritalStatus,

		MemberEmail:                 r.MemberEmail,
		MemberPhone:                 r.MemberPhone,
		MemberAddress:               r.MemberAddress,
		MemberEmergencyContactName:  r.MemberEmergencyContactName,
		MemberEmergencyContactPhone: r.MemberEmergencyContactPhone,

		MemberMembershipStatus: status,
		MemberMembershipDate:   r.MemberMembershipDate,
		MemberBaptismDate:      r.MemberBaptismDate,
		MemberConfirmationDate: r.MemberConfirmationDate,

		MemberPhotoURL: r.MemberPhotoURL,
	}
}

// ApplyToModel overwrites an existing row with the request (UPDATE).
func (r *MemberRequest) ApplyToModel(m *model.MemberModel) {
	m.MemberUnitID = r.MemberUnitID
	m.MemberCellID = r.MemberCellID
	m.MemberFamilyID = r.MemberFamilyID

	m.MemberFirstName = r.MemberFirstName
	m.MemberLastName = r.MemberLastName
	m.MemberMiddleName = r.MemberMiddleName

	m.MemberDateOfBirth = r.MemberDateOfBirth
	m.MemberGender = r.MemberGender
	m.MemberMaritalStatus = r.MemberMaritalStatus

	m.MemberEmail = r.MemberEmail
	m.MemberPhone = r.MemberPhone
	m.MemberAddress = r.MemberAddress
	m.MemberEmergencyContactName = r.MemberEmergencyContactName
	m.MemberEmergencyContactPhone = r.MemberEmergencyContactPhone

	if r.MemberMembershipStatus != "" {
		m.MemberMembershipStatus = r.MemberMembershipStatus
	}
	m.MemberMembershipDate = r.MemberMembershipDate
	m.MemberBaptismDate = r.MemberBaptismDate
	m.MemberConfirmationDate = r.MemberConfirmationDate

	m.MemberPhotoURL = r.MemberPhotoURL
}

// =========================
// Public self-registration
// =========================

type PublicRegistrationRequest struct {
	MemberAssemblyID uuid.UUID `json:"member_assembly_id" validate:"required"`

	MemberFirstName string `json:"member_first_name" validate:"required,max=100"`
	MemberLastName  string `json:"member_last_name" validate:"required,max=100"`
	MemberGender    string `json:"member_gender" validate:"required,oneof=M F O"`

	MemberEmail   string `json:"member_email" validate:"omitempty,email"`
	MemberPhone   string `json:"member_phone" validate:"max=20"`
	MemberAddress string `json:"member_address"`

	MemberDateOfBirth *time.Time `json:"member_date_of_birth,omitempty"`
}

func (r *PublicRegistrationRequest) Validate() error {
	return validate.Struct(r)
}

// =========================
// Response
// =========================

type MemberResponse struct {
	MemberID         uuid.UUID  `json:"member_id"`
	MemberAssemblyID uuid.UUID  `json:"member_assembly_id"`
	MemberUnitID     *uuid.UUID `json:"member_unit_id,omitempty"`
	MemberCellID     *uuid.UUID `json:"member_cell_id,omitempty"`
	MemberFamilyID   *uuid.UUID `json:"member_family_id,omitempty"`

	MemberFirstName  string `json:"member_first_name"`
	MemberLastName   string `json:"member_last_name"`
	MemberMiddleName string `json:"member_middle_name,omitempty"`
	MemberFullName   string `json:"member_full_name"`

	MemberDateOfBirth   *time.Time `json:"member_date_of_birth,omitempty"`
	MemberAge           *int       `json:"member_age,omitempty"`
	MemberGender        string     `json:"member_gender"`
	MemberMaritalStatus string     `json:"member_marital_status,omitempty"`

	MemberEmail   string `json:"member_email,omitempty"`
	MemberPhone   string `json:"member_phone,omitempty"`
	MemberAddress string `json:"member_address,omitempty"`

	MemberMembershipStatus string     `json:"member_membership_status"`
	MemberMembershipDate   *time.Time `json:"member_membership_date,omitempty"`
	MemberBaptismDate      *time.Time `json:"member_baptism_date,omitempty"`
	MemberConfirmationDate *time.Time `json:"member_confirmation_date,omitempty"`

	MemberPhotoURL string `json:"member_photo_url,omitempty"`

	MemberCreatedAt time.Time `json:"member_created_at"`
	MemberUpdatedAt time.Time `json:"member_updated_at"`
}

func ToMemberResponse(m *model.MemberModel) MemberResponse {
	return MemberResponse{
		MemberID:         m.MemberID,
		MemberAssemblyID: m.MemberAssemblyID,
		MemberUnitID:     m.MemberUnitID,
		MemberCellID:     m.MemberCellID,
		MemberFamilyID:   m.MemberFamilyID,

		MemberFirstName:  m.MemberFirstName,
		MemberLastName:   m.MemberLastName,
		MemberMiddleName: m.MemberMiddleName,
		MemberFullName:   m.FullName(),

		MemberDateOfBirth:   m.MemberDateOfBirth,
		MemberAge:           m.Age(),
		MemberGender:        m.MemberGender,
		MemberMaritalStatus: m.MemberMaritalStatus,

		MemberEmail:   m.MemberEmail,
		MemberPhone:   m.MemberPhone,
		MemberAddress: m.MemberAddress,

		MemberMembershipStatus: m.MemberMembershipStatus,
		MemberMembershipDate:   m.MemberMembershipDate,
		MemberBaptismDate:      m.MemberBaptismDate,
		MemberConfirmationDate: m.MemberConfirmationDate,

		MemberPhotoURL: m.MemberPhotoURL,

		MemberCreatedAt: m.MemberCreatedAt,
		MemberUpdatedAt: m.MemberUpdatedAt,
	}
}

func ToMemberResponses(list []model.MemberModel) []MemberResponse {
	out := make([]MemberResponse, 0, len(list))
	for i := range list {
		out = append(out, ToMemberResponse(&list[i]))
	}
	return out
}
