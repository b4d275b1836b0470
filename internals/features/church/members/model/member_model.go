package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	Assembly "sepcam_backend/internals/features/church/assemblies/model"
	Cell "sepcam_backend/internals/features/church/cells/model"
	Family "sepcam_backend/internals/features/church/families/model"
	Unit "sepcam_backend/internals/features/church/units/model"
)

// Gender
const (
	GenderMale   = "M"
	GenderFemale = "F"
	GenderOther  = "O"
)

// Marital status
const (
	MaritalSingle    = "SINGLE"
	MaritalMarried   = "MARRIED"
	MaritalDivorced  = "DIVORCED"
	MaritalWidowed   = "WIDOWED"
	MaritalSeparated = "SEPARATED"
)

// Membership lifecycle status
const (
	StatusActive      = "ACTIVE"
	StatusInactive    = "INACTIVE"
	StatusVisitor     = "VISITOR"
	StatusNewMember   = "NEW_MEMBER"
	StatusTransferred = "TRANSFERRED"
)

var MembershipStatuses = []string{
	StatusActive, StatusInactive, StatusVisitor, StatusNewMember, StatusTransferred,
}

// MemberModel is a person on the roll. Assembly is required; unit/cell/family
// are optional and go NULL when the parent is deleted (member survives).
type MemberModel struct {
	// PK
	MemberID uuid.UUID `gorm:"column:member_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"member_id"`

	// FK
	MemberAssemblyID uuid.UUID  `gorm:"column:member_assembly_id;type:uuid;not null;index" json:"member_assembly_id"`
	MemberUnitID     *uuid.UUID `gorm:"column:member_unit_id;type:uuid;index" json:"member_unit_id,omitempty"`
	MemberCellID     *uuid.UUID `gorm:"column:member_cell_id;type:uuid;index" json:"member_cell_id,omitempty"`
	MemberFamilyID   *uuid.UUID `gorm:"column:member_family_id;type:uuid;index" json:"member_family_id,omitempty"`

	Assembly Assembly.AssemblyModel `gorm:"foreignKey:MemberAssemblyID;references:AssemblyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"assembly,omitempty"`
	Unit     *Unit.UnitModel        `gorm:"foreignKey:MemberUnitID;references:UnitID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"unit,omitempty"`
	Cell     *Cell.CellModel        `gorm:"foreignKey:MemberCellID;references:CellID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"cell,omitempty"`
	Family   *Family.FamilyModel    `gorm:"foreignKey:MemberFamilyID;references:FamilyID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"family,omitempty"`

	// Identity
	MemberFirstName  string `gorm:"column:member_first_name;size:100;not null;index" json:"member_first_name"`
	MemberLastName   string `gorm:"column:member_last_name;size:100;not null;index" json:"member_last_name"`
	MemberMiddleName string `gorm:"column:member_middle_name;size:100" json:"member_middle_name"`

	// Demographics
	MemberDateOfBirth   *time.Time `gorm:"column:member_date_of_birth;type:date" json:"member_date_of_birth,omitempty"`
	MemberGender        string     `gorm:"column:member_gender;size:10;not null" json:"member_gender"`
	MemberMaritalStatus string     `gorm:"column:member_marital_status;size:10" json:"member_marital_status"`

	// Contact
	MemberEmail                 string `gorm:"column:member_email;size:255;index" json:"member_email"`
	MemberPhone                 string `gorm:"column:member_phone;size:20;index" json:"member_phone"`
	MemberAddress               string `gorm:"column:member_address;type:text" json:"member_address"`
	MemberEmergencyContactName  string `gorm:"column:member_emergency_contact_name;size:200" json:"member_emergency_contact_name"`
	MemberEmergencyContactPhone string `gorm:"column:member_emergency_contact_phone;size:20" json:"member_emergency_contact_phone"`

	// Church
	MemberMembershipStatus string     `gorm:"column:member_membership_status;size:15;not null;default:'ACTIVE';index" json:"member_membership_status"`
	MemberMembershipDate   *time.Time `gorm:"column:member_membership_date;type:date" json:"member_membership_date,omitempty"`
	MemberBaptismDate      *time.Time `gorm:"column:member_baptism_date;type:date" json:"member_baptism_date,omitempty"`
	MemberConfirmationDate *time.Time `gorm:"column:member_confirmation_date;type:date" json:"member_confirmation_date,omitempty"`

	MemberPhotoURL string `gorm:"column:member_photo_url;size:255" json:"member_photo_url"`

	// Timestamps
	MemberCreatedAt time.Time      `gorm:"column:member_created_at;autoCreateTime" json:"member_created_at"`
	MemberUpdatedAt time.Time      `gorm:"column:member_updated_at;autoUpdateTime" json:"member_updated_at"`
	MemberDeletedAt gorm.DeletedAt `gorm:"column:member_deleted_at;index" json:"member_deleted_at,omitempty"`
}

func (MemberModel) TableName() string {
	return "members"
}

func (m *MemberModel) FullName() string {
	return m.MemberFirstName + " " + m.MemberLastName
}

// Age in whole years relative to now; nil when date of birth is unknown.
func (m *MemberModel) Age() *int {
	return m.AgeAt(time.Now())
}

func (m *MemberModel) AgeAt(now time.Time) *int {
	if m.MemberDateOfBirth == nil {
		return nil
	}
	dob := *m.MemberDateOfBirth
	years := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		years--
	}
	return &years
}
