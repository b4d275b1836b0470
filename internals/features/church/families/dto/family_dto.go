package dto

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"sepcam_backend/internals/features/church/families/model"
)

var validate = validator.New()

type FamilyRequest struct {
	FamilyName    string `json:"family_name" validate:"required,max=200"`
	FamilyAddress string `json:"family_address"`
	FamilyPhone   string `json:"family_phone" validate:"max=20"`
	FamilyEmail   string `json:"family_email" validate:"omitempty,email"`
	FamilyNotes   string `json:"family_notes"`
}

func (r *FamilyRequest) Validate() error {
	return validate.Struct(r)
}

func (r *FamilyRequest) ToModelCreate(assemblyID uuid.UUID) *model.FamilyModel {
	return &model.FamilyModel{
		FamilyAssemblyID: assemblyID,
		FamilyName:       r.FamilyName,
		FamilyAddress:    r.FamilyAddress,
		FamilyPhone:      r.FamilyPhone,
		FamilyEmail:      r.FamilyEmail,
		FamilyNotes:      r.FamilyNotes,
	}
}

func (r *FamilyRequest) ApplyToModel(m *model.FamilyModel) {
	m.FamilyName = r.FamilyName
	m.FamilyAddress = r.FamilyAddress
	m.FamilyPhone = r.FamilyPhone
	m.FamilyEmail = r.FamilyEmail
	m.FamilyNotes = r.FamilyNotes
}
