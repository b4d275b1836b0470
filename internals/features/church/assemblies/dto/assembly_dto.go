package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"

	"sepcam_backend/internals/features/church/assemblies/model"
)

var validate = validator.New()

type AssemblyRequest struct {
	AssemblyName        string     `json:"assembly_name" validate:"required,max=200"`
	AssemblyDescription string     `json:"assembly_description"`
	AssemblyFoundedDate *time.Time `json:"assembly_founded_date,omitempty"`
	AssemblyWebsite     string     `json:"assembly_website" validate:"omitempty,url"`
	AssemblyEmail       string     `json:"assembly_email" validate:"omitempty,email"`
	AssemblyPhone       string     `json:"assembly_phone" validate:"max=20"`

	AssemblyStreetAddress string `json:"assembly_street_address" validate:"required,max=200"`
	AssemblyCity          string `json:"assembly_city" validate:"required,max=100"`
	AssemblyState         string `json:"assembly_state" validate:"required,max=100"`
	AssemblyCountry       string `json:"assembly_country" validate:"max=100"`
	AssemblyZipCode       string `json:"assembly_zip_code" validate:"max=20"`

	AssemblyLatitude  *float64 `json:"assembly_latitude,omitempty" validate:"omitempty,gte=-90,lte=90"`
	AssemblyLongitude *float64 `json:"assembly_longitude,omitempty" validate:"omitempty,gte=-180,lte=180"`

	AssemblySocialLinks datatypes.JSON `json:"assembly_social_links,omitempty"`

	AssemblyIsActive *bool `json:"assembly_is_active,omitempty"`
}

func (r *AssemblyRequest) Validate() error {
	return validate.Struct(r)
}

func (r *AssemblyRequest) ToModelCreate() *model.AssemblyModel {
	country := r.AssemblyCountry
	if country == "" {
		country = "Nigeria"
	}
	active := true
	if r.AssemblyIsActive != nil {
		active = *r.AssemblyIsActive
	}
	return &model.AssemblyModel{
		AssemblyName:        r.AssemblyName,
		AssemblyDescription: r.AssemblyDescription,
		AssemblyFoundedDate: r.AssemblyFoundedDate,
		AssemblyWebsite:     r.AssemblyWebsite,
		AssemblyEmail:       r.AssemblyEmail,
		AssemblyPhone:       r.AssemblyPhone,

		AssemblyStreetAddress: r.AssemblyStreetAddress,
		AssemblyCity:          r.AssemblyCity,
		AssemblyState:         r.AssemblyState,
		AssemblyCountry:       country,
		AssemblyZipCode:       r.AssemblyZipCode,

		AssemblyLatitude:    r.AssemblyLatitude,
		AssemblyLongitude:   r.AssemblyLongitude,
		AssemblySocialLinks: r.AssemblySocialLinks,

		AssemblyIsActive: active,
	}
}

func (r *AssemblyRequest) ApplyToModel(m *model.AssemblyModel) {
	m.AssemblyName = r.AssemblyName
	m.AssemblyDescription = r.AssemblyDescription
	m.AssemblyFoundedDate = r.AssemblyFoundedDate
	m.AssemblyWebsite = r.AssemblyWebsite
	m.AssemblyEmail = r.AssemblyEmail
	m.AssemblyPhone = r.AssemblyPhone

	m.AssemblyStreetAddress = r.AssemblyStreetAddress
	m.AssemblyCity = r.AssemblyCity
	m.AssemblyState = r.AssemblyState
	if r.AssemblyCountry != "" {
		m.AssemblyCountry = r.AssemblyCountry
	}
	m.AssemblyZipCode = r.AssemblyZipCode

	m.AssemblyLatitude = r.AssemblyLatitude
	m.AssemblyLongitude = r.AssemblyLongitude
	if r.AssemblySocialLinks != nil {
		m.AssemblySocialLinks = r.AssemblySocialLinks
	}
	if r.AssemblyIsActive != nil {
		m.AssemblyIsActive = *r.AssemblyIsActive
	}
}
