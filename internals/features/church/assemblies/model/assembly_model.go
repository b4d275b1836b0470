package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AssemblyModel is the top-level tenant boundary: one congregation/branch.
type AssemblyModel struct {
	// PK
	AssemblyID uuid.UUID `gorm:"column:assembly_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"assembly_id"`

	AssemblyName        string     `gorm:"column:assembly_name;size:200;not null;index" json:"assembly_name"`
	AssemblyDescription string     `gorm:"column:assembly_description;type:text" json:"assembly_description"`
	AssemblyFoundedDate *time.Time `gorm:"column:assembly_founded_date;type:date" json:"assembly_founded_date,omitempty"`
	AssemblyWebsite     string     `gorm:"column:assembly_website;size:255" json:"assembly_website"`
	AssemblyEmail       string     `gorm:"column:assembly_email;size:255" json:"assembly_email"`
	AssemblyPhone       string     `gorm:"column:assembly_phone;size:20" json:"assembly_phone"`

	// Address
	AssemblyStreetAddress string `gorm:"column:assembly_street_address;size:200;not null" json:"assembly_street_address"`
	AssemblyCity          string `gorm:"column:assembly_city;size:100;not null" json:"assembly_city"`
	AssemblyState         string `gorm:"column:assembly_state;size:100;not null" json:"assembly_state"`
	AssemblyCountry       string `gorm:"column:assembly_country;size:100;not null;default:'Nigeria'" json:"assembly_country"`
	AssemblyZipCode       string `gorm:"column:assembly_zip_code;size:20" json:"assembly_zip_code"`

	// Coordinates (optional)
	AssemblyLatitude  *float64 `gorm:"column:assembly_latitude;type:numeric(9,6)" json:"assembly_latitude,omitempty"`
	AssemblyLongitude *float64 `gorm:"column:assembly_longitude;type:numeric(9,6)" json:"assembly_longitude,omitempty"`

	// Social media handles, e.g. {"facebook":"...","twitter":"...","instagram":"...","youtube":"..."}
	AssemblySocialLinks datatypes.JSON `gorm:"column:assembly_social_links" json:"assembly_social_links,omitempty"`

	// Status
	AssemblyIsActive bool `gorm:"column:assembly_is_active;not null;default:true;index" json:"assembly_is_active"`

	// Timestamps
	AssemblyCreatedAt time.Time      `gorm:"column:assembly_created_at;autoCreateTime" json:"assembly_created_at"`
	AssemblyUpdatedAt time.Time      `gorm:"column:assembly_updated_at;autoUpdateTime" json:"assembly_updated_at"`
	AssemblyDeletedAt gorm.DeletedAt `gorm:"column:assembly_deleted_at;index" json:"assembly_deleted_at,omitempty"`
}

func (AssemblyModel) TableName() string {
	return "assemblies"
}
