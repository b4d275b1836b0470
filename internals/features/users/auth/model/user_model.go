package model

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Validator instance
var validate = validator.New()

// UserModel is a login credential. Admin profiles link here one-to-one;
// the profile carries the authorization scope, this row only authenticates.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName  string    `gorm:"size:150;unique;not null" json:"user_name" validate:"required,min=3,max=150"`
	Email     string    `gorm:"size:255" json:"email" validate:"omitempty,email"`
	FirstName string    `gorm:"size:100" json:"first_name"`
	LastName  string    `gorm:"size:100" json:"last_name"`
	Password  string    `gorm:"not null" json:"-" validate:"required,min=8"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (UserModel) TableName() string {
	return "users"
}

// Validate checks the credential against the struct rules above.
func (u *UserModel) Validate() error {
	return validate.Struct(u)
}
