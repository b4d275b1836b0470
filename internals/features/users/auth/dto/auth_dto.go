package dto

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// =========================
// Requests
// =========================

type RegisterRequest struct {
	UserName string `json:"username" validate:"required,min=3,max=150"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func (r *RegisterRequest) Validate() error {
	return validate.Struct(r)
}

// Identifier accepts username or email.
type LoginRequest struct {
	Identifier string `json:"username" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error {
	return validate.Struct(r)
}
