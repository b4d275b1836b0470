package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

type DonationRequest struct {
	DonationMemberID uuid.UUID `json:"donation_member_id" validate:"required"`

	DonationAmount        float64    `json:"donation_amount" validate:"required,gt=0"`
	DonationType          string     `json:"donation_type" validate:"required,oneof=TITHE OFFERING BUILDING_FUND MISSIONS OTHER"`
	DonationPaymentMethod string     `json:"donation_payment_method" validate:"required,oneof=CASH CHECK CARD ONLINE OTHER"`
	DonationDate          *time.Time `json:"donation_date,omitempty"`
	DonationCheckNumber   string     `json:"donation_check_number" validate:"max=50"`
	DonationNotes         string     `json:"donation_notes"`
}

func (r *DonationRequest) Validate() error {
	return validate.Struct(r)
}
