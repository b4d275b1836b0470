package dto

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"sepcam_backend/internals/features/church/prayers/model"
)

var validate = validator.New()

type PrayerRequestCreate struct {
	MemberID    uuid.UUID `json:"member_id" validate:"required"`
	Title       string    `json:"title" validate:"required,max=200"`
	Description string    `json:"description" validate:"required"`
	IsPublic    bool      `json:"is_public"`
}

func (r *PrayerRequestCreate) Validate() error {
	return validate.Struct(r)
}

func (r *PrayerRequestCreate) ToModel() *model.PrayerRequestModel {
	return &model.PrayerRequestModel{
		PrayerRequestMemberID:    r.MemberID,
		PrayerRequestTitle:       r.Title,
		PrayerRequestDescription: r.Description,
		PrayerRequestIsPublic:    r.IsPublic,
		PrayerRequestStatus:      model.PrayerPending,
	}
}

type PrayerStatusUpdate struct {
	Status string `json:"status" validate:"required,oneof=PENDING IN_PROGRESS ANSWERED CLOSED"`
}

func (r *PrayerStatusUpdate) Validate() error {
	return validate.Struct(r)
}
