package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	Member "sepcam_backend/internals/features/church/members/model"
)

const (
	PrayerPending    = "PENDING"
	PrayerInProgress = "IN_PROGRESS"
	PrayerAnswered   = "ANSWERED"
	PrayerClosed     = "CLOSED"
)

var PrayerStatuses = []string{PrayerPending, PrayerInProgress, PrayerAnswered, PrayerClosed}

type PrayerRequestModel struct {
	// PK
	PrayerRequestID uuid.UUID `gorm:"column:prayer_request_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"prayer_request_id"`

	// FK
	PrayerRequestMemberID uuid.UUID `gorm:"column:prayer_request_member_id;type:uuid;not null;index" json:"prayer_request_member_id"`

	Member Member.MemberModel `gorm:"foreignKey:PrayerRequestMemberID;references:MemberID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"member,omitempty"`

	PrayerRequestTitle       string `gorm:"column:prayer_request_title;size:200;not null" json:"prayer_request_title"`
	PrayerRequestDescription string `gorm:"column:prayer_request_description;type:text;not null" json:"prayer_request_description"`
	PrayerRequestIsPublic    bool   `gorm:"column:prayer_request_is_public;not null;default:false" json:"prayer_request_is_public"`
	PrayerRequestStatus      string `gorm:"column:prayer_request_status;size:15;not null;default:'PENDING';index" json:"prayer_request_status"`

	PrayerRequestCreatedAt time.Time      `gorm:"column:prayer_request_created_at;autoCreateTime" json:"prayer_request_created_at"`
	PrayerRequestUpdatedAt time.Time      `gorm:"column:prayer_request_updated_at;autoUpdateTime" json:"prayer_request_updated_at"`
	PrayerRequestDeletedAt gorm.DeletedAt `gorm:"column:prayer_request_deleted_at;index" json:"prayer_request_deleted_at,omitempty"`
}

func (PrayerRequestModel) TableName() string {
	return "prayer_requests"
}
