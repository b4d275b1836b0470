package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	Assembly "sepcam_backend/internals/features/church/assemblies/model"
	Member "sepcam_backend/internals/features/church/members/model"
)

// Event types
const (
	EventService    = "SERVICE"
	EventMeeting    = "MEETING"
	EventFellowship = "FELLOWSHIP"
	EventOutreach   = "OUTREACH"
	EventConference = "CONFERENCE"
	EventOther      = "OTHER"
)

var EventTypes = []string{
	EventService, EventMeeting, EventFellowship, EventOutreach, EventConference, EventOther,
}

type EventModel struct {
	// PK
	EventID uuid.UUID `gorm:"column:event_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"event_id"`

	// FK
	EventAssemblyID uuid.UUID `gorm:"column:event_assembly_id;type:uuid;not null;index" json:"event_assembly_id"`

	Assembly Assembly.AssemblyModel `gorm:"foreignKey:EventAssemblyID;references:AssemblyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"assembly,omitempty"`

	EventTitle       string    `gorm:"column:event_title;size:200;not null;index" json:"event_title"`
	EventDescription string    `gorm:"column:event_description;type:text" json:"event_description"`
	EventType        string    `gorm:"column:event_type;size:20;not null;index" json:"event_type"`
	EventStartDate   time.Time `gorm:"column:event_start_date;not null;index" json:"event_start_date"`
	EventEndDate     time.Time `gorm:"column:event_end_date;not null" json:"event_end_date"`
	EventLocation    string    `gorm:"column:event_location;size:200" json:"event_location"`

	EventIsRecurring bool `gorm:"column:event_is_recurring;not null;default:false" json:"event_is_recurring"`
	// recurrence settings, e.g. {"pattern":"weekly","days":["SUN"]}
	EventRecurrence datatypes.JSON `gorm:"column:event_recurrence" json:"event_recurrence,omitempty"`

	EventCreatedAt time.Time      `gorm:"column:event_created_at;autoCreateTime" json:"event_created_at"`
	EventUpdatedAt time.Time      `gorm:"column:event_updated_at;autoUpdateTime" json:"event_updated_at"`
	EventDeletedAt gorm.DeletedAt `gorm:"column:event_deleted_at;index" json:"event_deleted_at,omitempty"`
}

func (EventModel) TableName() string {
	return "events"
}

// AttendanceModel: one row per member per event.
type AttendanceModel struct {
	// PK
	AttendanceID uuid.UUID `gorm:"column:attendance_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"attendance_id"`

	// FK — unique pair
	AttendanceEventID  uuid.UUID `gorm:"column:attendance_event_id;type:uuid;not null;uniqueIndex:uq_event_member" json:"attendance_event_id"`
	AttendanceMemberID uuid.UUID `gorm:"column:attendance_member_id;type:uuid;not null;uniqueIndex:uq_event_member" json:"attendance_member_id"`

	Event  EventModel         `gorm:"foreignKey:AttendanceEventID;references:EventID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"event,omitempty"`
	Member Member.MemberModel `gorm:"foreignKey:AttendanceMemberID;references:MemberID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"member,omitempty"`

	AttendanceAttended    bool      `gorm:"column:attendance_attended;not null;default:true" json:"attendance_attended"`
	AttendanceCheckInTime time.Time `gorm:"column:attendance_check_in_time;autoCreateTime" json:"attendance_check_in_time"`
	AttendanceNotes       string    `gorm:"column:attendance_notes;type:text" json:"attendance_notes"`
}

func (AttendanceModel) TableName() string {
	return "attendances"
}
