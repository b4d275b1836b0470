package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"sepcam_backend/internals/features/church/events/model"
)

var validate = validator.New()

type EventRequest struct {
	EventTitle       string    `json:"event_title" validate:"required,max=200"`
	EventDescription string    `json:"event_description"`
	EventType        string    `json:"event_type" validate:"required,oneof=SERVICE MEETING FELLOWSHIP OUTREACH CONFERENCE OTHER"`
	EventStartDate   time.Time `json:"event_start_date" validate:"required"`
	EventEndDate     time.Time `json:"event_end_date" validate:"required"`
	EventLocation    string    `json:"event_location" validate:"max=200"`

	EventIsRecurring bool           `json:"event_is_recurring"`
	EventRecurrence  datatypes.JSON `json:"event_recurrence,omitempty"`
}

func (r *EventRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	return nil
}

func (r *EventRequest) ToModelCreate(assemblyID uuid.UUID) *model.EventModel {
	return &model.EventModel{
		EventAssemblyID:  assemblyID,
		EventTitle:       r.EventTitle,
		EventDescription: r.EventDescription,
		EventType:        r.EventType,
		EventStartDate:   r.EventStartDate,
		EventEndDate:     r.EventEndDate,
		EventLocation:    r.EventLocation,
		EventIsRecurring: r.EventIsRecurring,
		EventRecurrence:  r.EventRecurrence,
	}
}

func (r *EventRequest) ApplyToModel(m *model.EventModel) {
	m.EventTitle = r.EventTitle
	m.EventDescription = r.EventDescription
	m.EventType = r.EventType
	m.EventStartDate = r.EventStartDate
	m.EventEndDate = r.EventEndDate
	m.EventLocation = r.EventLocation
	m.EventIsRecurring = r.EventIsRecurring
	m.EventRecurrence = r.EventRecurrence
}

type AttendanceRequest struct {
	MemberID uuid.UUID `json:"member_id" validate:"required"`
	Attended *bool     `json:"attended,omitempty"`
	Notes    string    `json:"notes"`
}

func (r *AttendanceRequest) Validate() error {
	return validate.Struct(r)
}
