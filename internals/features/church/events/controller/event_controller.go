package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sepcam_backend/internals/features/church/events/dto"
	"sepcam_backend/internals/features/church/events/model"
	helper "sepcam_backend/internals/helpers"
	authmw "sepcam_backend/internals/middlewares/auth"
)

type EventController struct {
	DB *gorm.DB
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db}
}

// GET /api/a/events
func (ec *EventController) ListEvents(c *fiber.Ctx) error {
	admin, err := authmw.GetAdminProfile(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 25, 100)

	q := ec.DB.Model(&model.EventModel{}).Where("event_assembly_id = ?", admin.AdminAssemblyID)
	if eventType := c.Query("type"); eventType != "" {
		q = q.Where("event_type = ?", eventType)
	}
	if upcoming := c.Query("upcoming"); upcoming == "true" {
		q = q.Where("event_start_date >= ?", time.Now())
	}
	if search := c.Query("q"); search != "" {
		q = q.Where("event_title ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count events")
	}

	var events []model.EventModel
	if err := q.Order("event_start_date DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&events).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch events")
	}

	return helper.JsonList(c, "", events, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/events/:id
func (ec *EventController) GetEvent(c *fiber.Ctx) error {
	admin, err := authmw.GetAdminProfile(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var event model.EventModel
	if err := ec.DB.First(&event, "event_id = ? AND event_assembly_id = ?", id, admin.AdminAssemblyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch event")
	}

	var attendedCount int64
	if err := ec.DB.Model(&model.AttendanceModel{}).
		Where("attendance_event_id = ? AND attendance_attended = true", event.EventID).
		Count(&attendedCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count attendance")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"event":          event,
		"attended_count": attendedCount,
	})
}

// POST /api/a/events
func (ec *EventController) CreateEvent(c *fiber.Ctx) error {
	admin, err := authmw.GetAdminProfile(c)
	if err != nil {
		return err
	}

	var req dto.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			return helper.JsonValidationError(c, helper.ValidatorFieldErrors(ve))
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if req.EventEndDate.Before(req.EventStartDate) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Event end date must not precede the start date")
	}

	event := req.ToModelCreate(admin.AdminAssemblyID)
	if err := ec.DB.Create(event).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create event")
	}

	return helper.JsonCreated(c, "Event created", event)
}

// PUT /api/a/events/:id
func (ec *EventController) UpdateEvent(c *fiber.Ctx) error {
	admin, err := authmw.GetAdminProfile(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var event model.EventModel
	if err := ec.DB.First(&event, "event_id = ? AND event_assembly_id = ?", id, admin.AdminAssemblyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch event")
	}

	var req dto.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			return helper.JsonValidationError(c, helper.ValidatorFieldErrors(ve))
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if req.EventEndDate.Before(req.EventStartDate) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Event end date must not precede the start date")
	}

	req.ApplyToModel(&event)
	if err := ec.DB.Save(&event).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update event")
	}

	return helper.JsonUpdated(c, "Event updated", event)
}

// DELETE /api/a/events/:id
func (ec *EventController) DeleteEvent(c *fiber.Ctx) error {
	admin, err := authmw.GetAdminProfile(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	res := ec.DB.Delete(&model.EventModel{}, "event_id = ? AND event_assembly_id = ?", id, admin.AdminAssemblyID)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete event")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}

	return helper.JsonDeleted(c, "Event deleted", fiber.Map{"event_id": id})
}

// POST /api/a/events/:id/attendance — record (or re-record) a check-in
func (ec *EventController) RecordAttendance(c *fiber.Ctx) error {
	admin, err := authmw.GetAdminProfile(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var event model.EventModel
	if err := ec.DB.First(&event, "event_id = ? AND event_assembly_id = ?", id, admin.AdminAssemblyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch event")
	}

	var req dto.AttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			return helper.JsonValidationError(c, helper.ValidatorFieldErrors(ve))
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	attended := true
	if req.Attended != nil {
		attended = *req.Attended
	}

	// One row per (event, member): a repeat check-in updates in place.
	var attendance model.AttendanceModel
	err = ec.DB.
		Where("attendance_event_id = ? AND attendance_member_id = ?", event.EventID, req.MemberID).
		First(&attendance).Error
	switch {
	case err == nil:
		attendance.AttendanceAttended = attended
		attendance.AttendanceNotes = req.Notes
		if err := ec.DB.Save(&attendance).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update attendance")
		}
		return helper.JsonUpdated(c, "Attendance updated", attendance)
	case errors.Is(err, gorm.ErrRecordNotFound):
		attendance = model.AttendanceModel{
			AttendanceEventID:  event.EventID,
			AttendanceMemberID: req.MemberID,
			AttendanceAttended: attended,
			AttendanceNotes:    req.Notes,
		}
		if err := ec.DB.Create(&attendance).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return helper.JsonError(c, fiber.StatusConflict, "Attendance already recorded for this member")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record attendance")
		}
		return helper.JsonCreated(c, "Attendance recorded", attendance)
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to look up attendance")
	}
}

// GET /api/a/events/:id/attendance
func (ec *EventController) ListAttendance(c *fiber.Ctx) error {
	admin, err := authmw.GetAdminProfile(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var event model.EventModel
	if err := ec.DB.First(&event, "event_id = ? AND event_assembly_id = ?", id, admin.AdminAssemblyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch event")
	}

	var attendances []model.AttendanceModel
	if err := ec.DB.Preload("Member").
		Where("attendance_event_id = ?", event.EventID).
		Order("attendance_check_in_time ASC").
		Find(&attendances).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attendance")
	}

	return helper.JsonOK(c, "OK", attendances)
}
