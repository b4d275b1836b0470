package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sepcam_backend/internals/features/church/prayers/dto"
	"sepcam_backend/internals/features/church/prayers/model"
	helper "sepcam_backend/internals/helpers"
	authmw "sepcam_backend/internals/middlewares/auth"
)

type PrayerController struct {
	DB *gorm.DB
}

func NewPrayerController(db *gorm.DB) *PrayerController {
	return &PrayerController{DB: db}
}

// GET /api/a/prayers — requests from the admin's assembly
func (pc *PrayerController) ListPrayers(c *fiber.Ctx) error {
	admin, err := authmw.GetAdminProfile(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 25, 100)

	q := pc.DB.Model(&model.PrayerRequestModel{}).
		Joins("JOIN members ON members.member_id = prayer_requests.prayer_request_member_id").
		Where("members.member_assembly_id = ?", admin.AdminAssemblyID)
	if status := c.Query("status"); status != "" {
		q = q.Where("prayer_request_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count prayer requests")
	}

	var prayers []model.PrayerRequestModel
	if err := q.Preload("Member").
		Order("prayer_request_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&prayers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch prayer requests")
	}

	return helper.JsonList(c, "", prayers, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/public/prayers — public wall, no member details
func (pc *PrayerController) PublicPrayers(c *fiber.Ctx) error {
	var prayers []model.PrayerRequestModel
	if err := pc.DB.
		Select("prayer_request_id", "prayer_request_title", "prayer_request_description", "prayer_request_status", "prayer_request_created_at").
		Where("prayer_request_is_public = true AND prayer_request_status NOT IN ?", []string{model.PrayerClosed}).
		Order("prayer_request_created_at DESC").
		Limit(20).
		Find(&prayers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch prayer requests")
	}
	return helper.JsonOK(c, "OK", prayers)
}

// POST /api/a/prayers
func (pc *PrayerController) CreatePrayer(c *fiber.Ctx) error {
	if _, err := authmw.GetAdminProfile(c); err != nil {
		return err
	}

	var req dto.PrayerRequestCreate
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			return helper.JsonValidationError(c, helper.ValidatorFieldErrors(ve))
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	prayer := req.ToModel()
	if err := pc.DB.Create(prayer).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create prayer request")
	}

	return helper.JsonCreated(c, "Prayer request created", prayer)
}

// PUT /api/a/prayers/:id/status
func (pc *PrayerController) UpdatePrayerStatus(c *fiber.Ctx) error {
	if _, err := authmw.GetAdminProfile(c); err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid prayer request id")
	}

	var req dto.PrayerStatusUpdate
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			return helper.JsonValidationError(c, helper.ValidatorFieldErrors(ve))
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var prayer model.PrayerRequestModel
	if err := pc.DB.First(&prayer, "prayer_request_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Prayer request not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch prayer request")
	}

	prayer.PrayerRequestStatus = req.Status
	if err := pc.DB.Save(&prayer).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update prayer request")
	}

	return helper.JsonUpdated(c, "Prayer request updated", prayer)
}

// DELETE /api/a/prayers/:id
func (pc *PrayerController) DeletePrayer(c *fiber.Ctx) error {
	if _, err := authmw.GetAdminProfile(c); err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid prayer request id")
	}

	res := pc.DB.Delete(&model.PrayerRequestModel{}, "prayer_request_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete prayer request")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Prayer request not found")
	}

	return helper.JsonDeleted(c, "Prayer request deleted", fiber.Map{"prayer_request_id": id})
}
