package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sepcam_backend/internals/features/church/sermons/dto"
	"sepcam_backend/internals/features/church/sermons/model"
	helper "sepcam_backend/internals/helpers"
)

type SermonController struct {
	DB *gorm.DB
}

func NewSermonController(db *gorm.DB) *SermonController {
	return &SermonController{DB: db}
}

// Sortable columns, keyed by the API's order_by vocabulary. Anything else
// falls back to newest-first.
var sermonOrderColumns = map[string]string{
	"sermon_date":     "sermon_date ASC",
	"-sermon_date":    "sermon_date DESC",
	"sermon_title":    "sermon_title ASC",
	"-sermon_title":   "sermon_title DESC",
	"created_at":      "sermon_created_at ASC",
	"-created_at":     "sermon_created_at DESC",
	"sermon_preacher": "sermon_preacher ASC",
}

// GET /api/sermons
func (sc *SermonController) ListSermons(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 100)

	q := sc.DB.Model(&model.SermonModel{})

	if assemblyID := c.Query("assembly_id"); assemblyID != "" {
		id, err := uuid.Parse(assemblyID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assembly_id")
		}
		q = q.Where("sermon_assembly_id = ?", id)
	}
	if preacher := c.Query("preacher"); preacher != "" {
		q = q.Where("sermon_preacher ILIKE ?", "%"+preacher+"%")
	}
	if from := c.Query("date_from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date_from, want YYYY-MM-DD")
		}
		q = q.Where("sermon_date >= ?", t)
	}
	if to := c.Query("date_to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date_to, want YYYY-MM-DD")
		}
		q = q.Where("sermon_date <= ?", t)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + search + "%"
		q = q.Where(
			"sermon_title ILIKE ? OR sermon_preacher ILIKE ? OR sermon_bible_passage ILIKE ? OR sermon_notes ILIKE ?",
			like, like, like, like,
		)
	}

	order, ok := sermonOrderColumns[c.Query("order_by")]
	if !ok {
		order = "sermon_date DESC"
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count sermons")
	}

	var sermons []model.SermonModel
	if err := q.Order(order).
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&sermons).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch sermons")
	}

	return helper.JsonList(c, "", sermons, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/sermons/:id
func (sc *SermonController) GetSermon(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid sermon id")
	}

	var sermon model.SermonModel
	if err := sc.DB.First(&sermon, "sermon_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Sermon not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch sermon")
	}

	return helper.JsonOK(c, "OK", sermon)
}

// GET /api/sermons/public — the five newest, no auth required
func (sc *SermonController) PublicSermons(c *fiber.Ctx) error {
	var sermons []model.SermonModel
	if err := sc.DB.Order("sermon_date DESC").Limit(5).Find(&sermons).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch sermons")
	}
	return helper.JsonOK(c, "OK", sermons)
}

// GET /api/sermons/recent — the ten newest, for signed-in users
func (sc *SermonController) RecentSermons(c *fiber.Ctx) error {
	var sermons []model.SermonModel
	if err := sc.DB.Order("sermon_date DESC").Limit(10).Find(&sermons).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch sermons")
	}
	return helper.JsonOK(c, "OK", sermons)
}

// POST /api/sermons
func (sc *SermonController) CreateSermon(c *fiber.Ctx) error {
	var req dto.SermonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			return helper.JsonValidationError(c, helper.ValidatorFieldErrors(ve))
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	sermon := req.ToModelCreate()
	if err := sc.DB.Create(sermon).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create sermon")
	}

	return helper.JsonCreated(c, "Sermon created", sermon)
}

// PUT /api/sermons/:id
func (sc *SermonController) UpdateSermon(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid sermon id")
	}

	var sermon model.SermonModel
	if err := sc.DB.First(&sermon, "sermon_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Sermon not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch sermon")
	}

	var req dto.SermonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			return helper.JsonValidationError(c, helper.ValidatorFieldErrors(ve))
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	req.ApplyToModel(&sermon)
	if err := sc.DB.Save(&sermon).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update sermon")
	}

	return helper.JsonUpdated(c, "Sermon updated", sermon)
}

// DELETE /api/sermons/:id
func (sc *SermonController) DeleteSermon(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid sermon id")
	}

	res := sc.DB.Delete(&model.SermonModel{}, "sermon_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete sermon")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Sermon not found")
	}

	return helper.JsonDeleted(c, "Sermon deleted", fiber.Map{"sermon_id": id})
}
