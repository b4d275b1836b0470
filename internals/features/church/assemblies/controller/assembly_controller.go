package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sepcam_backend/internals/features/church/assemblies/dto"
	"sepcam_backend/internals/features/church/assemblies/model"
	helper "sepcam_backend/internals/helpers"
)

type AssemblyController struct {
	DB *gorm.DB
}

func NewAssemblyController(db *gorm.DB) *AssemblyController {
	return &AssemblyController{DB: db}
}

// GET /api/a/assemblies
func (ac *AssemblyController) ListAssemblies(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 100)

	q := ac.DB.Model(&model.AssemblyModel{})
	if search := c.Query("q"); search != "" {
		like := "%" + search + "%"
		q = q.Where("assembly_name ILIKE ? OR assembly_city ILIKE ? OR assembly_state ILIKE ?", like, like, like)
	}
	if active := c.Query("is_active"); active != "" {
		q = q.Where("assembly_is_active = ?", active == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count assemblies")
	}

	var assemblies []model.AssemblyModel
	if err := q.Order("assembly_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&assemblies).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch assemblies")
	}

	return helper.JsonList(c, "", assemblies, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/assemblies/:id
func (ac *AssemblyController) GetAssembly(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assembly id")
	}

	var assembly model.AssemblyModel
	if err := ac.DB.First(&assembly, "assembly_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Assembly not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch assembly")
	}

	return helper.JsonOK(c, "OK", assembly)
}

// POST /api/a/assemblies
func (ac *AssemblyController) CreateAssembly(c *fiber.Ctx) error {
	var req dto.AssemblyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			return helper.JsonValidationError(c, helper.ValidatorFieldErrors(ve))
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	assembly := req.ToModelCreate()
	if err := ac.DB.Create(assembly).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "An assembly with this name already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create assembly")
	}

	return helper.JsonCreated(c, "Assembly created", assembly)
}

// PUT /api/a/assemblies/:id
func (ac *AssemblyController) UpdateAssembly(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assembly id")
	}

	var assembly model.AssemblyModel
	if err := ac.DB.First(&assembly, "assembly_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Assembly not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch assembly")
	}

	var req dto.AssemblyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			return helper.JsonValidationError(c, helper.ValidatorFieldErrors(ve))
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	req.ApplyToModel(&assembly)
	if err := ac.DB.Save(&assembly).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update assembly")
	}

	return helper.JsonUpdated(c, "Assembly updated", assembly)
}

// DELETE /api/a/assemblies/:id (soft delete)
func (ac *AssemblyController) DeleteAssembly(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assembly id")
	}

	res := ac.DB.Delete(&model.AssemblyModel{}, "assembly_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete assembly")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Assembly not found")
	}

	return helper.JsonDeleted(c, "Assembly deleted", fiber.Map{"assembly_id": id})
}
