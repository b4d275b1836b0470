package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sepcam_backend/internals/features/church/families/dto"
	"sepcam_backend/internals/features/church/families/model"
	memberModel "sepcam_backend/internals/features/church/members/model"
	helper "sepcam_backend/internals/helpers"
	authmw "sepcam_backend/internals/middlewares/auth"
)

type FamilyController struct {
	DB *gorm.DB
}

func NewFamilyController(db *gorm.DB) *FamilyController {
	return &FamilyController{DB: db}
}

// GET /api/a/families
func (fc *FamilyController) ListFamilies(c *fiber.Ctx) error {
	admin, err := authmw.GetAdminProfile(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 25, 100)

	q := fc.DB.Model(&model.FamilyModel{}).Where("family_assembly_id = ?", admin.AdminAssemblyID)
	if search := c.Query("q"); search != "" {
		q = q.Where("family_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count families")
	}

	var families []model.FamilyModel
	if err := q.Order("family_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&families).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch families")
	}

	return helper.JsonList(c, "", families, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/families/:id — family plus its members
func (fc *FamilyController) GetFamily(c *fiber.Ctx) error {
	admin, err := authmw.GetAdminProfile(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid family id")
	}

	var family model.FamilyModel
	if err := fc.DB.First(&family, "family_id = ? AND family_assembly_id = ?", id, admin.AdminAssemblyID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Family not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch family")
	}

	var members []memberModel.MemberModel
	if err := fc.DB.
		Where("member_family_id = ?", family.FamilyID).
		Order("member_date_of_birth ASC NULLS LAST").
		Find(&members).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch family members")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"family":  family,
		"members": members,
	})
}

// POST /api/a/families
func (fc *FamilyController) CreateFamily(c *fiber.Ctx) error {
	admin, err := authmw.GetAdminProfile(c)
	if err != nil {
		return err
	}

	var req dto.FamilyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			return helper.JsonValidationError(c, helper.ValidatorFieldErrors(ve))
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	family := req.ToModelCreate(admin.AdminAssemblyID)
	if err := fc.DB.Create(family).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create family")
	}

	return helper.JsonCreated(c, "Family created", family)
}

// PUT /api/a/families/:id
func (fc *FamilyController) UpdateFamily(c *fiber.Ctx) error {
	admin, err := authmw.GetAdminProfile(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid family id")
	}

	var family model.FamilyModel
	if err := fc.DB.First(&family, "family_id = ? AND family_assembly_id = ?", id, admin.AdminAssemblyID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Family not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch family")
	}

	var req dto.FamilyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			return helper.JsonValidationError(c, helper.ValidatorFieldErrors(ve))
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	req.ApplyToModel(&family)
	if err := fc.DB.Save(&family).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update family")
	}

	return helper.JsonUpdated(c, "Family updated", family)
}

// DELETE /api/a/families/:id
func (fc *FamilyController) DeleteFamily(c *fiber.Ctx) error {
	admin, err := authmw.GetAdminProfile(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid family id")
	}

	res := fc.DB.Delete(&model.FamilyModel{}, "family_id = ? AND family_assembly_id = ?", id, admin.AdminAssemblyID)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete family")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Family not found")
	}

	return helper.JsonDeleted(c, "Family deleted", fiber.Map{"family_id": id})
}
