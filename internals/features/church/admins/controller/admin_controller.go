package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sepcam_backend/internals/features/church/admins/dto"
	"sepcam_backend/internals/features/church/admins/model"
	"sepcam_backend/internals/features/church/admins/service"
	cellModel "sepcam_backend/internals/features/church/cells/model"
	memberModel "sepcam_backend/internals/features/church/members/model"
	helper "sepcam_backend/internals/helpers"
	authmw "sepcam_backend/internals/middlewares/auth"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// GET /api/a/admins — admin profiles of the caller's assembly
func (ac *AdminController) ListAdmins(c *fiber.Ctx) error {
	admin, err := authmw.GetAdminProfile(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 25, 100)

	q := ac.DB.Model(&model.AdminModel{}).Where("admin_assembly_id = ?", admin.AdminAssemblyID)
	if level := c.Query("level"); level != "" {
		q = q.Where("admin_level = ?", level)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count admins")
	}

	var admins []model.AdminModel
	if err := q.Preload("Member").Preload("Cell").Preload("User").
		Order("admin_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&admins).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch admins")
	}

	return helper.JsonList(c, "", dto.ToAdminResponses(admins), helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// POST /api/a/admins — provision an admin profile + login credential
func (ac *AdminController) CreateAdmin(c *fiber.Ctx) error {
	caller, err := authmw.GetAdminProfile(c)
	if err != nil {
		return err
	}

	var req dto.AdminCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			return helper.JsonValidationError(c, helper.ValidatorFieldErrors(ve))
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var member memberModel.MemberModel
	if err := ac.DB.First(&member, "member_id = ?", req.AdminMemberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Member not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch member")
	}
	if member.MemberAssemblyID != caller.AdminAssemblyID {
		return helper.JsonError(c, fiber.StatusForbidden, "Member belongs to another assembly")
	}
	if req.AdminCellID != nil {
		var cell cellModel.CellModel
		if err := ac.DB.First(&cell, "cell_id = ?", *req.AdminCellID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusBadRequest, "Cell not found")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch cell")
		}
		if err := service.ValidateCellAssembly(cell.CellAssemblyID, caller.AdminAssemblyID); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
	}

	newAdmin := &model.AdminModel{
		AdminMemberID:   member.MemberID,
		AdminAssemblyID: member.MemberAssemblyID,
		AdminCellID:     req.AdminCellID,
		AdminLevel:      req.AdminLevel,
	}

	if err := service.Provision(ac.DB, newAdmin, req.Password); err != nil {
		switch {
		case errors.Is(err, service.ErrAdminLevelCellRequired),
			errors.Is(err, service.ErrAdminCellNotAllowed):
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		case helper.IsUniqueViolation(err):
			return helper.JsonError(c, fiber.StatusConflict, "This member already has an admin profile")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to provision admin")
		}
	}

	newAdmin.Member = member
	return helper.JsonCreated(c, "Admin provisioned", dto.ToAdminResponse(newAdmin))
}

// PUT /api/a/admins/:id — change level and/or cell, re-running the
// provision steps so the cell sync applies.
func (ac *AdminController) UpdateAdmin(c *fiber.Ctx) error {
	caller, err := authmw.GetAdminProfile(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid admin id")
	}

	var target model.AdminModel
	if err := ac.DB.First(&target, "admin_id = ? AND admin_assembly_id = ?", id, caller.AdminAssemblyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Admin not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch admin")
	}

	var req dto.AdminUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			return helper.JsonValidationError(c, helper.ValidatorFieldErrors(ve))
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if req.AdminCellID != nil {
		var cell cellModel.CellModel
		if err := ac.DB.First(&cell, "cell_id = ?", *req.AdminCellID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusBadRequest, "Cell not found")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch cell")
		}
		if err := service.ValidateCellAssembly(cell.CellAssemblyID, target.AdminAssemblyID); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
	}

	target.AdminLevel = req.AdminLevel
	target.AdminCellID = req.AdminCellID

	if err := service.Provision(ac.DB, &target, ""); err != nil {
		switch {
		case errors.Is(err, service.ErrAdminLevelCellRequired),
			errors.Is(err, service.ErrAdminCellNotAllowed):
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update admin")
		}
	}

	return helper.JsonUpdated(c, "Admin updated", dto.ToAdminResponse(&target))
}

// DELETE /api/a/admins/:id — revoke the profile and deactivate its login
func (ac *AdminController) DeleteAdmin(c *fiber.Ctx) error {
	caller, err := authmw.GetAdminProfile(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid admin id")
	}
	if id == caller.AdminID {
		return helper.JsonError(c, fiber.StatusBadRequest, "You cannot revoke your own admin profile")
	}

	var target model.AdminModel
	if err := ac.DB.First(&target, "admin_id = ? AND admin_assembly_id = ?", id, caller.AdminAssemblyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Admin not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch admin")
	}

	err = ac.DB.Transaction(func(tx *gorm.DB) error {
		if target.AdminUserID != nil {
			if err := tx.Table("users").
				Where("id = ?", *target.AdminUserID).
				Update("is_active", false).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&target).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to revoke admin")
	}

	return helper.JsonDeleted(c, "Admin revoked", fiber.Map{"admin_id": target.AdminID})
}
