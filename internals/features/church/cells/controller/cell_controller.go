package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sepcam_backend/internals/features/church/cells/dto"
	"sepcam_backend/internals/features/church/cells/model"
	helper "sepcam_backend/internals/helpers"
	authmw "sepcam_backend/internals/middlewares/auth"
)

type CellController struct {
	DB *gorm.DB
}

func NewCellController(db *gorm.DB) *CellController {
	return &CellController{DB: db}
}

func (cc *CellController) memberCount(cellID uuid.UUID) int64 {
	var n int64
	cc.DB.Table("members").
		Where("member_cell_id = ? AND member_deleted_at IS NULL", cellID).
		Count(&n)
	return n
}

// GET /api/a/cells — cells of the admin's assembly
func (cc *CellController) ListCells(c *fiber.Ctx) error {
	admin, err := authmw.GetAdminProfile(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 25, 100)

	q := cc.DB.Model(&model.CellModel{}).Where("cell_assembly_id = ?", admin.AdminAssemblyID)
	if search := c.Query("q"); search != "" {
		q = q.Where("cell_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count cells")
	}

	var cells []model.CellModel
	if err := q.Order("cell_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&cells).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch cells")
	}

	out := make([]dto.CellResponse, 0, len(cells))
	for i := range cells {
		out = append(out, dto.ToCellResponse(&cells[i], cc.memberCount(cells[i].CellID)))
	}

	return helper.JsonList(c, "", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/cells/:id
func (cc *CellController) GetCell(c *fiber.Ctx) error {
	admin, err := authmw.GetAdminProfile(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid cell id")
	}

	var cell model.CellModel
	if err := cc.DB.First(&cell, "cell_id = ? AND cell_assembly_id = ?", id, admin.AdminAssemblyID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Cell not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch cell")
	}

	return helper.JsonOK(c, "OK", dto.ToCellResponse(&cell, cc.memberCount(cell.CellID)))
}

// POST /api/a/cells
func (cc *CellController) CreateCell(c *fiber.Ctx) error {
	admin, err := authmw.GetAdminProfile(c)
	if err != nil {
		return err
	}

	var req dto.CellRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			return helper.JsonValidationError(c, helper.ValidatorFieldErrors(ve))
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	cell := req.ToModelCreate(admin.AdminAssemblyID)
	if err := cc.DB.Create(cell).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "A cell with this name already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create cell")
	}

	return helper.JsonCreated(c, "Cell created", dto.ToCellResponse(cell, 0))
}

// PUT /api/a/cells/:id
func (cc *CellController) UpdateCell(c *fiber.Ctx) error {
	admin, err := authmw.GetAdminProfile(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid cell id")
	}

	var cell model.CellModel
	if err := cc.DB.First(&cell, "cell_id = ? AND cell_assembly_id = ?", id, admin.AdminAssemblyID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Cell not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch cell")
	}

	var req dto.CellRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			return helper.JsonValidationError(c, helper.ValidatorFieldErrors(ve))
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	cell.CellName = req.CellName
	if req.CellCreatedDate != nil {
		cell.CellCreatedDate = *req.CellCreatedDate
	}

	if err := cc.DB.Save(&cell).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update cell")
	}

	return helper.JsonUpdated(c, "Cell updated", dto.ToCellResponse(&cell, cc.memberCount(cell.CellID)))
}

// DELETE /api/a/cells/:id
func (cc *CellController) DeleteCell(c *fiber.Ctx) error {
	admin, err := authmw.GetAdminProfile(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid cell id")
	}

	res := cc.DB.Delete(&model.CellModel{}, "cell_id = ? AND cell_assembly_id = ?", id, admin.AdminAssemblyID)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete cell")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Cell not found")
	}

	return helper.JsonDeleted(c, "Cell deleted", fiber.Map{"cell_id": id})
}
