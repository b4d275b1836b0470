package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	memberModel "sepcam_backend/internals/features/church/members/model"
	"sepcam_backend/internals/features/church/units/dto"
	"sepcam_backend/internals/features/church/units/model"
	helper "sepcam_backend/internals/helpers"
)

type UnitController struct {
	DB *gorm.DB
}

func NewUnitController(db *gorm.DB) *UnitController {
	return &UnitController{DB: db}
}

func (uc *UnitController) leaderName(leaderID *uuid.UUID) string {
	if leaderID == nil {
		return ""
	}
	var leader memberModel.MemberModel
	if err := uc.DB.Select("member_first_name", "member_last_name", "member_middle_name").
		First(&leader, "member_id = ?", *leaderID).Error; err != nil {
		return ""
	}
	return leader.FullName()
}

func (uc *UnitController) unitMemberCount(unitID uuid.UUID) int64 {
	var n int64
	uc.DB.Model(&memberModel.MemberModel{}).
		Where("member_unit_id = ?", unitID).
		Count(&n)
	return n
}

// validateLeader ensures a proposed leader is an existing member.
func (uc *UnitController) validateLeader(leaderID *uuid.UUID) error {
	if leaderID == nil {
		return nil
	}
	var count int64
	if err := uc.DB.Model(&memberModel.MemberModel{}).
		Where("member_id = ?", *leaderID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GET /api/a/units
func (uc *UnitController) ListUnits(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 100)

	q := uc.DB.Model(&model.UnitModel{})
	if search := c.Query("q"); search != "" {
		q = q.Where("unit_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count units")
	}

	var units []model.UnitModel
	if err := q.Order("unit_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&units).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch units")
	}

	out := make([]dto.UnitResponse, 0, len(units))
	for i := range units {
		u := &units[i]
		out = append(out, dto.ToUnitResponse(u, uc.leaderName(u.UnitLeaderID), uc.unitMemberCount(u.UnitID)))
	}

	return helper.JsonList(c, "", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/units/:id
func (uc *UnitController) GetUnit(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid unit id")
	}

	var unit model.UnitModel
	if err := uc.DB.First(&unit, "unit_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Unit not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch unit")
	}

	return helper.JsonOK(c, "OK", dto.ToUnitResponse(&unit, uc.leaderName(unit.UnitLeaderID), uc.unitMemberCount(unit.UnitID)))
}

// POST /api/a/units
func (uc *UnitController) CreateUnit(c *fiber.Ctx) error {
	var req dto.UnitRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			return helper.JsonValidationError(c, helper.ValidatorFieldErrors(ve))
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := uc.validateLeader(req.UnitLeaderID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusBadRequest, "Unit leader must be an existing member")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to verify unit leader")
	}

	unit := req.ToModelCreate()
	if err := uc.DB.Create(unit).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "A unit with this name already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create unit")
	}

	return helper.JsonCreated(c, "Unit created", dto.ToUnitResponse(unit, uc.leaderName(unit.UnitLeaderID), 0))
}

// PUT /api/a/units/:id
func (uc *UnitController) UpdateUnit(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid unit id")
	}

	var unit model.UnitModel
	if err := uc.DB.First(&unit, "unit_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Unit not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch unit")
	}

	var req dto.UnitRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			return helper.JsonValidationError(c, helper.ValidatorFieldErrors(ve))
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := uc.validateLeader(req.UnitLeaderID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusBadRequest, "Unit leader must be an existing member")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to verify unit leader")
	}

	unit.UnitName = req.UnitName
	unit.UnitDescription = req.UnitDescription
	unit.UnitLeaderID = req.UnitLeaderID

	if err := uc.DB.Save(&unit).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "A unit with this name already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update unit")
	}

	return helper.JsonUpdated(c, "Unit updated", dto.ToUnitResponse(&unit, uc.leaderName(unit.UnitLeaderID), uc.unitMemberCount(unit.UnitID)))
}

// DELETE /api/a/units/:id
func (uc *UnitController) DeleteUnit(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid unit id")
	}

	res := uc.DB.Delete(&model.UnitModel{}, "unit_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete unit")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Unit not found")
	}

	return helper.JsonDeleted(c, "Unit deleted", fiber.Map{"unit_id": id})
}
