package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sepcam_backend/internals/constants"
	adminmw "sepcam_backend/internals/middlewares/auth"
	"sepcam_backend/internals/features/church/members/dto"
	"sepcam_backend/internals/features/church/members/model"
	membersvc "sepcam_backend/internals/features/church/members/service"
	adminsvc "sepcam_backend/internals/features/church/admins/service"
	helper "sepcam_backend/internals/helpers"
)

type MemberController struct {
	DB *gorm.DB
}

func NewMemberController(db *gorm.DB) *MemberController {
	return &MemberController{DB: db}
}

/* =========================================================
   LIST — GET /api/a/members
   Scope-filtered, then caller filters on top.
   ========================================================= */

func (mc *MemberController) ListMembers(c *fiber.Ctx) error {
	admin, err := adminmw.GetAdminProfile(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 25, 100)

	q := adminsvc.GetManagedMembers(mc.DB, admin)

	if search := c.Query("q"); search != "" {
		like := "%" + search + "%"
		q = q.Where(
			"member_first_name ILIKE ? OR member_last_name ILIKE ? OR member_middle_name ILIKE ? OR member_email ILIKE ? OR member_phone ILIKE ?",
			like, like, like, like, like,
		)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("member_membership_status = ?", status)
	}
	if gender := c.Query("gender"); gender != "" {
		q = q.Where("member_gender = ?", gender)
	}
	if cellID := c.Query("cell_id"); cellID != "" {
		id, perr := uuid.Parse(cellID)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid cell_id")
		}
		q = q.Where("member_cell_id = ?", id)
	}
	if unitID := c.Query("unit_id"); unitID != "" {
		id, perr := uuid.Parse(unitID)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid unit_id")
		}
		q = q.Where("member_unit_id = ?", id)
	}
	if from := c.Query("joined_after"); from != "" {
		t, perr := time.Parse("2006-01-02", from)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid joined_after, want YYYY-MM-DD")
		}
		q = q.Where("member_membership_date >= ?", t)
	}
	if to := c.Query("joined_before"); to != "" {
		t, perr := time.Parse("2006-01-02", to)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid joined_before, want YYYY-MM-DD")
		}
		q = q.Where("member_membership_date <= ?", t)
	}

	var total int64
	if err := q.Model(&model.MemberModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count members")
	}

	var members []model.MemberModel
	if err := q.
		Order("member_last_name ASC, member_first_name ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&members).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch members")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", dto.ToMemberResponses(members), pagination)
}

/* =========================================================
   DETAIL — GET /api/a/members/:id
   ========================================================= */

func (mc *MemberController) GetMember(c *fiber.Ctx) error {
	admin, err := adminmw.GetAdminProfile(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid member id")
	}

	var member model.MemberModel
	if err := mc.DB.First(&member, "member_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Member not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch member")
	}

	if !adminsvc.CanAccessMember(admin, &member) {
		return helper.JsonError(c, fiber.StatusForbidden, constants.ErrOutsideScope)
	}

	return helper.JsonOK(c, "OK", dto.ToMemberResponse(&member))
}

/* =========================================================
   CREATE — POST /api/a/members
   Assembly is always the admin's; Cell admins only create
   inside their own cell.
   ========================================================= */

func (mc *MemberController) CreateMember(c *fiber.Ctx) error {
	admin, err := adminmw.GetAdminProfile(c)
	if err != nil {
		return err
	}

	var req dto.MemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			return helper.JsonValidationError(c, helper.ValidatorFieldErrors(ve))
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	member := req.ToModelCreate()
	member.MemberAssemblyID = admin.AdminAssemblyID
	if admin.IsCellAdmin() {
		member.MemberCellID = admin.AdminCellID
	}

	if err := mc.DB.Create(member).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "A member with these details already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create member")
	}

	return helper.JsonCreated(c, "Member created", dto.ToMemberResponse(member))
}

/* =========================================================
   UPDATE — PUT /api/a/members/:id
   ========================================================= */

func (mc *MemberController) UpdateMember(c *fiber.Ctx) error {
	admin, err := adminmw.GetAdminProfile(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid member id")
	}

	var member model.MemberModel
	if err := mc.DB.First(&member, "member_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Member not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch member")
	}
	if !adminsvc.CanAccessMember(admin, &member) {
		return helper.JsonError(c, fiber.StatusForbidden, constants.ErrOutsideScope)
	}

	var req dto.MemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			return helper.JsonValidationError(c, helper.ValidatorFieldErrors(ve))
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	req.ApplyToModel(&member)
	if admin.IsCellAdmin() {
		// Cell admins cannot move a member out of their cell.
		member.MemberCellID = admin.AdminCellID
	}

	if err := mc.DB.Save(&member).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update member")
	}

	return helper.JsonUpdated(c, "Member updated", dto.ToMemberResponse(&member))
}

/* =========================================================
   DELETE — DELETE /api/a/members/:id
   ========================================================= */

func (mc *MemberController) DeleteMember(c *fiber.Ctx) error {
	admin, err := adminmw.GetAdminProfile(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid member id")
	}

	var member model.MemberModel
	if err := mc.DB.First(&member, "member_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Member not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch member")
	}
	if !adminsvc.CanAccessMember(admin, &member) {
		return helper.JsonError(c, fiber.StatusForbidden, constants.ErrOutsideScope)
	}

	err = mc.DB.Transaction(func(tx *gorm.DB) error {
		if err := membersvc.DetachMemberReferences(tx, member.MemberID); err != nil {
			return err
		}
		return tx.Delete(&member).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete member")
	}

	return helper.JsonDeleted(c, "Member deleted", fiber.Map{"member_id": member.MemberID})
}

/* =========================================================
   PUBLIC REGISTRATION — POST /api/public/register
   Unauthenticated; new members come in as VISITOR.
   ========================================================= */

func (mc *MemberController) PublicRegister(c *fiber.Ctx) error {
	var req dto.PublicRegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			return helper.JsonValidationError(c, helper.ValidatorFieldErrors(ve))
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var assemblyCount int64
	if err := mc.DB.Table("assemblies").
		Where("assembly_id = ? AND assembly_deleted_at IS NULL", req.MemberAssemblyID).
		Count(&assemblyCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to verify assembly")
	}
	if assemblyCount == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Unknown assembly")
	}

	now := time.Now()
	member := &model.MemberModel{
		MemberAssemblyID:       req.MemberAssemblyID,
		MemberFirstName:        req.MemberFirstName,
		MemberLastName:         req.MemberLastName,
		MemberGender:           req.MemberGender,
		MemberEmail:            req.MemberEmail,
		MemberPhone:            req.MemberPhone,
		MemberAddress:          req.MemberAddress,
		MemberDateOfBirth:      req.MemberDateOfBirth,
		MemberMembershipStatus: model.StatusVisitor,
		MemberMembershipDate:   &now,
	}

	if err := mc.DB.Create(member).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Registration failed")
	}

	return helper.JsonCreated(c, "Welcome! Your registration has been received", dto.ToMemberResponse(member))
}
