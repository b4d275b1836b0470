package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sepcam_backend/internals/features/church/committees/dto"
	"sepcam_backend/internals/features/church/committees/model"
	helper "sepcam_backend/internals/helpers"
)

type CommitteeController struct {
	DB *gorm.DB
}

func NewCommitteeController(db *gorm.DB) *CommitteeController {
	return &CommitteeController{DB: db}
}

// hasMembership reports whether the member already sits on the committee.
func (cc *CommitteeController) hasMembership(committeeID, memberID uuid.UUID) (bool, error) {
	var n int64
	err := cc.DB.Model(&model.CommitteeMembershipModel{}).
		Where("committee_membership_committee_id = ? AND committee_membership_member_id = ?", committeeID, memberID).
		Count(&n).Error
	return n > 0, err
}

// GET /api/a/committees
func (cc *CommitteeController) ListCommittees(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 100)

	q := cc.DB.Model(&model.CommitteeModel{})
	if search := c.Query("q"); search != "" {
		q = q.Where("committee_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count committees")
	}

	var committees []model.CommitteeModel
	if err := q.Preload("Leader").
		Order("committee_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&committees).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch committees")
	}

	return helper.JsonList(c, "", committees, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/committees/:id — committee with its roster
func (cc *CommitteeController) GetCommittee(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid committee id")
	}

	var committee model.CommitteeModel
	if err := cc.DB.Preload("Leader").Preload("Memberships.Member").
		First(&committee, "committee_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Committee not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch committee")
	}

	return helper.JsonOK(c, "OK", committee)
}

// POST /api/a/committees
func (cc *CommitteeController) CreateCommittee(c *fiber.Ctx) error {
	var req dto.CommitteeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			return helper.JsonValidationError(c, helper.ValidatorFieldErrors(ve))
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	committee := req.ToModelCreate()

	// A leader can only be set on creation together with a membership row,
	// so the leader-sits-on-committee rule holds from the first insert.
	err := cc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(committee).Error; err != nil {
			return err
		}
		if committee.CommitteeLeaderID != nil {
			membership := &model.CommitteeMembershipModel{
				CommitteeMembershipCommitteeID: committee.CommitteeID,
				CommitteeMembershipMemberID:    *committee.CommitteeLeaderID,
				CommitteeMembershipRoles:       []string{"Leader"},
			}
			if err := tx.Create(membership).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Duplicate committee membership")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create committee")
	}

	return helper.JsonCreated(c, "Committee created", committee)
}

// PUT /api/a/committees/:id
func (cc *CommitteeController) UpdateCommittee(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid committee id")
	}

	var committee model.CommitteeModel
	if err := cc.DB.First(&committee, "committee_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Committee not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch committee")
	}

	var req dto.CommitteeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			return helper.JsonValidationError(c, helper.ValidatorFieldErrors(ve))
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// The leader must already sit on the committee.
	if req.CommitteeLeaderID != nil {
		onCommittee, err := cc.hasMembership(committee.CommitteeID, *req.CommitteeLeaderID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to verify leader membership")
		}
		if !onCommittee {
			return helper.JsonError(c, fiber.StatusBadRequest, "The leader must be a member of the committee")
		}
	}

	committee.CommitteeName = req.CommitteeName
	committee.CommitteeDescription = req.CommitteeDescription
	committee.CommitteeLeaderID = req.CommitteeLeaderID

	if err := cc.DB.Save(&committee).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update committee")
	}

	return helper.JsonUpdated(c, "Committee updated", committee)
}

// DELETE /api/a/committees/:id
func (cc *CommitteeController) DeleteCommittee(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid committee id")
	}

	err = cc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("committee_membership_committee_id = ?", id).
			Delete(&model.CommitteeMembershipModel{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.CommitteeModel{}, "committee_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Committee not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete committee")
	}

	return helper.JsonDeleted(c, "Committee deleted", fiber.Map{"committee_id": id})
}

// POST /api/a/committees/:id/members
func (cc *CommitteeController) AddMember(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid committee id")
	}

	var committee model.CommitteeModel
	if err := cc.DB.First(&committee, "committee_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Committee not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch committee")
	}

	var req dto.MembershipRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			return helper.JsonValidationError(c, helper.ValidatorFieldErrors(ve))
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	membership := req.ToModel(committee.CommitteeID)
	if err := cc.DB.Create(membership).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "This member already sits on the committee")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to add committee member")
	}

	return helper.JsonCreated(c, "Committee member added", membership)
}

// DELETE /api/a/committees/:id/members/:memberId
func (cc *CommitteeController) RemoveMember(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid committee id")
	}
	memberID, err := uuid.Parse(c.Params("memberId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid member id")
	}

	var committee model.CommitteeModel
	if err := cc.DB.First(&committee, "committee_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Committee not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch committee")
	}

	err = cc.DB.Transaction(func(tx *gorm.DB) error {
		// A departing leader stops being the leader.
		if committee.CommitteeLeaderID != nil && *committee.CommitteeLeaderID == memberID {
			if err := tx.Model(&model.CommitteeModel{}).
				Where("committee_id = ?", id).
				Update("committee_leader_id", nil).Error; err != nil {
				return err
			}
		}
		res := tx.Where("committee_membership_committee_id = ? AND committee_membership_member_id = ?", id, memberID).
			Delete(&model.CommitteeMembershipModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Membership not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to remove committee member")
	}

	return helper.JsonDeleted(c, "Committee member removed", fiber.Map{
		"committee_id": id,
		"member_id":    memberID,
	})
}
