package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminsvc "sepcam_backend/internals/features/church/admins/service"
	memberModel "sepcam_backend/internals/features/church/members/model"
	helper "sepcam_backend/internals/helpers"
	authmw "sepcam_backend/internals/middlewares/auth"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GET /api/a/dashboard
//
// Counts run over the caller's managed scope, so a Cell admin sees cell
// numbers while assembly-wide levels see the whole assembly. Assembly-wide
// levels also get per-cell and per-unit breakdowns.
func (dc *DashboardController) GetDashboard(c *fiber.Ctx) error {
	admin, err := authmw.GetAdminProfile(c)
	if err != nil {
		return err
	}

	scoped := func() *gorm.DB { return adminsvc.GetManagedMembers(dc.DB, admin) }

	var totalMembers int64
	if err := scoped().Model(&memberModel.MemberModel{}).Count(&totalMembers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute dashboard stats")
	}

	statusCounts := map[string]int64{}
	for _, status := range memberModel.MembershipStatuses {
		var n int64
		if err := scoped().Model(&memberModel.MemberModel{}).
			Where("member_membership_status = ?", status).
			Count(&n).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute dashboard stats")
		}
		statusCounts[status] = n
	}

	monthAgo := time.Now().AddDate(0, -1, 0)
	var newThisMonth int64
	if err := scoped().Model(&memberModel.MemberModel{}).
		Where("member_membership_date >= ?", monthAgo).
		Count(&newThisMonth).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute dashboard stats")
	}

	payload := fiber.Map{
		"admin_level":       admin.AdminLevel,
		"total_members":     totalMembers,
		"members_by_status": statusCounts,
		"new_this_month":    newThisMonth,
	}

	if admin.IsSuperAdmin() || admin.IsModerator() {
		type nameCount struct {
			Name  string `json:"name"`
			Count int64  `json:"count"`
		}

		var byCell []nameCount
		if err := dc.DB.Table("members").
			Select("cells.cell_name AS name, COUNT(*) AS count").
			Joins("JOIN cells ON cells.cell_id = members.member_cell_id").
			Where("members.member_assembly_id = ? AND members.member_deleted_at IS NULL", admin.AdminAssemblyID).
			Group("cells.cell_name").
			Order("count DESC").
			Scan(&byCell).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute dashboard stats")
		}

		var byUnit []nameCount
		if err := dc.DB.Table("members").
			Select("units.unit_name AS name, COUNT(*) AS count").
			Joins("JOIN units ON units.unit_id = members.member_unit_id").
			Where("members.member_assembly_id = ? AND members.member_deleted_at IS NULL", admin.AdminAssemblyID).
			Group("units.unit_name").
			Order("count DESC").
			Scan(&byUnit).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute dashboard stats")
		}

		var totalCells int64
		if err := dc.DB.Table("cells").
			Where("cell_assembly_id = ? AND cell_deleted_at IS NULL", admin.AdminAssemblyID).
			Count(&totalCells).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute dashboard stats")
		}

		payload["members_by_cell"] = byCell
		payload["members_by_unit"] = byUnit
		payload["total_cells"] = totalCells
	}

	return helper.JsonOK(c, "OK", payload)
}
