package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sepcam_backend/internals/features/church/inventory/dto"
	"sepcam_backend/internals/features/church/inventory/model"
	helper "sepcam_backend/internals/helpers"
	authmw "sepcam_backend/internals/middlewares/auth"
)

type InventoryController struct {
	DB *gorm.DB
}

func NewInventoryController(db *gorm.DB) *InventoryController {
	return &InventoryController{DB: db}
}

var inventoryOrderColumns = map[string]string{
	"name":         "inventory_name ASC",
	"-name":        "inventory_name DESC",
	"created_at":   "inventory_created_at ASC",
	"-created_at":  "inventory_created_at DESC",
	"total_price":  "inventory_total_price ASC",
	"-total_price": "inventory_total_price DESC",
	"quantity":     "inventory_quantity ASC",
	"-quantity":    "inventory_quantity DESC",
}

// GET /api/a/inventory
func (ic *InventoryController) ListInventory(c *fiber.Ctx) error {
	admin, err := authmw.GetAdminProfile(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 25, 100)

	q := ic.DB.Model(&model.InventoryModel{}).Where("inventory_assembly_id = ?", admin.AdminAssemblyID)
	if search := c.Query("q"); search != "" {
		like := "%" + search + "%"
		q = q.Where("inventory_name ILIKE ? OR inventory_brand ILIKE ? OR inventory_location ILIKE ?", like, like, like)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("inventory_status = ?", status)
	}
	if condition := c.Query("condition"); condition != "" {
		q = q.Where("inventory_condition = ?", condition)
	}

	order, ok := inventoryOrderColumns[c.Query("order_by")]
	if !ok {
		order = "inventory_created_at DESC"
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count inventory")
	}

	var items []model.InventoryModel
	if err := q.Order(order).
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch inventory")
	}

	return helper.JsonList(c, "", items, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/inventory/stats
func (ic *InventoryController) InventoryStats(c *fiber.Ctx) error {
	admin, err := authmw.GetAdminProfile(c)
	if err != nil {
		return err
	}

	base := func() *gorm.DB {
		return ic.DB.Model(&model.InventoryModel{}).
			Where("inventory_assembly_id = ?", admin.AdminAssemblyID)
	}

	var totalItems int64
	if err := base().Count(&totalItems).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute inventory stats")
	}

	var totalValue float64
	if err := base().Select("COALESCE(SUM(inventory_total_price), 0)").Scan(&totalValue).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute inventory stats")
	}

	byStatus := map[string]int64{}
	for _, status := range model.InventoryStatuses {
		var n int64
		if err := base().Where("inventory_status = ?", status).Count(&n).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute inventory stats")
		}
		byStatus[status] = n
	}

	byCondition := map[string]int64{}
	for _, condition := range model.InventoryConditions {
		var n int64
		if err := base().Where("inventory_condition = ?", condition).Count(&n).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute inventory stats")
		}
		byCondition[condition] = n
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"total_items":        totalItems,
		"total_value":        totalValue,
		"items_by_status":    byStatus,
		"items_by_condition": byCondition,
	})
}

// GET /api/a/inventory/:id
func (ic *InventoryController) GetInventory(c *fiber.Ctx) error {
	admin, err := authmw.GetAdminProfile(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid inventory id")
	}

	var item model.InventoryModel
	if err := ic.DB.First(&item, "inventory_id = ? AND inventory_assembly_id = ?", id, admin.AdminAssemblyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Inventory item not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch inventory item")
	}

	return helper.JsonOK(c, "OK", item)
}

// POST /api/a/inventory
func (ic *InventoryController) CreateInventory(c *fiber.Ctx) error {
	admin, err := authmw.GetAdminProfile(c)
	if err != nil {
		return err
	}

	var req dto.InventoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			return helper.JsonValidationError(c, helper.ValidatorFieldErrors(ve))
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	item := req.ToModelCreate(admin.AdminAssemblyID, &admin.AdminID)
	if err := ic.DB.Create(item).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create inventory item")
	}

	return helper.JsonCreated(c, "Inventory item created", item)
}

// PUT /api/a/inventory/:id
func (ic *InventoryController) UpdateInventory(c *fiber.Ctx) error {
	admin, err := authmw.GetAdminProfile(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid inventory id")
	}

	var item model.InventoryModel
	if err := ic.DB.First(&item, "inventory_id = ? AND inventory_assembly_id = ?", id, admin.AdminAssemblyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Inventory item not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch inventory item")
	}

	var req dto.InventoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			return helper.JsonValidationError(c, helper.ValidatorFieldErrors(ve))
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	req.ApplyToModel(&item)
	if err := ic.DB.Save(&item).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update inventory item")
	}

	return helper.JsonUpdated(c, "Inventory item updated", item)
}

// DELETE /api/a/inventory/:id
func (ic *InventoryController) DeleteInventory(c *fiber.Ctx) error {
	admin, err := authmw.GetAdminProfile(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid inventory id")
	}

	res := ic.DB.Delete(&model.InventoryModel{}, "inventory_id = ? AND inventory_assembly_id = ?", id, admin.AdminAssemblyID)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete inventory item")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Inventory item not found")
	}

	return helper.JsonDeleted(c, "Inventory item deleted", fiber.Map{"inventory_id": id})
}
