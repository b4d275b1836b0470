package controller

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sepcam_backend/internals/features/church/donations/dto"
	"sepcam_backend/internals/features/church/donations/model"
	donationService "sepcam_backend/internals/features/church/donations/service"
	memberModel "sepcam_backend/internals/features/church/members/model"
	helper "sepcam_backend/internals/helpers"
	authmw "sepcam_backend/internals/middlewares/auth"
)

type DonationController struct {
	DB *gorm.DB
}

func NewDonationController(db *gorm.DB) *DonationController {
	return &DonationController{DB: db}
}

// GET /api/a/donations
func (dc *DonationController) ListDonations(c *fiber.Ctx) error {
	admin, err := authmw.GetAdminProfile(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 25, 100)

	q := dc.DB.Model(&model.DonationModel{}).Where("donation_assembly_id = ?", admin.AdminAssemblyID)
	if dtype := c.Query("type"); dtype != "" {
		q = q.Where("donation_type = ?", dtype)
	}
	if method := c.Query("method"); method != "" {
		q = q.Where("donation_payment_method = ?", method)
	}
	if from := c.Query("date_from"); from != "" {
		t, perr := time.Parse("2006-01-02", from)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date_from, want YYYY-MM-DD")
		}
		q = q.Where("donation_date >= ?", t)
	}
	if to := c.Query("date_to"); to != "" {
		t, perr := time.Parse("2006-01-02", to)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date_to, want YYYY-MM-DD")
		}
		q = q.Where("donation_date <= ?", t)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count donations")
	}

	var donations []model.DonationModel
	if err := q.Preload("Member").
		Order("donation_date DESC, donation_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&donations).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch donations")
	}

	return helper.JsonList(c, "", donations, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/donations/summary — totals per type for the assembly
func (dc *DonationController) DonationSummary(c *fiber.Ctx) error {
	admin, err := authmw.GetAdminProfile(c)
	if err != nil {
		return err
	}

	type typeTotal struct {
		Type  string  `json:"type"`
		Total float64 `json:"total"`
		Count int64   `json:"count"`
	}

	var byType []typeTotal
	if err := dc.DB.Model(&model.DonationModel{}).
		Select("donation_type AS type, COALESCE(SUM(donation_amount), 0) AS total, COUNT(*) AS count").
		Where("donation_assembly_id = ? AND donation_payment_status = ?", admin.AdminAssemblyID, model.PaymentStatusPaid).
		Group("donation_type").
		Order("total DESC").
		Scan(&byType).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute donation summary")
	}

	var grandTotal float64
	for _, t := range byType {
		grandTotal += t.Total
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"grand_total": grandTotal,
		"by_type":     byType,
	})
}

// POST /api/a/donations
//
// Offline methods record the gift as PAID directly. ONLINE goes through
// Midtrans: the donation starts PENDING with a generated order id, and the
// response carries the Snap token for the payment page.
func (dc *DonationController) CreateDonation(c *fiber.Ctx) error {
	admin, err := authmw.GetAdminProfile(c)
	if err != nil {
		return err
	}

	var req dto.DonationRequest
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
	if err := dc.DB.First(&member, "member_id = ?", req.DonationMemberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Member not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch member")
	}
	if member.MemberAssemblyID != admin.AdminAssemblyID {
		return helper.JsonError(c, fiber.StatusForbidden, "Member belongs to another assembly")
	}

	donationDate := time.Now()
	if req.DonationDate != nil {
		donationDate = *req.DonationDate
	}

	donation := &model.DonationModel{
		DonationMemberID:      member.MemberID,
		DonationAssemblyID:    admin.AdminAssemblyID,
		DonationAmount:        req.DonationAmount,
		DonationType:          req.DonationType,
		DonationPaymentMethod: req.DonationPaymentMethod,
		DonationDate:          donationDate,
		DonationCheckNumber:   req.DonationCheckNumber,
		DonationNotes:         req.DonationNotes,
		DonationPaymentStatus: model.PaymentStatusPaid,
	}

	if req.DonationPaymentMethod == model.PaymentOnline {
		orderID := fmt.Sprintf("DONATION-%d", time.Now().UnixNano())
		donation.DonationOrderID = &orderID
		donation.DonationPaymentStatus = model.PaymentStatusPending
	}

	if err := dc.DB.Create(donation).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record donation")
	}

	if donation.DonationOrderID != nil {
		token, err := donationService.GenerateSnapToken(donation, member.FullName(), member.MemberEmail)
		if err != nil {
			log.Println("[ERROR] midtrans snap token:", err)
			return helper.JsonError(c, fiber.StatusBadGateway, "Failed to create a payment token")
		}
		return helper.JsonCreated(c, "Donation recorded, awaiting payment", fiber.Map{
			"donation":   donation,
			"snap_token": token,
		})
	}

	return helper.JsonCreated(c, "Donation recorded", donation)
}

// DELETE /api/a/donations/:id
func (dc *DonationController) DeleteDonation(c *fiber.Ctx) error {
	admin, err := authmw.GetAdminProfile(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid donation id")
	}

	res := dc.DB.Delete(&model.DonationModel{}, "donation_id = ? AND donation_assembly_id = ?", id, admin.AdminAssemblyID)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete donation")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Donation not found")
	}

	return helper.JsonDeleted(c, "Donation deleted", fiber.Map{"donation_id": id})
}

// POST /api/donations/notification — Midtrans webhook, no auth.
//
// Always answers 200 to acknowledged notifications so the gateway stops
// retrying; unknown order ids are logged and dropped.
func (dc *DonationController) HandlePaymentNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification payload")
	}

	orderID, _ := body["order_id"].(string)
	transactionStatus, _ := body["transaction_status"].(string)
	if orderID == "" || transactionStatus == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing order_id or transaction_status")
	}

	var donation model.DonationModel
	if err := dc.DB.First(&donation, "donation_order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("[INFO] webhook for unknown order:", orderID)
			return helper.JsonOK(c, "OK", fiber.Map{"order_id": orderID})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to look up donation")
	}

	donation.DonationPaymentStatus = donationService.MapTransactionStatus(transactionStatus)
	if err := dc.DB.Save(&donation).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update donation status")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"order_id": orderID,
		"status":   donation.DonationPaymentStatus,
	})
}
