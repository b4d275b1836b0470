package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	Assembly "sepcam_backend/internals/features/church/assemblies/model"
	Member "sepcam_backend/internals/features/church/members/model"
)

// Donation types
const (
	DonationTithe        = "TITHE"
	DonationOffering     = "OFFERING"
	DonationBuildingFund = "BUILDING_FUND"
	DonationMissions     = "MISSIONS"
	DonationOther        = "OTHER"
)

// Payment methods
const (
	PaymentCash   = "CASH"
	PaymentCheck  = "CHECK"
	PaymentCard   = "CARD"
	PaymentOnline = "ONLINE"
	PaymentOther  = "OTHER"
)

// Online payment status (Midtrans-backed ONLINE donations only)
const (
	PaymentStatusPending = "PENDING"
	PaymentStatusPaid    = "PAID"
	PaymentStatusFailed  = "FAILED"
	PaymentStatusExpired = "EXPIRED"
)

var (
	DonationTypes  = []string{DonationTithe, DonationOffering, DonationBuildingFund, DonationMissions, DonationOther}
	PaymentMethods = []string{PaymentCash, PaymentCheck, PaymentCard, PaymentOnline, PaymentOther}
)

type DonationModel struct {
	// PK
	DonationID uuid.UUID `gorm:"column:donation_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"donation_id"`

	// FK
	DonationMemberID   uuid.UUID `gorm:"column:donation_member_id;type:uuid;not null;index" json:"donation_member_id"`
	DonationAssemblyID uuid.UUID `gorm:"column:donation_assembly_id;type:uuid;not null;index" json:"donation_assembly_id"`

	Member   Member.MemberModel     `gorm:"foreignKey:DonationMemberID;references:MemberID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"member,omitempty"`
	Assembly Assembly.AssemblyModel `gorm:"foreignKey:DonationAssemblyID;references:AssemblyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"assembly,omitempty"`

	DonationAmount        float64   `gorm:"column:donation_amount;type:numeric(10,2);not null" json:"donation_amount"`
	DonationType          string    `gorm:"column:donation_type;size:20;not null;index" json:"donation_type"`
	DonationPaymentMethod string    `gorm:"column:donation_payment_method;size:10;not null" json:"donation_payment_method"`
	DonationDate          time.Time `gorm:"column:donation_date;type:date;not null;index" json:"donation_date"`
	DonationCheckNumber   string    `gorm:"column:donation_check_number;size:50" json:"donation_check_number"`
	DonationNotes         string    `gorm:"column:donation_notes;type:text" json:"donation_notes"`

	// ONLINE payments only: Midtrans order id + status updated by webhook.
	// NULL for offline methods so the unique index stays clean.
	DonationOrderID       *string `gorm:"column:donation_order_id;size:64;uniqueIndex" json:"donation_order_id,omitempty"`
	DonationPaymentStatus string  `gorm:"column:donation_payment_status;size:10;not null;default:'PAID'" json:"donation_payment_status"`

	DonationCreatedAt time.Time      `gorm:"column:donation_created_at;autoCreateTime" json:"donation_created_at"`
	DonationDeletedAt gorm.DeletedAt `gorm:"column:donation_deleted_at;index" json:"donation_deleted_at,omitempty"`
}

func (DonationModel) TableName() string {
	return "donations"
}
