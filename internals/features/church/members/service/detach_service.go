package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	committeeModel "sepcam_backend/internals/features/church/committees/model"
)

// DetachMemberReferences releases every row that still points at a member
// before the member row is soft-deleted. Soft deletes keep the row, so the
// SQL-level SET NULL / CASCADE actions never fire; leadership slots and
// committee rosters have to be cleared by hand, inside the same transaction
// as the delete.
func DetachMemberReferences(tx *gorm.DB, memberID uuid.UUID) error {
	if err := tx.Table("units").
		Where("unit_leader_id = ?", memberID).
		Update("unit_leader_id", nil).Error; err != nil {
		return err
	}

	if err := tx.Table("committees").
		Where("committee_leader_id = ?", memberID).
		Update("committee_leader_id", nil).Error; err != nil {
		return err
	}

	return tx.Where("committee_membership_member_id = ?", memberID).
		Delete(&committeeModel.CommitteeMembershipModel{}).Error
}
