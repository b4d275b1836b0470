// internals/features/church/admins/service/provisioner_service.go
package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	adminModel "sepcam_backend/internals/features/church/admins/model"
	memberModel "sepcam_backend/internals/features/church/members/model"
	authModel "sepcam_backend/internals/features/users/auth/model"
	authRepo "sepcam_backend/internals/features/users/auth/repository"
	authService "sepcam_backend/internals/features/users/auth/service"
	"sepcam_backend/internals/constants"
)

var ErrAdminLevelCellRequired = errors.New("a Cell-level admin must reference a cell")
var ErrAdminCellNotAllowed = errors.New("only Cell-level admins may reference a cell")
var ErrAdminCellForeignAssembly = errors.New("the cell belongs to another assembly")

// DeriveUsername builds the base login name from the member's names:
// "{first}.{last}" lower-cased.
func DeriveUsername(firstName, lastName string) string {
	first := strings.ToLower(strings.TrimSpace(firstName))
	last := strings.ToLower(strings.TrimSpace(lastName))
	return first + "." + last
}

// ResolveUsernameCollision appends 1, 2, 3... to base until taken() says
// free. The loop is bounded by the number of existing usernames, so it
// terminates. NOTE: check-then-create is not atomic; a concurrent create
// of the same name surfaces later as a unique violation, not a retry.
func ResolveUsernameCollision(base string, taken func(string) (bool, error)) (string, error) {
	candidate := base
	counter := 1
	for {
		exists, err := taken(candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s%d", base, counter)
		counter++
	}
}

// FallbackPassword is the historical default when no password is supplied.
// It is weak and predictable; kept for parity with the legacy rollout which
// expected first-time admins to log in with it and change it immediately.
func FallbackPassword(firstName string) string {
	return firstName + "sepcam"
}

// ValidateCellAssembly guards the tenant boundary: an admin's cell must sit
// in the admin's own assembly, otherwise the cell sync in Provision would
// enroll the member into a foreign assembly's cell.
func ValidateCellAssembly(cellAssemblyID, adminAssemblyID uuid.UUID) error {
	if cellAssemblyID != adminAssemblyID {
		return ErrAdminCellForeignAssembly
	}
	return nil
}

// CellSyncTarget reports whether saving an admin must move its bound member
// into the admin's cell. Only admins that carry a cell sync, and only when
// the member sits elsewhere; SUPERADMIN and MODERATOR admins have no cell
// and therefore never touch the member's.
func CellSyncTarget(adminCellID, memberCellID *uuid.UUID) (uuid.UUID, bool) {
	if adminCellID == nil {
		return uuid.Nil, false
	}
	if memberCellID != nil && *memberCellID == *adminCellID {
		return uuid.Nil, false
	}
	return *adminCellID, true
}

// ValidateLevelCell enforces the level/cell pairing invariant.
func ValidateLevelCell(level string, hasCell bool) error {
	switch level {
	case constants.LevelCell:
		if !hasCell {
			return ErrAdminLevelCellRequired
		}
	case constants.LevelSuperAdmin, constants.LevelModerator:
		if hasCell {
			return ErrAdminCellNotAllowed
		}
	}
	return nil
}

// Provision persists the admin profile and runs the two follow-up steps as
// one atomic unit:
//
//  1. save the admin row (create or update),
//  2. if it has no linked credential yet, create one (derived username,
//     supplied or fallback password, contact details copied from the member),
//  3. if the admin carries a cell and the bound member is in a different
//     cell, move the member into the admin's cell.
//
// Everything happens inside a single transaction, so a failed credential
// insert rolls back the admin row too.
func Provision(db *gorm.DB, admin *adminModel.AdminModel, password string) error {
	if admin == nil {
		return errors.New("nil admin")
	}
	if err := ValidateLevelCell(admin.AdminLevel, admin.AdminCellID != nil); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		// step 1: persist the profile first so later steps can reference it
		if err := tx.Save(admin).Error; err != nil {
			return err
		}

		var member memberModel.MemberModel
		if err := tx.First(&member, "member_id = ?", admin.AdminMemberID).Error; err != nil {
			return err
		}

		// step 2: provision the credential when missing
		if admin.AdminUserID == nil {
			user, err := provisionCredential(tx, &member, password)
			if err != nil {
				return err
			}
			admin.AdminUserID = &user.ID
			admin.User = user
			if err := tx.Model(&adminModel.AdminModel{}).
				Where("admin_id = ?", admin.AdminID).
				Update("admin_user_id", user.ID).Error; err != nil {
				return err
			}
		}

		// step 3: cell sync — assigning a Cell-level admin enrolls the
		// member into that cell. Levels without a cell never touch it.
		if target, ok := CellSyncTarget(admin.AdminCellID, member.MemberCellID); ok {
			if err := tx.Model(&memberModel.MemberModel{}).
				Where("member_id = ?", member.MemberID).
				Update("member_cell_id", target).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func provisionCredential(tx *gorm.DB, member *memberModel.MemberModel, password string) (*authModel.UserModel, error) {
	base := DeriveUsername(member.MemberFirstName, member.MemberLastName)
	username, err := ResolveUsernameCollision(base, func(candidate string) (bool, error) {
		return authRepo.UsernameExists(tx, candidate)
	})
	if err != nil {
		return nil, err
	}

	if password == "" {
		password = FallbackPassword(member.MemberFirstName)
	}
	hash, err := authService.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &authModel.UserModel{
		UserName:  username,
		Email:     member.MemberEmail,
		FirstName: member.MemberFirstName,
		LastName:  member.MemberLastName,
		Password:  hash,
		IsActive:  true,
	}
	if err := authRepo.CreateUser(tx, user); err != nil {
		return nil, err
	}
	return user, nil
}
