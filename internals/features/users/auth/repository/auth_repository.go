// internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "sepcam_backend/internals/features/users/auth/model"
)

/* ====================== USER ====================== */

func FindUserByEmailOrUsername(db *gorm.DB, identifier string) (*authModel.UserModel, error) {
	var user authModel.UserModel
	if err := db.Where("email = ? OR user_name = ?", identifier, identifier).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(db *gorm.DB, userID uuid.UUID) (*authModel.UserModel, error) {
	var user authModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func UsernameExists(db *gorm.DB, username string) (bool, error) {
	var cnt int64
	if err := db.Model(&authModel.UserModel{}).Where("user_name = ?", username).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func EmailExists(db *gorm.DB, email string) (bool, error) {
	var cnt int64
	if err := db.Model(&authModel.UserModel{}).Where("email = ?", email).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func CreateUser(db *gorm.DB, user *authModel.UserModel) error {
	return db.Create(user).Error
}

func UpdateUserPassword(db *gorm.DB, userID uuid.UUID, hash string) error {
	return db.Model(&authModel.UserModel{}).Where("id = ?", userID).Update("password", hash).Error
}

/* ====================== TOKEN BLACKLIST ====================== */

func BlacklistToken(db *gorm.DB, token string, expiredAt time.Time) error {
	return db.Create(&authModel.TokenBlacklist{
		Token:     token,
		ExpiredAt: expiredAt,
	}).Error
}

// DeleteExpiredBlacklistEntries clears rows whose tokens are past expiry;
// run periodically by the scheduler.
func DeleteExpiredBlacklistEntries(db *gorm.DB) (int64, error) {
	res := db.Unscoped().
		Where("expired_at < ?", time.Now()).
		Delete(&authModel.TokenBlacklist{})
	return res.RowsAffected, res.Error
}
