// internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "vahanhub_backend/internals/features/users/auth/model"
	userModel "vahanhub_backend/internals/features/users/user/model"
)

/* ====================== USER ====================== */

func FindUserByEmailOrUsername(db *gorm.DB, identifier string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("email = ? OR user_name = ?", identifier, identifier).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByGoogleID(db *gorm.DB, googleID string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("google_id = ?", googleID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(db *gorm.DB, userID uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByEmail(db *gorm.DB, email string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func CreateUser(db *gorm.DB, user *userModel.UserModel) error {
	return db.Create(user).Error
}

func UpdateUserPassword(db *gorm.DB, userID uuid.UUID, newPassword string) error {
	return db.Model(&userModel.UserModel{}).Where("id = ?", userID).Update("password", newPassword).Error
}

func IsUsernameTaken(db *gorm.DB, username string) (bool, error) {
	if username == "" {
		return false, errors.New("username cannot be empty")
	}
	var exists bool
	err := db.
		Raw(`SELECT EXISTS(SELECT 1 FROM users WHERE user_name = ? AND deleted_at IS NULL)`, username).
		Scan(&exists).Error
	if err != nil {
		return false, err
	}
	return exists, nil
}

/* ====================== REFRESH TOKEN ====================== */

func CreateRefreshToken(db *gorm.DB, token *authModel.RefreshTokenModel) error {
	return db.Create(token).Error
}

func RefreshTokenHashExists(db *gorm.DB, hash []byte) (bool, error) {
	var exists bool
	err := db.
		Raw(`SELECT EXISTS(
		       SELECT 1 FROM refresh_tokens
		       WHERE token = ? AND revoked_at IS NULL AND expires_at > NOW()
		     )`, hash).
		Scan(&exists).Error
	return exists, err
}

func DeleteRefreshTokenByHash(db *gorm.DB, hash []byte) error {
	return db.Where("token = ?", hash).Delete(&authModel.RefreshTokenModel{}).Error
}

func RevokeAllRefreshTokensForUser(db *gorm.DB, userID uuid.UUID) error {
	now := time.Now().UTC()
	return db.Model(&authModel.RefreshTokenModel{}).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Update("revoked_at", now).Error
}

/* ====================== BLACKLIST TOKEN ====================== */

func BlacklistToken(db *gorm.DB, token string, ttl time.Duration) error {
	return db.Create(&authModel.TokenBlacklistModel{
		Token:     token,
		ExpiredAt: time.Now().UTC().Add(ttl),
	}).Error
}

func IsTokenBlacklisted(db *gorm.DB, token string) (bool, error) {
	var exists bool
	err := db.
		Raw(`SELECT EXISTS(
		       SELECT 1 FROM token_blacklist
		       WHERE token = ? AND expired_at > NOW() AND deleted_at IS NULL
		     )`, token).
		Scan(&exists).Error
	return exists, err
}

func CleanupExpiredBlacklist(db *gorm.DB) (int64, error) {
	res := db.Exec(`DELETE FROM token_blacklist WHERE expired_at <= ?`, time.Now().UTC())
	return res.RowsAffected, res.Error
}
