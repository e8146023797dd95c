package repositories

import (
	"strings"
	"time"

	"jits_backend/internal/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	FindByID(db *gorm.DB, id string) (*models.User, error)
	FindByEmail(db *gorm.DB, email string) (*models.User, error)
	// FindByResetTokenHash ищет пользователя с действующим (не истекшим) токеном сброса
	FindByResetTokenHash(db *gorm.DB, hash string, now time.Time) (*models.User, error)
	Create(db *gorm.DB, user *models.User) error
	Update(db *gorm.DB, user *models.User) error
	CountByRole(db *gorm.DB, role models.UserRole) (int64, error)
	// ClearExpiredResetTokens обнуляет просроченные токены сброса, возвращает число строк
	ClearExpiredResetTokens(db *gorm.DB, now time.Time) (int64, error)
}

type UserRepositoryImpl struct{}

func NewUserRepository() UserRepository {
	return &UserRepositoryImpl{}
}

func (r *UserRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	if err := db.First(&user, "email = ?", strings.ToLower(strings.TrimSpace(email))).Error; err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByResetTokenHash(db *gorm.DB, hash string, now time.Time) (*models.User, error) {
	var user models.User
	err := db.Where("reset_token_hash = ? AND reset_token_expires_at > ?", hash, now).
		First(&user).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(db *gorm.DB, user *models.User) error {
	return translateError(db.Create(user).Error)
}

// Update сохраняет все поля, включая обнуленные поля сброса пароля
func (r *UserRepositoryImpl) Update(db *gorm.DB, user *models.User) error {
	return translateError(db.Save(user).Error)
}

func (r *UserRepositoryImpl) CountByRole(db *gorm.DB, role models.UserRole) (int64, error) {
	var count int64
	err := db.Model(&models.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

func (r *UserRepositoryImpl) ClearExpiredResetTokens(db *gorm.DB, now time.Time) (int64, error) {
	result := db.Model(&models.User{}).
		Where("reset_token_hash IS NOT NULL AND reset_token_expires_at <= ?", now).
		Updates(map[string]interface{}{
			"reset_token_hash":       nil,
			"reset_token_expires_at": nil,
		})
	return result.RowsAffected, result.Error
}
