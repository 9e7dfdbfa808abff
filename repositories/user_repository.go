package repositories

import (
	"context"

	"github.com/abhishek98s/LITMARK-BACKEND2/models"

	"gorm.io/gorm"
)

type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) CountByEmail(_ context.Context, email string) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("email = ? AND isdeleted = ?", email, false).
		Count(&count).Error
	return count, err
}

func (r *GormUserRepository) Create(_ context.Context, tx *gorm.DB, user *models.User) error {
	return useTx(r.db, tx).Create(user).Error
}

func (r *GormUserRepository) GetByEmail(_ context.Context, tx *gorm.DB, email string) (models.User, error) {
	var user models.User
	err := useTx(r.db, tx).Where("email = ? AND isdeleted = ?", email, false).First(&user).Error
	return user, err
}

func (r *GormUserRepository) GetByID(_ context.Context, tx *gorm.DB, userID uint) (models.User, error) {
	var user models.User
	err := useTx(r.db, tx).Where("id = ? AND isdeleted = ?", userID, false).First(&user).Error
	return user, err
}

func (r *GormUserRepository) UpdateByID(_ context.Context, tx *gorm.DB, userID uint, updates map[string]interface{}) error {
	return useTx(r.db, tx).Model(&models.User{}).
		Where("id = ? AND isdeleted = ?", userID, false).
		Updates(updates).Error
}

func (r *GormUserRepository) SoftDeleteByID(_ context.Context, tx *gorm.DB, userID uint) error {
	return useTx(r.db, tx).Model(&models.User{}).
		Where("id = ? AND isdeleted = ?", userID, false).
		Update("isdeleted", true).Error
}
