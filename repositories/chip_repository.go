package repositories

import (
	"context"

	"github.com/abhishek98s/LITMARK-BACKEND2/models"

	"gorm.io/gorm"
)

type GormChipRepository struct {
	db *gorm.DB
}

func NewGormChipRepository(db *gorm.DB) *GormChipRepository {
	return &GormChipRepository{db: db}
}

func (r *GormChipRepository) GetByIDAndUser(_ context.Context, tx *gorm.DB, chipID uint, userID uint) (models.Chip, error) {
	var chip models.Chip
	err := useTx(r.db, tx).
		Where("id = ? AND user_id = ? AND isdeleted = ?", chipID, userID, false).
		First(&chip).Error
	return chip, err
}

func (r *GormChipRepository) GetByFolderAndName(_ context.Context, tx *gorm.DB, userID uint, folderID uint, name string) (models.Chip, error) {
	var chip models.Chip
	err := useTx(r.db, tx).
		Where("user_id = ? AND folder_id = ? AND name = ? AND isdeleted = ?", userID, folderID, name, false).
		First(&chip).Error
	return chip, err
}

func (r *GormChipRepository) ListByUser(_ context.Context, tx *gorm.DB, userID uint) ([]models.Chip, error) {
	var chips []models.Chip
	err := useTx(r.db, tx).
		Where("user_id = ? AND isdeleted = ?", userID, false).
		Find(&chips).Error
	return chips, err
}

func (r *GormChipRepository) ListByFolder(_ context.Context, tx *gorm.DB, userID uint, folderID uint) ([]models.Chip, error) {
	var chips []models.Chip
	err := useTx(r.db, tx).
		Where("user_id = ? AND folder_id = ? AND isdeleted = ?", userID, folderID, false).
		Find(&chips).Error
	return chips, err
}

func (r *GormChipRepository) Create(_ context.Context, tx *gorm.DB, chip *models.Chip) error {
	return useTx(r.db, tx).Create(chip).Error
}

func (r *GormChipRepository) UpdateByID(_ context.Context, tx *gorm.DB, chipID uint, updates map[string]interface{}) error {
	return useTx(r.db, tx).Model(&models.Chip{}).
		Where("id = ? AND isdeleted = ?", chipID, false).
		Updates(updates).Error
}

func (r *GormChipRepository) SoftDeleteByID(_ context.Context, tx *gorm.DB, chipID uint) error {
	return useTx(r.db, tx).Model(&models.Chip{}).
		Where("id = ? AND isdeleted = ?", chipID, false).
		Update("isdeleted", true).Error
}
