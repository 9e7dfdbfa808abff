package repositories

import (
	"context"

	"github.com/abhishek98s/LITMARK-BACKEND2/models"

	"gorm.io/gorm"
)

type GormImageRepository struct {
	db *gorm.DB
}

func NewGormImageRepository(db *gorm.DB) *GormImageRepository {
	return &GormImageRepository{db: db}
}

func (r *GormImageRepository) GetByID(_ context.Context, tx *gorm.DB, imageID uint) (models.Image, error) {
	var image models.Image
	err := useTx(r.db, tx).Where("id = ? AND isdeleted = ?", imageID, false).First(&image).Error
	return image, err
}

func (r *GormImageRepository) Create(_ context.Context, tx *gorm.DB, image *models.Image) error {
	return useTx(r.db, tx).Create(image).Error
}

func (r *GormImageRepository) UpdateByID(_ context.Context, tx *gorm.DB, imageID uint, updates map[string]interface{}) error {
	return useTx(r.db, tx).Model(&models.Image{}).
		Where("id = ? AND isdeleted = ?", imageID, false).
		Updates(updates).Error
}

func (r *GormImageRepository) SoftDeleteByID(_ context.Context, tx *gorm.DB, imageID uint) error {
	return useTx(r.db, tx).Model(&models.Image{}).
		Where("id = ? AND isdeleted = ?", imageID, false).
		Update("isdeleted", true).Error
}
