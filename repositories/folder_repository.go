package repositories

import (
	"context"

	"github.com/abhishek98s/LITMARK-BACKEND2/models"

	"gorm.io/gorm"
)

type GormFolderRepository struct {
	db *gorm.DB
}

func NewGormFolderRepository(db *gorm.DB) *GormFolderRepository {
	return &GormFolderRepository{db: db}
}

func (r *GormFolderRepository) GetByID(_ context.Context, tx *gorm.DB, folderID uint) (models.Folder, error) {
	var folder models.Folder
	err := useTx(r.db, tx).Where("id = ? AND isdeleted = ?", folderID, false).First(&folder).Error
	return folder, err
}

func (r *GormFolderRepository) GetByIDAndUser(_ context.Context, tx *gorm.DB, folderID uint, userID uint) (models.Folder, error) {
	var folder models.Folder
	err := useTx(r.db, tx).
		Where("id = ? AND user_id = ? AND isdeleted = ?", folderID, userID, false).
		First(&folder).Error
	return folder, err
}

func (r *GormFolderRepository) ListTopByUser(_ context.Context, tx *gorm.DB, userID uint) ([]models.Folder, error) {
	var folders []models.Folder
	err := useTx(r.db, tx).
		Where("user_id = ? AND folder_id IS NULL AND isdeleted = ?", userID, false).
		Order("name ASC").
		Find(&folders).Error
	return folders, err
}

func (r *GormFolderRepository) ListByParent(_ context.Context, tx *gorm.DB, userID uint, parentID uint) ([]models.Folder, error) {
	var folders []models.Folder
	err := useTx(r.db, tx).
		Where("user_id = ? AND folder_id = ? AND isdeleted = ?", userID, parentID, false).
		Order("name ASC").
		Find(&folders).Error
	return folders, err
}

func (r *GormFolderRepository) ListByParentSorted(_ context.Context, tx *gorm.DB, userID uint, parentID uint, column string, order string) ([]models.Folder, error) {
	var folders []models.Folder
	err := useTx(r.db, tx).
		Where("user_id = ? AND folder_id = ? AND isdeleted = ?", userID, parentID, false).
		Order(column + " " + order).
		Find(&folders).Error
	return folders, err
}

func (r *GormFolderRepository) ListTopByUserSorted(_ context.Context, tx *gorm.DB, userID uint, column string, order string) ([]models.Folder, error) {
	var folders []models.Folder
	err := useTx(r.db, tx).
		Where("user_id = ? AND folder_id IS NULL AND isdeleted = ?", userID, false).
		Order(column + " " + order).
		Find(&folders).Error
	return folders, err
}

func (r *GormFolderRepository) Create(_ context.Context, tx *gorm.DB, folder *models.Folder) error {
	return useTx(r.db, tx).Create(folder).Error
}

func (r *GormFolderRepository) UpdateByID(_ context.Context, tx *gorm.DB, folderID uint, updates map[string]interface{}) error {
	return useTx(r.db, tx).Model(&models.Folder{}).
		Where("id = ? AND isdeleted = ?", folderID, false).
		Updates(updates).Error
}

func (r *GormFolderRepository) SoftDeleteByID(_ context.Context, tx *gorm.DB, folderID uint) error {
	return useTx(r.db, tx).Model(&models.Folder{}).
		Where("id = ? AND isdeleted = ?", folderID, false).
		Update("isdeleted", true).Error
}
