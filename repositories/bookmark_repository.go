package repositories

import (
	"context"

	"github.com/abhishek98s/LITMARK-BACKEND2/models"

	"gorm.io/gorm"
)

type GormBookmarkRepository struct {
	db *gorm.DB
}

func NewGormBookmarkRepository(db *gorm.DB) *GormBookmarkRepository {
	return &GormBookmarkRepository{db: db}
}

func (r *GormBookmarkRepository) GetByID(_ context.Context, tx *gorm.DB, bookmarkID uint) (models.Bookmark, error) {
	var bookmark models.Bookmark
	err := useTx(r.db, tx).Where("id = ? AND isdeleted = ?", bookmarkID, false).First(&bookmark).Error
	return bookmark, err
}

func (r *GormBookmarkRepository) ListByUser(_ context.Context, tx *gorm.DB, userID uint) ([]models.Bookmark, error) {
	var bookmarks []models.Bookmark
	err := useTx(r.db, tx).
		Where("user_id = ? AND isdeleted = ?", userID, false).
		Find(&bookmarks).Error
	return bookmarks, err
}

func (r *GormBookmarkRepository) ListByFolder(_ context.Context, tx *gorm.DB, userID uint, folderID uint) ([]models.Bookmark, error) {
	var bookmarks []models.Bookmark
	err := useTx(r.db, tx).
		Where("user_id = ? AND folder_id = ? AND isdeleted = ?", userID, folderID, false).
		Find(&bookmarks).Error
	return bookmarks, err
}

func (r *GormBookmarkRepository) ListByFolderSorted(_ context.Context, tx *gorm.DB, userID uint, folderID uint, column string, order string) ([]models.Bookmark, error) {
	var bookmarks []models.Bookmark
	err := useTx(r.db, tx).
		Where("user_id = ? AND folder_id = ? AND isdeleted = ?", userID, folderID, false).
		Order(column + " " + order).
		Find(&bookmarks).Error
	return bookmarks, err
}

func (r *GormBookmarkRepository) SearchByTitle(_ context.Context, tx *gorm.DB, folderID uint, title string) ([]models.Bookmark, error) {
	var bookmarks []models.Bookmark
	err := useTx(r.db, tx).
		Where("folder_id = ? AND isdeleted = ?", folderID, false).
		Where("LOWER(title) LIKE LOWER(?)", "%"+title+"%").
		Find(&bookmarks).Error
	return bookmarks, err
}

func (r *GormBookmarkRepository) Create(_ context.Context, tx *gorm.DB, bookmark *models.Bookmark) error {
	return useTx(r.db, tx).Create(bookmark).Error
}

func (r *GormBookmarkRepository) UpdateByID(_ context.Context, tx *gorm.DB, bookmarkID uint, updates map[string]interface{}) error {
	return useTx(r.db, tx).Model(&models.Bookmark{}).
		Where("id = ? AND isdeleted = ?", bookmarkID, false).
		Updates(updates).Error
}

func (r *GormBookmarkRepository) SoftDeleteByID(_ context.Context, tx *gorm.DB, bookmarkID uint) error {
	return useTx(r.db, tx).Model(&models.Bookmark{}).
		Where("id = ? AND isdeleted = ?", bookmarkID, false).
		Update("isdeleted", true).Error
}

func (r *GormBookmarkRepository) SoftDeleteByFolderIDs(_ context.Context, tx *gorm.DB, userID uint, folderIDs []uint) error {
	if len(folderIDs) == 0 {
		return nil
	}
	return useTx(r.db, tx).Model(&models.Bookmark{}).
		Where("user_id = ? AND folder_id IN ?", userID, folderIDs).
		Update("isdeleted", true).Error
}

func (r *GormBookmarkRepository) ListRecentByUser(_ context.Context, tx *gorm.DB, userID uint) ([]models.Bookmark, error) {
	var bookmarks []models.Bookmark
	err := useTx(r.db, tx).
		Where("user_id = ? AND isdeleted = ? AND click_date IS NOT NULL", userID, false).
		Order("click_date DESC").
		Find(&bookmarks).Error
	return bookmarks, err
}

func (r *GormBookmarkRepository) ListRecentByUserSorted(_ context.Context, tx *gorm.DB, userID uint, column string, order string) ([]models.Bookmark, error) {
	var bookmarks []models.Bookmark
	err := useTx(r.db, tx).
		Where("user_id = ? AND isdeleted = ? AND click_date IS NOT NULL", userID, false).
		Order(column + " " + order).
		Find(&bookmarks).Error
	return bookmarks, err
}

func (r *GormBookmarkRepository) ListRecentByChip(_ context.Context, tx *gorm.DB, userID uint, chipID uint) ([]models.Bookmark, error) {
	var bookmarks []models.Bookmark
	err := useTx(r.db, tx).
		Where("user_id = ? AND chip_id = ? AND isdeleted = ? AND click_date IS NOT NULL", userID, chipID, false).
		Find(&bookmarks).Error
	return bookmarks, err
}

func (r *GormBookmarkRepository) SearchRecentByTitle(_ context.Context, tx *gorm.DB, userID uint, title string) ([]models.Bookmark, error) {
	var bookmarks []models.Bookmark
	err := useTx(r.db, tx).
		Where("user_id = ? AND isdeleted = ? AND click_date IS NOT NULL", userID, false).
		Where("LOWER(title) LIKE LOWER(?)", "%"+title+"%").
		Find(&bookmarks).Error
	return bookmarks, err
}
