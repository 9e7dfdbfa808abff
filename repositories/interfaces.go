package repositories

import (
	"context"
	"time"

	"github.com/abhishek98s/LITMARK-BACKEND2/models"

	"gorm.io/gorm"
)

type TxManager interface {
	WithTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type UserRepository interface {
	CountByEmail(ctx context.Context, email string) (int64, error)
	Create(ctx context.Context, tx *gorm.DB, user *models.User) error
	GetByEmail(ctx context.Context, tx *gorm.DB, email string) (models.User, error)
	GetByID(ctx context.Context, tx *gorm.DB, userID uint) (models.User, error)
	UpdateByID(ctx context.Context, tx *gorm.DB, userID uint, updates map[string]interface{}) error
	SoftDeleteByID(ctx context.Context, tx *gorm.DB, userID uint) error
}

type FolderRepository interface {
	GetByID(ctx context.Context, tx *gorm.DB, folderID uint) (models.Folder, error)
	GetByIDAndUser(ctx context.Context, tx *gorm.DB, folderID uint, userID uint) (models.Folder, error)
	ListTopByUser(ctx context.Context, tx *gorm.DB, userID uint) ([]models.Folder, error)
	ListByParent(ctx context.Context, tx *gorm.DB, userID uint, parentID uint) ([]models.Folder, error)
	ListByParentSorted(ctx context.Context, tx *gorm.DB, userID uint, parentID uint, column string, order string) ([]models.Folder, error)
	ListTopByUserSorted(ctx context.Context, tx *gorm.DB, userID uint, column string, order string) ([]models.Folder, error)
	Create(ctx context.Context, tx *gorm.DB, folder *models.Folder) error
	UpdateByID(ctx context.Context, tx *gorm.DB, folderID uint, updates map[string]interface{}) error
	SoftDeleteByID(ctx context.Context, tx *gorm.DB, folderID uint) error
}

type BookmarkRepository interface {
	GetByID(ctx context.Context, tx *gorm.DB, bookmarkID uint) (models.Bookmark, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uint) ([]models.Bookmark, error)
	ListByFolder(ctx context.Context, tx *gorm.DB, userID uint, folderID uint) ([]models.Bookmark, error)
	ListByFolderSorted(ctx context.Context, tx *gorm.DB, userID uint, folderID uint, column string, order string) ([]models.Bookmark, error)
	SearchByTitle(ctx context.Context, tx *gorm.DB, folderID uint, title string) ([]models.Bookmark, error)
	Create(ctx context.Context, tx *gorm.DB, bookmark *models.Bookmark) error
	UpdateByID(ctx context.Context, tx *gorm.DB, bookmarkID uint, updates map[string]interface{}) error
	SoftDeleteByID(ctx context.Context, tx *gorm.DB, bookmarkID uint) error
	SoftDeleteByFolderIDs(ctx context.Context, tx *gorm.DB, userID uint, folderIDs []uint) error
	ListRecentByUser(ctx context.Context, tx *gorm.DB, userID uint) ([]models.Bookmark, error)
	ListRecentByUserSorted(ctx context.Context, tx *gorm.DB, userID uint, column string, order string) ([]models.Bookmark, error)
	ListRecentByChip(ctx context.Context, tx *gorm.DB, userID uint, chipID uint) ([]models.Bookmark, error)
	SearchRecentByTitle(ctx context.Context, tx *gorm.DB, userID uint, title string) ([]models.Bookmark, error)
}

type ChipRepository interface {
	GetByIDAndUser(ctx context.Context, tx *gorm.DB, chipID uint, userID uint) (models.Chip, error)
	GetByFolderAndName(ctx context.Context, tx *gorm.DB, userID uint, folderID uint, name string) (models.Chip, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uint) ([]models.Chip, error)
	ListByFolder(ctx context.Context, tx *gorm.DB, userID uint, folderID uint) ([]models.Chip, error)
	Create(ctx context.Context, tx *gorm.DB, chip *models.Chip) error
	UpdateByID(ctx context.Context, tx *gorm.DB, chipID uint, updates map[string]interface{}) error
	SoftDeleteByID(ctx context.Context, tx *gorm.DB, chipID uint) error
}

type ImageRepository interface {
	GetByID(ctx context.Context, tx *gorm.DB, imageID uint) (models.Image, error)
	Create(ctx context.Context, tx *gorm.DB, image *models.Image) error
	UpdateByID(ctx context.Context, tx *gorm.DB, imageID uint, updates map[string]interface{}) error
	SoftDeleteByID(ctx context.Context, tx *gorm.DB, imageID uint) error
}

// PageInfo is the cached result of a page-lookup call, keyed by bookmark URL.
type PageInfo struct {
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
}

type LookupCacheRepository interface {
	Get(ctx context.Context, url string) (PageInfo, bool, error)
	Set(ctx context.Context, url string, info PageInfo, ttl time.Duration) error
}

type Container struct {
	TxManager   TxManager
	Users       UserRepository
	Folders     FolderRepository
	Bookmarks   BookmarkRepository
	Chips       ChipRepository
	Images      ImageRepository
	LookupCache LookupCacheRepository
}
