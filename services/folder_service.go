package services

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/abhishek98s/LITMARK-BACKEND2/config"
	"github.com/abhishek98s/LITMARK-BACKEND2/models"
	"github.com/abhishek98s/LITMARK-BACKEND2/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateFolderInput struct {
	Name     string
	ParentID *uint
	ImageID  uint
	UserID   uint
	Actor    string
}

type UpdateFolderInput struct {
	Name    string
	ImageID uint
	UserID  uint
	Actor   string
}

type FolderService interface {
	ListTopFolders(ctx context.Context, userID uint) ([]models.Folder, error)
	ListChildFolders(ctx context.Context, userID uint, parentID uint) ([]models.Folder, error)
	GetFolder(ctx context.Context, folderID uint) (models.Folder, error)
	CreateFolder(ctx context.Context, in CreateFolderInput) (models.Folder, error)
	RenameFolder(ctx context.Context, folderID uint, in UpdateFolderInput) (models.Folder, error)
	MoveFolder(ctx context.Context, userID uint, folderID uint, newParentID *uint, actor string) (models.Folder, error)
	DeleteFolder(ctx context.Context, userID uint, folderID uint) error
	SortFolders(ctx context.Context, userID uint, parentID *uint, field string, order string) ([]models.Folder, error)
}

type folderService struct {
	txManager TxManager
	folders   repositories.FolderRepository
	bookmarks repositories.BookmarkRepository
	images    repositories.ImageRepository
}

func NewFolderService(
	txManager TxManager,
	folders repositories.FolderRepository,
	bookmarks repositories.BookmarkRepository,
	images repositories.ImageRepository,
) FolderService {
	return &folderService{
		txManager: txManager,
		folders:   folders,
		bookmarks: bookmarks,
		images:    images,
	}
}

var folderSortColumns = map[string]string{
	"date": "created_at",
	"name": "name",
}

func (s *folderService) ListTopFolders(ctx context.Context, userID uint) ([]models.Folder, error) {
	folders, err := s.folders.ListTopByUser(ctx, nil, userID)
	if err != nil {
		return nil, newAppError(http.StatusInternalServerError, "failed to list folders", err)
	}
	return folders, nil
}

func (s *folderService) ListChildFolders(ctx context.Context, userID uint, parentID uint) ([]models.Folder, error) {
	if _, err := s.folders.GetByIDAndUser(ctx, nil, parentID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newAppError(http.StatusNotFound, "folder not found", nil)
		}
		return nil, newAppError(http.StatusInternalServerError, "failed to query folder", err)
	}

	folders, err := s.folders.ListByParent(ctx, nil, userID, parentID)
	if err != nil {
		return nil, newAppError(http.StatusInternalServerError, "failed to list folders", err)
	}
	return folders, nil
}

func (s *folderService) GetFolder(ctx context.Context, folderID uint) (models.Folder, error) {
	folder, err := s.folders.GetByID(ctx, nil, folderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Folder{}, newAppError(http.StatusNotFound, "folder not found", nil)
		}
		return models.Folder{}, newAppError(http.StatusInternalServerError, "failed to query folder", err)
	}
	return folder, nil
}

func (s *folderService) CreateFolder(ctx context.Context, in CreateFolderInput) (models.Folder, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.Folder{}, newAppError(http.StatusBadRequest, "folder name is required", nil)
	}

	if in.ParentID != nil {
		if _, err := s.folders.GetByIDAndUser(ctx, nil, *in.ParentID, in.UserID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.Folder{}, newAppError(http.StatusNotFound, "parent folder not found", nil)
			}
			return models.Folder{}, newAppError(http.StatusInternalServerError, "failed to query parent folder", err)
		}
	}

	imageID := in.ImageID
	if imageID == 0 {
		defaultID, err := s.defaultFolderImage(ctx, in.Actor)
		if err != nil {
			return models.Folder{}, newAppError(http.StatusInternalServerError, "failed to prepare folder image", err)
		}
		imageID = defaultID
	}

	folder := models.Folder{
		Name:      name,
		ImageID:   imageID,
		UserID:    in.UserID,
		FolderID:  in.ParentID,
		CreatedBy: in.Actor,
		UpdatedBy: in.Actor,
	}
	if err := s.folders.Create(ctx, nil, &folder); err != nil {
		return models.Folder{}, newAppError(http.StatusInternalServerError, "failed to create folder", err)
	}

	// Re-read instead of trusting the insert result shape.
	created, err := s.folders.GetByIDAndUser(ctx, nil, folder.ID, in.UserID)
	if err != nil {
		return models.Folder{}, newAppError(http.StatusInternalServerError, "failed to load created folder", err)
	}
	return created, nil
}

func (s *folderService) RenameFolder(ctx context.Context, folderID uint, in UpdateFolderInput) (models.Folder, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.Folder{}, newAppError(http.StatusBadRequest, "folder name is required", nil)
	}

	folder, err := s.folders.GetByIDAndUser(ctx, nil, folderID, in.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Folder{}, newAppError(http.StatusNotFound, "folder not found", nil)
		}
		return models.Folder{}, newAppError(http.StatusInternalServerError, "failed to query folder", err)
	}

	updates := map[string]interface{}{
		"name":       name,
		"updated_by": in.Actor,
	}
	if in.ImageID != 0 {
		updates["image_id"] = in.ImageID
	}
	if err := s.folders.UpdateByID(ctx, nil, folder.ID, updates); err != nil {
		return models.Folder{}, newAppError(http.StatusInternalServerError, "failed to rename folder", err)
	}

	updated, err := s.folders.GetByIDAndUser(ctx, nil, folder.ID, in.UserID)
	if err != nil {
		return models.Folder{}, newAppError(http.StatusInternalServerError, "failed to load renamed folder", err)
	}
	return updated, nil
}

func (s *folderService) MoveFolder(ctx context.Context, userID uint, folderID uint, newParentID *uint, actor string) (models.Folder, error) {
	folder, err := s.folders.GetByIDAndUser(ctx, nil, folderID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Folder{}, newAppError(http.StatusNotFound, "folder not found", nil)
		}
		return models.Folder{}, newAppError(http.StatusInternalServerError, "failed to query folder", err)
	}

	if newParentID != nil {
		if *newParentID == folder.ID {
			return models.Folder{}, newAppError(http.StatusBadRequest, "folder cannot be its own parent", nil)
		}
		parent, err := s.folders.GetByIDAndUser(ctx, nil, *newParentID, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.Folder{}, newAppError(http.StatusNotFound, "parent folder not found", nil)
			}
			return models.Folder{}, newAppError(http.StatusInternalServerError, "failed to query parent folder", err)
		}

		inSubtree, err := s.isInSubtree(ctx, userID, parent, folder.ID)
		if err != nil {
			return models.Folder{}, newAppError(http.StatusInternalServerError, "failed to check folder ancestry", err)
		}
		if inSubtree {
			return models.Folder{}, newAppError(http.StatusBadRequest, "folder cannot be moved into its own subtree", nil)
		}
	}

	var parentValue interface{}
	if newParentID != nil {
		parentValue = *newParentID
	}
	updates := map[string]interface{}{
		"folder_id":  parentValue,
		"updated_by": actor,
	}
	if err := s.folders.UpdateByID(ctx, nil, folder.ID, updates); err != nil {
		return models.Folder{}, newAppError(http.StatusInternalServerError, "failed to move folder", err)
	}

	moved, err := s.folders.GetByIDAndUser(ctx, nil, folder.ID, userID)
	if err != nil {
		return models.Folder{}, newAppError(http.StatusInternalServerError, "failed to load moved folder", err)
	}
	return moved, nil
}

// isInSubtree walks the parent chain upward from start and reports whether
// targetID occurs on it. The visited set terminates the walk on corrupted
// cyclic chains.
func (s *folderService) isInSubtree(ctx context.Context, userID uint, start models.Folder, targetID uint) (bool, error) {
	visited := map[uint]bool{}
	current := start
	for {
		if current.ID == targetID {
			return true, nil
		}
		if current.FolderID == nil {
			return false, nil
		}
		if visited[current.ID] {
			return true, nil
		}
		visited[current.ID] = true

		parent, err := s.folders.GetByIDAndUser(ctx, nil, *current.FolderID, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return false, nil
			}
			return false, err
		}
		current = parent
	}
}

// DeleteFolder soft-deletes the folder, every folder reachable beneath it and
// all bookmarks inside any affected folder. The whole cascade runs in one
// transaction so a failing step leaves nothing half-deleted.
func (s *folderService) DeleteFolder(ctx context.Context, userID uint, folderID uint) error {
	folder, err := s.folders.GetByIDAndUser(ctx, nil, folderID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return newAppError(http.StatusNotFound, "folder not found", nil)
		}
		return newAppError(http.StatusInternalServerError, "failed to query folder", err)
	}

	err = s.txManager.WithTransaction(ctx, func(tx *gorm.DB) error {
		visited := map[uint]bool{}
		return s.deleteSubtree(ctx, tx, userID, folder.ID, visited)
	})
	if err != nil {
		return newAppError(http.StatusInternalServerError, "failed to delete folder", err)
	}
	return nil
}

// deleteSubtree removes the subtree rooted at folderID depth-first: children
// before the folder itself, bookmarks at every level. The visited set makes
// the walk terminate even if a parent chain has been corrupted into a cycle.
func (s *folderService) deleteSubtree(ctx context.Context, tx *gorm.DB, userID uint, folderID uint, visited map[uint]bool) error {
	if visited[folderID] {
		return nil
	}
	visited[folderID] = true

	children, err := s.folders.ListByParent(ctx, tx, userID, folderID)
	if err != nil {
		return err
	}
	for _, child := range children {
		if err := s.deleteSubtree(ctx, tx, userID, child.ID, visited); err != nil {
			return err
		}
	}

	if err := s.folders.SoftDeleteByID(ctx, tx, folderID); err != nil {
		return err
	}
	return s.bookmarks.SoftDeleteByFolderIDs(ctx, tx, userID, []uint{folderID})
}

func (s *folderService) SortFolders(ctx context.Context, userID uint, parentID *uint, field string, order string) ([]models.Folder, error) {
	column, ok := folderSortColumns[field]
	if !ok {
		return nil, newAppError(http.StatusBadRequest, "sort field must be date or name", nil)
	}
	if order != "asc" && order != "desc" {
		return nil, newAppError(http.StatusBadRequest, "sort order must be asc or desc", nil)
	}

	if parentID == nil {
		folders, err := s.folders.ListTopByUserSorted(ctx, nil, userID, column, order)
		if err != nil {
			return nil, newAppError(http.StatusInternalServerError, "failed to sort folders", err)
		}
		return folders, nil
	}

	if _, err := s.folders.GetByIDAndUser(ctx, nil, *parentID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newAppError(http.StatusNotFound, "folder not found", nil)
		}
		return nil, newAppError(http.StatusInternalServerError, "failed to query folder", err)
	}

	folders, err := s.folders.ListByParentSorted(ctx, nil, userID, *parentID, column, order)
	if err != nil {
		return nil, newAppError(http.StatusInternalServerError, "failed to sort folders", err)
	}
	return folders, nil
}

// defaultFolderImage returns a reusable image row pointing at the configured
// default folder icon, creating it on first use.
func (s *folderService) defaultFolderImage(ctx context.Context, actor string) (uint, error) {
	image := models.Image{
		Name:      uuid.NewString(),
		URL:       config.AppConfig.Storage.DefaultFolderIcon,
		Type:      models.ImageTypeFolder,
		CreatedBy: actor,
		UpdatedBy: actor,
	}
	if err := s.images.Create(ctx, nil, &image); err != nil {
		return 0, err
	}
	return image.ID, nil
}
