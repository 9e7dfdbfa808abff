package services

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/abhishek98s/LITMARK-BACKEND2/config"
	"github.com/abhishek98s/LITMARK-BACKEND2/logger"
	"github.com/abhishek98s/LITMARK-BACKEND2/models"
	"github.com/abhishek98s/LITMARK-BACKEND2/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateBookmarkInput struct {
	URL      string
	FolderID uint
	UserID   uint
	Actor    string
}

type UpdateBookmarkInput struct {
	Title   string
	ImageID uint
	UserID  uint
	Actor   string
}

type BookmarkService interface {
	GetBookmark(ctx context.Context, userID uint, bookmarkID uint) (models.Bookmark, error)
	ListBookmarks(ctx context.Context, userID uint) ([]models.Bookmark, error)
	ListByFolder(ctx context.Context, userID uint, folderID uint) ([]models.Bookmark, error)
	CreateBookmark(ctx context.Context, in CreateBookmarkInput) (models.Bookmark, error)
	UpdateBookmark(ctx context.Context, bookmarkID uint, in UpdateBookmarkInput) (models.Bookmark, error)
	DeleteBookmark(ctx context.Context, userID uint, bookmarkID uint) (models.Bookmark, error)
	SearchByTitle(ctx context.Context, userID uint, folderID uint, title string) ([]models.Bookmark, error)
	SortBookmarks(ctx context.Context, userID uint, folderID uint, field string, order string) ([]models.Bookmark, error)
	MarkClicked(ctx context.Context, userID uint, bookmarkID uint) (models.Bookmark, error)
	UnmarkClicked(ctx context.Context, userID uint, bookmarkID uint) (models.Bookmark, error)
	ListRecent(ctx context.Context, userID uint) ([]models.Bookmark, error)
	SortRecent(ctx context.Context, userID uint, field string, order string) ([]models.Bookmark, error)
	FilterRecentByChip(ctx context.Context, userID uint, chipID uint) ([]models.Bookmark, error)
	SearchRecentByTitle(ctx context.Context, userID uint, title string) ([]models.Bookmark, error)
}

type bookmarkService struct {
	txManager TxManager
	bookmarks repositories.BookmarkRepository
	folders   repositories.FolderRepository
	chips     repositories.ChipRepository
	images    repositories.ImageRepository
	cache     repositories.LookupCacheRepository
	lookup    PageLookup
}

func NewBookmarkService(
	txManager TxManager,
	bookmarks repositories.BookmarkRepository,
	folders repositories.FolderRepository,
	chips repositories.ChipRepository,
	images repositories.ImageRepository,
	cache repositories.LookupCacheRepository,
	lookup PageLookup,
) BookmarkService {
	return &bookmarkService{
		txManager: txManager,
		bookmarks: bookmarks,
		folders:   folders,
		chips:     chips,
		images:    images,
		cache:     cache,
		lookup:    lookup,
	}
}

var bookmarkSortColumns = map[string]string{
	"date":     "date",
	"alphabet": "title",
	"title":    "title",
}

func (s *bookmarkService) GetBookmark(ctx context.Context, userID uint, bookmarkID uint) (models.Bookmark, error) {
	return s.getOwned(ctx, userID, bookmarkID)
}

func (s *bookmarkService) getOwned(ctx context.Context, userID uint, bookmarkID uint) (models.Bookmark, error) {
	bookmark, err := s.bookmarks.GetByID(ctx, nil, bookmarkID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Bookmark{}, newAppError(http.StatusNotFound, "bookmark not found", nil)
		}
		return models.Bookmark{}, newAppError(http.StatusInternalServerError, "failed to query bookmark", err)
	}
	if bookmark.UserID != userID {
		return models.Bookmark{}, newAppError(http.StatusNotFound, "bookmark not found", nil)
	}
	return bookmark, nil
}

func (s *bookmarkService) ListBookmarks(ctx context.Context, userID uint) ([]models.Bookmark, error) {
	bookmarks, err := s.bookmarks.ListByUser(ctx, nil, userID)
	if err != nil {
		return nil, newAppError(http.StatusInternalServerError, "failed to list bookmarks", err)
	}
	return bookmarks, nil
}

func (s *bookmarkService) ListByFolder(ctx context.Context, userID uint, folderID uint) ([]models.Bookmark, error) {
	bookmarks, err := s.bookmarks.ListByFolder(ctx, nil, userID, folderID)
	if err != nil {
		return nil, newAppError(http.StatusInternalServerError, "failed to list bookmarks", err)
	}
	return bookmarks, nil
}

// CreateBookmark ingests a URL: the page title and thumbnail come from the
// lookup collaborator (or the hostname/favicon fallback when it fails), an
// implicit chip named after the folder is reused or created, and the
// bookmark, chip and image rows are written in one transaction.
func (s *bookmarkService) CreateBookmark(ctx context.Context, in CreateBookmarkInput) (models.Bookmark, error) {
	rawURL := strings.TrimSpace(in.URL)
	if rawURL == "" {
		return models.Bookmark{}, newAppError(http.StatusBadRequest, "bookmark url is required", nil)
	}
	if in.FolderID == 0 {
		return models.Bookmark{}, newAppError(http.StatusBadRequest, "folder id is required", nil)
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return models.Bookmark{}, newAppError(http.StatusBadRequest, "bookmark url is invalid", nil)
	}

	folder, err := s.folders.GetByIDAndUser(ctx, nil, in.FolderID, in.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Bookmark{}, newAppError(http.StatusNotFound, "folder not found", nil)
		}
		return models.Bookmark{}, newAppError(http.StatusInternalServerError, "failed to query folder", err)
	}

	info := s.resolvePageInfo(ctx, rawURL, parsed.Hostname())

	var bookmark models.Bookmark
	err = s.txManager.WithTransaction(ctx, func(tx *gorm.DB) error {
		chip, err := s.chips.GetByFolderAndName(ctx, tx, in.UserID, folder.ID, folder.Name)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			chip = models.Chip{
				Name:      folder.Name,
				UserID:    in.UserID,
				FolderID:  folder.ID,
				CreatedBy: in.Actor,
				UpdatedBy: in.Actor,
			}
			if err := s.chips.Create(ctx, tx, &chip); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		image := models.Image{
			Name:      uuid.NewString(),
			URL:       info.ImageURL,
			Type:      models.ImageTypeBookmark,
			CreatedBy: in.Actor,
			UpdatedBy: in.Actor,
		}
		if err := s.images.Create(ctx, tx, &image); err != nil {
			return err
		}

		bookmark = models.Bookmark{
			Title:     info.Title,
			URL:       rawURL,
			Date:      time.Now(),
			ImageID:   image.ID,
			FolderID:  folder.ID,
			ChipID:    chip.ID,
			UserID:    in.UserID,
			CreatedBy: in.Actor,
			UpdatedBy: in.Actor,
		}
		return s.bookmarks.Create(ctx, tx, &bookmark)
	})
	if err != nil {
		return models.Bookmark{}, newAppError(http.StatusInternalServerError, "failed to create bookmark", err)
	}

	created, err := s.bookmarks.GetByID(ctx, nil, bookmark.ID)
	if err != nil {
		return models.Bookmark{}, newAppError(http.StatusInternalServerError, "failed to load created bookmark", err)
	}
	return created, nil
}

// resolvePageInfo never fails: a lookup error degrades to the hostname as
// title and a favicon URL as image.
func (s *bookmarkService) resolvePageInfo(ctx context.Context, rawURL string, host string) repositories.PageInfo {
	if cached, ok, err := s.cache.Get(ctx, rawURL); err == nil && ok {
		return cached
	}

	fallback := repositories.PageInfo{
		Title:    host,
		ImageURL: config.AppConfig.Lookup.FaviconBaseURL + "?domain=" + host,
	}

	info, err := s.lookup.Lookup(ctx, rawURL)
	if err != nil {
		logger.Debugf("page lookup failed for %s: %v", rawURL, err)
		return fallback
	}
	if info.Title == "" {
		info.Title = fallback.Title
	}
	if info.ImageURL == "" {
		info.ImageURL = fallback.ImageURL
	}

	ttl := time.Duration(config.AppConfig.Lookup.CacheTTLHours) * time.Hour
	if err := s.cache.Set(ctx, rawURL, info, ttl); err != nil {
		logger.Debugf("lookup cache write failed for %s: %v", rawURL, err)
	}
	return info
}

func (s *bookmarkService) UpdateBookmark(ctx context.Context, bookmarkID uint, in UpdateBookmarkInput) (models.Bookmark, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return models.Bookmark{}, newAppError(http.StatusBadRequest, "bookmark title is required", nil)
	}

	bookmark, err := s.getOwned(ctx, in.UserID, bookmarkID)
	if err != nil {
		return models.Bookmark{}, err
	}

	// URL, folder and chip bindings are preserved on update.
	updates := map[string]interface{}{
		"title":      title,
		"updated_by": in.Actor,
	}
	if in.ImageID != 0 {
		updates["image_id"] = in.ImageID
	}
	if err := s.bookmarks.UpdateByID(ctx, nil, bookmark.ID, updates); err != nil {
		return models.Bookmark{}, newAppError(http.StatusInternalServerError, "failed to update bookmark", err)
	}

	updated, err := s.bookmarks.GetByID(ctx, nil, bookmark.ID)
	if err != nil {
		return models.Bookmark{}, newAppError(http.StatusInternalServerError, "failed to load updated bookmark", err)
	}
	return updated, nil
}

func (s *bookmarkService) DeleteBookmark(ctx context.Context, userID uint, bookmarkID uint) (models.Bookmark, error) {
	bookmark, err := s.getOwned(ctx, userID, bookmarkID)
	if err != nil {
		return models.Bookmark{}, err
	}

	if err := s.bookmarks.SoftDeleteByID(ctx, nil, bookmark.ID); err != nil {
		return models.Bookmark{}, newAppError(http.StatusInternalServerError, "failed to delete bookmark", err)
	}
	return bookmark, nil
}

func (s *bookmarkService) SearchByTitle(ctx context.Context, userID uint, folderID uint, title string) ([]models.Bookmark, error) {
	if strings.TrimSpace(title) == "" {
		return nil, newAppError(http.StatusBadRequest, "search title is required", nil)
	}
	if _, err := s.folders.GetByIDAndUser(ctx, nil, folderID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newAppError(http.StatusNotFound, "folder not found", nil)
		}
		return nil, newAppError(http.StatusInternalServerError, "failed to query folder", err)
	}

	bookmarks, err := s.bookmarks.SearchByTitle(ctx, nil, folderID, title)
	if err != nil {
		return nil, newAppError(http.StatusInternalServerError, "failed to search bookmarks", err)
	}
	return bookmarks, nil
}

func (s *bookmarkService) SortBookmarks(ctx context.Context, userID uint, folderID uint, field string, order string) ([]models.Bookmark, error) {
	column, ok := bookmarkSortColumns[field]
	if !ok {
		return nil, newAppError(http.StatusBadRequest, "sort field must be date or alphabet", nil)
	}
	if order != "asc" && order != "desc" {
		return nil, newAppError(http.StatusBadRequest, "sort order must be asc or desc", nil)
	}

	bookmarks, err := s.bookmarks.ListByFolderSorted(ctx, nil, userID, folderID, column, order)
	if err != nil {
		return nil, newAppError(http.StatusInternalServerError, "failed to sort bookmarks", err)
	}
	return bookmarks, nil
}

func (s *bookmarkService) MarkClicked(ctx context.Context, userID uint, bookmarkID uint) (models.Bookmark, error) {
	bookmark, err := s.getOwned(ctx, userID, bookmarkID)
	if err != nil {
		return models.Bookmark{}, err
	}

	updates := map[string]interface{}{"click_date": time.Now()}
	if err := s.bookmarks.UpdateByID(ctx, nil, bookmark.ID, updates); err != nil {
		return models.Bookmark{}, newAppError(http.StatusInternalServerError, "failed to record click", err)
	}

	updated, err := s.bookmarks.GetByID(ctx, nil, bookmark.ID)
	if err != nil {
		return models.Bookmark{}, newAppError(http.StatusInternalServerError, "failed to load bookmark", err)
	}
	return updated, nil
}

func (s *bookmarkService) UnmarkClicked(ctx context.Context, userID uint, bookmarkID uint) (models.Bookmark, error) {
	bookmark, err := s.getOwned(ctx, userID, bookmarkID)
	if err != nil {
		return models.Bookmark{}, err
	}

	updates := map[string]interface{}{"click_date": nil}
	if err := s.bookmarks.UpdateByID(ctx, nil, bookmark.ID, updates); err != nil {
		return models.Bookmark{}, newAppError(http.StatusInternalServerError, "failed to clear click", err)
	}

	updated, err := s.bookmarks.GetByID(ctx, nil, bookmark.ID)
	if err != nil {
		return models.Bookmark{}, newAppError(http.StatusInternalServerError, "failed to load bookmark", err)
	}
	return updated, nil
}

func (s *bookmarkService) ListRecent(ctx context.Context, userID uint) ([]models.Bookmark, error) {
	bookmarks, err := s.bookmarks.ListRecentByUser(ctx, nil, userID)
	if err != nil {
		return nil, newAppError(http.StatusInternalServerError, "failed to list recent bookmarks", err)
	}
	return bookmarks, nil
}

func (s *bookmarkService) SortRecent(ctx context.Context, userID uint, field string, order string) ([]models.Bookmark, error) {
	column, ok := bookmarkSortColumns[field]
	if !ok {
		return nil, newAppError(http.StatusBadRequest, "sort field must be date or alphabet", nil)
	}
	if order != "asc" && order != "desc" {
		return nil, newAppError(http.StatusBadRequest, "sort order must be asc or desc", nil)
	}

	bookmarks, err := s.bookmarks.ListRecentByUserSorted(ctx, nil, userID, column, order)
	if err != nil {
		return nil, newAppError(http.StatusInternalServerError, "failed to sort recent bookmarks", err)
	}
	return bookmarks, nil
}

func (s *bookmarkService) FilterRecentByChip(ctx context.Context, userID uint, chipID uint) ([]models.Bookmark, error) {
	if _, err := s.chips.GetByIDAndUser(ctx, nil, chipID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newAppError(http.StatusNotFound, "chip not found", nil)
		}
		return nil, newAppError(http.StatusInternalServerError, "failed to query chip", err)
	}

	bookmarks, err := s.bookmarks.ListRecentByChip(ctx, nil, userID, chipID)
	if err != nil {
		return nil, newAppError(http.StatusInternalServerError, "failed to filter recent bookmarks", err)
	}
	return bookmarks, nil
}

func (s *bookmarkService) SearchRecentByTitle(ctx context.Context, userID uint, title string) ([]models.Bookmark, error) {
	if strings.TrimSpace(title) == "" {
		return nil, newAppError(http.StatusBadRequest, "search title is required", nil)
	}

	bookmarks, err := s.bookmarks.SearchRecentByTitle(ctx, nil, userID, title)
	if err != nil {
		return nil, newAppError(http.StatusInternalServerError, "failed to search recent bookmarks", err)
	}
	return bookmarks, nil
}
