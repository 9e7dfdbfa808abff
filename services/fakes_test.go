package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/abhishek98s/LITMARK-BACKEND2/config"
	"github.com/abhishek98s/LITMARK-BACKEND2/models"
	"github.com/abhishek98s/LITMARK-BACKEND2/repositories"

	"gorm.io/gorm"
)

func setupTestConfig() {
	config.AppConfig = &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", ExpireHours: 1},
		Storage: config.StorageConfig{
			BasePath:          "/tmp/litmark-test",
			AllowedExtensions: []string{".jpg", ".jpeg", ".png"},
			DefaultFolderIcon: "https://icons.example/folder.png",
		},
		Thumbnail: config.ThumbnailConfig{Width: 64, Height: 64, Quality: 80},
		Lookup: config.LookupConfig{
			TimeoutSeconds: 1,
			CacheTTLHours:  1,
			FaviconBaseURL: "https://favicons.example/s2/favicons",
		},
	}
}

type fakeTxManager struct {
	beginErr error
}

func (m *fakeTxManager) WithTransaction(_ context.Context, fn func(tx *gorm.DB) error) error {
	if m.beginErr != nil {
		return m.beginErr
	}
	return fn(nil)
}

type fakeFolderRepo struct {
	folders map[uint]models.Folder
	nextID  uint

	listByParentErr error
	softDeleteErr   error
	softDeleted     []uint
}

func newFakeFolderRepo() *fakeFolderRepo {
	return &fakeFolderRepo{folders: map[uint]models.Folder{}, nextID: 1}
}

func (r *fakeFolderRepo) add(folder models.Folder) models.Folder {
	if folder.ID == 0 {
		folder.ID = r.nextID
		r.nextID++
	} else if folder.ID >= r.nextID {
		r.nextID = folder.ID + 1
	}
	r.folders[folder.ID] = folder
	return folder
}

func (r *fakeFolderRepo) GetByID(_ context.Context, _ *gorm.DB, folderID uint) (models.Folder, error) {
	folder, ok := r.folders[folderID]
	if !ok || folder.IsDeleted {
		return models.Folder{}, gorm.ErrRecordNotFound
	}
	return folder, nil
}

func (r *fakeFolderRepo) GetByIDAndUser(_ context.Context, _ *gorm.DB, folderID uint, userID uint) (models.Folder, error) {
	folder, ok := r.folders[folderID]
	if !ok || folder.IsDeleted || folder.UserID != userID {
		return models.Folder{}, gorm.ErrRecordNotFound
	}
	return folder, nil
}

func (r *fakeFolderRepo) ListTopByUser(_ context.Context, _ *gorm.DB, userID uint) ([]models.Folder, error) {
	out := make([]models.Folder, 0)
	for _, folder := range r.folders {
		if folder.UserID == userID && !folder.IsDeleted && folder.FolderID == nil {
			out = append(out, folder)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeFolderRepo) ListByParent(_ context.Context, _ *gorm.DB, userID uint, parentID uint) ([]models.Folder, error) {
	if r.listByParentErr != nil {
		return nil, r.listByParentErr
	}
	out := make([]models.Folder, 0)
	for _, folder := range r.folders {
		if folder.UserID != userID || folder.IsDeleted || folder.FolderID == nil {
			continue
		}
		if *folder.FolderID == parentID {
			out = append(out, folder)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeFolderRepo) ListByParentSorted(ctx context.Context, tx *gorm.DB, userID uint, parentID uint, column string, order string) ([]models.Folder, error) {
	out, err := r.ListByParent(ctx, tx, userID, parentID)
	if err != nil {
		return nil, err
	}
	sortFolders(out, column, order)
	return out, nil
}

func (r *fakeFolderRepo) ListTopByUserSorted(ctx context.Context, tx *gorm.DB, userID uint, column string, order string) ([]models.Folder, error) {
	out, err := r.ListTopByUser(ctx, tx, userID)
	if err != nil {
		return nil, err
	}
	sortFolders(out, column, order)
	return out, nil
}

func sortFolders(folders []models.Folder, column string, order string) {
	sort.Slice(folders, func(i, j int) bool {
		var less bool
		if column == "name" {
			less = folders[i].Name < folders[j].Name
		} else {
			less = folders[i].CreatedAt.Before(folders[j].CreatedAt)
		}
		if order == "desc" {
			return !less
		}
		return less
	})
}

func (r *fakeFolderRepo) Create(_ context.Context, _ *gorm.DB, folder *models.Folder) error {
	*folder = r.add(*folder)
	return nil
}

func (r *fakeFolderRepo) UpdateByID(_ context.Context, _ *gorm.DB, folderID uint, updates map[string]interface{}) error {
	folder, ok := r.folders[folderID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for key, value := range updates {
		switch key {
		case "name":
			folder.Name = value.(string)
		case "image_id":
			folder.ImageID = value.(uint)
		case "updated_by":
			folder.UpdatedBy = value.(string)
		case "folder_id":
			if value == nil {
				folder.FolderID = nil
			} else {
				parentID := value.(uint)
				folder.FolderID = &parentID
			}
		}
	}
	r.folders[folderID] = folder
	return nil
}

func (r *fakeFolderRepo) SoftDeleteByID(_ context.Context, _ *gorm.DB, folderID uint) error {
	if r.softDeleteErr != nil {
		return r.softDeleteErr
	}
	folder, ok := r.folders[folderID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	folder.IsDeleted = true
	r.folders[folderID] = folder
	r.softDeleted = append(r.softDeleted, folderID)
	return nil
}

type fakeBookmarkRepo struct {
	bookmarks map[uint]models.Bookmark
	nextID    uint

	createErr error
}

func newFakeBookmarkRepo() *fakeBookmarkRepo {
	return &fakeBookmarkRepo{bookmarks: map[uint]models.Bookmark{}, nextID: 1}
}

func (r *fakeBookmarkRepo) add(bookmark models.Bookmark) models.Bookmark {
	if bookmark.ID == 0 {
		bookmark.ID = r.nextID
		r.nextID++
	} else if bookmark.ID >= r.nextID {
		r.nextID = bookmark.ID + 1
	}
	r.bookmarks[bookmark.ID] = bookmark
	return bookmark
}

func (r *fakeBookmarkRepo) GetByID(_ context.Context, _ *gorm.DB, bookmarkID uint) (models.Bookmark, error) {
	bookmark, ok := r.bookmarks[bookmarkID]
	if !ok || bookmark.IsDeleted {
		return models.Bookmark{}, gorm.ErrRecordNotFound
	}
	return bookmark, nil
}

func (r *fakeBookmarkRepo) live(filter func(models.Bookmark) bool) []models.Bookmark {
	out := make([]models.Bookmark, 0)
	for _, bookmark := range r.bookmarks {
		if bookmark.IsDeleted || !filter(bookmark) {
			continue
		}
		out = append(out, bookmark)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *fakeBookmarkRepo) ListByUser(_ context.Context, _ *gorm.DB, userID uint) ([]models.Bookmark, error) {
	return r.live(func(b models.Bookmark) bool { return b.UserID == userID }), nil
}

func (r *fakeBookmarkRepo) ListByFolder(_ context.Context, _ *gorm.DB, userID uint, folderID uint) ([]models.Bookmark, error) {
	return r.live(func(b models.Bookmark) bool { return b.UserID == userID && b.FolderID == folderID }), nil
}

func (r *fakeBookmarkRepo) ListByFolderSorted(ctx context.Context, tx *gorm.DB, userID uint, folderID uint, column string, order string) ([]models.Bookmark, error) {
	out, err := r.ListByFolder(ctx, tx, userID, folderID)
	if err != nil {
		return nil, err
	}
	sortBookmarks(out, column, order)
	return out, nil
}

func sortBookmarks(bookmarks []models.Bookmark, column string, order string) {
	sort.Slice(bookmarks, func(i, j int) bool {
		var less bool
		if column == "title" {
			less = bookmarks[i].Title < bookmarks[j].Title
		} else {
			less = bookmarks[i].Date.Before(bookmarks[j].Date)
		}
		if order == "desc" {
			return !less
		}
		return less
	})
}

func (r *fakeBookmarkRepo) SearchByTitle(_ context.Context, _ *gorm.DB, folderID uint, title string) ([]models.Bookmark, error) {
	needle := strings.ToLower(title)
	return r.live(func(b models.Bookmark) bool {
		return b.FolderID == folderID && strings.Contains(strings.ToLower(b.Title), needle)
	}), nil
}

func (r *fakeBookmarkRepo) Create(_ context.Context, _ *gorm.DB, bookmark *models.Bookmark) error {
	if r.createErr != nil {
		return r.createErr
	}
	*bookmark = r.add(*bookmark)
	return nil
}

func (r *fakeBookmarkRepo) UpdateByID(_ context.Context, _ *gorm.DB, bookmarkID uint, updates map[string]interface{}) error {
	bookmark, ok := r.bookmarks[bookmarkID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for key, value := range updates {
		switch key {
		case "title":
			bookmark.Title = value.(string)
		case "image_id":
			bookmark.ImageID = value.(uint)
		case "updated_by":
			bookmark.UpdatedBy = value.(string)
		case "click_date":
			if value == nil {
				bookmark.ClickDate = nil
			} else {
				clicked := value.(time.Time)
				bookmark.ClickDate = &clicked
			}
		}
	}
	r.bookmarks[bookmarkID] = bookmark
	return nil
}

func (r *fakeBookmarkRepo) SoftDeleteByID(_ context.Context, _ *gorm.DB, bookmarkID uint) error {
	bookmark, ok := r.bookmarks[bookmarkID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	bookmark.IsDeleted = true
	r.bookmarks[bookmarkID] = bookmark
	return nil
}

func (r *fakeBookmarkRepo) SoftDeleteByFolderIDs(_ context.Context, _ *gorm.DB, userID uint, folderIDs []uint) error {
	for _, folderID := range folderIDs {
		for id, bookmark := range r.bookmarks {
			if bookmark.UserID == userID && bookmark.FolderID == folderID {
				bookmark.IsDeleted = true
				r.bookmarks[id] = bookmark
			}
		}
	}
	return nil
}

func (r *fakeBookmarkRepo) ListRecentByUser(_ context.Context, _ *gorm.DB, userID uint) ([]models.Bookmark, error) {
	out := r.live(func(b models.Bookmark) bool { return b.UserID == userID && b.ClickDate != nil })
	sort.Slice(out, func(i, j int) bool { return out[i].ClickDate.After(*out[j].ClickDate) })
	return out, nil
}

func (r *fakeBookmarkRepo) ListRecentByUserSorted(ctx context.Context, tx *gorm.DB, userID uint, column string, order string) ([]models.Bookmark, error) {
	out, err := r.ListRecentByUser(ctx, tx, userID)
	if err != nil {
		return nil, err
	}
	sortBookmarks(out, column, order)
	return out, nil
}

func (r *fakeBookmarkRepo) ListRecentByChip(_ context.Context, _ *gorm.DB, userID uint, chipID uint) ([]models.Bookmark, error) {
	return r.live(func(b models.Bookmark) bool {
		return b.UserID == userID && b.ChipID == chipID && b.ClickDate != nil
	}), nil
}

func (r *fakeBookmarkRepo) SearchRecentByTitle(_ context.Context, _ *gorm.DB, userID uint, title string) ([]models.Bookmark, error) {
	needle := strings.ToLower(title)
	return r.live(func(b models.Bookmark) bool {
		return b.UserID == userID && b.ClickDate != nil && strings.Contains(strings.ToLower(b.Title), needle)
	}), nil
}

type fakeChipRepo struct {
	chips  map[uint]models.Chip
	nextID uint
}

func newFakeChipRepo() *fakeChipRepo {
	return &fakeChipRepo{chips: map[uint]models.Chip{}, nextID: 1}
}

func (r *fakeChipRepo) add(chip models.Chip) models.Chip {
	if chip.ID == 0 {
		chip.ID = r.nextID
		r.nextID++
	} else if chip.ID >= r.nextID {
		r.nextID = chip.ID + 1
	}
	r.chips[chip.ID] = chip
	return chip
}

func (r *fakeChipRepo) GetByIDAndUser(_ context.Context, _ *gorm.DB, chipID uint, userID uint) (models.Chip, error) {
	chip, ok := r.chips[chipID]
	if !ok || chip.IsDeleted || chip.UserID != userID {
		return models.Chip{}, gorm.ErrRecordNotFound
	}
	return chip, nil
}

func (r *fakeChipRepo) GetByFolderAndName(_ context.Context, _ *gorm.DB, userID uint, folderID uint, name string) (models.Chip, error) {
	for _, chip := range r.chips {
		if !chip.IsDeleted && chip.UserID == userID && chip.FolderID == folderID && chip.Name == name {
			return chip, nil
		}
	}
	return models.Chip{}, gorm.ErrRecordNotFound
}

func (r *fakeChipRepo) ListByUser(_ context.Context, _ *gorm.DB, userID uint) ([]models.Chip, error) {
	out := make([]models.Chip, 0)
	for _, chip := range r.chips {
		if !chip.IsDeleted && chip.UserID == userID {
			out = append(out, chip)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeChipRepo) ListByFolder(_ context.Context, _ *gorm.DB, userID uint, folderID uint) ([]models.Chip, error) {
	out := make([]models.Chip, 0)
	for _, chip := range r.chips {
		if !chip.IsDeleted && chip.UserID == userID && chip.FolderID == folderID {
			out = append(out, chip)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeChipRepo) Create(_ context.Context, _ *gorm.DB, chip *models.Chip) error {
	*chip = r.add(*chip)
	return nil
}

func (r *fakeChipRepo) UpdateByID(_ context.Context, _ *gorm.DB, chipID uint, updates map[string]interface{}) error {
	chip, ok := r.chips[chipID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for key, value := range updates {
		switch key {
		case "name":
			chip.Name = value.(string)
		case "updated_by":
			chip.UpdatedBy = value.(string)
		}
	}
	r.chips[chipID] = chip
	return nil
}

func (r *fakeChipRepo) SoftDeleteByID(_ context.Context, _ *gorm.DB, chipID uint) error {
	chip, ok := r.chips[chipID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	chip.IsDeleted = true
	r.chips[chipID] = chip
	return nil
}

type fakeImageRepo struct {
	images map[uint]models.Image
	nextID uint
}

func newFakeImageRepo() *fakeImageRepo {
	return &fakeImageRepo{images: map[uint]models.Image{}, nextID: 1}
}

func (r *fakeImageRepo) GetByID(_ context.Context, _ *gorm.DB, imageID uint) (models.Image, error) {
	image, ok := r.images[imageID]
	if !ok || image.IsDeleted {
		return models.Image{}, gorm.ErrRecordNotFound
	}
	return image, nil
}

func (r *fakeImageRepo) Create(_ context.Context, _ *gorm.DB, image *models.Image) error {
	if image.ID == 0 {
		image.ID = r.nextID
		r.nextID++
	}
	r.images[image.ID] = *image
	return nil
}

func (r *fakeImageRepo) UpdateByID(_ context.Context, _ *gorm.DB, imageID uint, updates map[string]interface{}) error {
	image, ok := r.images[imageID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for key, value := range updates {
		switch key {
		case "name":
			image.Name = value.(string)
		case "url":
			image.URL = value.(string)
		case "updated_by":
			image.UpdatedBy = value.(string)
		}
	}
	r.images[imageID] = image
	return nil
}

func (r *fakeImageRepo) SoftDeleteByID(_ context.Context, _ *gorm.DB, imageID uint) error {
	image, ok := r.images[imageID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	image.IsDeleted = true
	r.images[imageID] = image
	return nil
}

type fakeUserRepo struct {
	users  map[uint]models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]models.User{}, nextID: 1}
}

func (r *fakeUserRepo) CountByEmail(_ context.Context, email string) (int64, error) {
	var count int64
	for _, user := range r.users {
		if !user.IsDeleted && user.Email == email {
			count++
		}
	}
	return count, nil
}

func (r *fakeUserRepo) Create(_ context.Context, _ *gorm.DB, user *models.User) error {
	if user.ID == 0 {
		user.ID = r.nextID
		r.nextID++
	}
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, _ *gorm.DB, email string) (models.User, error) {
	for _, user := range r.users {
		if !user.IsDeleted && user.Email == email {
			return user, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByID(_ context.Context, _ *gorm.DB, userID uint) (models.User, error) {
	user, ok := r.users[userID]
	if !ok || user.IsDeleted {
		return models.User{}, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) UpdateByID(_ context.Context, _ *gorm.DB, userID uint, updates map[string]interface{}) error {
	user, ok := r.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for key, value := range updates {
		switch key {
		case "username":
			user.Username = value.(string)
		case "image_id":
			user.ImageID = value.(uint)
		case "updated_by":
			user.UpdatedBy = value.(string)
		}
	}
	r.users[userID] = user
	return nil
}

func (r *fakeUserRepo) SoftDeleteByID(_ context.Context, _ *gorm.DB, userID uint) error {
	user, ok := r.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.IsDeleted = true
	r.users[userID] = user
	return nil
}

type fakeLookupCache struct {
	entries map[string]repositories.PageInfo
	getErr  error
	setErr  error
	sets    int
}

func newFakeLookupCache() *fakeLookupCache {
	return &fakeLookupCache{entries: map[string]repositories.PageInfo{}}
}

func (c *fakeLookupCache) Get(_ context.Context, url string) (repositories.PageInfo, bool, error) {
	if c.getErr != nil {
		return repositories.PageInfo{}, false, c.getErr
	}
	info, ok := c.entries[url]
	return info, ok, nil
}

func (c *fakeLookupCache) Set(_ context.Context, url string, info repositories.PageInfo, _ time.Duration) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.entries[url] = info
	c.sets++
	return nil
}

type fakePageLookup struct {
	info repositories.PageInfo
	err  error
}

func (l *fakePageLookup) Lookup(_ context.Context, _ string) (repositories.PageInfo, error) {
	if l.err != nil {
		return repositories.PageInfo{}, l.err
	}
	return l.info, nil
}
