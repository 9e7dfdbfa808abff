package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/abhishek98s/LITMARK-BACKEND2/config"
	"github.com/abhishek98s/LITMARK-BACKEND2/models"
	"github.com/abhishek98s/LITMARK-BACKEND2/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SaveImageInput struct {
	Name  string
	URL   string
	Type  string
	Actor string
}

type StoreUploadInput struct {
	Filename string
	Type     string
	Actor    string
	Src      io.Reader
}

type ImageService interface {
	FindImage(ctx context.Context, imageID uint) (models.Image, error)
	SaveImage(ctx context.Context, in SaveImageInput) (models.Image, error)
	StoreUpload(ctx context.Context, in StoreUploadInput) (models.Image, error)
	UpdateImage(ctx context.Context, imageID uint, name string, url string, actor string) (models.Image, error)
	RemoveImage(ctx context.Context, imageID uint) (models.Image, error)
}

type imageService struct {
	images repositories.ImageRepository
}

func NewImageService(images repositories.ImageRepository) ImageService {
	return &imageService{images: images}
}

var imageTypes = map[string]bool{
	models.ImageTypeUser:     true,
	models.ImageTypeFolder:   true,
	models.ImageTypeBookmark: true,
}

func (s *imageService) FindImage(ctx context.Context, imageID uint) (models.Image, error) {
	image, err := s.images.GetByID(ctx, nil, imageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Image{}, newAppError(http.StatusNotFound, "image not found", nil)
		}
		return models.Image{}, newAppError(http.StatusInternalServerError, "failed to query image", err)
	}
	return image, nil
}

func (s *imageService) SaveImage(ctx context.Context, in SaveImageInput) (models.Image, error) {
	if strings.TrimSpace(in.URL) == "" {
		return models.Image{}, newAppError(http.StatusBadRequest, "image url is required", nil)
	}
	if !imageTypes[in.Type] {
		return models.Image{}, newAppError(http.StatusBadRequest, "image type must be user, folder or bookmark", nil)
	}

	name := in.Name
	if name == "" {
		name = uuid.NewString()
	}
	image := models.Image{
		Name:      name,
		URL:       in.URL,
		Type:      in.Type,
		CreatedBy: in.Actor,
		UpdatedBy: in.Actor,
	}
	if err := s.images.Create(ctx, nil, &image); err != nil {
		return models.Image{}, newAppError(http.StatusInternalServerError, "failed to save image", err)
	}
	return image, nil
}

// StoreUpload writes an uploaded file under the storage base path, generates
// a thumbnail next to it and records the image row. The served URL is a path
// below the static file route.
func (s *imageService) StoreUpload(ctx context.Context, in StoreUploadInput) (models.Image, error) {
	if !imageTypes[in.Type] {
		return models.Image{}, newAppError(http.StatusBadRequest, "image type must be user, folder or bookmark", nil)
	}
	if !IsAllowedImageFile(in.Filename) {
		return models.Image{}, newAppError(http.StatusBadRequest, "unsupported image file type", nil)
	}

	name := uuid.NewString()
	ext := strings.ToLower(filepath.Ext(in.Filename))
	basePath := config.AppConfig.Storage.BasePath
	relPath := filepath.Join("images", name+ext)
	absPath := filepath.Join(basePath, relPath)

	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return models.Image{}, newAppError(http.StatusInternalServerError, "failed to store image", err)
	}
	dst, err := os.Create(absPath)
	if err != nil {
		return models.Image{}, newAppError(http.StatusInternalServerError, "failed to store image", err)
	}
	if _, err := io.Copy(dst, in.Src); err != nil {
		dst.Close()
		return models.Image{}, newAppError(http.StatusInternalServerError, "failed to store image", err)
	}
	if err := dst.Close(); err != nil {
		return models.Image{}, newAppError(http.StatusInternalServerError, "failed to store image", err)
	}

	thumbPath := filepath.Join(basePath, "thumbnails", name+".jpg")
	if err := GenerateThumbnail(absPath, thumbPath); err != nil {
		return models.Image{}, newAppError(http.StatusInternalServerError, "failed to generate thumbnail", err)
	}

	image := models.Image{
		Name:      name,
		URL:       "/" + fmt.Sprintf("static/%s", filepath.ToSlash(relPath)),
		Type:      in.Type,
		CreatedBy: in.Actor,
		UpdatedBy: in.Actor,
	}
	if err := s.images.Create(ctx, nil, &image); err != nil {
		return models.Image{}, newAppError(http.StatusInternalServerError, "failed to save image", err)
	}
	return image, nil
}

func (s *imageService) UpdateImage(ctx context.Context, imageID uint, name string, url string, actor string) (models.Image, error) {
	image, err := s.images.GetByID(ctx, nil, imageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Image{}, newAppError(http.StatusNotFound, "image not found", nil)
		}
		return models.Image{}, newAppError(http.StatusInternalServerError, "failed to query image", err)
	}

	updates := map[string]interface{}{"updated_by": actor}
	if name != "" {
		updates["name"] = name
	}
	if url != "" {
		updates["url"] = url
	}
	if err := s.images.UpdateByID(ctx, nil, image.ID, updates); err != nil {
		return models.Image{}, newAppError(http.StatusInternalServerError, "failed to update image", err)
	}

	updated, err := s.images.GetByID(ctx, nil, image.ID)
	if err != nil {
		return models.Image{}, newAppError(http.StatusInternalServerError, "failed to load updated image", err)
	}
	return updated, nil
}

func (s *imageService) RemoveImage(ctx context.Context, imageID uint) (models.Image, error) {
	image, err := s.images.GetByID(ctx, nil, imageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Image{}, newAppError(http.StatusNotFound, "image not found", nil)
		}
		return models.Image{}, newAppError(http.StatusInternalServerError, "failed to query image", err)
	}

	if err := s.images.SoftDeleteByID(ctx, nil, image.ID); err != nil {
		return models.Image{}, newAppError(http.StatusInternalServerError, "failed to remove image", err)
	}
	return image, nil
}
