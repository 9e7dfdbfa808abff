package services

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/abhishek98s/LITMARK-BACKEND2/models"
	"github.com/abhishek98s/LITMARK-BACKEND2/repositories"

	"gorm.io/gorm"
)

type CreateChipInput struct {
	Name     string
	FolderID uint
	UserID   uint
	Actor    string
}

type ChipService interface {
	ListChips(ctx context.Context, userID uint) ([]models.Chip, error)
	ListByFolder(ctx context.Context, userID uint, folderID uint) ([]models.Chip, error)
	CreateChip(ctx context.Context, in CreateChipInput) (models.Chip, error)
	RenameChip(ctx context.Context, userID uint, chipID uint, name string, actor string) (models.Chip, error)
	DeleteChip(ctx context.Context, userID uint, chipID uint) (models.Chip, error)
}

type chipService struct {
	chips   repositories.ChipRepository
	folders repositories.FolderRepository
}

func NewChipService(chips repositories.ChipRepository, folders repositories.FolderRepository) ChipService {
	return &chipService{chips: chips, folders: folders}
}

func (s *chipService) ListChips(ctx context.Context, userID uint) ([]models.Chip, error) {
	chips, err := s.chips.ListByUser(ctx, nil, userID)
	if err != nil {
		return nil, newAppError(http.StatusInternalServerError, "failed to list chips", err)
	}
	return chips, nil
}

func (s *chipService) ListByFolder(ctx context.Context, userID uint, folderID uint) ([]models.Chip, error) {
	chips, err := s.chips.ListByFolder(ctx, nil, userID, folderID)
	if err != nil {
		return nil, newAppError(http.StatusInternalServerError, "failed to list chips", err)
	}
	return chips, nil
}

func (s *chipService) CreateChip(ctx context.Context, in CreateChipInput) (models.Chip, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.Chip{}, newAppError(http.StatusBadRequest, "chip name is required", nil)
	}

	if _, err := s.folders.GetByIDAndUser(ctx, nil, in.FolderID, in.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Chip{}, newAppError(http.StatusNotFound, "folder not found", nil)
		}
		return models.Chip{}, newAppError(http.StatusInternalServerError, "failed to query folder", err)
	}

	// Reuse a live chip with the same name instead of piling up duplicates.
	existing, err := s.chips.GetByFolderAndName(ctx, nil, in.UserID, in.FolderID, name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Chip{}, newAppError(http.StatusInternalServerError, "failed to query chip", err)
	}

	chip := models.Chip{
		Name:      name,
		UserID:    in.UserID,
		FolderID:  in.FolderID,
		CreatedBy: in.Actor,
		UpdatedBy: in.Actor,
	}
	if err := s.chips.Create(ctx, nil, &chip); err != nil {
		return models.Chip{}, newAppError(http.StatusInternalServerError, "failed to create chip", err)
	}
	return chip, nil
}

func (s *chipService) RenameChip(ctx context.Context, userID uint, chipID uint, name string, actor string) (models.Chip, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Chip{}, newAppError(http.StatusBadRequest, "chip name is required", nil)
	}

	chip, err := s.chips.GetByIDAndUser(ctx, nil, chipID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Chip{}, newAppError(http.StatusNotFound, "chip not found", nil)
		}
		return models.Chip{}, newAppError(http.StatusInternalServerError, "failed to query chip", err)
	}

	updates := map[string]interface{}{"name": name, "updated_by": actor}
	if err := s.chips.UpdateByID(ctx, nil, chip.ID, updates); err != nil {
		return models.Chip{}, newAppError(http.StatusInternalServerError, "failed to rename chip", err)
	}

	updated, err := s.chips.GetByIDAndUser(ctx, nil, chip.ID, userID)
	if err != nil {
		return models.Chip{}, newAppError(http.StatusInternalServerError, "failed to load renamed chip", err)
	}
	return updated, nil
}

func (s *chipService) DeleteChip(ctx context.Context, userID uint, chipID uint) (models.Chip, error) {
	chip, err := s.chips.GetByIDAndUser(ctx, nil, chipID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Chip{}, newAppError(http.StatusNotFound, "chip not found", nil)
		}
		return models.Chip{}, newAppError(http.StatusInternalServerError, "failed to query chip", err)
	}

	if err := s.chips.SoftDeleteByID(ctx, nil, chip.ID); err != nil {
		return models.Chip{}, newAppError(http.StatusInternalServerError, "failed to delete chip", err)
	}
	return chip, nil
}
