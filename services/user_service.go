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

type UpdateUserInput struct {
	Username string
	ImageID  uint
	Actor    string
}

type UserService interface {
	GetUser(ctx context.Context, userID uint) (models.User, error)
	UpdateUser(ctx context.Context, userID uint, in UpdateUserInput) (models.User, error)
	DeleteUser(ctx context.Context, userID uint) error
}

type userService struct {
	users repositories.UserRepository
}

func NewUserService(users repositories.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) GetUser(ctx context.Context, userID uint) (models.User, error) {
	user, err := s.users.GetByID(ctx, nil, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, newAppError(http.StatusNotFound, "user not found", nil)
		}
		return models.User{}, newAppError(http.StatusInternalServerError, "failed to query user", err)
	}
	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID uint, in UpdateUserInput) (models.User, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	updates := map[string]interface{}{"updated_by": in.Actor}
	if name := strings.TrimSpace(in.Username); name != "" {
		updates["username"] = name
	}
	if in.ImageID != 0 {
		updates["image_id"] = in.ImageID
	}
	if err := s.users.UpdateByID(ctx, nil, user.ID, updates); err != nil {
		return models.User{}, newAppError(http.StatusInternalServerError, "failed to update user", err)
	}

	updated, err := s.users.GetByID(ctx, nil, user.ID)
	if err != nil {
		return models.User{}, newAppError(http.StatusInternalServerError, "failed to load updated user", err)
	}
	return updated, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID uint) error {
	if _, err := s.GetUser(ctx, userID); err != nil {
		return err
	}
	if err := s.users.SoftDeleteByID(ctx, nil, userID); err != nil {
		return newAppError(http.StatusInternalServerError, "failed to delete user", err)
	}
	return nil
}
