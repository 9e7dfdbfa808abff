package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/abhishek98s/LITMARK-BACKEND2/models"
)

func newUserServiceForTest() (UserService, *fakeUserRepo) {
	setupTestConfig()
	users := newFakeUserRepo()
	return NewUserService(users), users
}

func TestGetUserMissing(t *testing.T) {
	svc, _ := newUserServiceForTest()

	_, err := svc.GetUser(context.Background(), 9)
	var appErr *AppError
	if !errors.As(err, &appErr) || appErr.HTTPCode != http.StatusNotFound {
		t.Fatalf("expected 404 for missing user, got %v", err)
	}
}

func TestUpdateUserMergesFields(t *testing.T) {
	svc, users := newUserServiceForTest()
	users.users[1] = models.User{ID: 1, Username: "alice", Email: "alice@example.com", ImageID: 3}

	updated, err := svc.UpdateUser(context.Background(), 1, UpdateUserInput{Username: "alicia", Actor: "alicia"})
	if err != nil {
		t.Fatalf("update user: %v", err)
	}
	if updated.Username != "alicia" {
		t.Fatalf("username not updated: %+v", updated)
	}
	if updated.ImageID != 3 {
		t.Fatalf("image id must be untouched when zero, got %d", updated.ImageID)
	}
	if updated.Email != "alice@example.com" {
		t.Fatalf("email must not change on update")
	}
}

func TestDeleteUserSoft(t *testing.T) {
	svc, users := newUserServiceForTest()
	users.users[1] = models.User{ID: 1, Username: "alice", Email: "alice@example.com"}

	if err := svc.DeleteUser(context.Background(), 1); err != nil {
		t.Fatalf("delete user: %v", err)
	}
	if !users.users[1].IsDeleted {
		t.Fatalf("expected soft delete flag set")
	}

	_, err := svc.GetUser(context.Background(), 1)
	var appErr *AppError
	if !errors.As(err, &appErr) || appErr.HTTPCode != http.StatusNotFound {
		t.Fatalf("deleted user must be invisible, got %v", err)
	}
}
