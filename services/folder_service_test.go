package services

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/abhishek98s/LITMARK-BACKEND2/models"
)

func newFolderServiceForTest() (FolderService, *fakeFolderRepo, *fakeBookmarkRepo, *fakeImageRepo) {
	setupTestConfig()
	folders := newFakeFolderRepo()
	bookmarks := newFakeBookmarkRepo()
	images := newFakeImageRepo()
	svc := NewFolderService(&fakeTxManager{}, folders, bookmarks, images)
	return svc, folders, bookmarks, images
}

func uintPtr(v uint) *uint { return &v }

func TestCreateFolderRequiresName(t *testing.T) {
	svc, _, _, _ := newFolderServiceForTest()

	_, err := svc.CreateFolder(context.Background(), CreateFolderInput{Name: "   ", UserID: 1, Actor: "alice"})

	var appErr *AppError
	if !errors.As(err, &appErr) || appErr.HTTPCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for blank name, got %v", err)
	}
}

func TestCreateFolderMissingParent(t *testing.T) {
	svc, _, _, _ := newFolderServiceForTest()

	_, err := svc.CreateFolder(context.Background(), CreateFolderInput{
		Name:     "docs",
		ParentID: uintPtr(99),
		UserID:   1,
		Actor:    "alice",
	})

	var appErr *AppError
	if !errors.As(err, &appErr) || appErr.HTTPCode != http.StatusNotFound {
		t.Fatalf("expected 404 for missing parent, got %v", err)
	}
}

func TestCreateFolderDefaultsImage(t *testing.T) {
	svc, _, _, images := newFolderServiceForTest()

	folder, err := svc.CreateFolder(context.Background(), CreateFolderInput{Name: "docs", UserID: 1, Actor: "alice"})
	if err != nil {
		t.Fatalf("create folder: %v", err)
	}
	if folder.ImageID == 0 {
		t.Fatalf("expected a default image to be assigned")
	}

	image, ok := images.images[folder.ImageID]
	if !ok {
		t.Fatalf("default image row was not created")
	}
	if image.Type != models.ImageTypeFolder {
		t.Fatalf("default image type = %q, want folder", image.Type)
	}
}

func TestDeleteFolderCascades(t *testing.T) {
	svc, folders, bookmarks, _ := newFolderServiceForTest()

	// A contains B; bookmarks X and Y live in A and B.
	folderA := folders.add(models.Folder{Name: "A", UserID: 1})
	folderB := folders.add(models.Folder{Name: "B", UserID: 1, FolderID: uintPtr(folderA.ID)})
	bookmarkX := bookmarks.add(models.Bookmark{Title: "X", UserID: 1, FolderID: folderA.ID})
	bookmarkY := bookmarks.add(models.Bookmark{Title: "Y", UserID: 1, FolderID: folderB.ID})
	other := bookmarks.add(models.Bookmark{Title: "other", UserID: 1, FolderID: 42})

	if err := svc.DeleteFolder(context.Background(), 1, folderA.ID); err != nil {
		t.Fatalf("delete folder: %v", err)
	}

	if !folders.folders[folderA.ID].IsDeleted || !folders.folders[folderB.ID].IsDeleted {
		t.Fatalf("expected both folders soft deleted")
	}
	if !bookmarks.bookmarks[bookmarkX.ID].IsDeleted || !bookmarks.bookmarks[bookmarkY.ID].IsDeleted {
		t.Fatalf("expected bookmarks in the subtree soft deleted")
	}
	if bookmarks.bookmarks[other.ID].IsDeleted {
		t.Fatalf("bookmark outside the subtree must survive")
	}
}

func TestDeleteFolderChildrenBeforeParent(t *testing.T) {
	svc, folders, _, _ := newFolderServiceForTest()

	parent := folders.add(models.Folder{Name: "parent", UserID: 1})
	child := folders.add(models.Folder{Name: "child", UserID: 1, FolderID: uintPtr(parent.ID)})

	if err := svc.DeleteFolder(context.Background(), 1, parent.ID); err != nil {
		t.Fatalf("delete folder: %v", err)
	}

	if len(folders.softDeleted) != 2 || folders.softDeleted[0] != child.ID || folders.softDeleted[1] != parent.ID {
		t.Fatalf("expected child deleted before parent, got order %v", folders.softDeleted)
	}
}

func TestDeleteFolderTwiceReturnsNotFound(t *testing.T) {
	svc, folders, _, _ := newFolderServiceForTest()

	folder := folders.add(models.Folder{Name: "once", UserID: 1})

	if err := svc.DeleteFolder(context.Background(), 1, folder.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}

	err := svc.DeleteFolder(context.Background(), 1, folder.ID)
	var appErr *AppError
	if !errors.As(err, &appErr) || appErr.HTTPCode != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %v", err)
	}
}

func TestDeleteFolderTerminatesOnCyclicParents(t *testing.T) {
	svc, folders, _, _ := newFolderServiceForTest()

	// Corrupted data: two folders pointing at each other.
	folderA := folders.add(models.Folder{ID: 1, Name: "A", UserID: 1, FolderID: uintPtr(2)})
	folders.add(models.Folder{ID: 2, Name: "B", UserID: 1, FolderID: uintPtr(1)})

	done := make(chan error, 1)
	go func() {
		done <- svc.DeleteFolder(context.Background(), 1, folderA.ID)
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("delete folder: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("cascade did not terminate on cyclic parent chain")
	}

	if !folders.folders[1].IsDeleted || !folders.folders[2].IsDeleted {
		t.Fatalf("expected both folders in the cycle soft deleted")
	}
}

func TestDeleteFolderOtherUsersFolder(t *testing.T) {
	svc, folders, _, _ := newFolderServiceForTest()

	folder := folders.add(models.Folder{Name: "theirs", UserID: 2})

	err := svc.DeleteFolder(context.Background(), 1, folder.ID)
	var appErr *AppError
	if !errors.As(err, &appErr) || appErr.HTTPCode != http.StatusNotFound {
		t.Fatalf("expected 404 for another user's folder, got %v", err)
	}
}

func TestMoveFolderIntoOwnSubtreeRejected(t *testing.T) {
	svc, folders, _, _ := newFolderServiceForTest()

	root := folders.add(models.Folder{Name: "root", UserID: 1})
	mid := folders.add(models.Folder{Name: "mid", UserID: 1, FolderID: uintPtr(root.ID)})
	leaf := folders.add(models.Folder{Name: "leaf", UserID: 1, FolderID: uintPtr(mid.ID)})

	_, err := svc.MoveFolder(context.Background(), 1, root.ID, uintPtr(leaf.ID), "alice")
	var appErr *AppError
	if !errors.As(err, &appErr) || appErr.HTTPCode != http.StatusBadRequest {
		t.Fatalf("expected 400 moving folder under its descendant, got %v", err)
	}

	_, err = svc.MoveFolder(context.Background(), 1, root.ID, uintPtr(root.ID), "alice")
	if !errors.As(err, &appErr) || appErr.HTTPCode != http.StatusBadRequest {
		t.Fatalf("expected 400 moving folder into itself, got %v", err)
	}
}

func TestMoveFolderToTopLevel(t *testing.T) {
	svc, folders, _, _ := newFolderServiceForTest()

	root := folders.add(models.Folder{Name: "root", UserID: 1})
	child := folders.add(models.Folder{Name: "child", UserID: 1, FolderID: uintPtr(root.ID)})

	moved, err := svc.MoveFolder(context.Background(), 1, child.ID, nil, "alice")
	if err != nil {
		t.Fatalf("move folder: %v", err)
	}
	if moved.FolderID != nil {
		t.Fatalf("expected nil parent after move to top level, got %v", *moved.FolderID)
	}
}

func TestSortFoldersValidation(t *testing.T) {
	svc, _, _, _ := newFolderServiceForTest()

	_, err := svc.SortFolders(context.Background(), 1, nil, "size", "asc")
	var appErr *AppError
	if !errors.As(err, &appErr) || appErr.HTTPCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown sort field, got %v", err)
	}

	_, err = svc.SortFolders(context.Background(), 1, nil, "name", "sideways")
	if !errors.As(err, &appErr) || appErr.HTTPCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown sort order, got %v", err)
	}
}

func TestSortFoldersByName(t *testing.T) {
	svc, folders, _, _ := newFolderServiceForTest()

	folders.add(models.Folder{Name: "zeta", UserID: 1})
	folders.add(models.Folder{Name: "alpha", UserID: 1})

	sorted, err := svc.SortFolders(context.Background(), 1, nil, "name", "asc")
	if err != nil {
		t.Fatalf("sort folders: %v", err)
	}
	if len(sorted) != 2 || sorted[0].Name != "alpha" || sorted[1].Name != "zeta" {
		t.Fatalf("unexpected sort result: %+v", sorted)
	}
}

func TestSortFoldersEmptyResultIsValid(t *testing.T) {
	svc, folders, _, _ := newFolderServiceForTest()

	parent := folders.add(models.Folder{Name: "empty", UserID: 1})

	sorted, err := svc.SortFolders(context.Background(), 1, uintPtr(parent.ID), "date", "desc")
	if err != nil {
		t.Fatalf("sort folders: %v", err)
	}
	if len(sorted) != 0 {
		t.Fatalf("expected empty result, got %d folders", len(sorted))
	}
}

func TestListChildFoldersMissingParent(t *testing.T) {
	svc, _, _, _ := newFolderServiceForTest()

	_, err := svc.ListChildFolders(context.Background(), 1, 77)
	var appErr *AppError
	if !errors.As(err, &appErr) || appErr.HTTPCode != http.StatusNotFound {
		t.Fatalf("expected 404 for missing parent, got %v", err)
	}
}

func TestRenameFolder(t *testing.T) {
	svc, folders, _, _ := newFolderServiceForTest()

	folder := folders.add(models.Folder{Name: "old", UserID: 1})

	renamed, err := svc.RenameFolder(context.Background(), folder.ID, UpdateFolderInput{Name: "new", UserID: 1, Actor: "alice"})
	if err != nil {
		t.Fatalf("rename folder: %v", err)
	}
	if renamed.Name != "new" || renamed.UpdatedBy != "alice" {
		t.Fatalf("rename did not apply: %+v", renamed)
	}
}
