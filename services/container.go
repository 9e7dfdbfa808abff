package services

import "github.com/abhishek98s/LITMARK-BACKEND2/repositories"

type Container struct {
	Auth     AuthService
	User     UserService
	Folder   FolderService
	Bookmark BookmarkService
	Chip     ChipService
	Image    ImageService
}

func NewContainer(repos repositories.Container, lookup PageLookup) *Container {
	return &Container{
		Auth:     NewAuthService(repos.Users),
		User:     NewUserService(repos.Users),
		Folder:   NewFolderService(repos.TxManager, repos.Folders, repos.Bookmarks, repos.Images),
		Bookmark: NewBookmarkService(repos.TxManager, repos.Bookmarks, repos.Folders, repos.Chips, repos.Images, repos.LookupCache, lookup),
		Chip:     NewChipService(repos.Chips, repos.Folders),
		Image:    NewImageService(repos.Images),
	}
}
