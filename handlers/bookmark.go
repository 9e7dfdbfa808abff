package handlers

import (
	"net/http"

	"github.com/abhishek98s/LITMARK-BACKEND2/services"
	"github.com/abhishek98s/LITMARK-BACKEND2/utils"

	"github.com/gin-gonic/gin"
)

type CreateBookmarkRequest struct {
	URL      string `json:"url" binding:"required"`
	FolderID uint   `json:"folder_id" binding:"required"`
}

type UpdateBookmarkRequest struct {
	Title   string `json:"title" binding:"required,max=255"`
	ImageID uint   `json:"image_id"`
}

func ListBookmarks(c *gin.Context) {
	userID := c.GetUint("user_id")

	bookmarks, err := getServices().Bookmark.ListBookmarks(c.Request.Context(), userID)
	if respondServiceError(c, err) {
		return
	}

	utils.Success(c, bookmarks)
}

func ListFolderBookmarks(c *gin.Context) {
	userID := c.GetUint("user_id")
	folderID, ok := pathID(c, "folder_id")
	if !ok {
		return
	}

	bookmarks, err := getServices().Bookmark.ListByFolder(c.Request.Context(), userID, folderID)
	if respondServiceError(c, err) {
		return
	}

	utils.Success(c, bookmarks)
}

func GetBookmark(c *gin.Context) {
	userID := c.GetUint("user_id")
	bookmarkID, ok := pathID(c, "id")
	if !ok {
		return
	}

	bookmark, err := getServices().Bookmark.GetBookmark(c.Request.Context(), userID, bookmarkID)
	if respondServiceError(c, err) {
		return
	}

	utils.Success(c, bookmark)
}

func CreateBookmark(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req CreateBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	bookmark, err := getServices().Bookmark.CreateBookmark(c.Request.Context(), services.CreateBookmarkInput{
		URL:      req.URL,
		FolderID: req.FolderID,
		UserID:   userID,
		Actor:    actor(c),
	})
	if respondServiceError(c, err) {
		return
	}

	utils.Success(c, bookmark)
}

func UpdateBookmark(c *gin.Context) {
	userID := c.GetUint("user_id")
	bookmarkID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	bookmark, err := getServices().Bookmark.UpdateBookmark(c.Request.Context(), bookmarkID, services.UpdateBookmarkInput{
		Title:   req.Title,
		ImageID: req.ImageID,
		UserID:  userID,
		Actor:   actor(c),
	})
	if respondServiceError(c, err) {
		return
	}

	utils.Success(c, bookmark)
}

func DeleteBookmark(c *gin.Context) {
	userID := c.GetUint("user_id")
	bookmarkID, ok := pathID(c, "id")
	if !ok {
		return
	}

	bookmark, err := getServices().Bookmark.DeleteBookmark(c.Request.Context(), userID, bookmarkID)
	if respondServiceError(c, err) {
		return
	}

	utils.SuccessWithMessage(c, "bookmark deleted", bookmark)
}

func SearchBookmarks(c *gin.Context) {
	userID := c.GetUint("user_id")
	folderID, ok := pathID(c, "folder_id")
	if !ok {
		return
	}

	bookmarks, err := getServices().Bookmark.SearchByTitle(c.Request.Context(), userID, folderID, c.Query("title"))
	if respondServiceError(c, err) {
		return
	}

	utils.Success(c, bookmarks)
}

func SortBookmarks(c *gin.Context) {
	userID := c.GetUint("user_id")
	folderID, ok := pathID(c, "folder_id")
	if !ok {
		return
	}

	bookmarks, err := getServices().Bookmark.SortBookmarks(
		c.Request.Context(),
		userID,
		folderID,
		c.DefaultQuery("sort", "date"),
		c.DefaultQuery("order", "asc"),
	)
	if respondServiceError(c, err) {
		return
	}

	utils.Success(c, bookmarks)
}

func MarkBookmarkClicked(c *gin.Context) {
	userID := c.GetUint("user_id")
	bookmarkID, ok := pathID(c, "id")
	if !ok {
		return
	}

	bookmark, err := getServices().Bookmark.MarkClicked(c.Request.Context(), userID, bookmarkID)
	if respondServiceError(c, err) {
		return
	}

	utils.Success(c, bookmark)
}

func UnmarkBookmarkClicked(c *gin.Context) {
	userID := c.GetUint("user_id")
	bookmarkID, ok := pathID(c, "id")
	if !ok {
		return
	}

	bookmark, err := getServices().Bookmark.UnmarkClicked(c.Request.Context(), userID, bookmarkID)
	if respondServiceError(c, err) {
		return
	}

	utils.Success(c, bookmark)
}

func ListRecentBookmarks(c *gin.Context) {
	userID := c.GetUint("user_id")

	bookmarks, err := getServices().Bookmark.ListRecent(c.Request.Context(), userID)
	if respondServiceError(c, err) {
		return
	}

	utils.Success(c, bookmarks)
}

func SortRecentBookmarks(c *gin.Context) {
	userID := c.GetUint("user_id")

	bookmarks, err := getServices().Bookmark.SortRecent(
		c.Request.Context(),
		userID,
		c.DefaultQuery("sort", "date"),
		c.DefaultQuery("order", "asc"),
	)
	if respondServiceError(c, err) {
		return
	}

	utils.Success(c, bookmarks)
}

func FilterRecentBookmarksByChip(c *gin.Context) {
	userID := c.GetUint("user_id")
	chipID, ok := pathID(c, "chip_id")
	if !ok {
		return
	}

	bookmarks, err := getServices().Bookmark.FilterRecentByChip(c.Request.Context(), userID, chipID)
	if respondServiceError(c, err) {
		return
	}

	utils.Success(c, bookmarks)
}

func SearchRecentBookmarks(c *gin.Context) {
	userID := c.GetUint("user_id")

	bookmarks, err := getServices().Bookmark.SearchRecentByTitle(c.Request.Context(), userID, c.Query("title"))
	if respondServiceError(c, err) {
		return
	}

	utils.Success(c, bookmarks)
}
