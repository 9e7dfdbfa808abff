package handlers

import (
	"net/http"
	"strconv"

	"github.com/abhishek98s/LITMARK-BACKEND2/services"
	"github.com/abhishek98s/LITMARK-BACKEND2/utils"

	"github.com/gin-gonic/gin"
)

type CreateFolderRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	FolderID *uint  `json:"folder_id"`
	ImageID  uint   `json:"image_id"`
}

type RenameFolderRequest struct {
	Name    string `json:"name" binding:"required,max=255"`
	ImageID uint   `json:"image_id"`
}

type MoveFolderRequest struct {
	FolderID *uint `json:"folder_id"`
}

func ListTopFolders(c *gin.Context) {
	userID := c.GetUint("user_id")

	folders, err := getServices().Folder.ListTopFolders(c.Request.Context(), userID)
	if respondServiceError(c, err) {
		return
	}

	utils.Success(c, folders)
}

func ListChildFolders(c *gin.Context) {
	userID := c.GetUint("user_id")
	parentID, ok := pathID(c, "id")
	if !ok {
		return
	}

	folders, err := getServices().Folder.ListChildFolders(c.Request.Context(), userID, parentID)
	if respondServiceError(c, err) {
		return
	}

	utils.Success(c, folders)
}

func GetFolder(c *gin.Context) {
	folderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	folder, err := getServices().Folder.GetFolder(c.Request.Context(), folderID)
	if respondServiceError(c, err) {
		return
	}

	utils.Success(c, folder)
}

func CreateFolder(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req CreateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	folder, err := getServices().Folder.CreateFolder(c.Request.Context(), services.CreateFolderInput{
		Name:     req.Name,
		ParentID: req.FolderID,
		ImageID:  req.ImageID,
		UserID:   userID,
		Actor:    actor(c),
	})
	if respondServiceError(c, err) {
		return
	}

	utils.Success(c, folder)
}

func RenameFolder(c *gin.Context) {
	userID := c.GetUint("user_id")
	folderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req RenameFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	folder, err := getServices().Folder.RenameFolder(c.Request.Context(), folderID, services.UpdateFolderInput{
		Name:    req.Name,
		ImageID: req.ImageID,
		UserID:  userID,
		Actor:   actor(c),
	})
	if respondServiceError(c, err) {
		return
	}

	utils.Success(c, folder)
}

func MoveFolder(c *gin.Context) {
	userID := c.GetUint("user_id")
	folderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req MoveFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	folder, err := getServices().Folder.MoveFolder(c.Request.Context(), userID, folderID, req.FolderID, actor(c))
	if respondServiceError(c, err) {
		return
	}

	utils.Success(c, folder)
}

func DeleteFolder(c *gin.Context) {
	userID := c.GetUint("user_id")
	folderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := getServices().Folder.DeleteFolder(c.Request.Context(), userID, folderID); respondServiceError(c, err) {
		return
	}

	utils.SuccessWithMessage(c, "folder deleted", nil)
}

func SortFolders(c *gin.Context) {
	userID := c.GetUint("user_id")

	var parentID *uint
	if raw := c.Query("folder_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.Error(c, http.StatusBadRequest, "invalid folder_id")
			return
		}
		id := uint(parsed)
		parentID = &id
	}

	folders, err := getServices().Folder.SortFolders(
		c.Request.Context(),
		userID,
		parentID,
		c.DefaultQuery("sort", "date"),
		c.DefaultQuery("order", "asc"),
	)
	if respondServiceError(c, err) {
		return
	}

	utils.Success(c, folders)
}
