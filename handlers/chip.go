package handlers

import (
	"net/http"

	"github.com/abhishek98s/LITMARK-BACKEND2/services"
	"github.com/abhishek98s/LITMARK-BACKEND2/utils"

	"github.com/gin-gonic/gin"
)

type CreateChipRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	FolderID uint   `json:"folder_id" binding:"required"`
}

type RenameChipRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

func ListChips(c *gin.Context) {
	userID := c.GetUint("user_id")

	chips, err := getServices().Chip.ListChips(c.Request.Context(), userID)
	if respondServiceError(c, err) {
		return
	}

	utils.Success(c, chips)
}

func ListFolderChips(c *gin.Context) {
	userID := c.GetUint("user_id")
	folderID, ok := pathID(c, "folder_id")
	if !ok {
		return
	}

	chips, err := getServices().Chip.ListByFolder(c.Request.Context(), userID, folderID)
	if respondServiceError(c, err) {
		return
	}

	utils.Success(c, chips)
}

func CreateChip(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req CreateChipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	chip, err := getServices().Chip.CreateChip(c.Request.Context(), services.CreateChipInput{
		Name:     req.Name,
		FolderID: req.FolderID,
		UserID:   userID,
		Actor:    actor(c),
	})
	if respondServiceError(c, err) {
		return
	}

	utils.Success(c, chip)
}

func RenameChip(c *gin.Context) {
	userID := c.GetUint("user_id")
	chipID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req RenameChipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	chip, err := getServices().Chip.RenameChip(c.Request.Context(), userID, chipID, req.Name, actor(c))
	if respondServiceError(c, err) {
		return
	}

	utils.Success(c, chip)
}

func DeleteChip(c *gin.Context) {
	userID := c.GetUint("user_id")
	chipID, ok := pathID(c, "id")
	if !ok {
		return
	}

	chip, err := getServices().Chip.DeleteChip(c.Request.Context(), userID, chipID)
	if respondServiceError(c, err) {
		return
	}

	utils.SuccessWithMessage(c, "chip deleted", chip)
}
