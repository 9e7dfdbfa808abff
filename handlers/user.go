package handlers

import (
	"net/http"

	"github.com/abhishek98s/LITMARK-BACKEND2/services"
	"github.com/abhishek98s/LITMARK-BACKEND2/utils"

	"github.com/gin-gonic/gin"
)

type UpdateUserRequest struct {
	Username string `json:"username" binding:"omitempty,min=3,max=50"`
	ImageID  uint   `json:"image_id"`
}

func GetUser(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	user, err := getServices().User.GetUser(c.Request.Context(), userID)
	if respondServiceError(c, err) {
		return
	}

	utils.Success(c, user)
}

func UpdateUser(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if userID != c.GetUint("user_id") {
		utils.Error(c, http.StatusForbidden, "cannot modify another user")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	user, err := getServices().User.UpdateUser(c.Request.Context(), userID, services.UpdateUserInput{
		Username: req.Username,
		ImageID:  req.ImageID,
		Actor:    actor(c),
	})
	if respondServiceError(c, err) {
		return
	}

	utils.Success(c, user)
}

func DeleteUser(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if userID != c.GetUint("user_id") {
		utils.Error(c, http.StatusForbidden, "cannot delete another user")
		return
	}

	if err := getServices().User.DeleteUser(c.Request.Context(), userID); respondServiceError(c, err) {
		return
	}

	utils.SuccessWithMessage(c, "user deleted", nil)
}
