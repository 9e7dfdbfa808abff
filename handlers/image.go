package handlers

import (
	"net/http"

	"github.com/abhishek98s/LITMARK-BACKEND2/config"
	"github.com/abhishek98s/LITMARK-BACKEND2/services"
	"github.com/abhishek98s/LITMARK-BACKEND2/utils"

	"github.com/gin-gonic/gin"
)

type UpdateImageRequest struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

func GetImage(c *gin.Context) {
	imageID, ok := pathID(c, "id")
	if !ok {
		return
	}

	image, err := getServices().Image.FindImage(c.Request.Context(), imageID)
	if respondServiceError(c, err) {
		return
	}

	utils.Success(c, image)
}

func UploadImage(c *gin.Context) {
	file, err := c.FormFile("litmark_image")
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "image file is required")
		return
	}
	if file.Size > config.AppConfig.Storage.MaxFileSize {
		utils.Error(c, http.StatusBadRequest, "image file is too large")
		return
	}

	src, err := file.Open()
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to read upload")
		return
	}
	defer src.Close()

	image, svcErr := getServices().Image.StoreUpload(c.Request.Context(), services.StoreUploadInput{
		Filename: file.Filename,
		Type:     c.PostForm("type"),
		Actor:    actor(c),
		Src:      src,
	})
	if respondServiceError(c, svcErr) {
		return
	}

	utils.Success(c, image)
}

func UpdateImage(c *gin.Context) {
	imageID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	image, err := getServices().Image.UpdateImage(c.Request.Context(), imageID, req.Name, req.URL, actor(c))
	if respondServiceError(c, err) {
		return
	}

	utils.Success(c, image)
}

func DeleteImage(c *gin.Context) {
	imageID, ok := pathID(c, "id")
	if !ok {
		return
	}

	image, err := getServices().Image.RemoveImage(c.Request.Context(), imageID)
	if respondServiceError(c, err) {
		return
	}

	utils.SuccessWithMessage(c, "image deleted", image)
}
