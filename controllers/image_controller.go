package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/alexanderthenotsobad-git/nvrs-rest-api/pkg/resp"
	"github.com/alexanderthenotsobad-git/nvrs-rest-api/services"
)

type ImageController struct {
	service *services.ImageService
}

func NewImageController(service *services.ImageService) *ImageController {
	return &ImageController{service: service}
}

// GetImage godoc
// @Summary Get a menu item image
// @Description Returns the image by its ID, or the most recent image for a menu item
// @Tags Images
// @Produce octet-stream
// @Param imageId path int true "Image ID"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/images/{imageId} [get]
//
// Registered for both GET /api/images/:imageId and
// GET /api/images/menu-item/:menuItemId.
func (ctl *ImageController) GetImage(c *gin.Context) {
	if raw := c.Param("imageId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			resp.BadRequest(c, "Invalid image ID")
			return
		}
		img, err := ctl.service.GetByID(uint(id))
		if err != nil {
			ctl.imageError(c, err)
			return
		}
		c.Data(http.StatusOK, img.Type, img.Data)
		return
	}

	if raw := c.Param("menuItemId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			resp.BadRequest(c, "Invalid menu item ID")
			return
		}
		img, err := ctl.service.GetLatestForMenuItem(uint(id))
		if err != nil {
			ctl.imageError(c, err)
			return
		}
		c.Data(http.StatusOK, img.Type, img.Data)
		return
	}

	resp.BadRequest(c, "Missing image or menu item ID")
}

// UploadImage godoc
// @Summary Upload an image for a menu item
// @Tags Images
// @Accept multipart/form-data
// @Produce json
// @Param menuItemId path int true "Menu item ID"
// @Param image formData file true "Image file"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 413 {object} map[string]string
// @Failure 415 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/images/menu-item/{menuItemId} [post]
func (ctl *ImageController) UploadImage(c *gin.Context) {
	menuItemID, err := strconv.Atoi(c.Param("menuItemId"))
	if err != nil {
		resp.BadRequest(c, "Invalid menu item ID")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		file = nil // reported as a missing file by the service
	}

	imageID, err := ctl.service.Upload(uint(menuItemID), file)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFile):
			resp.BadRequest(c, "No image file provided")
		case errors.Is(err, services.ErrUnsupportedMediaType):
			resp.UnsupportedMediaType(c, "Only image files are allowed")
		case errors.Is(err, services.ErrPayloadTooLarge):
			resp.PayloadTooLarge(c, "Image exceeds the 5MB size limit")
		case errors.Is(err, services.ErrMenuItemNotFound):
			resp.NotFound(c, "Menu item not found")
		default:
			log.Error().Err(err).Int("menuItemId", menuItemID).Msg("image upload failed")
			resp.ServerError(c, err)
		}
		return
	}

	resp.Created(c, gin.H{
		"message":    "Image uploaded successfully",
		"imageId":    imageID,
		"menuItemId": menuItemID,
	})
}

// DeleteImage godoc
// @Summary Delete a menu item image
// @Tags Images
// @Produce json
// @Param imageId path int true "Image ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/images/{imageId} [delete]
func (ctl *ImageController) DeleteImage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("imageId"))
	if err != nil {
		resp.BadRequest(c, "Invalid image ID")
		return
	}

	if err := ctl.service.Delete(uint(id)); err != nil {
		ctl.imageError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"message": "Image deleted successfully",
		"imageId": id,
	})
}

func (ctl *ImageController) imageError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrImageNotFound) {
		resp.NotFound(c, "Image not found")
		return
	}
	log.Error().Err(err).Msg("image request failed")
	resp.ServerError(c, err)
}
