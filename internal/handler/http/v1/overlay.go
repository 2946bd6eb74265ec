package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mvoloshin/camera_coordination_system/internal/overlay"
)

// @Summary Map detections to display coordinates
// @Description Translate raw detector boxes from intrinsic video space into display-space drawing instructions for a possibly letterboxed viewport. Requires API key.
// @Tags Overlay
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param geometry body OverlayMapRequest true "Detections and viewport geometry"
// @Success 200 {array} InstructionDTO
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} map[string]string "Video geometry not ready"
// @Router /overlay/map [post]
func (h *Handler) mapOverlay(c *gin.Context) {
	var input OverlayMapRequest
	log := h.logger.WithField("method", "mapOverlay")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	instructions, err := h.mapper.Map(
		DTOToDetections(input.Detections),
		overlay.Size{Width: input.IntrinsicWidth, Height: input.IntrinsicHeight},
		overlay.Rect{
			X:      input.ContentX,
			Y:      input.ContentY,
			Width:  input.ContentWidth,
			Height: input.ContentHeight,
		},
	)
	if err != nil {
		if errors.Is(err, overlay.ErrNotReady) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "video geometry not ready"})
			return
		}
		log.WithError(err).Error("Overlay mapping failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, InstructionsToDTOs(instructions))
}
