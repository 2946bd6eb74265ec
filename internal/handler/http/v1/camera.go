package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mvoloshin/camera_coordination_system/internal/geolocate"
	"github.com/mvoloshin/camera_coordination_system/internal/service"
)

// @Summary List public cameras
// @Description List camera nodes visible on the shared map. Private nodes are excluded. Requires API key.
// @Tags Cameras
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} CameraResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /cameras [get]
func (h *Handler) listCameras(c *gin.Context) {
	c.JSON(http.StatusOK, ModelsToCameraResponses(h.cameraService.ListPublic()))
}

// @Summary List all cameras
// @Description List every camera node including private ones, for the owner surface. Requires API key.
// @Tags Cameras
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} CameraResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /cameras/all [get]
func (h *Handler) listAllCameras(c *gin.Context) {
	c.JSON(http.StatusOK, ModelsToCameraResponses(h.cameraService.ListAll()))
}

// @Summary Get camera by ID
// @Description Get a single camera node by its ID. Requires API key.
// @Tags Cameras
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Camera ID"
// @Success 200 {object} CameraResponse
// @Failure 400 {object} map[string]string "Invalid camera ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Camera not found"
// @Router /cameras/{id} [get]
func (h *Handler) getCamera(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid camera ID"})
		return
	}

	camera, err := h.cameraService.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "camera not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToCameraResponse(camera))
}

// @Summary Toggle camera privacy
// @Description Flip the owner opt-out flag for a camera node. Requires API key.
// @Tags Cameras
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Camera ID"
// @Success 200 {object} CameraResponse
// @Failure 400 {object} map[string]string "Invalid camera ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Camera not found"
// @Router /cameras/{id}/privacy [post]
func (h *Handler) togglePrivacy(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid camera ID"})
		return
	}
	log := h.logger.WithField("method", "togglePrivacy").WithField("id", id)

	camera, err := h.cameraService.TogglePrivacy(id)
	if err != nil {
		log.WithError(err).Warn("Failed to toggle camera privacy")
		c.JSON(http.StatusNotFound, gin.H{"error": "camera not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToCameraResponse(camera))
}

// @Summary Locate and seed the map
// @Description Resolve the map origin from an optional device hint, IP lookup or the configured default, and generate the neighborhood around it. Requires API key.
// @Tags Cameras
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param hint body LocateRequest false "Optional device coordinate"
// @Success 200 {object} MapResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /cameras/locate [post]
func (h *Handler) locate(c *gin.Context) {
	var input LocateRequest
	log := h.logger.WithField("method", "locate")

	if c.Request.ContentLength > 0 {
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
	}

	var hint *geolocate.Coordinate
	if input.Latitude != nil && input.Longitude != nil {
		hint = &geolocate.Coordinate{Latitude: *input.Latitude, Longitude: *input.Longitude}
	}

	center, source := h.cameraService.Seed(c.Request.Context(), hint)
	c.JSON(http.StatusOK, h.mapResponse(center, source, ""))
}

// @Summary Relocate the map
// @Description Move the map origin to an explicit coordinate or to the first geocoding hit of a free-text query, regenerating the neighborhood. Requires API key.
// @Tags Cameras
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param target body RelocateRequest true "Relocation target"
// @Success 200 {object} MapResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Place not found"
// @Failure 502 {object} map[string]string "Geocoding failed"
// @Router /cameras/relocate [post]
func (h *Handler) relocate(c *gin.Context) {
	var input RelocateRequest
	log := h.logger.WithField("method", "relocate")

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

	if input.Latitude != nil && input.Longitude != nil {
		center := geolocate.Coordinate{Latitude: *input.Latitude, Longitude: *input.Longitude}
		h.cameraService.RelocateByCoordinate(c.Request.Context(), center)
		c.JSON(http.StatusOK, h.mapResponse(center, "", ""))
		return
	}

	if input.Query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "either coordinate or query is required"})
		return
	}

	place, _, err := h.cameraService.RelocateByQuery(c.Request.Context(), input.Query)
	if err != nil {
		if errors.Is(err, service.ErrPlaceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "place not found"})
			return
		}
		log.WithError(err).Error("Geocoding failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "geocoding failed"})
		return
	}
	c.JSON(http.StatusOK, h.mapResponse(place.Coordinate, "", place.Name))
}

// mapResponse snapshots the full regenerated map state.
func (h *Handler) mapResponse(center geolocate.Coordinate, source, placeName string) MapResponse {
	return MapResponse{
		CenterLatitude:  center.Latitude,
		CenterLongitude: center.Longitude,
		Source:          source,
		PlaceName:       placeName,
		Cameras:         ModelsToCameraResponses(h.cameraService.ListAll()),
		Incidents:       incidentValuesToResponses(h.cameraService.Incidents()),
		Alerts:          alertValuesToResponses(h.cameraService.Alerts()),
	}
}
