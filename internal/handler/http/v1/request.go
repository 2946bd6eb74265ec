package v1

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mvoloshin/camera_coordination_system/internal/blob"
	"github.com/mvoloshin/camera_coordination_system/internal/ledger"
	"github.com/mvoloshin/camera_coordination_system/internal/service"
)

// @Summary Submit a footage access request
// @Description Submit a request for footage from a specific camera. The request starts in PENDING state. Requires API key.
// @Tags Requests
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body CreateAccessRequest true "Access request submission"
// @Success 201 {object} AccessRequestResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Camera not found"
// @Router /requests [post]
func (h *Handler) submitRequest(c *gin.Context) {
	var input CreateAccessRequest
	log := h.logger.WithField("method", "submitRequest")

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

	req, err := h.requestService.Submit(c.Request.Context(), input.CameraID, input.Reason, input.IncidentTime)
	if err != nil {
		if errors.Is(err, service.ErrCameraNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "camera not found"})
			return
		}
		log.WithError(err).Warn("Failed to submit access request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, ModelToAccessRequestResponse(req))
}

// @Summary List access requests
// @Description List access requests, optionally filtered by camera. Requires API key.
// @Tags Requests
// @Produce json
// @Security ApiKeyAuth
// @Param camera_id query string false "Camera ID filter"
// @Success 200 {array} AccessRequestResponse
// @Failure 400 {object} map[string]string "Invalid camera ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /requests [get]
func (h *Handler) listRequests(c *gin.Context) {
	if raw := c.Query("camera_id"); raw != "" {
		cameraID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid camera ID"})
			return
		}
		c.JSON(http.StatusOK, ModelsToAccessRequestResponses(h.requestService.ListByCamera(cameraID)))
		return
	}
	c.JSON(http.StatusOK, ModelsToAccessRequestResponses(h.requestService.ListAll()))
}

// @Summary Get access request statistics
// @Description Get aggregate counts across the access ledger. Requires API key.
// @Tags Requests
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} RequestStatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /requests/stats [get]
func (h *Handler) getRequestStats(c *gin.Context) {
	stats := h.requestService.Stats()
	c.JSON(http.StatusOK, RequestStatsResponse{
		Total:    stats.Total,
		Pending:  stats.Pending,
		Approved: stats.Approved,
		Rejected: stats.Rejected,
	})
}

// @Summary Get access request by ID
// @Description Get a single access request by its ID. Requires API key.
// @Tags Requests
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Request ID"
// @Success 200 {object} AccessRequestResponse
// @Failure 400 {object} map[string]string "Invalid request ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Request not found"
// @Router /requests/{id} [get]
func (h *Handler) getRequest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request ID"})
		return
	}

	req, err := h.requestService.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "request not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToAccessRequestResponse(req))
}

// @Summary Approve an access request
// @Description Approve a pending access request by uploading the footage as multipart form data. The decision is final. Requires API key.
// @Tags Requests
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Request ID"
// @Param video formData file true "Footage video file"
// @Success 200 {object} AccessRequestResponse
// @Failure 400 {object} map[string]string "Invalid request ID or missing video"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Request already decided"
// @Failure 413 {object} map[string]string "Video too large"
// @Router /requests/{id}/approve [post]
func (h *Handler) approveRequest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request ID"})
		return
	}
	log := h.logger.WithField("method", "approveRequest").WithField("id", id)

	fileHeader, err := c.FormFile("video")
	if err != nil {
		log.WithError(err).Warn("Missing video file in approval")
		c.JSON(http.StatusBadRequest, gin.H{"error": "video file is required"})
		return
	}
	if fileHeader.Size > h.cfg.MaxVideoUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "video exceeds upload limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.WithError(err).Error("Failed to open uploaded video")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.WithError(err).Error("Failed to read uploaded video")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	mime := fileHeader.Header.Get("Content-Type")
	if mime == "" {
		mime = "application/octet-stream"
	}

	req, err := h.requestService.Approve(c.Request.Context(), id, fileHeader.Filename, mime, data)
	if err != nil {
		if errors.Is(err, ledger.ErrInvalidTransition) {
			c.JSON(http.StatusConflict, gin.H{"error": "request already decided"})
			return
		}
		log.WithError(err).Warn("Failed to approve request")
		c.JSON(http.StatusNotFound, gin.H{"error": "request not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToAccessRequestResponse(req))
}

// @Summary Reject an access request
// @Description Reject a pending access request. The decision is final. Requires API key.
// @Tags Requests
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Request ID"
// @Success 200 {object} AccessRequestResponse
// @Failure 400 {object} map[string]string "Invalid request ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Request not found"
// @Failure 409 {object} map[string]string "Request already decided"
// @Router /requests/{id}/reject [post]
func (h *Handler) rejectRequest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request ID"})
		return
	}
	log := h.logger.WithField("method", "rejectRequest").WithField("id", id)

	req, err := h.requestService.Reject(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ledger.ErrInvalidTransition) {
			c.JSON(http.StatusConflict, gin.H{"error": "request already decided"})
			return
		}
		log.WithError(err).Warn("Failed to reject request")
		c.JSON(http.StatusNotFound, gin.H{"error": "request not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToAccessRequestResponse(req))
}

// @Summary Analyze approved footage
// @Description Ask the configured analysis backend a question about the footage of an approved request. Backend failures are returned as answer text. Requires API key.
// @Tags Requests
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Request ID"
// @Param question body AnalyzeRequest true "Question about the footage"
// @Success 200 {object} AnalyzeResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Request or footage not found"
// @Failure 409 {object} map[string]string "Request is not approved"
// @Router /requests/{id}/analyze [post]
func (h *Handler) analyzeRequest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request ID"})
		return
	}
	log := h.logger.WithField("method", "analyzeRequest").WithField("id", id)

	var input AnalyzeRequest
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

	answer, err := h.requestService.Analyze(c.Request.Context(), id, input.Prompt)
	if err != nil {
		if errors.Is(err, service.ErrNotApproved) {
			c.JSON(http.StatusConflict, gin.H{"error": "request is not approved"})
			return
		}
		log.WithError(err).Warn("Failed to analyze footage")
		c.JSON(http.StatusNotFound, gin.H{"error": "request or footage not found"})
		return
	}
	c.JSON(http.StatusOK, AnalyzeResponse{Answer: answer})
}

// @Summary Download stored footage
// @Description Download the footage blob attached to an approved request. Requires API key.
// @Tags Videos
// @Produce octet-stream
// @Security ApiKeyAuth
// @Param id path string true "Blob ID"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string "Invalid blob ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Footage not found"
// @Failure 410 {object} map[string]string "Footage released"
// @Router /videos/{id} [get]
func (h *Handler) getVideo(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid blob ID"})
		return
	}

	res, err := h.requestService.OpenVideo(id)
	if err != nil {
		if errors.Is(err, blob.ErrReleased) {
			c.JSON(http.StatusGone, gin.H{"error": "footage released"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "footage not found"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+res.Name+`"`)
	c.Data(http.StatusOK, res.MIME, res.Data)
}

// @Summary Release stored footage
// @Description Release the footage blob so its memory is reclaimed. Releasing twice fails. Requires API key.
// @Tags Videos
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Blob ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid blob ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Footage not found"
// @Failure 410 {object} map[string]string "Footage already released"
// @Router /videos/{id} [delete]
func (h *Handler) deleteVideo(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid blob ID"})
		return
	}
	log := h.logger.WithField("method", "deleteVideo").WithField("id", id)

	if err := h.requestService.ReleaseVideo(id); err != nil {
		if errors.Is(err, blob.ErrReleased) {
			log.Warn("Footage released twice")
			c.JSON(http.StatusGone, gin.H{"error": "footage already released"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "footage not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
