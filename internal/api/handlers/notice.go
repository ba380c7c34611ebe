package handlers

import (
	"io"
	"net/http"
	"strconv"

	"mediation-scheduler/internal/auth"
	"mediation-scheduler/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// NoticeHandler handles HTTP requests for hearing notice operations
type NoticeHandler struct {
	noticeService service.NoticeServiceInterface
}

// NewNoticeHandler creates a new notice handler
func NewNoticeHandler(noticeService service.NoticeServiceInterface) *NoticeHandler {
	return &NoticeHandler{
		noticeService: noticeService,
	}
}

// CreateNotice handles POST /notices
// @Summary Create a hearing notice
// @Description Create a draft notice for a case. When a finalized poll is referenced, the notice inherits the winning option's date, time and location.
// @Tags notices
// @Accept json
// @Produce json
// @Param notice body service.CreateNoticeRequest true "Notice data"
// @Success 201 {object} service.NoticeResponse "Successfully created notice"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Caller does not own the case"
// @Failure 404 {object} map[string]interface{} "Case or poll not found"
// @Failure 409 {object} map[string]interface{} "Referenced poll is not finalized"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /notices [post]
func (h *NoticeHandler) CreateNotice(c *gin.Context) {
	var req service.CreateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.noticeService.Create(&req, auth.CallerID(c))
	if err != nil {
		respondError(c, err, "Failed to create notice")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetNotice handles GET /notices/:id
// @Summary Get a notice by ID
// @Description Get a single hearing notice by its UUID
// @Tags notices
// @Accept json
// @Produce json
// @Param id path string true "Notice ID (UUID)"
// @Success 200 {object} service.NoticeResponse "Successfully retrieved notice"
// @Failure 400 {object} map[string]interface{} "Invalid UUID format"
// @Failure 404 {object} map[string]interface{} "Notice not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /notices/{id} [get]
func (h *NoticeHandler) GetNotice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID format"})
		return
	}

	resp, err := h.noticeService.GetByID(id)
	if err != nil {
		respondError(c, err, "Failed to get notice")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListCaseNotices handles GET /cases/:id/notices
// @Summary List notices for a case
// @Description Get all hearing notices belonging to a case with pagination support
// @Tags notices
// @Accept json
// @Produce json
// @Param id path string true "Case ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.NoticeListResponse "Successfully retrieved notices"
// @Failure 400 {object} map[string]interface{} "Invalid UUID format"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /cases/{id}/notices [get]
func (h *NoticeHandler) ListCaseNotices(c *gin.Context) {
	caseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID format"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	resp, err := h.noticeService.ListByCase(caseID, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get notices", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateNotice handles PUT /notices/:id
// @Summary Update a draft notice
// @Description Update a notice that has not been sent yet
// @Tags notices
// @Accept json
// @Produce json
// @Param id path string true "Notice ID (UUID)"
// @Param notice body service.UpdateNoticeRequest true "Updated notice data"
// @Success 200 {object} service.NoticeResponse "Successfully updated notice"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Caller does not own the notice"
// @Failure 404 {object} map[string]interface{} "Notice not found"
// @Failure 409 {object} map[string]interface{} "Notice has already been sent"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /notices/{id} [put]
func (h *NoticeHandler) UpdateNotice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID format"})
		return
	}

	var req service.UpdateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.noticeService.Update(id, &req, auth.CallerID(c))
	if err != nil {
		respondError(c, err, "Failed to update notice")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteNotice handles DELETE /notices/:id
// @Summary Delete a draft notice
// @Description Delete a notice that has not been sent, removing any stored attachment
// @Tags notices
// @Accept json
// @Produce json
// @Param id path string true "Notice ID (UUID)"
// @Success 204 "Successfully deleted notice"
// @Failure 400 {object} map[string]interface{} "Invalid UUID format"
// @Failure 403 {object} map[string]interface{} "Caller does not own the notice"
// @Failure 404 {object} map[string]interface{} "Notice not found"
// @Failure 409 {object} map[string]interface{} "Notice has already been sent"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /notices/{id} [delete]
func (h *NoticeHandler) DeleteNotice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID format"})
		return
	}

	if err := h.noticeService.Delete(id, auth.CallerID(c)); err != nil {
		respondError(c, err, "Failed to delete notice")
		return
	}

	c.Status(http.StatusNoContent)
}

// AttachPDF handles POST /notices/:id/attachment
// @Summary Attach a PDF to a notice
// @Description Upload a PDF that will be delivered with the notice email. Replaces any previous attachment.
// @Tags notices
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Notice ID (UUID)"
// @Param file formData file true "PDF file"
// @Success 200 {object} service.NoticeResponse "Attachment stored"
// @Failure 400 {object} map[string]interface{} "Missing file or not a PDF"
// @Failure 403 {object} map[string]interface{} "Caller does not own the notice"
// @Failure 404 {object} map[string]interface{} "Notice not found"
// @Failure 409 {object} map[string]interface{} "Notice has already been sent"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /notices/{id}/attachment [post]
func (h *NoticeHandler) AttachPDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID format"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required", "details": err.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read uploaded file", "details": err.Error()})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read uploaded file", "details": err.Error()})
		return
	}

	resp, err := h.noticeService.AttachPDF(id, fileHeader.Filename, data, auth.CallerID(c))
	if err != nil {
		respondError(c, err, "Failed to attach file")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetAttachmentURL handles GET /notices/:id/attachment-url
// @Summary Get a signed attachment URL
// @Description Get a short-lived signed URL for downloading the notice attachment
// @Tags notices
// @Accept json
// @Produce json
// @Param id path string true "Notice ID (UUID)"
// @Success 200 {object} map[string]interface{} "Signed download URL"
// @Failure 400 {object} map[string]interface{} "Invalid UUID format"
// @Failure 404 {object} map[string]interface{} "Notice or attachment not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /notices/{id}/attachment-url [get]
func (h *NoticeHandler) GetAttachmentURL(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID format"})
		return
	}

	url, err := h.noticeService.AttachmentURL(id)
	if err != nil {
		respondError(c, err, "Failed to get attachment URL")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// SendNotice handles POST /notices/:id/send
// @Summary Send a notice
// @Description Email the notice, with its attachment when present, to every case participant
// @Tags notices
// @Accept json
// @Produce json
// @Param id path string true "Notice ID (UUID)"
// @Success 200 {object} service.SendNoticeResponse "Notice dispatched"
// @Failure 400 {object} map[string]interface{} "Case has no participants"
// @Failure 403 {object} map[string]interface{} "Caller does not own the notice"
// @Failure 404 {object} map[string]interface{} "Notice not found"
// @Failure 409 {object} map[string]interface{} "Notice has already been sent"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /notices/{id}/send [post]
func (h *NoticeHandler) SendNotice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID format"})
		return
	}

	resp, err := h.noticeService.Send(c.Request.Context(), id, auth.CallerID(c))
	if err != nil {
		respondError(c, err, "Failed to send notice")
		return
	}

	c.JSON(http.StatusOK, resp)
}
