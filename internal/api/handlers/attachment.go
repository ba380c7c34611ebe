package handlers

import (
	"net/http"
	"os"
	"strconv"

	"mediation-scheduler/internal/storage"

	"github.com/gin-gonic/gin"
)

// AttachmentHandler serves signed attachment downloads without authentication
type AttachmentHandler struct {
	store storage.Store
}

// NewAttachmentHandler creates a new attachment handler
func NewAttachmentHandler(store storage.Store) *AttachmentHandler {
	return &AttachmentHandler{
		store: store,
	}
}

// Download handles GET /attachments/:key
// @Summary Download an attachment
// @Description Download a notice attachment via a signed, expiring URL
// @Tags attachments
// @Produce application/pdf
// @Param key path string true "Attachment key"
// @Param expires query int true "Unix expiry timestamp"
// @Param sig query string true "HMAC signature"
// @Success 200 {file} file "Attachment content"
// @Failure 401 {object} map[string]interface{} "Invalid or expired link"
// @Failure 404 {object} map[string]interface{} "Attachment not found"
// @Router /attachments/{key} [get]
func (h *AttachmentHandler) Download(c *gin.Context) {
	key := c.Param("key")

	expires, err := strconv.ParseInt(c.Query("expires"), 10, 64)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired download link"})
		return
	}

	if !h.store.VerifyDownload(key, expires, c.Query("sig")) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired download link"})
		return
	}

	data, err := h.store.Read(key)
	if err != nil {
		if os.IsNotExist(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "attachment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read attachment", "details": err.Error()})
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+strconv.Quote(key))
	c.Data(http.StatusOK, "application/pdf", data)
}
