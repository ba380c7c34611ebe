package handlers

import (
	"net/http"
	"strconv"

	"mediation-scheduler/internal/auth"
	"mediation-scheduler/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CaseHandler handles HTTP requests for mediation case operations
type CaseHandler struct {
	caseService service.CaseServiceInterface
}

// NewCaseHandler creates a new case handler
func NewCaseHandler(caseService service.CaseServiceInterface) *CaseHandler {
	return &CaseHandler{
		caseService: caseService,
	}
}

// CreateCase handles POST /cases
// @Summary Create a mediation case
// @Description Create a new mediation case with its participants
// @Tags cases
// @Accept json
// @Produce json
// @Param case body service.CreateCaseRequest true "Case data"
// @Success 201 {object} service.CaseResponse "Successfully created case"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Case number already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /cases [post]
func (h *CaseHandler) CreateCase(c *gin.Context) {
	var req service.CreateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.caseService.Create(&req, auth.CallerID(c))
	if err != nil {
		respondError(c, err, "Failed to create case")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetCase handles GET /cases/:id
// @Summary Get a case by ID
// @Description Get a single mediation case by its UUID
// @Tags cases
// @Accept json
// @Produce json
// @Param id path string true "Case ID (UUID)"
// @Success 200 {object} service.CaseResponse "Successfully retrieved case"
// @Failure 400 {object} map[string]interface{} "Invalid UUID format"
// @Failure 404 {object} map[string]interface{} "Case not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /cases/{id} [get]
func (h *CaseHandler) GetCase(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID format"})
		return
	}

	resp, err := h.caseService.GetByID(id)
	if err != nil {
		respondError(c, err, "Failed to get case")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListCases handles GET /cases
// @Summary List cases
// @Description Get the caller's mediation cases with pagination support
// @Tags cases
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.CaseListResponse "Successfully retrieved cases"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /cases [get]
func (h *CaseHandler) ListCases(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	resp, err := h.caseService.List(auth.CallerID(c), page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get cases", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateCase handles PUT /cases/:id
// @Summary Update a case
// @Description Update an existing mediation case owned by the caller
// @Tags cases
// @Accept json
// @Produce json
// @Param id path string true "Case ID (UUID)"
// @Param case body service.UpdateCaseRequest true "Updated case data"
// @Success 200 {object} service.CaseResponse "Successfully updated case"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Caller does not own the case"
// @Failure 404 {object} map[string]interface{} "Case not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /cases/{id} [put]
func (h *CaseHandler) UpdateCase(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID format"})
		return
	}

	var req service.UpdateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.caseService.Update(id, &req, auth.CallerID(c))
	if err != nil {
		respondError(c, err, "Failed to update case")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteCase handles DELETE /cases/:id
// @Summary Delete a case
// @Description Delete a mediation case. Cases with active polls cannot be deleted.
// @Tags cases
// @Accept json
// @Produce json
// @Param id path string true "Case ID (UUID)"
// @Success 204 "Successfully deleted case"
// @Failure 400 {object} map[string]interface{} "Invalid UUID format"
// @Failure 403 {object} map[string]interface{} "Caller does not own the case"
// @Failure 404 {object} map[string]interface{} "Case not found"
// @Failure 409 {object} map[string]interface{} "Case has active polls"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /cases/{id} [delete]
func (h *CaseHandler) DeleteCase(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID format"})
		return
	}

	if err := h.caseService.Delete(id, auth.CallerID(c)); err != nil {
		respondError(c, err, "Failed to delete case")
		return
	}

	c.Status(http.StatusNoContent)
}
