package handlers

import (
	"net/http"
	"strconv"

	"mediation-scheduler/internal/auth"
	"mediation-scheduler/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PollHandler handles HTTP requests for scheduling poll operations
type PollHandler struct {
	pollService service.PollServiceInterface
}

// NewPollHandler creates a new poll handler
func NewPollHandler(pollService service.PollServiceInterface) *PollHandler {
	return &PollHandler{
		pollService: pollService,
	}
}

// CreatePoll handles POST /polls
// @Summary Create a scheduling poll
// @Description Create a draft scheduling poll for a case. Participants default to the case participants when omitted.
// @Tags polls
// @Accept json
// @Produce json
// @Param poll body service.CreatePollRequest true "Poll data"
// @Success 201 {object} service.PollResponse "Successfully created poll"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Caller does not own the case"
// @Failure 404 {object} map[string]interface{} "Case not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /polls [post]
func (h *PollHandler) CreatePoll(c *gin.Context) {
	var req service.CreatePollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.pollService.Create(&req, auth.CallerID(c))
	if err != nil {
		respondError(c, err, "Failed to create poll")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetPoll handles GET /polls/:id
// @Summary Get a poll by ID
// @Description Get a single scheduling poll by its UUID
// @Tags polls
// @Accept json
// @Produce json
// @Param id path string true "Poll ID (UUID)"
// @Success 200 {object} service.PollResponse "Successfully retrieved poll"
// @Failure 400 {object} map[string]interface{} "Invalid UUID format"
// @Failure 404 {object} map[string]interface{} "Poll not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /polls/{id} [get]
func (h *PollHandler) GetPoll(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID format"})
		return
	}

	resp, err := h.pollService.GetByID(id)
	if err != nil {
		respondError(c, err, "Failed to get poll")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListCasePolls handles GET /cases/:id/polls
// @Summary List polls for a case
// @Description Get all scheduling polls belonging to a case with pagination support
// @Tags polls
// @Accept json
// @Produce json
// @Param id path string true "Case ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.PollListResponse "Successfully retrieved polls"
// @Failure 400 {object} map[string]interface{} "Invalid UUID format"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /cases/{id}/polls [get]
func (h *PollHandler) ListCasePolls(c *gin.Context) {
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

	resp, err := h.pollService.ListByCase(caseID, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get polls", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdatePoll handles PUT /polls/:id
// @Summary Update a draft poll
// @Description Update a poll that is still in draft status. Options matching an existing date and time keep their identity.
// @Tags polls
// @Accept json
// @Produce json
// @Param id path string true "Poll ID (UUID)"
// @Param poll body service.UpdatePollRequest true "Updated poll data"
// @Success 200 {object} service.PollResponse "Successfully updated poll"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Caller does not own the poll"
// @Failure 404 {object} map[string]interface{} "Poll not found"
// @Failure 409 {object} map[string]interface{} "Poll is not in draft status"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /polls/{id} [put]
func (h *PollHandler) UpdatePoll(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID format"})
		return
	}

	var req service.UpdatePollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.pollService.Update(id, &req, auth.CallerID(c))
	if err != nil {
		respondError(c, err, "Failed to update poll")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ActivatePoll handles POST /polls/:id/activate
// @Summary Activate a poll
// @Description Transition a draft poll to active and email voting invitations to every participant
// @Tags polls
// @Accept json
// @Produce json
// @Param id path string true "Poll ID (UUID)"
// @Success 200 {object} service.ActivatePollResponse "Poll activated, invitations dispatched"
// @Failure 400 {object} map[string]interface{} "Invalid UUID format"
// @Failure 403 {object} map[string]interface{} "Caller does not own the poll"
// @Failure 404 {object} map[string]interface{} "Poll not found"
// @Failure 409 {object} map[string]interface{} "Poll cannot be activated"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /polls/{id}/activate [post]
func (h *PollHandler) ActivatePoll(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID format"})
		return
	}

	resp, err := h.pollService.Activate(c.Request.Context(), id, auth.CallerID(c))
	if err != nil {
		respondError(c, err, "Failed to activate poll")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// FinalizePoll handles POST /polls/:id/finalize
// @Summary Finalize a poll
// @Description Close an active poll by selecting the winning option
// @Tags polls
// @Accept json
// @Produce json
// @Param id path string true "Poll ID (UUID)"
// @Param selection body service.FinalizePollRequest true "Selected option"
// @Success 200 {object} service.PollResponse "Successfully finalized poll"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Caller does not own the poll"
// @Failure 404 {object} map[string]interface{} "Poll not found"
// @Failure 409 {object} map[string]interface{} "Poll cannot be finalized"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /polls/{id}/finalize [post]
func (h *PollHandler) FinalizePoll(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID format"})
		return
	}

	var req service.FinalizePollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.pollService.Finalize(id, &req, auth.CallerID(c))
	if err != nil {
		respondError(c, err, "Failed to finalize poll")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CancelPoll handles POST /polls/:id/cancel
// @Summary Cancel a poll
// @Description Cancel a draft or active poll. Finalized polls cannot be cancelled.
// @Tags polls
// @Accept json
// @Produce json
// @Param id path string true "Poll ID (UUID)"
// @Success 200 {object} service.PollResponse "Successfully cancelled poll"
// @Failure 400 {object} map[string]interface{} "Invalid UUID format"
// @Failure 403 {object} map[string]interface{} "Caller does not own the poll"
// @Failure 404 {object} map[string]interface{} "Poll not found"
// @Failure 409 {object} map[string]interface{} "Poll cannot be cancelled"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /polls/{id}/cancel [post]
func (h *PollHandler) CancelPoll(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID format"})
		return
	}

	resp, err := h.pollService.Cancel(id, auth.CallerID(c))
	if err != nil {
		respondError(c, err, "Failed to cancel poll")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeletePoll handles DELETE /polls/:id
// @Summary Delete a poll
// @Description Delete a draft or cancelled poll along with its votes
// @Tags polls
// @Accept json
// @Produce json
// @Param id path string true "Poll ID (UUID)"
// @Success 204 "Successfully deleted poll"
// @Failure 400 {object} map[string]interface{} "Invalid UUID format"
// @Failure 403 {object} map[string]interface{} "Caller does not own the poll"
// @Failure 404 {object} map[string]interface{} "Poll not found"
// @Failure 409 {object} map[string]interface{} "Poll cannot be deleted"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /polls/{id} [delete]
func (h *PollHandler) DeletePoll(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID format"})
		return
	}

	if err := h.pollService.Delete(id, auth.CallerID(c)); err != nil {
		respondError(c, err, "Failed to delete poll")
		return
	}

	c.Status(http.StatusNoContent)
}

// GetPollResults handles GET /polls/:id/results
// @Summary Get poll results
// @Description Get ranked options with vote counts, weighted scores and the current best option
// @Tags polls
// @Accept json
// @Produce json
// @Param id path string true "Poll ID (UUID)"
// @Success 200 {object} service.PollResultsResponse "Successfully retrieved results"
// @Failure 400 {object} map[string]interface{} "Invalid UUID format"
// @Failure 404 {object} map[string]interface{} "Poll not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /polls/{id}/results [get]
func (h *PollHandler) GetPollResults(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID format"})
		return
	}

	resp, err := h.pollService.Results(id)
	if err != nil {
		respondError(c, err, "Failed to get poll results")
		return
	}

	c.JSON(http.StatusOK, resp)
}
