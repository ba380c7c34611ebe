package handlers

import (
	"net/http"

	"mediation-scheduler/internal/auth"
	"mediation-scheduler/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// VoteHandler handles HTTP requests for availability voting
type VoteHandler struct {
	voteService service.VoteServiceInterface
	pollService service.PollServiceInterface
}

// NewVoteHandler creates a new vote handler
func NewVoteHandler(voteService service.VoteServiceInterface, pollService service.PollServiceInterface) *VoteHandler {
	return &VoteHandler{
		voteService: voteService,
		pollService: pollService,
	}
}

// GetVotingPoll handles GET /voting/:pollId
// @Summary Get a poll through a voting link
// @Description Get the participant-facing view of an active poll, including only the caller's own votes
// @Tags voting
// @Accept json
// @Produce json
// @Param pollId path string true "Poll ID (UUID)"
// @Param token query string true "Voting link token"
// @Success 200 {object} service.ParticipantPollView "Successfully retrieved poll"
// @Failure 400 {object} map[string]interface{} "Invalid UUID format"
// @Failure 401 {object} map[string]interface{} "Invalid or expired voting link"
// @Failure 403 {object} map[string]interface{} "Caller is not a poll participant"
// @Failure 404 {object} map[string]interface{} "Poll not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /voting/{pollId} [get]
func (h *VoteHandler) GetVotingPoll(c *gin.Context) {
	pollID, err := uuid.Parse(c.Param("pollId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID format"})
		return
	}

	resp, err := h.pollService.ParticipantView(pollID, auth.ParticipantEmail(c))
	if err != nil {
		respondError(c, err, "Failed to get poll")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SubmitVotes handles POST /voting/:pollId/votes
// @Summary Submit availability votes
// @Description Submit or update the caller's availability for poll options. The batch is validated as a whole before any vote is stored.
// @Tags voting
// @Accept json
// @Produce json
// @Param pollId path string true "Poll ID (UUID)"
// @Param token query string true "Voting link token"
// @Param votes body service.SubmitVotesRequest true "Votes to submit"
// @Success 200 {object} service.SubmitVotesResponse "Votes processed"
// @Failure 400 {object} map[string]interface{} "Invalid request body or vote batch"
// @Failure 401 {object} map[string]interface{} "Invalid or expired voting link"
// @Failure 403 {object} map[string]interface{} "Caller is not a poll participant"
// @Failure 404 {object} map[string]interface{} "Poll not found"
// @Failure 409 {object} map[string]interface{} "Poll is not open for voting"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /voting/{pollId}/votes [post]
func (h *VoteHandler) SubmitVotes(c *gin.Context) {
	pollID, err := uuid.Parse(c.Param("pollId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID format"})
		return
	}

	var req service.SubmitVotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.voteService.SubmitVotes(pollID, auth.ParticipantEmail(c), &req)
	if err != nil {
		respondError(c, err, "Failed to submit votes")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListPollVotes handles GET /polls/:id/votes
// @Summary List votes for a poll
// @Description Get every recorded vote for a poll. Mediator endpoint.
// @Tags polls
// @Accept json
// @Produce json
// @Param id path string true "Poll ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully retrieved votes"
// @Failure 400 {object} map[string]interface{} "Invalid UUID format"
// @Failure 404 {object} map[string]interface{} "Poll not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /polls/{id}/votes [get]
func (h *VoteHandler) ListPollVotes(c *gin.Context) {
	pollID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID format"})
		return
	}

	votes, err := h.voteService.ListByPoll(pollID)
	if err != nil {
		respondError(c, err, "Failed to get votes")
		return
	}

	c.JSON(http.StatusOK, gin.H{"votes": votes, "total": len(votes)})
}
