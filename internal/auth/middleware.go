package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Middleware provides JWT authentication middleware
type Middleware struct {
	service *Service
}

// NewMiddleware creates a new authentication middleware
func NewMiddleware(service *Service) *Middleware {
	return &Middleware{service: service}
}

// RequireAuth validates mediator session tokens and sets the caller
// identity in the request context
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateSession(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Set("auth_claims", claims)

		c.Next()
	}
}

// RequireVotingLink validates the voting-link token on participant routes.
// The token arrives as a query parameter since participants follow a plain
// emailed URL without any session.
func (m *Middleware) RequireVotingLink() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.Query("token")
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "voting link token is required"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateVotingLinkToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired voting link"})
			c.Abort()
			return
		}

		// The link is bound to one poll; reject tokens replayed on others
		if pollID := c.Param("pollId"); pollID != "" && pollID != claims.PollID {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "voting link does not match this poll"})
			c.Abort()
			return
		}

		c.Set("voting_poll_id", claims.PollID)
		c.Set("participant_email", claims.ParticipantEmail)

		c.Next()
	}
}

// CallerID returns the authenticated mediator's user id from the context
func CallerID(c *gin.Context) string {
	if v, ok := c.Get("user_id"); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

// ParticipantEmail returns the voting-link participant email from the context
func ParticipantEmail(c *gin.Context) string {
	if v, ok := c.Get("participant_email"); ok {
		if email, ok := v.(string); ok {
			return email
		}
	}
	return ""
}
