package auth

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"mediation-scheduler/internal/config"
	apperrors "mediation-scheduler/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the mediator identity carried by a session token. The core
// trusts this identity for ownership checks.
type Claims struct {
	UserID string `json:"uid"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// VotingClaims is the capability carried by a voting link: it entitles one
// participant email to vote on one poll, nothing else.
type VotingClaims struct {
	PollID           string `json:"poll_id"`
	ParticipantEmail string `json:"participant_email"`
	jwt.RegisteredClaims
}

// Service issues and validates the two token kinds used by the API
type Service struct {
	secret        []byte
	baseURL       string
	sessionTTL    time.Duration
	votingLinkTTL time.Duration
}

// NewService creates an auth service from application configuration
func NewService(cfg *config.Config) *Service {
	return &Service{
		secret:        []byte(cfg.JWTSecret),
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		sessionTTL:    time.Duration(cfg.SessionTTLHours) * time.Hour,
		votingLinkTTL: time.Duration(cfg.VotingLinkTTLHours) * time.Hour,
	}
}

// IssueSession creates a signed mediator session token
func (s *Service) IssueSession(userID, email, role string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ValidateSession parses and verifies a mediator session token
func (s *Service) ValidateSession(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, s.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}

// IssueVotingLinkToken creates the opaque token embedded in a voting link
func (s *Service) IssueVotingLinkToken(pollID uuid.UUID, participantEmail string) (string, error) {
	now := time.Now()
	claims := &VotingClaims{
		PollID:           pollID.String(),
		ParticipantEmail: strings.ToLower(strings.TrimSpace(participantEmail)),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.votingLinkTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ValidateVotingLinkToken parses and verifies a voting-link token
func (s *Service) ValidateVotingLinkToken(tokenString string) (*VotingClaims, error) {
	claims := &VotingClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, s.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, apperrors.ErrInvalidVotingLink
	}
	return claims, nil
}

// VotingURL renders the full voting link a participant receives by email
func (s *Service) VotingURL(pollID uuid.UUID, participantEmail string) (string, error) {
	token, err := s.IssueVotingLinkToken(pollID, participantEmail)
	if err != nil {
		return "", fmt.Errorf("issue voting link: %w", err)
	}
	return fmt.Sprintf("%s/vote/%s?token=%s", s.baseURL, pollID, url.QueryEscape(token)), nil
}

func (s *Service) keyFunc(token *jwt.Token) (interface{}, error) {
	return s.secret, nil
}
