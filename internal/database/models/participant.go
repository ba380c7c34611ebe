package models

import "strings"

// Participant is a named contact invited to vote or receive notices.
// Not a system account; identity is the email address, compared
// case-insensitively and unique within a case's or poll's participant set.
type Participant struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role,omitempty"`
}

// NormalizedEmail returns the lower-cased, trimmed email used for all
// participant comparisons and vote keys.
func (p Participant) NormalizedEmail() string {
	return NormalizeEmail(p.Email)
}

// NormalizeEmail lower-cases and trims an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// FindParticipant looks up a participant by email, case-insensitively
func FindParticipant(participants []Participant, email string) (Participant, bool) {
	needle := NormalizeEmail(email)
	for _, p := range participants {
		if p.NormalizedEmail() == needle {
			return p, true
		}
	}
	return Participant{}, false
}
