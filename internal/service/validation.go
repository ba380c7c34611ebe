package service

import (
	"strings"

	"mediation-scheduler/internal/database/models"

	"github.com/go-playground/validator/v10"
)

// structValidator backs the single-value checks in this file; request
// structs are validated by the per-service validator instances.
var structValidator = validator.New()

// ValidationResult is the structural-validation contract shared by poll,
// case, and notice submissions: a field-to-message map instead of an
// error, so callers can render form-level messages. Validators never fail
// with an error themselves.
type ValidationResult struct {
	IsValid bool              `json:"is_valid"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func newValidationResult() ValidationResult {
	return ValidationResult{IsValid: true, Errors: map[string]string{}}
}

func (r *ValidationResult) addError(field, message string) {
	r.IsValid = false
	r.Errors[field] = message
}

// ValidatePollData structurally checks a poll submission before it may
// reach storage. Participant email format is deliberately NOT validated
// here: emails are validated once, at the case layer where participants
// are entered, and the poll layer trusts that data. Validating twice
// would let the two layers drift into divergent error messages.
func ValidatePollData(req *CreatePollRequest) ValidationResult {
	result := newValidationResult()

	if isBlank(req.Title) {
		result.addError("title", "title is required")
	}
	if isBlank(req.CaseID) {
		result.addError("caseId", "case reference is required")
	}
	if len(req.Options) == 0 {
		result.addError("options", "at least one time option is required")
	}
	for _, option := range req.Options {
		if isBlank(option.Date) || isBlank(option.Time) {
			result.addError("options", "every option needs both a date and a time")
			break
		}
	}
	if len(req.Participants) == 0 {
		result.addError("participants", "at least one participant is required")
	}

	return result
}

// ValidateCaseData structurally checks a case submission. Email format for
// participants IS checked here; this is the single place participant
// contact data enters the system.
func ValidateCaseData(req *CreateCaseRequest) ValidationResult {
	result := newValidationResult()

	if isBlank(req.Title) {
		result.addError("title", "title is required")
	}
	if isBlank(req.CaseNumber) {
		result.addError("caseNumber", "case number is required")
	}
	if !req.CaseType.IsValid() {
		result.addError("caseType", "unknown case type")
	}
	for _, p := range req.Participants {
		if !validEmail(p.Email) {
			result.addError("participants", "participant email "+p.Email+" is invalid")
			break
		}
	}
	if dup, ok := duplicateEmail(req.Participants); ok {
		result.addError("participants", "duplicate participant email "+dup)
	}

	return result
}

// ValidateNoticeData structurally checks a notice submission
func ValidateNoticeData(req *CreateNoticeRequest) ValidationResult {
	result := newValidationResult()

	if isBlank(req.Title) {
		result.addError("title", "title is required")
	}
	if isBlank(req.CaseID) {
		result.addError("caseId", "case reference is required")
	}
	if isBlank(req.Body) {
		result.addError("body", "notice body is required")
	}

	return result
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func validEmail(email string) bool {
	return structValidator.Var(strings.TrimSpace(email), "required,email") == nil
}

func duplicateEmail(participants []ParticipantInput) (string, bool) {
	seen := map[string]bool{}
	for _, p := range participants {
		email := models.NormalizeEmail(p.Email)
		if seen[email] {
			return p.Email, true
		}
		seen[email] = true
	}
	return "", false
}
