package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a failed required-field or referential check.
// Always recoverable; reported with field-level detail, never retried.
// Fields carries the per-field messages of a structural validation pass.
type ValidationError struct {
	Field   string
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// StateError represents an operation that is not legal in the poll's
// current status. No retry, no partial mutation.
type StateError struct {
	Entity  string
	Status  string
	Message string
}

func (e *StateError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("%s in status %q: %s", e.Entity, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Entity, e.Message)
}

// ConflictError represents a concurrent-mutation race detected by a
// conditional update. The caller should re-fetch and retry.
type ConflictError struct {
	Entity  string
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict on %s: %s", e.Entity, e.Message)
}

// DeliveryError represents a single failed email delivery. Non-fatal:
// recorded against the recipient and aggregated into summary counts.
type DeliveryError struct {
	Recipient string
	Cause     error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivery to %s failed: %v", e.Recipient, e.Cause)
}

func (e *DeliveryError) Unwrap() error {
	return e.Cause
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrCaseNotFound        = &NotFoundError{Entity: "case"}
	ErrPollNotFound        = &NotFoundError{Entity: "poll"}
	ErrPollOptionNotFound  = &NotFoundError{Entity: "poll option"}
	ErrVoteNotFound        = &NotFoundError{Entity: "vote"}
	ErrNoticeNotFound      = &NotFoundError{Entity: "notice"}
	ErrParticipantNotFound = &NotFoundError{Entity: "participant"}
	ErrAttachmentNotFound  = &NotFoundError{Entity: "attachment"}
)

// State Machine Errors
var (
	ErrPollNotDraft       = &StateError{Entity: "poll", Message: "only draft polls can be modified"}
	ErrPollNotActive      = &StateError{Entity: "poll", Message: "poll is not open for voting"}
	ErrPollNotActivatable = &StateError{Entity: "poll", Message: "poll cannot be activated"}
	ErrPollNotFinalizable = &StateError{Entity: "poll", Message: "poll cannot be finalized"}
	ErrPollNotCancellable = &StateError{Entity: "poll", Message: "poll cannot be cancelled"}
	ErrPollNotDeletable   = &StateError{Entity: "poll", Message: "active or finalized polls cannot be deleted"}
	ErrCaseHasActivePolls = &StateError{Entity: "case", Message: "case has active or finalized polls"}
	ErrNoticeAlreadySent  = &StateError{Entity: "notice", Message: "notice has already been sent"}
)

// Concurrency Errors
var (
	ErrPollConcurrentUpdate = &ConflictError{Entity: "poll", Message: "poll was modified by another request"}
)

// Business Logic Errors
var (
	ErrNoVotesReceived     = errors.New("poll has no votes yet")
	ErrOptionNotInPoll     = errors.New("selected option does not belong to this poll")
	ErrDuplicateOptionID   = errors.New("duplicate option id")
	ErrNotOwner            = &AuthorizationError{Message: "only the mediator who created the case may modify it"}
	ErrVoterNotParticipant = &AuthorizationError{Message: "email is not a participant of this poll"}
)

// Authentication Errors
var (
	ErrInvalidToken      = &AuthenticationError{Message: "invalid or expired token"}
	ErrInvalidVotingLink = &AuthenticationError{Message: "invalid or expired voting link"}
	ErrMissingIdentity   = &AuthenticationError{Message: "caller identity not found in context"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsState checks if an error is a StateError
func IsState(err error) bool {
	var stateErr *StateError
	return errors.As(err, &stateErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsDelivery checks if an error is a DeliveryError
func IsDelivery(err error) bool {
	var deliveryErr *DeliveryError
	return errors.As(err, &deliveryErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewFieldValidationError wraps a set of per-field validation messages
func NewFieldValidationError(fields map[string]string) error {
	return &ValidationError{Message: "submission failed validation", Fields: fields}
}

// NewStateError creates a new StateError carrying the offending status
func NewStateError(entity, status, message string) error {
	return &StateError{Entity: entity, Status: status, Message: message}
}

// NewDeliveryError wraps a per-recipient send failure
func NewDeliveryError(recipient string, cause error) error {
	return &DeliveryError{Recipient: recipient, Cause: cause}
}
