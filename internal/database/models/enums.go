package models

// PollStatus defines the lifecycle states of a scheduling poll
type PollStatus string

const (
	PollStatusDraft     PollStatus = "draft"
	PollStatusActive    PollStatus = "active"
	PollStatusFinalized PollStatus = "finalized"
	PollStatusCancelled PollStatus = "cancelled"
)

// IsValid checks if the PollStatus is valid
func (s PollStatus) IsValid() bool {
	switch s {
	case PollStatusDraft, PollStatusActive, PollStatusFinalized, PollStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no transition leaves this status
func (s PollStatus) IsTerminal() bool {
	return s == PollStatusFinalized || s == PollStatusCancelled
}

// VoteStatus defines a participant's availability stance on one option
type VoteStatus string

const (
	VoteStatusAvailable   VoteStatus = "available"
	VoteStatusPreferred   VoteStatus = "preferred"
	VoteStatusUnavailable VoteStatus = "unavailable"
)

// IsValid checks if the VoteStatus is valid
func (s VoteStatus) IsValid() bool {
	switch s {
	case VoteStatusAvailable, VoteStatusPreferred, VoteStatusUnavailable:
		return true
	}
	return false
}

// CaseType defines the kinds of mediation cases
type CaseType string

const (
	CaseTypeFamily     CaseType = "family"
	CaseTypeCivil      CaseType = "civil"
	CaseTypeCommercial CaseType = "commercial"
	CaseTypeWorkplace  CaseType = "workplace"
)

// IsValid checks if the CaseType is valid
func (t CaseType) IsValid() bool {
	switch t {
	case CaseTypeFamily, CaseTypeCivil, CaseTypeCommercial, CaseTypeWorkplace:
		return true
	}
	return false
}

// CaseStatus defines the lifecycle states of a mediation case
type CaseStatus string

const (
	CaseStatusOpen        CaseStatus = "open"
	CaseStatusInMediation CaseStatus = "in_mediation"
	CaseStatusResolved    CaseStatus = "resolved"
	CaseStatusClosed      CaseStatus = "closed"
)

// IsValid checks if the CaseStatus is valid
func (s CaseStatus) IsValid() bool {
	switch s {
	case CaseStatusOpen, CaseStatusInMediation, CaseStatusResolved, CaseStatusClosed:
		return true
	}
	return false
}

// NoticeStatus defines the lifecycle states of a mediation notice
type NoticeStatus string

const (
	NoticeStatusDraft NoticeStatus = "draft"
	NoticeStatusSent  NoticeStatus = "sent"
)

// IsValid checks if the NoticeStatus is valid
func (s NoticeStatus) IsValid() bool {
	switch s {
	case NoticeStatusDraft, NoticeStatusSent:
		return true
	}
	return false
}

// DeliverySource identifies what kind of send produced a delivery record
type DeliverySource string

const (
	DeliverySourcePollInvitation DeliverySource = "poll_invitation"
	DeliverySourceNotice         DeliverySource = "notice"
)

// DeliveryStatus is the per-recipient outcome of one email send
type DeliveryStatus string

const (
	DeliveryStatusSent   DeliveryStatus = "sent"
	DeliveryStatusFailed DeliveryStatus = "failed"
)
