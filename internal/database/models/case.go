package models

import (
	"gorm.io/datatypes"
)

// Case is a mediation case: the record that owns scheduling polls and
// mediation notices, with the contact set shared by both.
type Case struct {
	BaseModel
	CaseNumber  string     `json:"case_number" gorm:"size:40;not null;uniqueIndex"`
	Title       string     `json:"title" gorm:"size:200;not null"`
	Description string     `json:"description" gorm:"size:2000"`
	CaseType    CaseType   `json:"case_type" gorm:"size:20;not null"`
	Status      CaseStatus `json:"status" gorm:"size:20;not null;default:'open'"`
	Location    string     `json:"location" gorm:"size:200"`

	Participants datatypes.JSONSlice[Participant] `json:"participants"`

	// Relationships
	Polls   []Poll   `json:"polls,omitempty" gorm:"foreignKey:CaseID"`
	Notices []Notice `json:"notices,omitempty" gorm:"foreignKey:CaseID"`
}

// TableName returns the table name for Case
func (Case) TableName() string {
	return "cases"
}

// Participant looks up a case participant by email, case-insensitively
func (c *Case) Participant(email string) (Participant, bool) {
	return FindParticipant(c.Participants, email)
}
