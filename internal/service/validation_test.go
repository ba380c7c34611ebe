package service_test

import (
	"testing"

	"mediation-scheduler/internal/database/models"
	"mediation-scheduler/internal/service"

	"github.com/stretchr/testify/assert"
)

func validPollRequest() *service.CreatePollRequest {
	return &service.CreatePollRequest{
		CaseID: "5b2cdfb0-6bb4-4e26-9b58-f177574bf3a7",
		Title:  "First session",
		Options: []service.PollOptionInput{
			{Date: "2026-09-10", Time: "10:00"},
		},
		Participants: []service.ParticipantInput{
			{Name: "Alice", Email: "alice@example.com"},
		},
	}
}

func TestValidatePollData(t *testing.T) {
	testCases := []struct {
		name          string
		mutate        func(*service.CreatePollRequest)
		expectedField string
	}{
		{"valid", func(r *service.CreatePollRequest) {}, ""},
		{"missing title", func(r *service.CreatePollRequest) { r.Title = "  " }, "title"},
		{"missing case", func(r *service.CreatePollRequest) { r.CaseID = "" }, "caseId"},
		{"no options", func(r *service.CreatePollRequest) { r.Options = nil }, "options"},
		{"option without date", func(r *service.CreatePollRequest) { r.Options[0].Date = "" }, "options"},
		{"option without time", func(r *service.CreatePollRequest) { r.Options[0].Time = "" }, "options"},
		{"no participants", func(r *service.CreatePollRequest) { r.Participants = nil }, "participants"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := validPollRequest()
			tc.mutate(req)

			result := service.ValidatePollData(req)

			if tc.expectedField == "" {
				assert.True(t, result.IsValid)
				assert.Empty(t, result.Errors)
			} else {
				assert.False(t, result.IsValid)
				assert.Contains(t, result.Errors, tc.expectedField)
			}
		})
	}
}

// Poll validation trusts participant emails; they are checked where
// participants enter the system, on the case.
func TestValidatePollDataSkipsEmailFormat(t *testing.T) {
	req := validPollRequest()
	req.Participants[0].Email = "not-an-email"

	result := service.ValidatePollData(req)

	assert.True(t, result.IsValid)
}

func TestValidateCaseData(t *testing.T) {
	valid := func() *service.CreateCaseRequest {
		return &service.CreateCaseRequest{
			CaseNumber: "MED-2026-001",
			Title:      "Smith v. Jones",
			CaseType:   models.CaseTypeCivil,
			Participants: []service.ParticipantInput{
				{Name: "Alice", Email: "alice@example.com"},
				{Name: "Bob", Email: "bob@example.com"},
			},
		}
	}

	testCases := []struct {
		name          string
		mutate        func(*service.CreateCaseRequest)
		expectedField string
	}{
		{"valid", func(r *service.CreateCaseRequest) {}, ""},
		{"missing title", func(r *service.CreateCaseRequest) { r.Title = "" }, "title"},
		{"missing case number", func(r *service.CreateCaseRequest) { r.CaseNumber = " " }, "caseNumber"},
		{"unknown case type", func(r *service.CreateCaseRequest) { r.CaseType = "criminal" }, "caseType"},
		{"bad participant email", func(r *service.CreateCaseRequest) { r.Participants[0].Email = "nope" }, "participants"},
		{"duplicate email", func(r *service.CreateCaseRequest) {
			r.Participants[1].Email = "ALICE@example.com"
		}, "participants"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid()
			tc.mutate(req)

			result := service.ValidateCaseData(req)

			if tc.expectedField == "" {
				assert.True(t, result.IsValid)
			} else {
				assert.False(t, result.IsValid)
				assert.Contains(t, result.Errors, tc.expectedField)
			}
		})
	}
}

func TestValidateNoticeData(t *testing.T) {
	valid := func() *service.CreateNoticeRequest {
		return &service.CreateNoticeRequest{
			CaseID: "5b2cdfb0-6bb4-4e26-9b58-f177574bf3a7",
			Title:  "Session confirmed",
			Body:   "The session has been scheduled.",
		}
	}

	testCases := []struct {
		name          string
		mutate        func(*service.CreateNoticeRequest)
		expectedField string
	}{
		{"valid", func(r *service.CreateNoticeRequest) {}, ""},
		{"missing title", func(r *service.CreateNoticeRequest) { r.Title = "" }, "title"},
		{"missing case", func(r *service.CreateNoticeRequest) { r.CaseID = "" }, "caseId"},
		{"missing body", func(r *service.CreateNoticeRequest) { r.Body = "  " }, "body"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid()
			tc.mutate(req)

			result := service.ValidateNoticeData(req)

			if tc.expectedField == "" {
				assert.True(t, result.IsValid)
			} else {
				assert.False(t, result.IsValid)
				assert.Contains(t, result.Errors, tc.expectedField)
			}
		})
	}
}
