package dbmodels

import (
	"time"

	"academy-apply-backend/models"
	apimodels "academy-apply-backend/models/api"
)

type Application struct {
	BaseModel
	CandidateID string   `gorm:"type:varchar(36);index:idx_candidate_posting,unique"`
	Candidate   *User    `gorm:"foreignKey:CandidateID"`
	PostingID   string   `gorm:"type:varchar(36);index:idx_candidate_posting,unique"`
	Posting     *Posting `gorm:"foreignKey:PostingID"`

	FieldGroup models.FieldGroup `gorm:"type:varchar(50)"`

	// Current status lives in this column; StatusLog is the append-only
	// audit trail. The two are written in the same transaction.
	Status    models.ApplicationStatus `gorm:"type:varchar(50);index"`
	StatusLog []ApplicationStatusEntry `gorm:"foreignKey:ApplicationID"`

	LanguageExam  models.LanguageExam `gorm:"type:varchar(50)"`
	LanguageScore int

	TotalScore     int
	ScoreBreakdown ScoreBreakdown `gorm:"type:jsonb"`

	Jury []JuryAssignment `gorm:"foreignKey:ApplicationID"`

	FinalStatus      models.ApplicationStatus `gorm:"type:varchar(50)"`
	FinalDate        *time.Time
	FinalExplanation string
}

func (a Application) HasFinalDecision() bool {
	return a.FinalDate != nil
}

// JuryMember returns the panel slot of the given juror, nil when the juror
// is not on the panel.
func (a Application) JuryMember(jurorID string) *JuryAssignment {
	for idx := range a.Jury {
		if a.Jury[idx].JurorID == jurorID {
			return &a.Jury[idx]
		}
	}
	return nil
}

type ApplicationStatusEntry struct {
	BaseModel
	ApplicationID string                   `gorm:"type:varchar(36);index"`
	Status        models.ApplicationStatus `gorm:"type:varchar(50)"`
	Note          string
	AuthorName    string `gorm:"type:varchar(255)"`
}

// JuryAssignment is one panel slot: the juror reference plus the single
// evaluation the juror may submit for this application.
type JuryAssignment struct {
	BaseModel
	ApplicationID string                `gorm:"type:varchar(36);index:idx_application_juror,unique"`
	JurorID       string                `gorm:"type:varchar(36);index:idx_application_juror,unique"`
	Juror         *User                 `gorm:"foreignKey:JurorID"`
	MemberRole    models.JuryMemberRole `gorm:"type:varchar(50)"`

	EvaluationStatus models.EvaluationStatus   `gorm:"type:varchar(50)"`
	Decision         models.EvaluationDecision `gorm:"type:varchar(50)"`
	Comments         string
	ReportFileID     string `gorm:"type:varchar(36)"`
	SubmittedAt      *time.Time
}

func (j JuryAssignment) IsCompleted() bool {
	return j.EvaluationStatus == models.EvaluationStatusCompleted
}

type ApplicationFilter struct {
	apimodels.Pagination
	PostingID   string                   `json:"posting_id"`
	CandidateID string                   `json:"candidate_id"`
	JurorID     string                   `json:"-"`
	Status      models.ApplicationStatus `json:"status"`
	Search      string                   `json:"search"`
}
