package applicationapimodels

import (
	"time"

	"academy-apply-backend/models"
	dbmodels "academy-apply-backend/models/db"

	"github.com/pkg/errors"
)

type ApplyRequest struct {
	PostingID      string              `json:"posting_id"`
	LanguageExam   models.LanguageExam `json:"language_exam"`
	LanguageScore  int                 `json:"language_score"`
	PublicationIDs []string            `json:"publication_ids"`
}

func (r ApplyRequest) Validate() error {
	if r.PostingID == "" {
		return errors.New("posting id is required")
	}
	if r.LanguageExam == "" {
		return errors.New("language exam is required")
	}
	if r.LanguageScore < 0 || r.LanguageScore > 100 {
		return errors.New("language score must be within [0, 100]")
	}
	if len(r.PublicationIDs) == 0 {
		return errors.New("at least one publication is required")
	}
	return nil
}

type AssignJuryRequest struct {
	JurorIDs []string `json:"juror_ids"`
	ChairID  string   `json:"chair_id,omitempty"`
}

func (r AssignJuryRequest) Validate() error {
	if len(r.JurorIDs) == 0 {
		return errors.New("at least one juror is required")
	}
	return nil
}

type EvaluationRequest struct {
	Decision models.EvaluationDecision `json:"decision"`
	Comments string                    `json:"comments"`
}

func (r EvaluationRequest) Validate() error {
	if !r.Decision.IsValid() {
		return errors.New("decision must be POSITIVE or NEGATIVE")
	}
	return nil
}

type StatusUpdateRequest struct {
	Status models.ApplicationStatus `json:"status"`
	Note   string                   `json:"note"`
}

func (r StatusUpdateRequest) Validate() error {
	if !r.Status.IsValid() {
		return errors.New("unknown application status")
	}
	return nil
}

type ListRequest struct {
	Filter dbmodels.ApplicationFilter `json:"filter"`
}

type StatusEntryView struct {
	Status     models.ApplicationStatus `json:"status"`
	StatusName string                   `json:"status_name"`
	Note       string                   `json:"note,omitempty"`
	AuthorName string                   `json:"author_name,omitempty"`
	Date       time.Time                `json:"date"`
}

type JuryMemberView struct {
	JurorID          string                    `json:"juror_id"`
	JurorName        string                    `json:"juror_name"`
	MemberRole       models.JuryMemberRole     `json:"member_role"`
	EvaluationStatus models.EvaluationStatus   `json:"evaluation_status"`
	Decision         models.EvaluationDecision `json:"decision,omitempty"`
	Comments         string                    `json:"comments,omitempty"`
	ReportFileID     string                    `json:"report_file_id,omitempty"`
	SubmittedAt      *time.Time                `json:"submitted_at,omitempty"`
}

type FinalDecisionView struct {
	Status      models.ApplicationStatus `json:"status"`
	Date        time.Time                `json:"date"`
	Explanation string                   `json:"explanation"`
}

type ApplicationView struct {
	ID             string                   `json:"id"`
	CandidateID    string                   `json:"candidate_id"`
	CandidateName  string                   `json:"candidate_name"`
	PostingID      string                   `json:"posting_id"`
	PostingTitle   string                   `json:"posting_title"`
	FieldGroup     models.FieldGroup        `json:"field_group"`
	Status         models.ApplicationStatus `json:"status"`
	StatusName     string                   `json:"status_name"`
	LanguageExam   models.LanguageExam      `json:"language_exam"`
	LanguageScore  int                      `json:"language_score"`
	TotalScore     int                      `json:"total_score"`
	ScoreBreakdown dbmodels.ScoreBreakdown  `json:"score_breakdown,omitempty"`
	StatusLog      []StatusEntryView        `json:"status_log,omitempty"`
	Jury           []JuryMemberView         `json:"jury,omitempty"`
	FinalDecision  *FinalDecisionView       `json:"final_decision,omitempty"`
	CreatedAt      time.Time                `json:"created_at"`
}

func Convert(rec dbmodels.Application) ApplicationView {
	view := ApplicationView{
		ID:             rec.ID,
		CandidateID:    rec.CandidateID,
		PostingID:      rec.PostingID,
		FieldGroup:     rec.FieldGroup,
		Status:         rec.Status,
		StatusName:     rec.Status.ToHuman(),
		LanguageExam:   rec.LanguageExam,
		LanguageScore:  rec.LanguageScore,
		TotalScore:     rec.TotalScore,
		ScoreBreakdown: rec.ScoreBreakdown,
		CreatedAt:      rec.CreatedAt,
	}
	if rec.Candidate != nil {
		view.CandidateName = rec.Candidate.GetFullName()
	}
	if rec.Posting != nil {
		view.PostingTitle = rec.Posting.Title
	}
	for _, entry := range rec.StatusLog {
		view.StatusLog = append(view.StatusLog, StatusEntryView{
			Status:     entry.Status,
			StatusName: entry.Status.ToHuman(),
			Note:       entry.Note,
			AuthorName: entry.AuthorName,
			Date:       entry.CreatedAt,
		})
	}
	for _, member := range rec.Jury {
		memberView := JuryMemberView{
			JurorID:          member.JurorID,
			MemberRole:       member.MemberRole,
			EvaluationStatus: member.EvaluationStatus,
			Decision:         member.Decision,
			Comments:         member.Comments,
			ReportFileID:     member.ReportFileID,
			SubmittedAt:      member.SubmittedAt,
		}
		if member.Juror != nil {
			memberView.JurorName = member.Juror.GetFullName()
		}
		view.Jury = append(view.Jury, memberView)
	}
	if rec.HasFinalDecision() {
		view.FinalDecision = &FinalDecisionView{
			Status:      rec.FinalStatus,
			Date:        *rec.FinalDate,
			Explanation: rec.FinalExplanation,
		}
	}
	return view
}
