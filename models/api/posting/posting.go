package postingapimodels

import (
	"time"

	"academy-apply-backend/models"
	dbmodels "academy-apply-backend/models/db"
)

type PostingView struct {
	ID                string            `json:"id"`
	Title             string            `json:"title"`
	Institution       string            `json:"institution"`
	Department        string            `json:"department"`
	FieldGroup        models.FieldGroup `json:"field_group"`
	FieldGroupName    string            `json:"field_group_name"`
	Status            string            `json:"status"`
	Description       string            `json:"description"`
	StartDate         time.Time         `json:"start_date"`
	EndDate           time.Time         `json:"end_date"`
	ApplicationsCount int               `json:"applications_count"`
	AuthorName        string            `json:"author_name"`
}

func Convert(rec dbmodels.Posting) PostingView {
	view := PostingView{
		ID:                rec.ID,
		Title:             rec.Title,
		Institution:       rec.Institution,
		Department:        rec.Department,
		FieldGroup:        rec.FieldGroup,
		FieldGroupName:    rec.FieldGroup.ToHuman(),
		Status:            string(rec.Status),
		Description:       rec.Description,
		StartDate:         rec.StartDate,
		EndDate:           rec.EndDate,
		ApplicationsCount: rec.ApplicationsCount,
	}
	if rec.Author != nil {
		view.AuthorName = rec.Author.GetFullName()
	}
	return view
}
