package publicationapimodels

import (
	"academy-apply-backend/models"
	dbmodels "academy-apply-backend/models/db"
)

type PublicationView struct {
	ID            string                     `json:"id"`
	Category      models.PublicationCategory `json:"category"`
	IndexName     string                     `json:"index_name"`
	Title         string                     `json:"title"`
	DOI           string                     `json:"doi"`
	Year          int                        `json:"year"`
	IsMainAuthor  bool                       `json:"is_main_author"`
	Points        int                        `json:"points"`
	ProofFileID   string                     `json:"proof_file_id,omitempty"`
	ApplicationID string                     `json:"application_id,omitempty"`
}

func Convert(rec dbmodels.Publication, points int) PublicationView {
	view := PublicationView{
		ID:           rec.ID,
		Category:     rec.Category,
		IndexName:    rec.IndexName,
		Title:        rec.Title,
		DOI:          rec.DOI,
		Year:         rec.Year,
		IsMainAuthor: rec.IsMainAuthor,
		Points:       points,
		ProofFileID:  rec.ProofFileID,
	}
	if rec.ApplicationID != nil {
		view.ApplicationID = *rec.ApplicationID
	}
	return view
}
