package criteriaapimodels

import (
	"academy-apply-backend/models"
	dbmodels "academy-apply-backend/models/db"
)

type CriteriaData struct {
	MinLanguageScore     int                   `json:"min_language_score"`
	AcceptedExams        []models.LanguageExam `json:"accepted_exams"`
	MinTotalPublications int                   `json:"min_total_publications"`
	MinCountA1A2         int                   `json:"min_count_a1_a2"`
	MinCountA1A4         int                   `json:"min_count_a1_a4"`
	MinCountA1A5         int                   `json:"min_count_a1_a5"`
	MinMainAuthor        int                   `json:"min_main_author"`
	MinPointsA1A4        int                   `json:"min_points_a1_a4"`
	MinPointsA1A5        int                   `json:"min_points_a1_a5"`
	MinTotalPoints       int                   `json:"min_total_points"`
	MaxTotalPoints       int                   `json:"max_total_points"`
}

type CriteriaView struct {
	ID              string            `json:"id"`
	FieldGroup      models.FieldGroup `json:"field_group"`
	FieldGroupName  string            `json:"field_group_name"`
	CriteriaData
}

func Convert(rec dbmodels.FieldGroupCriteria) CriteriaView {
	return CriteriaView{
		ID:             rec.ID,
		FieldGroup:     rec.FieldGroup,
		FieldGroupName: rec.FieldGroup.ToHuman(),
		CriteriaData: CriteriaData{
			MinLanguageScore:     rec.MinLanguageScore,
			AcceptedExams:        rec.AcceptedExams,
			MinTotalPublications: rec.MinTotalPublications,
			MinCountA1A2:         rec.MinCountA1A2,
			MinCountA1A4:         rec.MinCountA1A4,
			MinCountA1A5:         rec.MinCountA1A5,
			MinMainAuthor:        rec.MinMainAuthor,
			MinPointsA1A4:        rec.MinPointsA1A4,
			MinPointsA1A5:        rec.MinPointsA1A5,
			MinTotalPoints:       rec.MinTotalPoints,
			MaxTotalPoints:       rec.MaxTotalPoints,
		},
	}
}
