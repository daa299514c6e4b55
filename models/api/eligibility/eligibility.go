package eligibilityapimodels

import (
	"academy-apply-backend/lib/eligibility"
	"academy-apply-backend/lib/scoring"
	"academy-apply-backend/models"

	"github.com/pkg/errors"
)

type CheckRequest struct {
	FieldGroup    models.FieldGroup   `json:"field_group"`
	LanguageExam  models.LanguageExam `json:"language_exam"`
	LanguageScore int                 `json:"language_score"`
}

func (r CheckRequest) Validate() error {
	if r.FieldGroup == "" {
		return errors.New("field group is required")
	}
	if r.LanguageExam == "" {
		return errors.New("language exam is required")
	}
	if r.LanguageScore < 0 || r.LanguageScore > 100 {
		return errors.New("language score must be within [0, 100]")
	}
	return nil
}

type CheckResponse struct {
	Result eligibility.Result `json:"result"`
	Stats  scoring.Stats      `json:"stats"`
}
