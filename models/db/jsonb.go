package dbmodels

import (
	"database/sql/driver"
	"encoding/json"

	"academy-apply-backend/models"
)

type ExamSet []models.LanguageExam

func (j ExamSet) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *ExamSet) Scan(value any) error {
	if err := json.Unmarshal(value.([]byte), &j); err != nil {
		return err
	}
	return nil
}

// ScoreBreakdown is the itemized score list persisted with the application.
type ScoreBreakdown []ScoreItem

type ScoreItem struct {
	Category  models.PublicationCategory `json:"category"`
	Criterion string                     `json:"criterion"`
	Points    int                        `json:"points"`
	Documents []string                   `json:"documents"` // proof file ids
}

func (j ScoreBreakdown) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *ScoreBreakdown) Scan(value any) error {
	if err := json.Unmarshal(value.([]byte), &j); err != nil {
		return err
	}
	return nil
}
