package dbmodels

import (
	"academy-apply-backend/models"

	"github.com/pkg/errors"
)

// FieldGroupCriteria holds the eligibility thresholds for one field group.
// Exactly one row exists per group, seeded at startup and editable by
// administrators afterwards.
type FieldGroupCriteria struct {
	BaseModel
	FieldGroup models.FieldGroup `gorm:"type:varchar(50);uniqueIndex"`

	MinLanguageScore int
	AcceptedExams    ExamSet `gorm:"type:jsonb"`

	MinTotalPublications int
	MinCountA1A2         int
	MinCountA1A4         int
	MinCountA1A5         int
	MinMainAuthor        int
	MinPointsA1A4        int
	MinPointsA1A5        int

	MinTotalPoints int
	MaxTotalPoints int
}

func (c FieldGroupCriteria) Validate() error {
	if !c.FieldGroup.IsValid() {
		return errors.New("unknown field group")
	}
	if c.MinTotalPoints > c.MaxTotalPoints {
		return errors.New("minimum total points exceeds maximum")
	}
	if c.MinLanguageScore < 0 || c.MinLanguageScore > 100 {
		return errors.New("minimum language score out of range")
	}
	return nil
}

func (c FieldGroupCriteria) AcceptsExam(exam models.LanguageExam) bool {
	for _, accepted := range c.AcceptedExams {
		if accepted == exam {
			return true
		}
	}
	return false
}
