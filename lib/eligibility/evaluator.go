package eligibility

import (
	"fmt"

	"academy-apply-backend/lib/scoring"
	"academy-apply-backend/models"
	dbmodels "academy-apply-backend/models/db"
)

const defaultMinLanguageScore = 65

type CheckCode string

const (
	CheckFieldGroup      CheckCode = "FIELD_GROUP"
	CheckLanguage        CheckCode = "LANGUAGE"
	CheckTotalCount      CheckCode = "TOTAL_COUNT"
	CheckCountA1A2       CheckCode = "COUNT_A1_A2"
	CheckCountPointsA1A4 CheckCode = "COUNT_POINTS_A1_A4"
	CheckCountPointsA1A5 CheckCode = "COUNT_POINTS_A1_A5"
	CheckMainAuthor      CheckCode = "MAIN_AUTHOR"
	CheckTotalScore      CheckCode = "TOTAL_SCORE_RANGE"
)

type FailedCheck struct {
	Code    CheckCode `json:"code"`
	Message string    `json:"message"`
}

type Result struct {
	Eligible bool          `json:"eligible"`
	Failed   []FailedCheck `json:"failed_checks"`
}

type Input struct {
	FieldGroup    models.FieldGroup
	LanguageExam  models.LanguageExam
	LanguageScore int
	Stats         scoring.Stats
}

// Evaluate runs the full checklist against the field group criteria. Every
// failing check is reported so the caller can render a complete checklist;
// the verdict is true only when all checks hold.
func Evaluate(criteria dbmodels.FieldGroupCriteria, in Input) Result {
	result := Result{Failed: []FailedCheck{}}

	if !in.FieldGroup.IsValid() || criteria.FieldGroup != in.FieldGroup {
		// configuration error: the criteria row does not match a known group
		result.Failed = append(result.Failed, FailedCheck{
			Code:    CheckFieldGroup,
			Message: "Temel alan tanımı geçersiz",
		})
	}

	minLanguage := criteria.MinLanguageScore
	if minLanguage == 0 {
		minLanguage = defaultMinLanguageScore
	}
	if len(criteria.AcceptedExams) > 0 && !criteria.AcceptsExam(in.LanguageExam) {
		result.Failed = append(result.Failed, FailedCheck{
			Code:    CheckLanguage,
			Message: fmt.Sprintf("%v sınavı bu temel alan için kabul edilmiyor", in.LanguageExam),
		})
	} else if in.LanguageScore < minLanguage {
		result.Failed = append(result.Failed, FailedCheck{
			Code:    CheckLanguage,
			Message: fmt.Sprintf("Yabancı dil puanı en az %v olmalı", minLanguage),
		})
	}

	if in.Stats.TotalCount < criteria.MinTotalPublications {
		result.Failed = append(result.Failed, FailedCheck{
			Code:    CheckTotalCount,
			Message: fmt.Sprintf("Toplam yayın sayısı en az %v olmalı", criteria.MinTotalPublications),
		})
	}

	if in.Stats.CountA1A2 < criteria.MinCountA1A2 {
		result.Failed = append(result.Failed, FailedCheck{
			Code:    CheckCountA1A2,
			Message: fmt.Sprintf("A1-A2 kategorisinde en az %v yayın olmalı", criteria.MinCountA1A2),
		})
	}

	if in.Stats.CountA1A4 < criteria.MinCountA1A4 || in.Stats.PointsA1A4 < criteria.MinPointsA1A4 {
		result.Failed = append(result.Failed, FailedCheck{
			Code:    CheckCountPointsA1A4,
			Message: fmt.Sprintf("A1-A4 kategorisinde en az %v yayın ve %v puan olmalı", criteria.MinCountA1A4, criteria.MinPointsA1A4),
		})
	}

	if in.Stats.CountA1A5 < criteria.MinCountA1A5 || in.Stats.PointsA1A5 < criteria.MinPointsA1A5 {
		result.Failed = append(result.Failed, FailedCheck{
			Code:    CheckCountPointsA1A5,
			Message: fmt.Sprintf("A1-A5 kategorisinde en az %v yayın ve %v puan olmalı", criteria.MinCountA1A5, criteria.MinPointsA1A5),
		})
	}

	if in.Stats.MainAuthorCount < criteria.MinMainAuthor {
		result.Failed = append(result.Failed, FailedCheck{
			Code:    CheckMainAuthor,
			Message: fmt.Sprintf("Başlıca yazar olunan en az %v yayın olmalı", criteria.MinMainAuthor),
		})
	}

	if in.Stats.TotalScore < criteria.MinTotalPoints || in.Stats.TotalScore > criteria.MaxTotalPoints {
		result.Failed = append(result.Failed, FailedCheck{
			Code:    CheckTotalScore,
			Message: fmt.Sprintf("Toplam puan %v-%v aralığında olmalı", criteria.MinTotalPoints, criteria.MaxTotalPoints),
		})
	}

	result.Eligible = len(result.Failed) == 0
	return result
}
