package eligibility

import (
	"academy-apply-backend/db"
	criteriastore "academy-apply-backend/lib/criteria/store"
	publicationstore "academy-apply-backend/lib/publication/store"
	"academy-apply-backend/lib/scoring"
	"academy-apply-backend/models"
	"academy-apply-backend/models/errs"
)

type Provider interface {
	Check(candidateID string, fieldGroup models.FieldGroup, exam models.LanguageExam, score int) (Result, scoring.Stats, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		criteriaStore:    criteriastore.NewInstance(db.DB),
		publicationStore: publicationstore.NewInstance(db.DB),
	}
}

type impl struct {
	criteriaStore    criteriastore.Provider
	publicationStore publicationstore.Provider
}

// Check runs the same evaluator used at submit time against the
// candidate's registered publications, so the preview matches the verdict.
func (i impl) Check(candidateID string, fieldGroup models.FieldGroup, exam models.LanguageExam, score int) (Result, scoring.Stats, error) {
	criteria, err := i.criteriaStore.GetByFieldGroup(fieldGroup)
	if err != nil {
		return Result{}, scoring.Stats{}, err
	}
	if criteria == nil {
		return Result{}, scoring.Stats{}, errs.NotFound("criteria for the field group not found")
	}
	pubs, err := i.publicationStore.ListByOwner(candidateID)
	if err != nil {
		return Result{}, scoring.Stats{}, err
	}
	stats := scoring.Aggregate(pubs)
	verdict := Evaluate(*criteria, Input{
		FieldGroup:    fieldGroup,
		LanguageExam:  exam,
		LanguageScore: score,
		Stats:         stats,
	})
	return verdict, stats, nil
}
