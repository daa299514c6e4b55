package criteriahandler

import (
	"academy-apply-backend/db"
	criteriastore "academy-apply-backend/lib/criteria/store"
	"academy-apply-backend/models"
	criteriaapimodels "academy-apply-backend/models/api/criteria"
	dbmodels "academy-apply-backend/models/db"
	"academy-apply-backend/models/errs"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	GetByFieldGroup(fieldGroup models.FieldGroup) (criteriaapimodels.CriteriaView, error)
	List() ([]criteriaapimodels.CriteriaView, error)
	Update(fieldGroup models.FieldGroup, data criteriaapimodels.CriteriaData) error
	Reseed() error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: criteriastore.NewInstance(db.DB),
	}
}

type impl struct {
	store criteriastore.Provider
}

func (i impl) GetByFieldGroup(fieldGroup models.FieldGroup) (criteriaapimodels.CriteriaView, error) {
	if !fieldGroup.IsValid() {
		return criteriaapimodels.CriteriaView{}, errs.Validation("unknown field group")
	}
	rec, err := i.store.GetByFieldGroup(fieldGroup)
	if err != nil {
		return criteriaapimodels.CriteriaView{}, err
	}
	if rec == nil {
		return criteriaapimodels.CriteriaView{}, errs.NotFound("criteria not found")
	}
	return criteriaapimodels.Convert(*rec), nil
}

func (i impl) List() ([]criteriaapimodels.CriteriaView, error) {
	list, err := i.store.List()
	if err != nil {
		return nil, err
	}
	result := make([]criteriaapimodels.CriteriaView, 0, len(list))
	for _, rec := range list {
		result = append(result, criteriaapimodels.Convert(rec))
	}
	return result, nil
}

func (i impl) Update(fieldGroup models.FieldGroup, data criteriaapimodels.CriteriaData) error {
	if !fieldGroup.IsValid() {
		return errs.Validation("unknown field group")
	}
	candidate := dbmodels.FieldGroupCriteria{
		FieldGroup:           fieldGroup,
		MinLanguageScore:     data.MinLanguageScore,
		AcceptedExams:        data.AcceptedExams,
		MinTotalPublications: data.MinTotalPublications,
		MinCountA1A2:         data.MinCountA1A2,
		MinCountA1A4:         data.MinCountA1A4,
		MinCountA1A5:         data.MinCountA1A5,
		MinMainAuthor:        data.MinMainAuthor,
		MinPointsA1A4:        data.MinPointsA1A4,
		MinPointsA1A5:        data.MinPointsA1A5,
		MinTotalPoints:       data.MinTotalPoints,
		MaxTotalPoints:       data.MaxTotalPoints,
	}
	if err := candidate.Validate(); err != nil {
		return errs.Validation(err.Error())
	}
	rec, err := i.store.GetByFieldGroup(fieldGroup)
	if err != nil {
		return err
	}
	if rec == nil {
		_, err = i.store.Create(candidate)
		return err
	}
	err = i.store.Update(rec.ID, map[string]interface{}{
		"min_language_score":     data.MinLanguageScore,
		"accepted_exams":         dbmodels.ExamSet(data.AcceptedExams),
		"min_total_publications": data.MinTotalPublications,
		"min_count_a1_a2":        data.MinCountA1A2,
		"min_count_a1_a4":        data.MinCountA1A4,
		"min_count_a1_a5":        data.MinCountA1A5,
		"min_main_author":        data.MinMainAuthor,
		"min_points_a1_a4":       data.MinPointsA1A4,
		"min_points_a1_a5":       data.MinPointsA1A5,
		"min_total_points":       data.MinTotalPoints,
		"max_total_points":       data.MaxTotalPoints,
	})
	if err != nil {
		return err
	}
	log.WithField("field_group", fieldGroup).Info("criteria updated")
	return nil
}

// Reseed restores the default criteria rows for field groups that were
// deleted. Existing rows keep their administrator edits.
func (i impl) Reseed() error {
	for _, candidate := range criteriastore.DefaultSet() {
		rec, err := i.store.GetByFieldGroup(candidate.FieldGroup)
		if err != nil {
			return err
		}
		if rec != nil {
			continue
		}
		if _, err = i.store.Create(candidate); err != nil {
			return err
		}
		log.WithField("field_group", candidate.FieldGroup).Info("criteria defaults restored")
	}
	return nil
}
