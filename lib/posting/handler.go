package postinghandler

import (
	"academy-apply-backend/db"
	postingstore "academy-apply-backend/lib/posting/store"
	"academy-apply-backend/models"
	postingapimodels "academy-apply-backend/models/api/posting"
	dbmodels "academy-apply-backend/models/db"
	"academy-apply-backend/models/errs"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(authorID string, data dbmodels.PostingData) (id string, err error)
	GetByID(id string) (postingapimodels.PostingView, error)
	List(filter dbmodels.PostingFilter) ([]postingapimodels.PostingView, error)
	Update(id string, data dbmodels.PostingData) error
	SetStatus(id string, status models.PostingStatus) error
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: postingstore.NewInstance(db.DB),
	}
}

type impl struct {
	store postingstore.Provider
}

func (i impl) Create(authorID string, data dbmodels.PostingData) (id string, err error) {
	if err = data.Validate(); err != nil {
		return "", errs.Validation(err.Error())
	}
	id, err = i.store.Create(dbmodels.Posting{
		Title:       data.Title,
		Institution: data.Institution,
		Department:  data.Department,
		FieldGroup:  data.FieldGroup,
		Status:      models.PostingStatusOpen,
		Description: data.Description,
		StartDate:   data.StartDate,
		EndDate:     data.EndDate,
		AuthorID:    authorID,
	})
	if err != nil {
		return "", err
	}
	log.
		WithField("posting_id", id).
		WithField("field_group", data.FieldGroup).
		Info("posting created")
	return id, nil
}

func (i impl) GetByID(id string) (postingapimodels.PostingView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return postingapimodels.PostingView{}, err
	}
	if rec == nil {
		return postingapimodels.PostingView{}, errs.NotFound("posting not found")
	}
	return postingapimodels.Convert(*rec), nil
}

func (i impl) List(filter dbmodels.PostingFilter) ([]postingapimodels.PostingView, error) {
	list, err := i.store.List(filter)
	if err != nil {
		return nil, err
	}
	result := make([]postingapimodels.PostingView, 0, len(list))
	for _, rec := range list {
		result = append(result, postingapimodels.Convert(rec))
	}
	return result, nil
}

func (i impl) Update(id string, data dbmodels.PostingData) error {
	if err := data.Validate(); err != nil {
		return errs.Validation(err.Error())
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errs.NotFound("posting not found")
	}
	return i.store.Update(id, map[string]interface{}{
		"title":       data.Title,
		"institution": data.Institution,
		"department":  data.Department,
		"field_group": data.FieldGroup,
		"description": data.Description,
		"start_date":  data.StartDate,
		"end_date":    data.EndDate,
	})
}

func (i impl) SetStatus(id string, status models.PostingStatus) error {
	if status != models.PostingStatusOpen && status != models.PostingStatusClosed {
		return errs.Validation("unknown posting status")
	}
	err := i.store.Update(id, map[string]interface{}{"status": status})
	if err != nil {
		return err
	}
	log.
		WithField("posting_id", id).
		WithField("status", status).
		Info("posting status changed")
	return nil
}

func (i impl) Delete(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errs.NotFound("posting not found")
	}
	if rec.ApplicationsCount > 0 {
		return errs.Conflict("posting has applications and cannot be deleted")
	}
	return i.store.Delete(id)
}
